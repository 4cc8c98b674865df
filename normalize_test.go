package siteswap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/siteswap"
)

func TestAnalyze_NormalizedForm(t *testing.T) {
	tests := []struct {
		pattern    string
		opts       []siteswap.Option
		normalized string
	}{
		{pattern: "333", normalized: "3"},
		{pattern: "531", normalized: "531"},
		{pattern: "744", normalized: "74^2"},
		{pattern: "b4^6", normalized: "b4^6"},
		{pattern: "4453", normalized: "4^253"},
		{pattern: "[43]23", normalized: "[34]23"},
		{pattern: "(4,4)", normalized: "(4,4)"},
		{pattern: "(4,4)(4,4)", normalized: "(4,4)"},
		{pattern: "(4x,4x)", normalized: "(4x,4x)"},
		{pattern: "(4,4,4)!!", normalized: "(4,4,4)!!"},
		{pattern: "(3,0)!(0,3)!", normalized: "(3,0)!(0,3)!"},
		{pattern: "0", normalized: "0"},
		{pattern: "1^{99}20", opts: []siteswap.Option{siteswap.WithMaximumLength(101)}, normalized: "1^{99}20"},
		{pattern: "-5", opts: []siteswap.Option{siteswap.WithTheoreticalPatterns()}, normalized: "{-5}"},
		{pattern: "5^-1", opts: []siteswap.Option{siteswap.WithTheoreticalPatterns()}, normalized: "5^{-1}"},
		{pattern: "-1[34]", opts: []siteswap.Option{siteswap.WithTheoreticalPatterns()}, normalized: "{-1}[34]"},
	}

	for _, tc := range tests {
		t.Run(tc.pattern, func(t *testing.T) {
			res, err := siteswap.Analyze(tc.pattern, tc.opts...)
			require.NoError(t, err)
			require.True(t, res.Valid)
			assert.Equal(t, tc.normalized, res.Normalized)
		})
	}
}

// Re-analysing a normalised form must reproduce it unchanged, along
// with the pattern's invariants.
func TestAnalyze_NormalizationIdempotent(t *testing.T) {
	corpus := []struct {
		pattern string
		opts    []siteswap.Option
	}{
		{pattern: "744"},
		{pattern: "333"},
		{pattern: "531"},
		{pattern: "91"},
		{pattern: "[43]23"},
		{pattern: "b4^6"},
		{pattern: "(4,4)"},
		{pattern: "(4x,4x)"},
		{pattern: "(4,4)!"},
		{pattern: "(4,4,4)!!"},
		{pattern: "(3,0)!(0,3)!"},
		{pattern: "0"},
		{pattern: "2"},
		{pattern: "[3^24]"},
		{pattern: "-5", opts: []siteswap.Option{siteswap.WithTheoreticalPatterns()}},
		{pattern: "5^-1", opts: []siteswap.Option{siteswap.WithTheoreticalPatterns()}},
		{pattern: "-1[34]", opts: []siteswap.Option{siteswap.WithTheoreticalPatterns()}},
	}

	for _, tc := range corpus {
		t.Run(tc.pattern, func(t *testing.T) {
			first, err := siteswap.Analyze(tc.pattern, tc.opts...)
			require.NoError(t, err)
			require.True(t, first.Valid)

			second, err := siteswap.Analyze(first.Normalized, tc.opts...)
			require.NoError(t, err)
			require.True(t, second.Valid)

			assert.Equal(t, first.Normalized, second.Normalized)
			assert.Equal(t, first.Period, second.Period)
			assert.Equal(t, first.Cardinality, second.Cardinality)
			assert.Equal(t, first.Ground, second.Ground)
		})
	}
}

// Repeating a pattern k times changes nothing observable: the
// minimal-period reduction folds the copies back together.
func TestAnalyze_RepetitionInvariance(t *testing.T) {
	pairs := []struct{ base, repeated string }{
		{"3", "333"},
		{"744", "744744"},
		{"531", "531531531"},
		{"(4,4)", "(4,4)(4,4)"},
		{"(3,0)!(0,3)!", "(3,0)!(0,3)!(3,0)!(0,3)!"},
	}

	for _, tc := range pairs {
		t.Run(tc.repeated, func(t *testing.T) {
			base, err := siteswap.Analyze(tc.base)
			require.NoError(t, err)
			repeated, err := siteswap.Analyze(tc.repeated)
			require.NoError(t, err)

			assert.Equal(t, base.Period, repeated.Period)
			assert.Equal(t, base.Cardinality, repeated.Cardinality)
			assert.Equal(t, base.Ground, repeated.Ground)
			assert.Equal(t, base.Normalized, repeated.Normalized)
		})
	}
}

// Throw mass conservation: for patterns that do not reduce, cardinality
// times period recovers the total signed throw mass.
func TestAnalyze_MassConservation(t *testing.T) {
	tests := []struct {
		pattern string
		mass    int
	}{
		{"531", 9},
		{"91", 10},
		{"[43]23", 12},
		{"b4^6", 35},
		{"744", 15},
	}

	for _, tc := range tests {
		t.Run(tc.pattern, func(t *testing.T) {
			res, err := siteswap.Analyze(tc.pattern)
			require.NoError(t, err)
			require.True(t, res.Valid)
			require.NotZero(t, res.Period)
			assert.Equal(t, tc.mass, res.Cardinality*res.Period)
		})
	}
}

// Multiplex events are sorted by value and duplicates collapse into
// one event with a summed quantity.
func TestAnalyze_MultiplexNormalization(t *testing.T) {
	res, err := siteswap.Analyze("[43]23")
	require.NoError(t, err)
	assert.Equal(t, "[34]23", res.Normalized)

	res, err = siteswap.Analyze("[33]42")
	require.NoError(t, err)
	require.True(t, res.Valid)
	assert.Equal(t, "[3^2]42", res.Normalized)

	res, err = siteswap.Analyze("[3^24]")
	require.NoError(t, err)
	require.True(t, res.Valid)
	assert.Equal(t, 10, res.Cardinality)
	assert.True(t, res.Excited)
}

// A redundant non-crossing zero inside a multiplex drops out.
func TestAnalyze_ZeroEventDropped(t *testing.T) {
	res, err := siteswap.Analyze("[30]42")
	require.NoError(t, err)
	withoutZero, err := siteswap.Analyze("342")
	require.NoError(t, err)
	assert.Equal(t, withoutZero.Normalized, res.Normalized)
	assert.Equal(t, withoutZero.Valid, res.Valid)
	assert.Equal(t, withoutZero.Cardinality, res.Cardinality)
}
