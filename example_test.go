package siteswap_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/siteswap"
)

// Analyze reports the invariants of a valid pattern.
func ExampleAnalyze() {
	res, err := siteswap.Analyze("531")
	if err != nil {
		fmt.Println("not a siteswap:", err)
		return
	}
	fmt.Println(res.Valid, res.Period, res.Cardinality, res.Ground)
	// Output: true 3 3 true
}

// A well-formed pattern that does not juggle is not an error; it comes
// back with Valid == false.
func ExampleAnalyze_invalid() {
	res, _ := siteswap.Analyze("321")
	fmt.Println(res.Valid)
	// Output: false
}

// Input that Analyze rejects (here a negative throw with theoretical
// mode off) surfaces as a sentinel-wrapped error.
func ExampleAnalyze_error() {
	_, err := siteswap.Analyze("-5")
	fmt.Println(errors.Is(err, siteswap.ErrTheoreticalDisallowed))
	// Output: true
}

// Theoretical mode admits negative throws, modelling time-reversed
// patterns.
func ExampleWithTheoreticalPatterns() {
	res := siteswap.MustAnalyze("-5", siteswap.WithTheoreticalPatterns())
	fmt.Println(res.Valid, res.Cardinality)
	// Output: true -5
}

// The normalised form is the minimal-period canonical spelling.
func ExampleMustAnalyze() {
	fmt.Println(siteswap.MustAnalyze("333").Normalized)
	fmt.Println(siteswap.MustAnalyze("(4,4)(4,4)").Normalized)
	// Output:
	// 3
	// (4,4)
}
