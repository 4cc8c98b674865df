// api.go — thin, deterministic public facade. No algorithms live here:
// Analyze only sequences the pipeline stages (lexer → parser → gate →
// hand-count → normaliser → range inference → deltas → solver → ground
// classifier → re-serialiser) and assembles the Result.

package siteswap

// Analyze decides whether pattern denotes a valid periodic juggling
// sequence and reports its invariants.
//
// Behavior:
//   - Whitespace is stripped and letters lower-cased before anything
//     else; the processed form is what Result.Pattern and every error
//     message carry.
//   - Malformed or structurally inconsistent input returns a
//     *SiteswapError wrapping one of the package sentinels (see
//     errors.go); match with errors.Is.
//   - Well-formed input that simply does not juggle (collision,
//     non-integer cardinality, inconsistent periodic equations, a
//     pattern collapsing to period zero) is NOT an error: the returned
//     Result has Valid == false.
//
// Complexity: O(P + H·R) time and O(H·R) space, where P is the pattern
// length including repetition quantities, H the hand count, and R the
// inferred per-hand beat range (bounded by Options.MaximumLength).
//
// Analyze is pure and re-entrant; concurrent calls on independent
// inputs need no coordination.
func Analyze(pattern string, opts ...Option) (*Result, error) {
	options := resolveOptions(opts)

	processed := preprocess(pattern)
	if processed == "" {
		return &Result{Pattern: emptyPatternMarker, Valid: false, Period: 0}, nil
	}

	raw, err := decompose(processed)
	if err != nil {
		return nil, err
	}
	if err = checkTheoreticalGate(processed, raw, options); err != nil {
		return nil, err
	}

	resolved, hands, handsEffective, err := resolveHands(processed, raw)
	if err != nil {
		return nil, err
	}

	outcome := normalizePattern(resolved, handsEffective)
	if outcome.periodZero || outcome.notDivisible {
		return &Result{Pattern: processed, Valid: false, Period: 0, Hands: hands}, nil
	}

	pat := &Pattern{Groups: outcome.groups, Hands: hands}
	windows, err := inferRanges(processed, pat, handsEffective, options.MaximumLength)
	if err != nil {
		return nil, err
	}
	deltas := buildDeltas(pat, handsEffective, windows)
	states, valid := solveStates(deltas, windows, outcome.period)
	if !valid {
		return &Result{Pattern: processed, Valid: false, Period: 0, Hands: hands}, nil
	}

	ground := classifyGround(states, windows, handsEffective, outcome.cardinality)
	return &Result{
		Pattern:     processed,
		Normalized:  renderReduced(outcome.reduced),
		Valid:       true,
		Period:      outcome.period,
		Cardinality: outcome.cardinality,
		Hands:       hands,
		Ground:      ground,
		Excited:     !ground,
	}, nil
}

// MustAnalyze is Analyze for call sites where a malformed pattern is a
// programmer error: it panics instead of returning an error. Intended
// for tests and package examples with literal patterns.
func MustAnalyze(pattern string, opts ...Option) *Result {
	res, err := Analyze(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return res
}
