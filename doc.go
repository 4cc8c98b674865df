// Package siteswap analyzes siteswap notation: a compact textual grammar
// for juggling patterns. Given a pattern string, Analyze decides whether
// it denotes a valid periodic juggling sequence and, if so, reports its
// period, cardinality (prop count), ground/excited classification, and a
// normalised canonical re-serialisation.
//
// Pipeline:
//
//   - Lexical normalisation — strip whitespace, lower-case letters.
//   - Recursive-descent grammar recognition + chain decomposition —
//     builds a typed parse tree of Groups → Actions → Events, each
//     carrying a signed repetition quantity.
//   - Semantic gate — rejects negative values/quantities and zero-value
//     crossing throws unless theoretical mode is enabled.
//   - Hand-count resolution — infers the number of hands from explicit
//     synchronous tuples (or defaults to one-handed) and assigns a
//     rotating hand index to implicit actions.
//   - Normalisation — per-action event dedup/sort, adjacent-group
//     collapsing, minimal-period reduction, implicit-to-explicit
//     group expansion.
//   - Range inference, delta construction, and a linear-recurrence
//     solver prove (or disprove) that the pattern is self-consistent
//     under one period shift.
//   - Ground-state classification and canonical re-serialisation.
//
// # Why use siteswap?
//
//   - Single entry point — Analyze(pattern, opts...) — no ceremony.
//   - Pure, re-entrant, single-threaded — safe to call concurrently
//     from independent goroutines on independent inputs.
//   - Distinguishes malformed input (returned as error) from
//     well-formed-but-invalid patterns (returned as Result with
//     Valid=false) — see Options and the error sentinels below.
//
// # Options
//
//	– WithTheoreticalPatterns()
//	    Permits negative values, negative repetition quantities, and
//	    zero-value crossing throws (time-reversed / debit patterns).
//	– WithMaximumLength(n)
//	    Bounds the per-hand inferred beat-range; patterns whose range
//	    would exceed n fail fast with ErrStateRangeTooLarge instead of
//	    allocating unbounded state.
//
// # Errors
//
//	ErrSyntacticallyInvalid  – grammar rejected the input.
//	ErrTheoreticalDisallowed – negative/crossing-zero construct, flag off.
//	ErrInconsistentHandCount – explicit tuples of differing arity.
//	ErrOffsetExceedsHands    – a throw's crossing offset ≥ hand count.
//	ErrInvalidSuppression    – suppression count outside [0, len(actions)).
//	ErrStateRangeTooLarge    – inferred range exceeds MaximumLength.
//
// Patterns that are syntactically valid but do not denote a juggling
// sequence (prop collisions, non-integer cardinality, inconsistent
// periodic equations) are NOT errors: Analyze returns a Result with
// Valid == false.
package siteswap
