// errors.go — sentinel error set for the siteswap package.
//
// Error policy:
//   - Exported sentinels (ErrX) are the only thing callers should branch
//     on, via errors.Is — never by matching Error() strings.
//   - Every sentinel is surfaced wrapped in a *SiteswapError carrying the
//     offending pattern and a human-readable message; Unwrap() exposes
//     the sentinel for errors.Is.
//   - These six sentinels are raised only for input that is malformed or
//     structurally inconsistent. A syntactically valid pattern that
//     simply fails to juggle (collision, non-integer cardinality,
//     inconsistent periodic equations) is never an error: Analyze
//     returns a Result with Valid == false instead.

package siteswap

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntacticallyInvalid indicates the input does not match the
	// siteswap grammar at all (not a siteswap expression).
	ErrSyntacticallyInvalid = errors.New("siteswap: syntactically invalid")

	// ErrTheoreticalDisallowed indicates a negative value, a negative
	// repetition quantity, or a zero-value crossing throw appeared while
	// Options.AllowTheoreticalPatterns was false.
	ErrTheoreticalDisallowed = errors.New("siteswap: theoretical pattern disallowed")

	// ErrInconsistentHandCount indicates two explicit synchronous tuples
	// in the same pattern disagree on the number of hands.
	ErrInconsistentHandCount = errors.New("siteswap: inconsistent hand count")

	// ErrOffsetExceedsHands indicates an event's crossing offset is not
	// smaller than the pattern's inferred hand count.
	ErrOffsetExceedsHands = errors.New("siteswap: offset exceeds hand count")

	// ErrInvalidSuppression indicates a group's suppression count falls
	// outside [0, len(actions)).
	ErrInvalidSuppression = errors.New("siteswap: invalid suppression")

	// ErrStateRangeTooLarge indicates the inferred per-hand beat range
	// exceeds Options.MaximumLength.
	ErrStateRangeTooLarge = errors.New("siteswap: state range too large")
)

// SiteswapError is the concrete error type Analyze returns for any of
// the six sentinels above. Callers should match with errors.Is against
// the sentinel, not by inspecting Message or Pattern.
type SiteswapError struct {
	sentinel error
	Pattern  string // the offending, already whitespace-stripped/lower-cased pattern
	Message  string // human-readable detail
}

// Error renders "<sentinel>: <message> (pattern %q)".
func (e *SiteswapError) Error() string {
	return fmt.Sprintf("%s: %s (pattern %q)", e.sentinel, e.Message, e.Pattern)
}

// Unwrap exposes the sentinel so errors.Is(err, ErrX) works.
func (e *SiteswapError) Unwrap() error {
	return e.sentinel
}

// newError builds a *SiteswapError wrapping sentinel with a formatted
// message and the offending pattern attached.
func newError(sentinel error, pattern, format string, args ...interface{}) *SiteswapError {
	return &SiteswapError{
		sentinel: sentinel,
		Pattern:  pattern,
		Message:  fmt.Sprintf(format, args...),
	}
}
