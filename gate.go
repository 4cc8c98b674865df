// gate.go — the theoretical-mode semantic gate. Runs after the input
// has already proven syntactically valid (decompose.go succeeded) but
// before hand-count resolution, so a malformed "-" alone is reported
// as ErrSyntacticallyInvalid rather than ErrTheoreticalDisallowed.

package siteswap

import "strings"

// checkTheoreticalGate rejects theoretical constructs when
// opts.AllowTheoreticalPatterns is false: any '-' present anywhere in
// the preprocessed input (values or quantities alike — the check runs
// on the raw string precisely so a negative quantity buried inside an
// exponent is still caught), and any event with Value == 0 and
// Offset > 0 (a zero-height crossing throw, meaningless outside
// time-reversed modelling).
func checkTheoreticalGate(processed string, groups []rawGroup, opts Options) error {
	if opts.AllowTheoreticalPatterns {
		return nil
	}
	if strings.ContainsRune(processed, '-') {
		return newError(ErrTheoreticalDisallowed, processed, "negative value or quantity requires WithTheoreticalPatterns()")
	}
	for _, rg := range groups {
		for _, action := range rg.group.Actions {
			for _, ev := range action.Events {
				if ev.Value == 0 && ev.Offset > 0 {
					return newError(ErrTheoreticalDisallowed, processed, "zero-value crossing throw requires WithTheoreticalPatterns()")
				}
			}
		}
	}
	return nil
}
