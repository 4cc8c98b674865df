// solver.go — the periodic linear-recurrence solver.
//
// A siteswap is valid iff there exists a bi-infinite state (props
// scheduled to land on each future beat) that the pattern shifts by
// exactly one period without change. Fixing the state to zero outside
// the inferred window turns that into a finite linear system per hand:
//
//	state[before] = state[before - period] - delta[before]
//
// solved by a single sweep that always propagates inward from the
// zero-assumed tail. The zero-outside assumption is self-consistent —
// and the pattern valid — iff the final |period| entries on the
// propagation side come out zero.

package siteswap

// solveStates integrates each hand's delta array into a state array and
// reports whether the periodic-shift equations are consistent. The
// returned states are meaningful for ground classification only when
// valid is true.
func solveStates(deltas [][]int, windows []window, period int) (states [][]int, valid bool) {
	states = make([][]int, len(deltas))
	valid = true

	for h := range deltas {
		min, max := windows[h].min, windows[h].max
		state := make([]int, windows[h].width())

		for idx := min; idx <= max; idx++ {
			before := idx
			if period < 0 {
				before = max + min - idx
			}
			after := before - period
			carried := 0
			if after >= min && after <= max {
				carried = state[after-min]
			}
			state[before-min] = carried - deltas[h][before-min]
		}
		states[h] = state

		// The tail |period| entries (head entries for a reversed
		// pattern) must be zero for the zero-outside-window assumption
		// to close.
		tail := period
		if tail < 0 {
			tail = -tail
		}
		if tail > len(state) {
			tail = len(state)
		}
		if period > 0 {
			for _, v := range state[len(state)-tail:] {
				if v != 0 {
					valid = false
				}
			}
		} else {
			for _, v := range state[:tail] {
				if v != 0 {
					valid = false
				}
			}
		}
	}
	return states, valid
}
