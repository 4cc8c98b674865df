// delta.go — per-hand delta construction.
//
// The delta array for a hand records, per beat in that hand's inferred
// window, the net change the pattern applies to the number of props
// scheduled to land on that beat: each throw removes one prop from the
// beat it is thrown on and adds one (times its quantity) to the beat it
// lands on. A group with negative quantity contributes in reverse —
// the deltas of its time-reversed inverse.

package siteswap

// buildDeltas walks the pattern identically to inferRanges and
// accumulates the signed per-beat deltas for every hand. windows must
// come from inferRanges over the same pattern; all indices are
// guaranteed in range by that shared walk.
func buildDeltas(pat *Pattern, handsEffective int, windows []window) [][]int {
	deltas := make([][]int, handsEffective)
	for h := range deltas {
		deltas[h] = make([]int, windows[h].width())
	}

	position := 0
	for _, g := range pat.Groups {
		increment, offsetBit, absQ := groupStep(g.Quantity)
		beats := len(g.Actions) - g.Suppression
		for k := 0; k < absQ; k++ {
			i := k * increment
			for h, action := range g.Actions {
				thrown := 0
				for _, ev := range action.Events {
					thrown += ev.Quantity
				}
				deltas[h][position-windows[h].min+i+offsetBit] -= thrown * increment

				for _, ev := range action.Events {
					target := handMod(h+ev.Value+ev.Offset, handsEffective)
					deltas[target][position-windows[target].min+i+offsetBit+ev.Value] += ev.Quantity * increment
				}
			}
		}
		position += g.Quantity * beats
	}
	return deltas
}
