// rangeinfer.go — per-hand beat-window inference.
//
// Before any per-beat array is allocated, a cheap pass over the
// (expanded) group list computes, per hand, the inclusive window of
// beat indices the pattern can touch: every beat a hand throws on and
// every beat one of its throws lands on. The window is what bounds the
// delta and state arrays, and checking it against MaximumLength here
// guarantees bounded memory even for inputs like "1^{99}20" — the
// check fires before any O(range) allocation happens.

package siteswap

// window is an inclusive [min, max] beat-index interval. The zero
// value is "empty"; extend establishes the first point.
type window struct {
	min, max int
	set      bool
}

func (w *window) extend(beat int) {
	if !w.set {
		w.min, w.max, w.set = beat, beat, true
		return
	}
	if beat < w.min {
		w.min = beat
	}
	if beat > w.max {
		w.max = beat
	}
}

// width is the number of beats the window spans (0 for an empty window).
func (w *window) width() int {
	if !w.set {
		return 0
	}
	return w.max - w.min + 1
}

// handMod reduces a possibly-negative destination-hand index into
// [0, hands). Throw values may be negative under theoretical mode, so
// the plain % operator is not enough.
func handMod(h, hands int) int {
	m := h % hands
	if m < 0 {
		m += hands
	}
	return m
}

// groupStep describes how one group repetition walks the beat axis:
// increment is the signed per-repetition step, offsetBit shifts the
// whole group one beat right for forward groups (a throw happens on the
// beat after the current position), and zero for reversed ones.
func groupStep(quantity int) (increment, offsetBit, absQuantity int) {
	if quantity < 0 {
		return -1, 0, -quantity
	}
	return 1, 1, quantity
}

// inferRanges walks the pattern's expanded group list and returns one
// window per hand, or ErrStateRangeTooLarge when any hand's window
// exceeds maximumLength. The walk mirrors buildDeltas exactly — same
// positions, same repetition stepping — so every delta index is
// guaranteed to fall inside the returned windows.
func inferRanges(processed string, pat *Pattern, handsEffective, maximumLength int) ([]window, error) {
	windows := make([]window, handsEffective)

	position := 0
	for _, g := range pat.Groups {
		increment, offsetBit, absQ := groupStep(g.Quantity)
		beats := len(g.Actions) - g.Suppression
		for k := 0; k < absQ; k++ {
			i := k * increment
			for h, action := range g.Actions {
				windows[h].extend(position + i + offsetBit)
				for _, ev := range action.Events {
					target := handMod(h+ev.Value+ev.Offset, handsEffective)
					windows[target].extend(position + i + offsetBit + ev.Value)
				}
			}
		}
		position += g.Quantity * beats
	}

	for h := range windows {
		if windows[h].max-windows[h].min > maximumLength {
			return nil, newError(ErrStateRangeTooLarge, processed,
				"hand %d state range %d exceeds maximum length %d", h, windows[h].max-windows[h].min, maximumLength)
		}
	}
	return windows, nil
}
