// handcount.go — implicit-group resolution and hand-count inference.
//
// Hand count inference:
//   - If no explicit tuple appears anywhere, hands is nil and the
//     pattern is validated as one-handed (hands_effective = 1).
//   - Otherwise every explicit tuple must contain exactly hands_effective
//     actions; a mismatch is ErrInconsistentHandCount.
//   - An implicit action gets a rotating hand index: the counter resets
//     to 0 immediately after any explicit tuple and increments by 1 per
//     implicit action.
//   - Implicit actions leading the pattern (before the first explicit
//     tuple) instead wrap their index around from the end-of-pattern
//     counter, so the rotation closes cyclically across the whole
//     (periodic) pattern.

package siteswap

// resolvedGroup pairs a Group with the hand its single implicit action
// was assigned, or -1 if the group came from an explicit tuple.
type resolvedGroup struct {
	group        Group
	implicitHand int
}

// resolveHands infers hands_effective from raw, validates tuple arity
// and every event's crossing offset against it, and assigns rotating
// hand indices to implicit groups.
func resolveHands(processed string, raw []rawGroup) ([]resolvedGroup, *int, int, error) {
	handsEffective := 1
	var hands *int

	var explicitIdx []int
	for i, rg := range raw {
		if rg.explicit {
			explicitIdx = append(explicitIdx, i)
		}
	}

	if len(explicitIdx) > 0 {
		h := len(raw[explicitIdx[0]].group.Actions)
		for _, idx := range explicitIdx {
			if got := len(raw[idx].group.Actions); got != h {
				return nil, nil, 0, newError(ErrInconsistentHandCount, processed,
					"tuple at group %d has %d actions, expected %d", idx, got, h)
			}
		}
		hands = &h
		handsEffective = h
	}

	firstExplicit := -1
	lastExplicit := -1
	if len(explicitIdx) > 0 {
		firstExplicit = explicitIdx[0]
		lastExplicit = explicitIdx[len(explicitIdx)-1]
	}
	nTrailing := 0
	if lastExplicit >= 0 {
		nTrailing = len(raw) - lastExplicit - 1
	}

	resolved := make([]resolvedGroup, len(raw))
	counter := 0
	for i, rg := range raw {
		if rg.explicit {
			resolved[i] = resolvedGroup{group: rg.group, implicitHand: -1}
			counter = 0
			continue
		}
		var hand int
		if firstExplicit >= 0 && i < firstExplicit {
			hand = (nTrailing + i) % handsEffective
		} else {
			hand = counter % handsEffective
			counter++
		}
		resolved[i] = resolvedGroup{group: rg.group, implicitHand: hand}
	}

	for i, rg := range resolved {
		for _, action := range rg.group.Actions {
			for _, ev := range action.Events {
				if ev.Offset >= handsEffective {
					return nil, nil, 0, newError(ErrOffsetExceedsHands, processed,
						"group %d: offset %d >= hand count %d", i, ev.Offset, handsEffective)
				}
			}
		}
	}

	return resolved, hands, handsEffective, nil
}
