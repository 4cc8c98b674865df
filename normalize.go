// normalize.go — per-action event dedup/sort, adjacent-group
// collapsing, period/cardinality accumulation, minimal-period
// reduction, and implicit-to-explicit group expansion.

package siteswap

import "sort"

// normalizeAction drops the redundant non-crossing zero event,
// stable-sorts by Value ascending, collapses adjacent events that
// agree on (Value, Offset) by summing their Quantity, drops any event
// whose Quantity collapsed to zero, and — if nothing survives —
// reinserts the single placeholder event every Action must hold.
func normalizeAction(a Action) Action {
	filtered := make([]Event, 0, len(a.Events))
	for _, ev := range a.Events {
		if ev.Value == 0 && ev.Offset == 0 {
			continue
		}
		filtered = append(filtered, ev)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Value < filtered[j].Value
	})

	var merged []Event
	for _, ev := range filtered {
		if n := len(merged); n > 0 && merged[n-1].Value == ev.Value && merged[n-1].Offset == ev.Offset {
			merged[n-1].Quantity += ev.Quantity
		} else {
			merged = append(merged, ev)
		}
	}

	out := make([]Event, 0, len(merged))
	for _, ev := range merged {
		if ev.Quantity == 0 {
			continue
		}
		out = append(out, ev)
	}
	if len(out) == 0 {
		out = []Event{{Value: 0, Offset: 0, Quantity: 1}}
	}
	return Action{Events: out}
}

func actionsEqual(a, b Action) bool {
	if len(a.Events) != len(b.Events) {
		return false
	}
	for i := range a.Events {
		if a.Events[i] != b.Events[i] {
			return false
		}
	}
	return true
}

func actionSlicesEqual(a, b []Action) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !actionsEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// groupsMatch compares two resolvedGroups structurally. Two implicit
// groups only match if they share the same assigned hand (a different
// hand is a different physical effect even for an identical action);
// an implicit group never matches an explicit one. includeQuantity
// distinguishes the adjacent-collapse comparison (quantity excluded,
// since quantities are summed on collapse) from the minimal-period
// comparison (quantity included, per the Group value's own equality).
func groupsMatch(a, b resolvedGroup, includeQuantity bool) bool {
	if (a.implicitHand == -1) != (b.implicitHand == -1) {
		return false
	}
	if a.implicitHand != -1 && a.implicitHand != b.implicitHand {
		return false
	}
	if !actionSlicesEqual(a.group.Actions, b.group.Actions) {
		return false
	}
	if a.group.Suppression != b.group.Suppression {
		return false
	}
	if includeQuantity && a.group.Quantity != b.group.Quantity {
		return false
	}
	return true
}

// collapseAdjacentGroups merges consecutive structurally-equal groups
// (ignoring quantity) by summing their quantities, then drops any
// group whose summed quantity is zero.
func collapseAdjacentGroups(resolved []resolvedGroup) []resolvedGroup {
	var merged []resolvedGroup
	for _, rg := range resolved {
		if n := len(merged); n > 0 && groupsMatch(merged[n-1], rg, false) {
			merged[n-1].group.Quantity += rg.group.Quantity
		} else {
			merged = append(merged, rg)
		}
	}

	out := make([]resolvedGroup, 0, len(merged))
	for _, rg := range merged {
		if rg.group.Quantity == 0 {
			continue
		}
		out = append(out, rg)
	}
	return out
}

// computeMassAndPeriod accumulates the beat count and signed throw
// mass over whatever group list is passed — the same both
// before and after adjacent-group collapsing, since the sums are
// invariant under splitting/merging structurally-equal adjacent runs.
// It is called before minimal-period reduction, which changes the sums.
func computeMassAndPeriod(resolved []resolvedGroup) (mass, period int) {
	for _, rg := range resolved {
		beats := len(rg.group.Actions) - rg.group.Suppression
		period += rg.group.Quantity * beats
		for _, action := range rg.group.Actions {
			for _, ev := range action.Events {
				mass += rg.group.Quantity * ev.Value * ev.Quantity
			}
		}
	}
	return mass, period
}

// reduceMinimalPeriod finds the smallest divisor p of len(resolved)
// such that resolved[i] matches resolved[i mod p] (quantity included)
// for every i, truncates the list to its first p entries, and rescales
// periodFull accordingly. When p == 1 the sole surviving group's
// quantity collapses to its sign and the period is recomputed from
// that group's own beats-per-repetition.
func reduceMinimalPeriod(resolved []resolvedGroup, periodFull int) ([]resolvedGroup, int) {
	l := len(resolved)
	for p := 1; p <= l; p++ {
		if l%p != 0 {
			continue
		}
		ok := true
		for i := 0; i < l; i++ {
			if !groupsMatch(resolved[i], resolved[i%p], true) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		reduced := make([]resolvedGroup, p)
		copy(reduced, resolved[:p])

		if p == 1 {
			sign := 1
			if reduced[0].group.Quantity < 0 {
				sign = -1
			}
			reduced[0].group.Quantity = sign
			beats := len(reduced[0].group.Actions) - reduced[0].group.Suppression
			return reduced, sign * beats
		}
		return reduced, periodFull * p / l
	}
	// p == l always matches trivially, so this is unreachable.
	return resolved, periodFull
}

// placeholderAction is the canonical empty-hand filler: a single
// (value=0, offset=0, quantity=1) event, matching what normalizeAction
// itself inserts for an action with nothing left after filtering.
func placeholderAction() Action {
	return Action{Events: []Event{{Value: 0, Offset: 0, Quantity: 1}}}
}

// expandImplicitGroups converts every surviving implicit group (a
// single bare action with an assigned hand) into a full hands_effective
// -action explicit tuple, placing the original action at its assigned
// hand and filling the rest with placeholders, with suppression set so
// the group still occupies exactly one beat. Explicit groups pass
// through unchanged. For handsEffective == 1 the result is the same
// single-action, zero-suppression group.
func expandImplicitGroups(resolved []resolvedGroup, handsEffective int) []Group {
	groups := make([]Group, len(resolved))
	for i, rg := range resolved {
		if rg.implicitHand == -1 {
			groups[i] = rg.group
			continue
		}
		actions := make([]Action, handsEffective)
		hand := rg.implicitHand % handsEffective
		for h := range actions {
			if h == hand {
				actions[h] = rg.group.Actions[0]
			} else {
				actions[h] = placeholderAction()
			}
		}
		groups[i] = Group{
			Actions:     actions,
			Suppression: handsEffective - 1,
			Quantity:    rg.group.Quantity,
		}
	}
	return groups
}

// normalizeOutcome is the result of the full normalization pipeline,
// ahead of range inference / solving. reduced is the minimal-period
// group list before implicit-to-explicit expansion; the re-serialiser
// works from it so an implicit group renders as its bare action rather
// than the padded tuple the solver sees.
type normalizeOutcome struct {
	reduced     []resolvedGroup
	groups      []Group
	period      int
	cardinality int

	periodZero   bool // period accumulated to 0 — distinguished invalid case
	notDivisible bool // mass % period != 0 — invalid, not an error
}

// normalizePattern runs the full normalizer over resolved
// groups, mutating their actions in place before collapsing, reducing,
// and expanding.
func normalizePattern(resolved []resolvedGroup, handsEffective int) normalizeOutcome {
	for i := range resolved {
		acts := make([]Action, len(resolved[i].group.Actions))
		for j, a := range resolved[i].group.Actions {
			acts[j] = normalizeAction(a)
		}
		resolved[i].group.Actions = acts
	}

	collapsed := collapseAdjacentGroups(resolved)
	if len(collapsed) == 0 {
		return normalizeOutcome{periodZero: true}
	}

	mass, periodFull := computeMassAndPeriod(collapsed)
	if periodFull == 0 {
		return normalizeOutcome{periodZero: true}
	}
	if mass%periodFull != 0 {
		return normalizeOutcome{notDivisible: true, period: periodFull}
	}
	cardinality := mass / periodFull

	reduced, period := reduceMinimalPeriod(collapsed, periodFull)
	groups := expandImplicitGroups(reduced, handsEffective)

	return normalizeOutcome{reduced: reduced, groups: groups, period: period, cardinality: cardinality}
}
