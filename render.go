// render.go — canonical re-serialisation of a normalised pattern.
//
// Rendering walks the minimal-period group list (before implicit
// groups are padded out to full tuples, so an implicit action renders
// bare) and emits a compact spelling: base-25 single characters where
// the value fits, braced decimals where it does not, 'x' runs for
// crossing offsets below the cutoff and "x^n" at or above it. The
// grammar reads only 'x' runs as an offset, so a rendered "x^n" is not
// read back as an offset of n.

package siteswap

import (
	"strconv"
	"strings"
)

// renderCutoff is the threshold at and above which repetition counts
// (quantities, crossing offsets) switch from literal repetition to the
// '^'/braced exponent spelling.
const renderCutoff = 2

// convertInteger renders n in the notation's value alphabet: a decimal
// digit for 0..9, a letter a..o for 10..24, a braced signed decimal
// otherwise. The letter alphabet deliberately stops at 'o'; p..z are
// reserved.
func convertInteger(n int) string {
	switch {
	case n >= 0 && n < 10:
		return string(rune('0' + n))
	case n >= 10 && n < 25:
		return string(rune('a' + n - 10))
	default:
		return "{" + strconv.Itoa(n) + "}"
	}
}

// quantitySuffix renders the '^' exponent for a chain element, empty
// for the default quantity 1.
func quantitySuffix(q int) string {
	if q == 1 {
		return ""
	}
	if q < 0 || q >= renderCutoff {
		return "^" + convertInteger(q)
	}
	return ""
}

func renderEvent(ev Event) string {
	var b strings.Builder
	b.WriteString(convertInteger(ev.Value))
	if ev.Offset < renderCutoff {
		b.WriteString(strings.Repeat("x", ev.Offset))
	} else {
		b.WriteString("x^" + convertInteger(ev.Offset))
	}
	return b.String()
}

// renderAction renders a single event with default quantity bare, and
// anything else as a multiplex bracket.
func renderAction(a Action) string {
	if len(a.Events) == 1 && a.Events[0].Quantity == 1 {
		return renderEvent(a.Events[0])
	}
	var b strings.Builder
	b.WriteByte('[')
	for _, ev := range a.Events {
		b.WriteString(renderEvent(ev))
		b.WriteString(quantitySuffix(ev.Quantity))
	}
	b.WriteByte(']')
	return b.String()
}

func renderTuple(actions []Action, suppression int) string {
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = renderAction(a)
	}
	return "(" + strings.Join(parts, ",") + ")" + strings.Repeat("!", suppression)
}

// renderReduced renders the minimal-period group list: explicit groups
// as tuples with their suppression marks, implicit groups as their bare
// action, each followed by its quantity suffix.
func renderReduced(reduced []resolvedGroup) string {
	var b strings.Builder
	for _, rg := range reduced {
		if rg.implicitHand == -1 {
			b.WriteString(renderTuple(rg.group.Actions, rg.group.Suppression))
		} else {
			b.WriteString(renderAction(rg.group.Actions[0]))
		}
		b.WriteString(quantitySuffix(rg.group.Quantity))
	}
	return b.String()
}

// String renders the pattern's groups in canonical notation: tuples for
// multi-action groups, bare actions otherwise. It satisfies
// fmt.Stringer.
func (p *Pattern) String() string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	for _, g := range p.Groups {
		if len(g.Actions) > 1 {
			b.WriteString(renderTuple(g.Actions, g.Suppression))
		} else {
			b.WriteString(renderAction(g.Actions[0]))
		}
		b.WriteString(quantitySuffix(g.Quantity))
	}
	return b.String()
}
