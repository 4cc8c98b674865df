package siteswap

import "strings"

// emptyPatternMarker is the distinguished rendering of an empty-after-
// preprocessing input, per the grammar's "ε" contract.
const emptyPatternMarker = "ε"

// preprocess strips all whitespace and lower-cases letters, producing
// the canonical form every later stage (gate, parser, error messages)
// operates on.
func preprocess(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			continue
		}
		if r >= 'A' && r <= 'Z' {
			r = r - 'A' + 'a'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isBaseLetter reports whether c is one of the base-25 alphabet letters
// a..o (values 10..24). p..z are intentionally reserved and never map
// to a value.
func isBaseLetter(c byte) bool {
	return c >= 'a' && c <= 'o'
}

// letterValue converts an already-validated a..o byte to its 10..24 value.
func letterValue(c byte) int {
	return int(c-'a') + 10
}
