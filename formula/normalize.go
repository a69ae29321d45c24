// SPDX-License-Identifier: MIT

package formula

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Unicode subscript digits occupy the contiguous range U+2080..U+2089.
const (
	subscriptZero = '₀'
	subscriptNine = '₉'
)

// isSubscriptDigit reports whether r is one of ₀..₉.
func isSubscriptDigit(r rune) bool { return r >= subscriptZero && r <= subscriptNine }

// subscriptToASCII maps ₀..₉ onto '0'..'9' and leaves every other rune alone.
func subscriptToASCII(r rune) rune {
	if isSubscriptDigit(r) {
		return '0' + (r - subscriptZero)
	}

	return r
}

// NormalizeSubscripts rewrites Unicode subscript digits as ASCII digits,
// so "H₂SO₄" becomes "H2SO4". Strings without subscripts are returned as-is.
func NormalizeSubscripts(s string) string {
	if !strings.ContainsFunc(s, isSubscriptDigit) {
		return s
	}
	out, _, err := transform.String(runes.Map(subscriptToASCII), s)
	if err != nil {
		// unreachable: runes.Map does not fail.
		return s
	}

	return out
}
