// SPDX-License-Identifier: MIT

package formula

import (
	"strconv"
	"strings"
)

// Composition is the immutable element→count mapping of one formula.
//
// Elements keep the order in which the parser first saw them, so that any
// iteration over a Composition is deterministic. Every stored count is ≥ 1.
// The zero value is an empty composition.
type Composition struct {
	order  []string       // distinct symbols, first-seen order
	counts map[string]int // symbol → atom count (≥ 1)
}

// Count returns the number of atoms of symbol, or 0 if it is absent.
// Complexity: O(1).
func (c Composition) Count(symbol string) int { return c.counts[symbol] }

// Has reports whether symbol occurs in the composition.
func (c Composition) Has(symbol string) bool {
	_, ok := c.counts[symbol]

	return ok
}

// Len returns the number of distinct elements.
func (c Composition) Len() int { return len(c.order) }

// Elements returns a copy of the distinct symbols in first-seen order.
func (c Composition) Elements() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)

	return out
}

// Atoms returns the total number of atoms (sum of all counts).
func (c Composition) Atoms() int {
	var total int
	for _, sym := range c.order {
		total += c.counts[sym]
	}

	return total
}

// Map returns a fresh map that the caller may mutate freely.
func (c Composition) Map() map[string]int {
	out := make(map[string]int, len(c.counts))
	for sym, n := range c.counts {
		out[sym] = n
	}

	return out
}

// String renders the composition as "{Mg: 1, O: 2, H: 2}" in first-seen order.
func (c Composition) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, sym := range c.order {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sym)
		b.WriteString(": ")
		b.WriteString(strconv.Itoa(c.counts[sym]))
	}
	b.WriteByte('}')

	return b.String()
}

// accumulator collects counts while a formula is being parsed.
// It is private to one Parse call and frozen into a Composition at the end.
type accumulator struct {
	order  []string
	counts map[string]int
}

func newAccumulator() *accumulator {
	return &accumulator{counts: make(map[string]int)}
}

// add merges n atoms of sym. Zero contributions are dropped so that the
// frozen Composition never stores a zero count.
func (a *accumulator) add(sym string, n int) bool {
	if n == 0 {
		return true
	}
	prev, seen := a.counts[sym]
	if prev > MaxCount-n {
		return false
	}
	if !seen {
		a.order = append(a.order, sym)
	}
	a.counts[sym] = prev + n

	return true
}

// freeze hands the collected state over to an immutable Composition.
// The accumulator must not be used afterwards.
func (a *accumulator) freeze() Composition {
	if len(a.order) == 0 {
		return Composition{}
	}

	return Composition{order: a.order, counts: a.counts}
}
