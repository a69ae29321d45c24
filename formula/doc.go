// SPDX-License-Identifier: MIT

// Package formula parses chemical formulas into element-count compositions.
//
// 🚀 What does it do?
//
//	Parse turns a formula such as "Mg(OH)2" or "H₂O" into an immutable
//	Composition that maps every element symbol to its atom count:
//
//	  Mg(OH)2  →  {Mg: 1, O: 2, H: 2}
//	  A(B(C)2)3 → {A: 1, B: 3, C: 6}
//
// ✨ Grammar (informal):
//
//	formula := item*
//	item    := element count? | open formula close count? | <any other char>
//	element := Upper lower*
//	count   := digit+            (Unicode subscripts ₀–₉ are accepted)
//	open    := "(" | "[" | "{"   close := the matching ")" | "]" | "}"
//
// Characters that are not part of an item (spaces, charges, dots) are skipped.
// Brackets are the exception: "[" and "{" open groups exactly like "(", and a
// closer of any kind without its opener is ErrMalformedFormula rather than
// being skipped.
// An element without an explicit count contributes 1; a group multiplier
// multiplies every count inside the group, recursively.
//
// Errors (sentinel):
//   - ErrMalformedFormula — unbalanced brackets.
//   - ErrCountOverflow    — a count, multiplier or total exceeds MaxCount (2^53).
//
// Complexity:
//   - Time O(n·d) where n = len(formula), d = maximum bracket depth
//     (each nesting level rescans its own substring once to find the closer).
//   - Space O(d + e), e = number of distinct elements.
package formula
