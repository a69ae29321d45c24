// SPDX-License-Identifier: MIT

// Package equation models a chemical equation as ordered reagent and product
// compounds together with the set of distinct elements they contain.
//
// Build splits the text once on the arrow ("->" by default; WithArrows adds "→" or others), splits
// each side on the joiner ("+"), trims the terms and parses each term with
// package formula:
//
//	eq, err := equation.Build("Fe + O2 -> Fe2O3")
//	// eq.Reagents()    → [Fe O2]
//	// eq.Products()    → [Fe2O3]
//	// eq.Elements()    → [Fe O]
//
// Errors (sentinel):
//   - ErrMalformedEquation — not exactly one arrow, or a side without terms.
//   - formula.ErrMalformedFormula / formula.ErrCountOverflow — propagated from
//     the offending term (wrapped, still matched by errors.Is).
package equation
