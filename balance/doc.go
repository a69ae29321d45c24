// SPDX-License-Identifier: MIT

// Package balance runs the whole pipeline (equation → matrix → solver) and
// renders its results.
//
//	res, err := balance.Balance("Fe + O2 -> Fe2O3")
//	if err != nil {
//	    // equation.ErrMalformedEquation, formula.ErrMalformedFormula, …
//	}
//	if !res.Found() {
//	    // normal outcome: report "could not balance automatically"
//	}
//	fmt.Println(res.Equation()) // 4Fe + 3O2 → 2Fe2O3
//	fmt.Print(res.Table())      // Fe             : 4 …
//
// Result exposes every intermediate value (compounds, elements, matrix,
// solver statistics) so callers can print diagnostics; WriteReport prints
// them all in one go.
package balance
