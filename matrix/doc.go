// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major storage behind the balance
// matrix of a chemical equation, plus the few numeric kernels the solver and
// its tests need.
//
// The matrix package provides:
//
//   - Dense, a bounds-safe row-major float64 matrix (At/Set return errors
//     instead of panicking) with an optional finite-value policy.
//   - NewBalance, which encodes "atoms of every element are conserved" as one
//     row per element and one column per compound, plus a trailing zero
//     column for the right-hand side.
//   - MatVec and IsNullVector to check a coefficient vector against every row.
//   - Central validators and sentinel errors shared by all of the above.
//
// Quick ASCII example for Fe + O2 -> Fe2O3:
//
//	        Fe   O2   Fe2O3   rhs
//	  Fe [   1,   0,    -2  |  0 ]
//	  O  [   0,   2,    -3  |  0 ]
//
// Reagent columns hold positive counts, product columns negated counts, so a
// coefficient vector x balances the equation exactly when A·x = 0.
//
// All entries produced by NewBalance are integers; ValidateIntegral lets
// consumers rely on exact integer arithmetic.
package matrix
