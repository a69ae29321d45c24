// SPDX-License-Identifier: MIT

// Package solver finds small positive integer coefficients that balance a
// chemical equation, given its balance matrix.
//
// 🚀 How does it search?
//
//	For B = 1, 2, …, MaxBound (default 20) the solver enumerates every
//	coefficient vector with entries in [1, B] as nested loops, the last
//	compound varying fastest:
//
//	  B=2, 3 compounds: 111 112 121 122 211 212 221 222
//
//	Every vector is checked against every row of the matrix with exact
//	integer arithmetic. The first vector that zeroes all rows wins and is
//	divided by the GCD of its entries.
//
// ✨ Guarantees:
//   - Deterministic: the same matrix always yields the same vector.
//   - Bounded: at most Σ_{B=1..MaxBound} Bⁿ candidates, n = compounds.
//   - The returned vector is found at the smallest B admitting a solution
//     with max coefficient ≤ B; reduced vectors have GCD 1.
//
// Not finding a solution is a normal outcome (Result.Found == false), not an
// error. Errors are reserved for malformed inputs.
//
// ⚙️ Usage:
//
//	m, _ := matrix.NewBalance(eq.Elements(), eq.Compounds(), eq.NumReagents())
//	res, err := solver.Solve(m, eq.NumCompounds(), solver.WithMaxBound(12))
//	if err != nil { … }
//	if !res.Found { … "could not balance automatically" … }
//	fmt.Println(res.Coefficients) // e.g. [4 3 2]
//
// Performance:
//   - Time O(Σ_B Bⁿ · e) worst case; one reused coefficient buffer and
//     incremental per-row sums keep the leaf check at O(e).
package solver
