// Package chembal balances chemical equations by exhaustive integer search.
//
// 🚀 What is chembal?
//
//	A small, deterministic library (plus a CLI) that turns text such as
//	"Fe + O2 -> Fe2O3" into "4Fe + 3O2 → 2Fe2O3":
//		• Formula parsing: element symbols, counts, nested (), [] and {} groups
//		• Equation parsing: configurable arrows and term joiner
//		• Balance matrix: one row per element, one column per compound
//		• Solver: bounded search for the smallest positive integer null vector
//		• Reports: compound analysis, matrix dump, coefficient table
//
// ✨ Why chembal?
//
//   - Exact – counts are capped at 2^53 so every matrix cell is an exact
//     integer, and the solver checks rows in int64
//   - Predictable – the first solution in a fixed search order always wins
//   - Pure Go – no cgo
//
// Everything is organized under these subpackages:
//
//	formula/  — chemical formula parser and element Composition
//	equation/ — splits an equation into reagent and product Compounds
//	matrix/   — Dense storage, the balance matrix builder and null-vector checks
//	solver/   — bounded coefficient search, GCD reduction, verification
//	balance/  — one-call facade and report rendering
//	cmd/chembal — interactive command-line balancer
//
// Quick example:
//
//	res, err := balance.Balance("C3H8 + O2 -> CO2 + H2O")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.Equation()) // C3H8 + 5O2 → 3CO2 + 4H2O
//
// See each subpackage's doc.go for details.
package chembal
