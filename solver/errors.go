// SPDX-License-Identifier: MIT

package solver

import "errors"

// Sentinel errors returned by the solver.
var (
	// ErrNotFound reports that no coefficient vector within the bound balances
	// the matrix. Solve itself never returns it; Result.Err does, for callers
	// that prefer an error value over the Found flag.
	ErrNotFound = errors.New("solver: no balancing coefficients within bound")

	// ErrNoCompounds indicates numCompounds < 1.
	ErrNoCompounds = errors.New("solver: at least one compound is required")

	// ErrShapeMismatch indicates that the matrix does not have exactly
	// numCompounds+1 columns (one per compound plus the constant column).
	ErrShapeMismatch = errors.New("solver: matrix columns must equal compounds+1")

	// ErrCoefficientCount indicates a coefficient vector whose length differs
	// from the number of compound columns.
	ErrCoefficientCount = errors.New("solver: coefficient count mismatch")

	// ErrOverflow indicates that row sums could exceed int64 at the configured
	// bound. Only reachable with absurd atom counts or bounds.
	ErrOverflow = errors.New("solver: row sums may overflow int64")
)

// panicBadBound is the WithMaxBound programmer-error message.
const panicBadBound = "solver: WithMaxBound: bound must be >= 1"
