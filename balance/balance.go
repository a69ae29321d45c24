// SPDX-License-Identifier: MIT

package balance

import (
	"fmt"

	"github.com/katalvlaran/chembal/equation"
	"github.com/katalvlaran/chembal/matrix"
	"github.com/katalvlaran/chembal/solver"
)

// Result is the outcome of one balancing attempt. All fields are read-only
// after Balance returns.
type Result struct {
	eq       *equation.Equation
	matrix   *matrix.Dense
	solution solver.Result
}

// Balance parses text, builds its balance matrix and searches coefficients.
//
// Parse errors abort immediately and no Result is returned. An equation that
// cannot be balanced within the bound is NOT an error: Found() reports false.
func Balance(text string, opts ...Option) (*Result, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	eq, err := equation.Build(text, cfg.equation...)
	if err != nil {
		return nil, err
	}
	m, err := matrix.NewBalance(eq.Elements(), eq.Compounds(), eq.NumReagents(), cfg.matrix...)
	if err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}
	sol, err := solver.Solve(m, eq.NumCompounds(), cfg.solver...)
	if err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}

	return &Result{eq: eq, matrix: m, solution: sol}, nil
}

// Found reports whether a balancing coefficient vector was found.
func (r *Result) Found() bool { return r.solution.Found }

// Err returns nil when Found, a wrapped solver.ErrNotFound otherwise.
func (r *Result) Err() error { return r.solution.Err() }

// Coefficients returns a copy of the coefficient vector (reagents first),
// or nil when not found.
func (r *Result) Coefficients() []int {
	if !r.solution.Found {
		return nil
	}

	return append([]int(nil), r.solution.Coefficients...)
}

// Solution returns the raw solver result (bound, candidates tested).
func (r *Result) Solution() solver.Result {
	s := r.solution
	s.Coefficients = r.Coefficients()

	return s
}

// Parsed returns the parsed equation.
func (r *Result) Parsed() *equation.Equation { return r.eq }

// Elements returns the distinct element symbols (matrix row order).
func (r *Result) Elements() []string { return r.eq.Elements() }

// Compounds returns every compound, reagents first (matrix column order).
func (r *Result) Compounds() []equation.Compound { return r.eq.Compounds() }

// Matrix returns a copy of the balance matrix.
func (r *Result) Matrix() *matrix.Dense { return r.matrix.Clone().(*matrix.Dense) }
