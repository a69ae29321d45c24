// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/chembal/matrix"
)

// Result holds the outcome of Solve.
type Result struct {
	// Coefficients has one positive entry per compound (reagents first),
	// already reduced by its GCD. Nil when Found is false.
	Coefficients []int

	// Found is false when no vector up to MaxBound balances the matrix.
	Found bool

	// Bound is the outer bound B at which the solution was found
	// (MaxBound when Found is false).
	Bound int

	// Candidates counts the complete vectors tested across all bounds.
	Candidates int64
}

// Err returns nil for a found solution and a wrapped ErrNotFound otherwise.
func (r Result) Err() error {
	if r.Found {
		return nil
	}

	return fmt.Errorf("%w (max coefficient %d, %d candidates)", ErrNotFound, r.Bound, r.Candidates)
}

// Solve searches for the smallest-bound integer coefficient vector that
// balances m.
//
// Contract:
//   - m has numCompounds+1 columns; the last one is the constant 0 column
//     and is ignored by the row check.
//   - Every entry of m is integral (matrix.ValidateIntegral).
//
// Implementation:
//   - Stage 1: validate inputs and copy the first numCompounds columns into
//     column-major int64 storage.
//   - Stage 2: for B = 1..MaxBound run an exhaustive DFS over [1, B]ⁿ, last
//     compound fastest, keeping incremental per-row sums.
//   - Stage 3: reduce the first vector whose row sums are all zero by GCD.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNoCompounds, ErrShapeMismatch,
//     matrix.ErrNonIntegral / matrix.ErrNaNInf, ErrOverflow.
//
// Complexity:
//   - Time O(Σ_{B=1..MaxBound} Bⁿ · e), Space O(e·n).
func Solve(m matrix.Matrix, numCompounds int, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	cols, err := integralColumns(m, numCompounds, cfg.MaxBound)
	if err != nil {
		return Result{}, err
	}

	s := newSearch(cols, m.Rows(), numCompounds)
	for bound := 1; bound <= cfg.MaxBound; bound++ {
		s.bound = bound
		if s.fill(0) {
			return Result{
				Coefficients: Reduce(s.coef),
				Found:        true,
				Bound:        bound,
				Candidates:   s.tested,
			}, nil
		}
	}

	return Result{Found: false, Bound: cfg.MaxBound, Candidates: s.tested}, nil
}

// Verify reports whether coeffs zero every row of m using exact integer
// arithmetic. The constant column is ignored.
//
// Errors: as Solve for the matrix; ErrCoefficientCount when
// len(coeffs) != m.Cols()-1; ErrOverflow for math.MinInt, which has no
// int magnitude.
func Verify(m matrix.Matrix, coeffs []int) (bool, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return false, err
	}
	n := len(coeffs)
	if n != m.Cols()-1 {
		return false, fmt.Errorf("%w: %d coefficients for %d compound columns",
			ErrCoefficientCount, n, m.Cols()-1)
	}
	maxCoeff := 1
	for _, c := range coeffs {
		if c == math.MinInt {
			return false, fmt.Errorf("%w: coefficient %d", ErrOverflow, c)
		}
		if c < 0 {
			c = -c
		}
		maxCoeff = max(maxCoeff, c)
	}
	cols, err := integralColumns(m, n, maxCoeff)
	if err != nil {
		return false, err
	}

	s := newSearch(cols, m.Rows(), n)
	for j, c := range coeffs {
		for r := range s.sums {
			s.sums[r] += int64(c) * cols[j][r]
		}
	}

	return s.zero(), nil
}

// integralColumns validates m and returns its first n columns as int64,
// column-major. It also rejects matrices whose row sums could overflow
// int64 with coefficients up to maxCoeff.
func integralColumns(m matrix.Matrix, n, maxCoeff int) ([][]int64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, ErrNoCompounds
	}
	if m.Cols() != n+1 {
		return nil, fmt.Errorf("%w: %d columns for %d compounds", ErrShapeMismatch, m.Cols(), n)
	}
	if err := matrix.ValidateIntegral(m); err != nil {
		return nil, err
	}

	rows := m.Rows()
	cols := make([][]int64, n)
	absRow := make([]int64, rows)
	limit := int64(math.MaxInt64) / int64(maxCoeff)
	var (
		i, j int
		v    float64
		err  error
	)
	for j = 0; j < n; j++ {
		cols[j] = make([]int64, rows)
		for i = 0; i < rows; i++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			cols[j][i] = int64(v)
			a := cols[j][i]
			if a < 0 {
				a = -a
			}
			if absRow[i] > limit-a {
				return nil, fmt.Errorf("%w: row %d", ErrOverflow, i)
			}
			absRow[i] += a
		}
	}

	return cols, nil
}

// search is the DFS state for one Solve call. coef is the single buffer
// reused across every candidate and bound.
type search struct {
	cols   [][]int64 // column-major compound counts
	sums   []int64   // per-row Σ cols[j][r]·coef[j] over the assigned prefix
	coef   []int     // current candidate
	bound  int       // current outer bound B
	tested int64     // complete vectors checked so far
}

func newSearch(cols [][]int64, rows, n int) *search {
	return &search{
		cols: cols,
		sums: make([]int64, rows),
		coef: make([]int, n),
	}
}

// fill assigns coef[pos:] over [1, bound] in nested-loop order and reports
// whether a balancing vector was reached. On false, sums are restored to
// their value on entry; on true the search stops and sums stay as-is.
func (s *search) fill(pos int) bool {
	if pos == len(s.coef) {
		s.tested++

		return s.zero()
	}

	col := s.cols[pos]
	s.add(col, 1)
	for v := 1; ; v++ {
		s.coef[pos] = v
		if s.fill(pos + 1) {
			return true
		}
		if v == s.bound {
			break
		}
		s.add(col, 1)
	}
	s.add(col, -int64(s.bound))

	return false
}

// add accumulates k·col into the row sums.
func (s *search) add(col []int64, k int64) {
	for r := range s.sums {
		s.sums[r] += k * col[r]
	}
}

// zero reports whether every row sum is exactly zero.
func (s *search) zero() bool {
	for _, v := range s.sums {
		if v != 0 {
			return false
		}
	}

	return true
}
