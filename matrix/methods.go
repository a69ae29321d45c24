// SPDX-License-Identifier: MIT

// Package matrix provides the numeric kernels used to check a coefficient
// vector against a balance matrix. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of every row accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec       = "MatVec"
	opIsNullVector = "IsNullVector"
	opNewBalance   = "NewBalance"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec returns y = m·x.
// Stage 1 (Validate): nil-check and len(x) == Cols().
// Stage 2 (Execute): fast-path for *Dense over the flat buffer, interface
// fallback via At otherwise.
// Complexity: O(r·c) time, O(r) memory.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				xv = x[j]
				if xv != 0 { // skip zero multiplications
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// IsNullVector reports whether every row of m·x lies within eps of zero,
// where eps comes from WithEpsilon (default DefaultEpsilon).
//
// For a balance matrix, x is a coefficient vector extended by one trailing
// entry for the constant column (its value is irrelevant: that column is 0).
// Every row is evaluated; there is no early exit on the first residual.
//
// Complexity: O(r·c).
func IsNullVector(m Matrix, x []float64, opts ...Option) (bool, error) {
	cfg := gatherOptions(opts...)
	y, err := MatVec(m, x)
	if err != nil {
		return false, matrixErrorf(opIsNullVector, err)
	}
	ok := true
	for _, v := range y {
		if !withinEps(v, cfg.eps) {
			ok = false
		}
	}

	return ok, nil
}

// withinEps reports |v| < eps; eps == 0 requires an exact zero.
func withinEps(v, eps float64) bool {
	if eps == 0 {
		return v == 0
	}

	return math.Abs(v) < eps
}
