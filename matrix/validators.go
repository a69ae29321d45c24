// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/builders minimal by delegating nil/shape/integrality checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse "nil argument" sentinel
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIntegral ensures every entry of m is a finite integer value that
// fits into int64. Integral matrices can be checked with exact arithmetic.
//
// Errors: ErrNilMatrix, ErrNaNInf, ErrNonIntegral (wrapped with coordinates).
// Complexity: O(r*c).
func ValidateIntegral(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateIntegral", err)
			}
			if isNonFinite(v) {
				return fmt.Errorf("ValidateIntegral(%d,%d): %w", i, j, ErrNaNInf)
			}
			if v != math.Trunc(v) || math.Abs(v) > maxExactInt {
				return fmt.Errorf("ValidateIntegral(%d,%d)=%g: %w", i, j, v, ErrNonIntegral)
			}
		}
	}

	return nil
}

// maxExactInt is the largest magnitude at which every float64 integer is exact.
const maxExactInt = 1 << 53

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
