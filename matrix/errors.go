// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All functions MUST return these sentinels (optionally wrapped with
// context via %w) and tests MUST check them via errors.Is. No function panics
// on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and grep-ability.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row, column or reagent split) is
	// outside valid bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. MatVec with len(x) != Cols().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (or a nil vector) was passed in.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNonIntegral signals an entry with a fractional part where integer
	// counts are required (balance matrices are integral by construction).
	ErrNonIntegral = errors.New("matrix: non-integral entry")

	// ErrNegativeCount signals a Counter reporting a negative atom count.
	ErrNegativeCount = errors.New("matrix: negative atom count")

	// ErrCountTooLarge signals a Counter value above 2^53, which a float64
	// cell cannot hold exactly.
	ErrCountTooLarge = errors.New("matrix: atom count exceeds 2^53")
)
