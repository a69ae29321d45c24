// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// NewBalance builds the balance matrix of an equation.
// MAIN DESCRIPTION:
//   - One row per element (in the given order), one column per compound
//     (reagents first), plus a trailing constant column that is always 0.
//   - Cell (r, c) = count of elements[r] in compounds[c]; positive for
//     c < numReagents, negated for products. Absent elements contribute 0.
//   - No elements yields a 0×(n+1) matrix; every vector is then a null vector.
//
// Implementation:
//   - Stage 1: validate shape inputs and the reagent split.
//   - Stage 2: allocate |elements| × (|compounds|+1) with the resolved numeric policy.
//   - Stage 3: fill rows in fixed element→compound order.
//
// Errors:
//   - ErrInvalidDimensions when compounds is empty.
//   - ErrOutOfRange when numReagents ∉ [0, len(compounds)].
//   - ErrNegativeCount when a Counter reports a negative count.
//   - ErrCountTooLarge when a count exceeds 2^53 and would be rounded.
//
// Determinism:
//   - Fixed loop order; no map iteration.
//
// Complexity:
//   - Time O(e·n) Counter calls, Space O(e·(n+1)).
func NewBalance[C Counter](elements []string, compounds []C, numReagents int, opts ...Option) (*Dense, error) {
	cfg := gatherOptions(opts...)
	if len(compounds) == 0 {
		return nil, matrixErrorf(opNewBalance, ErrInvalidDimensions)
	}
	if numReagents < 0 || numReagents > len(compounds) {
		return nil, fmt.Errorf("%s: numReagents=%d of %d compounds: %w",
			opNewBalance, numReagents, len(compounds), ErrOutOfRange)
	}

	m, err := newDenseWithPolicy(len(elements), len(compounds)+1, cfg.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opNewBalance, err)
	}

	var (
		i, j, base, n int
		sym           string
	)
	for i, sym = range elements {
		base = i * m.c
		for j = range compounds {
			if n = compounds[j].Count(sym); n < 0 {
				return nil, fmt.Errorf("%s: %s in column %d: %w", opNewBalance, sym, j, ErrNegativeCount)
			}
			if int64(n) > maxExactInt {
				return nil, fmt.Errorf("%s: %s in column %d: %w", opNewBalance, sym, j, ErrCountTooLarge)
			}
			if j >= numReagents {
				n = -n
			}
			m.data[base+j] = float64(n)
		}
		// column len(compounds) stays at the zero written by make().
	}

	return m, nil
}
