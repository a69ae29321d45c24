// SPDX-License-Identifier: MIT

package solver_test

import (
	"testing"

	"github.com/katalvlaran/chembal/solver"
	"github.com/stretchr/testify/assert"
)

// TestGCD covers signs, zeros and coprime inputs.
func TestGCD(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{12, 18, 6},
		{18, 12, 6},
		{7, 13, 1},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
		{-4, 6, 2},
		{4, -6, 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, solver.GCD(tc.a, tc.b), "GCD(%d,%d)", tc.a, tc.b)
	}
}

// TestReduce checks lowest terms, idempotence and non-aliasing.
func TestReduce(t *testing.T) {
	in := []int{4, 2, 6}
	out := solver.Reduce(in)
	assert.Equal(t, []int{2, 1, 3}, out)
	assert.Equal(t, []int{4, 2, 6}, in, "input must not change")
	assert.Equal(t, out, solver.Reduce(out), "Reduce must be idempotent")

	assert.Equal(t, []int{2, 1, 2}, solver.Reduce([]int{2, 1, 2}))
	assert.Equal(t, []int{1}, solver.Reduce([]int{7}))
	assert.Equal(t, []int{}, solver.Reduce([]int{}))
	assert.Equal(t, []int{0, 0}, solver.Reduce([]int{0, 0}))
}
