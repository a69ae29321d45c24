// SPDX-License-Identifier: MIT

package solver

// GCD returns the greatest common divisor of |a| and |b| by repeated
// Euclidean remainder. GCD(0, 0) is 0.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Reduce divides every entry of v by the GCD of all entries when that GCD
// exceeds 1. It always returns a fresh slice; v is not modified.
// Reduce is idempotent: Reduce(Reduce(v)) equals Reduce(v).
func Reduce(v []int) []int {
	out := make([]int, len(v))
	copy(out, v)

	g := 0
	for _, x := range out {
		g = GCD(g, x)
	}
	if g > 1 {
		for i := range out {
			out[i] /= g
		}
	}

	return out
}
