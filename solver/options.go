// SPDX-License-Identifier: MIT

package solver

// DefaultMaxBound is the ceiling of the outer bound loop.
const DefaultMaxBound = 20

// Options configures Solve.
//
//   - MaxBound — largest coefficient the search will try (≥ 1).
type Options struct {
	MaxBound int
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns Options initialized with the documented defaults.
func DefaultOptions() Options {
	return Options{MaxBound: DefaultMaxBound}
}

// WithMaxBound sets the coefficient ceiling. Panics when bound < 1.
func WithMaxBound(bound int) Option {
	if bound < 1 {
		panic(panicBadBound)
	}

	return func(o *Options) { o.MaxBound = bound }
}
