// SPDX-License-Identifier: MIT

package balance

import (
	"github.com/katalvlaran/chembal/equation"
	"github.com/katalvlaran/chembal/matrix"
	"github.com/katalvlaran/chembal/solver"
)

// Options collects the per-stage options forwarded by Balance.
type Options struct {
	equation []equation.Option
	matrix   []matrix.Option
	solver   []solver.Option
}

// Option configures Balance.
type Option func(*Options)

// WithMaxBound forwards solver.WithMaxBound (panics when bound < 1).
func WithMaxBound(bound int) Option {
	opt := solver.WithMaxBound(bound)

	return func(o *Options) { o.solver = append(o.solver, opt) }
}

// WithArrows forwards equation.WithArrows.
func WithArrows(arrows ...string) Option {
	opt := equation.WithArrows(arrows...)

	return func(o *Options) { o.equation = append(o.equation, opt) }
}

// WithJoiner forwards equation.WithJoiner.
func WithJoiner(joiner string) Option {
	opt := equation.WithJoiner(joiner)

	return func(o *Options) { o.equation = append(o.equation, opt) }
}

// WithMatrixOptions forwards raw matrix options to the balance builder.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.matrix = append(o.matrix, opts...) }
}
