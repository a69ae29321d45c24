// SPDX-License-Identifier: MIT

package equation

import "strings"

// Defaults (single source of truth).
const (
	// DefaultArrow is the canonical reagent/product separator.
	DefaultArrow = "->"

	// DefaultUnicodeArrow is the arrow of rendered equations. Input accepts
	// it only when enabled with WithArrows.
	DefaultUnicodeArrow = "→"

	// DefaultJoiner separates terms on one side.
	DefaultJoiner = "+"
)

// Options holds the effective tokenizer configuration.
type Options struct {
	Arrows []string // accepted separators; exactly one occurrence in total
	Joiner string   // term separator on each side
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Arrows: []string{DefaultArrow},
		Joiner: DefaultJoiner,
	}
}

// WithArrows replaces the accepted separators. Empty strings are ignored;
// panics when nothing usable remains.
func WithArrows(arrows ...string) Option {
	kept := make([]string, 0, len(arrows))
	for _, a := range arrows {
		if a != "" {
			kept = append(kept, a)
		}
	}
	if len(kept) == 0 {
		panic(panicNoArrows)
	}

	return func(o *Options) { o.Arrows = kept }
}

// WithJoiner sets the term separator. Panics on the empty string.
func WithJoiner(joiner string) Option {
	if joiner == "" {
		panic(panicEmptyJoiner)
	}

	return func(o *Options) { o.Joiner = joiner }
}

// gatherOptions applies opts over the defaults and checks cross-field
// invariants. A joiner inside an arrow ("-" vs "->") would split the arrow
// itself, which is a configuration bug.
func gatherOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	for _, a := range cfg.Arrows {
		if strings.Contains(a, cfg.Joiner) {
			panic(panicJoinerClash)
		}
	}

	return cfg
}
