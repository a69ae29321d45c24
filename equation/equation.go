// SPDX-License-Identifier: MIT

package equation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/chembal/formula"
)

// Compound is one term of an equation: the formula text as written plus its
// parsed composition. Compound satisfies matrix.Counter.
type Compound struct {
	Formula     string              // trimmed term text, e.g. "Fe2O3"
	Composition formula.Composition // immutable element counts
}

// Count returns the atoms of symbol in the compound (0 if absent).
func (c Compound) Count(symbol string) int { return c.Composition.Count(symbol) }

// String returns the formula text.
func (c Compound) String() string { return c.Formula }

// Equation holds the ordered reagents, the ordered products and the element
// set. Both sides are non-empty. An Equation is immutable once built; all
// accessors return copies.
type Equation struct {
	reagents []Compound
	products []Compound
	elements []string // distinct symbols, first-seen over reagents then products
	arrow    string   // separator found in the text
	joiner   string   // configured term separator
}

// Build parses equation text into an Equation.
//
// Implementation:
//   - Stage 1: locate exactly one arrow and split into two sides.
//   - Stage 2: split each side on the joiner, trim, drop empty terms.
//   - Stage 3: parse every term with formula.Parse (fail fast).
//   - Stage 4: collect the element set in first-seen order.
//
// Errors:
//   - ErrMalformedEquation for a missing/repeated arrow or an empty side.
//   - formula errors from the first bad term, wrapped with that term.
func Build(text string, opts ...Option) (*Equation, error) {
	cfg := gatherOptions(opts...)

	lhs, rhs, arrow, err := splitSides(text, cfg.Arrows)
	if err != nil {
		return nil, err
	}
	reagentTerms := splitTerms(lhs, cfg.Joiner)
	if len(reagentTerms) == 0 {
		return nil, fmt.Errorf("%w: no reagents before the arrow", ErrMalformedEquation)
	}
	productTerms := splitTerms(rhs, cfg.Joiner)
	if len(productTerms) == 0 {
		return nil, fmt.Errorf("%w: no products after the arrow", ErrMalformedEquation)
	}

	eq := &Equation{arrow: arrow, joiner: cfg.Joiner}
	if eq.reagents, err = parseTerms(reagentTerms); err != nil {
		return nil, err
	}
	if eq.products, err = parseTerms(productTerms); err != nil {
		return nil, err
	}
	eq.elements = collectElements(eq.reagents, eq.products)

	return eq, nil
}

// MustBuild is like Build but panics on error.
func MustBuild(text string, opts ...Option) *Equation {
	eq, err := Build(text, opts...)
	if err != nil {
		panic(err)
	}

	return eq
}

// Reagents returns the left-hand compounds in input order.
func (e *Equation) Reagents() []Compound { return append([]Compound(nil), e.reagents...) }

// Products returns the right-hand compounds in input order.
func (e *Equation) Products() []Compound { return append([]Compound(nil), e.products...) }

// Compounds returns reagents followed by products; this is the column order
// of the balance matrix and of every coefficient vector.
func (e *Equation) Compounds() []Compound {
	out := make([]Compound, 0, len(e.reagents)+len(e.products))
	out = append(out, e.reagents...)

	return append(out, e.products...)
}

// NumReagents returns the number of left-hand compounds.
func (e *Equation) NumReagents() int { return len(e.reagents) }

// NumCompounds returns the number of compounds on both sides.
func (e *Equation) NumCompounds() int { return len(e.reagents) + len(e.products) }

// Elements returns the distinct element symbols in first-seen order.
func (e *Equation) Elements() []string { return append([]string(nil), e.elements...) }

// Names returns the formula text of every compound, reagents first.
func (e *Equation) Names() []string {
	out := make([]string, 0, e.NumCompounds())
	for _, c := range e.reagents {
		out = append(out, c.Formula)
	}
	for _, c := range e.products {
		out = append(out, c.Formula)
	}

	return out
}

// String renders the unbalanced equation with the arrow found in the text
// and the configured joiner, e.g. "A + B -> C".
func (e *Equation) String() string {
	return e.join(e.reagents) + " " + e.arrow + " " + e.join(e.products)
}

// splitSides finds the single arrow occurrence. Arrows are tried longest
// first at every position, so overlapping arrows are counted once. The
// matched arrow is returned with the two sides.
func splitSides(text string, arrows []string) (lhs, rhs, arrow string, err error) {
	sorted := append([]string(nil), arrows...)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	var (
		found    int
		at, size int
	)
	for i := 0; i < len(text); {
		matched := false
		for _, a := range sorted {
			if strings.HasPrefix(text[i:], a) {
				if found == 0 {
					at, size, arrow = i, len(a), a
				}
				found++
				i += len(a)
				matched = true

				break
			}
		}
		if !matched {
			i++
		}
	}
	if found != 1 {
		return "", "", "", fmt.Errorf("%w: found %d arrows, want exactly 1 of %q", ErrMalformedEquation, found, arrows)
	}

	return text[:at], text[at+size:], arrow, nil
}

// splitTerms splits one side on joiner, trims whitespace and drops blanks.
func splitTerms(side, joiner string) []string {
	parts := strings.Split(side, joiner)
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			terms = append(terms, p)
		}
	}

	return terms
}

// parseTerms parses every term, stopping at the first failure.
func parseTerms(terms []string) ([]Compound, error) {
	out := make([]Compound, len(terms))
	for i, term := range terms {
		comp, err := formula.Parse(term)
		if err != nil {
			return nil, fmt.Errorf("equation: term %q: %w", term, err)
		}
		out[i] = Compound{Formula: term, Composition: comp}
	}

	return out, nil
}

// collectElements returns the distinct symbols in first-seen order.
func collectElements(sides ...[]Compound) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, side := range sides {
		for _, c := range side {
			for _, sym := range c.Composition.Elements() {
				if _, ok := seen[sym]; ok {
					continue
				}
				seen[sym] = struct{}{}
				out = append(out, sym)
			}
		}
	}

	return out
}

func (e *Equation) join(cs []Compound) string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Formula
	}

	return strings.Join(names, " "+e.joiner+" ")
}
