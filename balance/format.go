// SPDX-License-Identifier: MIT

package balance

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/chembal/equation"
)

// Rendering literals.
const (
	termSep      = " + "
	arrowSep     = " " + equation.DefaultUnicodeArrow + " "
	tableFormat  = "%-15s: %d\n"
	successLine  = "✓ Equation balanced successfully!"
	headAnalysis = "=== COMPOUND ANALYSIS ==="
	headMatrix   = "=== BALANCE MATRIX ==="
	headBalanced = "=== BALANCED EQUATION ==="
	headCoeffs   = "=== COEFFICIENTS FOUND ==="
)

// NotFoundHint is printed when no coefficients were found.
var NotFoundHint = []string{
	"Could not balance the equation automatically.",
	"The equation may be incorrect or too complex.",
	"Try smaller coefficients or check the formulas.",
}

// Equation renders the balanced equation, e.g. "4Fe + 3O2 → 2Fe2O3".
// Coefficients equal to 1 are omitted. When no solution was found the terms
// are rendered without coefficients.
func (r *Result) Equation() string {
	coeffs := r.Coefficients()
	reagents, products := r.eq.Reagents(), r.eq.Products()

	var b strings.Builder
	writeSide(&b, reagents, coeffs, 0)
	b.WriteString(arrowSep)
	writeSide(&b, products, coeffs, len(reagents))

	return b.String()
}

// writeSide joins one side's terms; offset maps side index to vector index.
func writeSide(b *strings.Builder, side []equation.Compound, coeffs []int, offset int) {
	for i, c := range side {
		if i > 0 {
			b.WriteString(termSep)
		}
		if coeffs != nil && coeffs[offset+i] > 1 {
			b.WriteString(strconv.Itoa(coeffs[offset+i]))
		}
		b.WriteString(c.Formula)
	}
}

// Table lists every compound against its coefficient, one "%-15s: %d" line
// each. It is empty when no solution was found.
func (r *Result) Table() string {
	coeffs := r.Coefficients()
	if coeffs == nil {
		return ""
	}
	var b strings.Builder
	for i, name := range r.eq.Names() {
		fmt.Fprintf(&b, tableFormat, name, coeffs[i])
	}

	return b.String()
}

// MatrixRows renders each matrix row as "Fe: 1 0 -2 = 0".
func (r *Result) MatrixRows() []string {
	elements := r.eq.Elements()
	n := r.eq.NumCompounds()
	out := make([]string, len(elements))
	for i, sym := range elements {
		row, err := r.matrix.Row(i)
		if err != nil {
			// unreachable: one row per element by construction.
			continue
		}
		cells := make([]string, n)
		for j := 0; j < n; j++ {
			cells[j] = strconv.FormatFloat(row[j], 'f', -1, 64)
		}
		out[i] = sym + ": " + strings.Join(cells, " ") + " = " + strconv.FormatFloat(row[n], 'f', -1, 64)
	}

	return out
}

// WriteReport prints the full diagnostic report: compound analysis, element
// list, balance matrix, then either the balanced equation with its
// coefficient table or the not-found hint. It returns the first write error.
func (r *Result) WriteReport(w io.Writer) error {
	ew := &errWriter{w: w}

	ew.println(headAnalysis)
	for _, c := range r.eq.Reagents() {
		ew.printf("Reagent %s: %v\n", c.Formula, c.Composition)
	}
	for _, c := range r.eq.Products() {
		ew.printf("Product %s: %v\n", c.Formula, c.Composition)
	}

	ew.printf("\nElements found: %v\n", r.eq.Elements())
	ew.printf("Number of compounds: %d\n", r.eq.NumCompounds())
	ew.printf("Number of elements: %d\n", len(r.eq.Elements()))

	ew.println("\n" + headMatrix)
	for _, line := range r.MatrixRows() {
		ew.println(line)
	}

	if !r.Found() {
		ew.println("")
		for _, line := range NotFoundHint {
			ew.println(line)
		}

		return ew.err
	}

	ew.println("\n" + headBalanced)
	ew.println(r.Equation())
	ew.println("\n" + headCoeffs)
	ew.printf("%s", r.Table())
	ew.println("\n" + successLine)

	return ew.err
}

// errWriter remembers the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *errWriter) println(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s+"\n")
}
