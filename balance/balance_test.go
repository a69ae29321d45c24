// SPDX-License-Identifier: MIT

package balance_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/chembal/balance"
	"github.com/katalvlaran/chembal/equation"
	"github.com/katalvlaran/chembal/formula"
	"github.com/katalvlaran/chembal/matrix"
	"github.com/katalvlaran/chembal/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBalance_Equations checks the rendered equation for common inputs.
func TestBalance_Equations(t *testing.T) {
	cases := map[string]string{
		"H2 + O2 -> H2O":               "2H2 + O2 → 2H2O",
		"Fe + O2 -> Fe2O3":             "4Fe + 3O2 → 2Fe2O3",
		"C3H8 + O2 -> CO2 + H2O":       "C3H8 + 5O2 → 3CO2 + 4H2O",
		"Mg(OH)2 + HCl -> MgCl2 + H2O": "Mg(OH)2 + 2HCl → MgCl2 + 2H2O",
		"H₂ + O₂ -> H₂O":               "2H₂ + O₂ → 2H₂O",
		"NaCl -> NaCl":                 "NaCl → NaCl",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			res, err := balance.Balance(in)
			require.NoError(t, err)
			require.True(t, res.Found())
			assert.NoError(t, res.Err())
			assert.Equal(t, want, res.Equation())
		})
	}
}

// TestBalance_DataPoints verifies every exposed intermediate value.
func TestBalance_DataPoints(t *testing.T) {
	res, err := balance.Balance("Fe + O2 -> Fe2O3")
	require.NoError(t, err)

	assert.Equal(t, []string{"Fe", "O"}, res.Elements())
	require.Len(t, res.Compounds(), 3)
	assert.Equal(t, map[string]int{"Fe": 2, "O": 3}, res.Compounds()[2].Composition.Map())
	assert.Equal(t, []int{4, 3, 2}, res.Coefficients())
	assert.Equal(t, []string{"Fe: 1 0 -2 = 0", "O: 0 2 -3 = 0"}, res.MatrixRows())
	assert.Equal(t, "Fe             : 4\nO2             : 3\nFe2O3          : 2\n", res.Table())
	assert.Equal(t, 4, res.Solution().Bound)
	assert.Equal(t, 2, res.Parsed().NumReagents())

	m := res.Matrix()
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 4, m.Cols())
	require.NoError(t, m.Set(0, 0, 99)) // a copy: the result stays intact
	assert.Equal(t, []string{"Fe: 1 0 -2 = 0", "O: 0 2 -3 = 0"}, res.MatrixRows())

	cs := res.Coefficients()
	cs[0] = 100
	assert.Equal(t, []int{4, 3, 2}, res.Coefficients())
}

// TestBalance_NotFound keeps not-found distinct from parse errors.
func TestBalance_NotFound(t *testing.T) {
	res, err := balance.Balance("H2 + O2 -> H2", balance.WithMaxBound(3))
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.ErrorIs(t, res.Err(), solver.ErrNotFound)
	assert.Nil(t, res.Coefficients())
	assert.Equal(t, "", res.Table())
	assert.Equal(t, "H2 + O2 → H2", res.Equation())
}

// TestBalance_ParseErrors ensures parse failures abort without a result.
func TestBalance_ParseErrors(t *testing.T) {
	res, err := balance.Balance("H2 + O2 = H2O")
	require.ErrorIs(t, err, equation.ErrMalformedEquation)
	assert.Nil(t, res)

	res, err = balance.Balance("Mg(OH2 -> MgO + H2O")
	require.ErrorIs(t, err, formula.ErrMalformedFormula)
	assert.Nil(t, res)
	assert.False(t, errors.Is(err, solver.ErrNotFound))
}

// TestBalance_CountCeiling rejects counts a float64 matrix cell would round,
// instead of reporting a vector that does not conserve atoms.
func TestBalance_CountCeiling(t *testing.T) {
	res, err := balance.Balance("H9007199254740993 -> H9007199254740992")
	require.ErrorIs(t, err, formula.ErrCountOverflow)
	assert.Nil(t, res)

	res, err = balance.Balance("H9007199254740992 -> H9007199254740992")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, res.Coefficients())
}

// TestBalance_NoElements balances symbol-free terms with all ones.
func TestBalance_NoElements(t *testing.T) {
	for in, want := range map[string]string{
		"e -> e":     "e → e",
		"h2 -> h2":   "h2 → h2",
		"123 -> 456": "123 → 456",
	} {
		t.Run(in, func(t *testing.T) {
			res, err := balance.Balance(in)
			require.NoError(t, err)
			require.True(t, res.Found())
			assert.Equal(t, []int{1, 1}, res.Coefficients())
			assert.Empty(t, res.Elements())
			assert.Empty(t, res.MatrixRows())
			assert.Equal(t, want, res.Equation())
		})
	}
}

// TestBalance_DefaultArrow rejects the Unicode arrow unless enabled.
func TestBalance_DefaultArrow(t *testing.T) {
	_, err := balance.Balance("H2 + O2 → H2O")
	require.ErrorIs(t, err, equation.ErrMalformedEquation)

	res, err := balance.Balance("H2 + O2 → H2O", balance.WithArrows("->", "→"))
	require.NoError(t, err)
	assert.Equal(t, "2H2 + O2 → 2H2O", res.Equation())
}

// TestBalance_MatrixOptions forwards the finite-value policy to the builder.
func TestBalance_MatrixOptions(t *testing.T) {
	res, err := balance.Balance("H2 + O2 -> H2O")
	require.NoError(t, err)
	require.ErrorIs(t, res.Matrix().Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	res, err = balance.Balance("H2 + O2 -> H2O", balance.WithMatrixOptions(matrix.WithNoValidateNaNInf()))
	require.NoError(t, err)
	require.NoError(t, res.Matrix().Set(0, 0, math.NaN()))
	assert.Equal(t, []int{2, 1, 2}, res.Coefficients())
}

// TestBalance_Options forwards tokenizer options.
func TestBalance_Options(t *testing.T) {
	res, err := balance.Balance("H2 & O2 = H2O", balance.WithArrows("="), balance.WithJoiner("&"))
	require.NoError(t, err)
	assert.Equal(t, "2H2 + O2 → 2H2O", res.Equation())
}

// TestWriteReport_Success pins the full diagnostic report.
func TestWriteReport_Success(t *testing.T) {
	res, err := balance.Balance("H2 + O2 -> H2O")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, res.WriteReport(&buf))

	want := `=== COMPOUND ANALYSIS ===
Reagent H2: {H: 2}
Reagent O2: {O: 2}
Product H2O: {H: 2, O: 1}

Elements found: [H O]
Number of compounds: 3
Number of elements: 2

=== BALANCE MATRIX ===
H: 2 0 -2 = 0
O: 0 2 -1 = 0

=== BALANCED EQUATION ===
2H2 + O2 → 2H2O

=== COEFFICIENTS FOUND ===
H2             : 2
O2             : 1
H2O            : 2

✓ Equation balanced successfully!
`
	assert.Equal(t, want, buf.String())
}

// TestWriteReport_NotFound pins the hint lines.
func TestWriteReport_NotFound(t *testing.T) {
	res, err := balance.Balance("H2 + O2 -> H2", balance.WithMaxBound(2))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, res.WriteReport(&buf))
	out := buf.String()
	for _, line := range balance.NotFoundHint {
		assert.Contains(t, out, line)
	}
	assert.NotContains(t, out, "BALANCED EQUATION")
}

// failWriter fails every write.
type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

// TestWriteReport_WriteError surfaces the first write error.
func TestWriteReport_WriteError(t *testing.T) {
	res, err := balance.Balance("H2 + O2 -> H2O")
	require.NoError(t, err)
	require.ErrorIs(t, res.WriteReport(failWriter{}), errWrite)
}
