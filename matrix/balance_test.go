// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/chembal/formula"
	"github.com/katalvlaran/chembal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counts is a minimal Counter for builder tests.
type counts map[string]int

func (c counts) Count(symbol string) int { return c[symbol] }

// rows materializes a Dense as [][]float64 for compact assertions.
func rows(t *testing.T, m *matrix.Dense) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		r, err := m.Row(i)
		require.NoError(t, err)
		out[i] = r
	}

	return out
}

// TestNewBalance_IronOxide checks signs, absent elements and the zero column.
func TestNewBalance_IronOxide(t *testing.T) {
	compounds := []formula.Composition{
		formula.MustParse("Fe"),
		formula.MustParse("O2"),
		formula.MustParse("Fe2O3"),
	}
	m, err := matrix.NewBalance([]string{"Fe", "O"}, compounds, 2)
	require.NoError(t, err)

	require.Equal(t, 2, m.Rows())
	require.Equal(t, 4, m.Cols())
	assert.Equal(t, [][]float64{
		{1, 0, -2, 0},
		{0, 2, -3, 0},
	}, rows(t, m))
}

// TestNewBalance_RowOrderFollowsElements ensures rows follow the given order.
func TestNewBalance_RowOrderFollowsElements(t *testing.T) {
	compounds := []counts{{"H": 2}, {"O": 2}, {"H": 2, "O": 1}}

	m, err := matrix.NewBalance([]string{"O", "H"}, compounds, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{0, 2, -1, 0},
		{2, 0, -2, 0},
	}, rows(t, m))
}

// TestNewBalance_AllReagentsOrProducts covers the extreme reagent splits.
func TestNewBalance_AllReagentsOrProducts(t *testing.T) {
	compounds := []counts{{"H": 1}, {"H": 3}}

	m, err := matrix.NewBalance([]string{"H"}, compounds, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{-1, -3, 0}}, rows(t, m))

	m, err = matrix.NewBalance([]string{"H"}, compounds, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 3, 0}}, rows(t, m))
}

// TestNewBalance_Errors covers shape and split validation.
func TestNewBalance_Errors(t *testing.T) {
	compounds := []counts{{"H": 2}, {"H": 2}}

	_, err := matrix.NewBalance([]string{"H"}, []counts{}, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewBalance([]string{"H"}, compounds, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.NewBalance([]string{"H"}, compounds, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.NewBalance([]string{"H"}, []counts{{"H": -1}}, 1)
	require.ErrorIs(t, err, matrix.ErrNegativeCount)
}

// TestNewBalance_CountCeiling accepts 2^53 and rejects the first count a
// float64 cell would round.
func TestNewBalance_CountCeiling(t *testing.T) {
	m, err := matrix.NewBalance([]string{"H"}, []counts{{"H": 1 << 53}, {"H": 1 << 53}}, 1)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1 << 53, -(1 << 53), 0}}, rows(t, m))

	_, err = matrix.NewBalance([]string{"H"}, []counts{{"H": 1<<53 + 1}, {"H": 1 << 53}}, 1)
	require.ErrorIs(t, err, matrix.ErrCountTooLarge)
}

// TestNewBalance_NoElements builds an empty-row matrix that every vector
// satisfies.
func TestNewBalance_NoElements(t *testing.T) {
	m, err := matrix.NewBalance(nil, []counts{{}, {}}, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 3, m.Cols())
	require.NoError(t, matrix.ValidateIntegral(m))

	ok, err := matrix.IsNullVector(m, []float64{1, 1, 0})
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestNewBalance_IsIntegral ensures builder output passes ValidateIntegral.
func TestNewBalance_IsIntegral(t *testing.T) {
	m, err := matrix.NewBalance([]string{"C", "H", "O"}, []formula.Composition{
		formula.MustParse("C3H8"),
		formula.MustParse("O2"),
		formula.MustParse("CO2"),
		formula.MustParse("H2O"),
	}, 2)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateIntegral(m))
}
