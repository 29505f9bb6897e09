// Package matrix_test: strided view behavior — projection geometry, scalar
// compound operations, and the contiguity requirement on view-to-view
// arithmetic.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdforge/gopme/matrix"
)

// fixture returns the 2x3 matrix [[1,2,3],[4,5,6]].
func fixture(t *testing.T) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	return m
}

// TestRowView verifies a row projects contiguously with stride 1.
func TestRowView(t *testing.T) {
	m := fixture(t)
	row := m.Row(1)

	require.Equal(t, 3, row.Len())
	require.Equal(t, 4.0, row.At(0))
	require.Equal(t, 6.0, row.At(2))
}

// TestColView verifies a column projects with stride equal to the column
// count.
func TestColView(t *testing.T) {
	m := fixture(t)
	col := m.Col(2)

	require.Equal(t, 2, col.Len())
	require.Equal(t, 3.0, col.At(0))
	require.Equal(t, 6.0, col.At(1))
}

// TestSliceScalarOps exercises the in-place compound operations on both
// row and column views.
func TestSliceScalarOps(t *testing.T) {
	m := fixture(t)

	m.Row(0).MulScalar(2)  // [1,2,3] -> [2,4,6]
	require.Equal(t, []float64{2, 4, 6}, m.RowData(0))

	m.Row(0).DivScalar(2)  // back to [1,2,3]
	require.Equal(t, []float64{1, 2, 3}, m.RowData(0))

	m.Col(1).AddScalar(10)  // column [2,5] -> [12,15]
	require.Equal(t, 12.0, m.At(0, 1))
	require.Equal(t, 15.0, m.At(1, 1))

	m.Col(1).SubScalar(10)  // restore
	require.Equal(t, 2.0, m.At(0, 1))
	require.Equal(t, 5.0, m.At(1, 1))
}

// TestSliceSetAt verifies writes through a strided view land at the right
// backing offsets.
func TestSliceSetAt(t *testing.T) {
	m := fixture(t)
	m.Col(0).SetAt(1, 40)  // element (1,0)
	require.Equal(t, 40.0, m.At(1, 0))
}

// TestSliceSub verifies row-minus-row produces a new 1×n matrix.
func TestSliceSub(t *testing.T) {
	m := fixture(t)
	diff, err := m.Row(1).Sub(m.Row(0))  // [4,5,6] - [1,2,3]
	require.NoError(t, err)

	require.Equal(t, 1, diff.Rows())
	require.Equal(t, 3, diff.Cols())
	require.Equal(t, []float64{3, 3, 3}, diff.Data())
}

// TestSliceSubInPlace verifies in-place row arithmetic mutates the backing
// matrix.
func TestSliceSubInPlace(t *testing.T) {
	m := fixture(t)

	require.NoError(t, m.Row(1).SubInPlace(m.Row(0)))  // [4,5,6] -= [1,2,3]
	require.Equal(t, []float64{3, 3, 3}, m.RowData(1))

	require.NoError(t, m.Row(1).AddInPlace(m.Row(0)))  // restore
	require.Equal(t, []float64{4, 5, 6}, m.RowData(1))
}

// TestSliceNonContiguous ensures view-to-view arithmetic refuses column
// (strided) views.
func TestSliceNonContiguous(t *testing.T) {
	m := fixture(t)

	err := m.Col(0).SubInPlace(m.Col(1))                 // both strided
	require.ErrorIs(t, err, matrix.ErrNonContiguous)

	_, err = m.Col(0).Sub(m.Col(1))
	require.ErrorIs(t, err, matrix.ErrNonContiguous)

	err = m.Row(0).AddInPlace(m.Col(1))                  // one strided operand suffices
	require.ErrorIs(t, err, matrix.ErrNonContiguous)
}

// TestSliceSizeMismatch ensures view-to-view arithmetic requires equal
// lengths, reported before contiguity.
func TestSliceSizeMismatch(t *testing.T) {
	m := fixture(t)
	n, err := matrix.New[float64](1, 2)
	require.NoError(t, err)

	err = m.Row(0).SubInPlace(n.Row(0))  // lengths 3 vs 2
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
