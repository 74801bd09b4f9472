package linop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reconlab/diffkit/linop"
)

// TestNewDense_BadShape rejects non-positive dimensions.
func TestNewDense_BadShape(t *testing.T) {
	_, err := linop.NewDense(0, 3)
	assert.ErrorIs(t, err, linop.ErrBadShape)

	_, err = linop.NewDense(3, -1)
	assert.ErrorIs(t, err, linop.ErrBadShape)
}

// TestDense_AtSetBounds verifies the bounds policy of At/Set.
func TestDense_AtSetBounds(t *testing.T) {
	m, err := linop.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.0))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, linop.ErrOutOfRange, "row past the end must error")
	err = m.Set(0, 3, 1.0)
	assert.ErrorIs(t, err, linop.ErrOutOfRange, "column past the end must error")
}

// TestDense_SetCol verifies column writes and their length check.
func TestDense_SetCol(t *testing.T) {
	m, err := linop.NewDense(3, 2)
	require.NoError(t, err)

	require.NoError(t, m.SetCol(1, []float64{1, 2, 3}))
	for i, want := range []float64{1, 2, 3} {
		v, err := m.At(i, 1)
		require.NoError(t, err)
		assert.Equal(t, want, v, "column entry %d", i)
	}

	err = m.SetCol(1, []float64{1, 2})
	assert.ErrorIs(t, err, linop.ErrShapeMismatch, "short column must error")
	err = m.SetCol(2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, linop.ErrOutOfRange, "column index past the end must error")
}

// TestDense_Transpose pins (i,j) -> (j,i) on a non-square matrix.
func TestDense_Transpose(t *testing.T) {
	m, err := linop.NewDense(2, 3)
	require.NoError(t, err)
	// m = [1 2 3; 4 5 6]
	vals := [][]float64{{1, 2, 3}, {4, 5, 6}}
	for i := range vals {
		for j := range vals[i] {
			require.NoError(t, m.Set(i, j, vals[i][j]))
		}
	}

	mt := m.Transpose()
	assert.Equal(t, 3, mt.Rows())
	assert.Equal(t, 2, mt.Cols())
	for i := range vals {
		for j := range vals[i] {
			v, err := mt.At(j, i)
			require.NoError(t, err)
			assert.Equal(t, vals[i][j], v, "transpose entry (%d,%d)", j, i)
		}
	}
}

// TestDense_Equal is exact: equal shapes and identical elements only.
func TestDense_Equal(t *testing.T) {
	a, _ := linop.NewDense(2, 2)
	b, _ := linop.NewDense(2, 2)
	c, _ := linop.NewDense(2, 3)

	assert.True(t, a.Equal(b), "fresh zero matrices are equal")
	assert.False(t, a.Equal(c), "shape mismatch is never equal")
	assert.False(t, a.Equal(nil), "nil is never equal")

	require.NoError(t, b.Set(0, 0, 1e-300))
	assert.False(t, a.Equal(b), "comparison has no tolerance")
}

// TestDense_Clone ensures deep copies.
func TestDense_Clone(t *testing.T) {
	a, _ := linop.NewDense(2, 2)
	require.NoError(t, a.Set(0, 1, 5))

	b := a.Clone()
	require.NoError(t, b.Set(0, 1, 6))

	v, err := a.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v, "mutating the clone must not touch the original")
}
