package diffop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reconlab/diffkit/diffop"
)

// TestAdjoint_1D pins the three-way stencil on a single axis:
// z = [-d0, d0-d1, d1-d2, d2].
func TestAdjoint_1D(t *testing.T) {
	z, err := diffop.Adjoint([]float64{1, 10, 100}, []int{4}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -9, -90, 100}, z.Data())
}

// TestAdjoint_1D_NoInterior covers the two-point axis, where first and last
// are adjacent and there is no interior run.
func TestAdjoint_1D_NoInterior(t *testing.T) {
	z, err := diffop.Adjoint([]float64{2}, []int{2}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, 2}, z.Data())
}

// TestAdjoint_2D_Accumulation verifies additive accumulation across axes:
// the result is the sum of the axis-0 and axis-1 scatter patterns, with
// block boundaries matching Forward's concatenation.
func TestAdjoint_2D_Accumulation(t *testing.T) {
	// Stack produced by Forward on X=[1 2 4; 8 16 32] with nil dims.
	d := []float64{7, 14, 28, 1, 2, 8, 16}

	z, err := diffop.Adjoint(d, []int{2, 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{-8, -15, -26, -1, 6, 44}, z.Data())
}

// TestAdjoint_DimsOrderIrrelevantForSum checks that reversing dims (with the
// blocks reordered to match) yields the same accumulated field: the adjoint
// of a stacked operator is a sum of axis adjoints.
func TestAdjoint_DimsOrderIrrelevantForSum(t *testing.T) {
	forwardOrder := []float64{7, 14, 28, 1, 2, 8, 16} // axis-0 block first
	reverseOrder := []float64{1, 2, 8, 16, 7, 14, 28} // axis-1 block first
	zf, err := diffop.Adjoint(forwardOrder, []int{2, 3}, []int{0, 1})
	require.NoError(t, err)
	zr, err := diffop.Adjoint(reverseOrder, []int{2, 3}, []int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, zf.Data(), zr.Data())
}

// TestAdjoint_LengthMismatch is the one defined runtime error: the stack
// length must match exactly, never truncated or padded.
func TestAdjoint_LengthMismatch(t *testing.T) {
	// Expected stack length for (2,3), both axes: 3 + 4 = 7.
	_, err := diffop.Adjoint(make([]float64, 6), []int{2, 3}, nil)
	assert.ErrorIs(t, err, diffop.ErrLengthMismatch, "short stack must error")

	_, err = diffop.Adjoint(make([]float64, 8), []int{2, 3}, nil)
	assert.ErrorIs(t, err, diffop.ErrLengthMismatch, "long stack must error")
}

// TestAdjoint_BadShape rejects invalid target shapes before touching d.
func TestAdjoint_BadShape(t *testing.T) {
	_, err := diffop.Adjoint(nil, []int{}, nil)
	assert.ErrorIs(t, err, diffop.ErrBadShape, "empty shape")

	_, err = diffop.Adjoint(nil, []int{2, 0}, nil)
	assert.ErrorIs(t, err, diffop.ErrBadShape, "zero extent")
}

// TestAdjoint_Degenerate covers the size-1 policy on the adjoint side:
// the all-size-1 shape maps the empty vector to zeros, the mixed selection
// is rejected.
func TestAdjoint_Degenerate(t *testing.T) {
	z, err := diffop.Adjoint(nil, []int{1, 1, 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, z.Data(), "adjoint of the empty stack is the zero array")

	_, err = diffop.Adjoint(nil, []int{1, 2}, []int{0, 1})
	assert.ErrorIs(t, err, diffop.ErrDegenerateAxis, "mixed degenerate selection must be rejected")

	// Lone size-1 selection: empty in, zeros out.
	z, err = diffop.Adjoint(nil, []int{1, 2}, []int{0})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, z.Data())
}

// TestAdjoint_ErrorPriority pins dims validation ahead of the length check.
func TestAdjoint_ErrorPriority(t *testing.T) {
	_, err := diffop.Adjoint(make([]float64, 3), []int{2, 2}, []int{0, 0})
	assert.ErrorIs(t, err, diffop.ErrInvalidDims, "invalid dims beats length mismatch")
}

// TestForwardAdjoint_InnerProduct verifies <Tx, y> == <x, T'y> on a 3-D
// shape with deterministic non-trivial data. Values are small integers, so
// the identity holds exactly in float64.
func TestForwardAdjoint_InnerProduct(t *testing.T) {
	shape := []int{2, 3, 4}
	size := 24
	xData := make([]float64, size)
	for i := range xData {
		xData[i] = float64((i*7)%11 - 5)
	}
	x := mustArray(t, xData, shape...)

	tx, err := diffop.Forward(x, nil)
	require.NoError(t, err)

	y := make([]float64, len(tx))
	for i := range y {
		y[i] = float64((i*3)%7 - 3)
	}
	ty, err := diffop.Adjoint(y, shape, nil)
	require.NoError(t, err)

	var lhs, rhs float64
	for i := range tx {
		lhs += tx[i] * y[i]
	}
	for i, v := range ty.Data() {
		rhs += xData[i] * v
	}
	assert.Equal(t, lhs, rhs, "<Tx,y> must equal <x,T'y> exactly on integer data")
}
