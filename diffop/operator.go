package diffop

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/reconlab/diffkit/linop"
	"github.com/reconlab/diffkit/ndarray"
)

// MapName is the fixed identifying string of every difference operator,
// regardless of shape or dims.
const MapName = "diff_map"

// Op is the stacked finite-difference operator as a matrix-free linear map.
// It implements linop.Operator: Apply is Forward on the flattened array,
// ApplyAdjoint is Adjoint back to the flattened array, and
// linop.Transpose(op) is the explicit adjoint view.
//
// Op holds only immutable metadata (shape, dims, precomputed row/column
// counts), no buffers and no mutable state: a single value is safe to
// reuse across many calls and from concurrent call sites.
type Op struct {
	shape    []int
	dims     []int
	rows     int
	cols     int
	parallel bool
}

// Op must satisfy the linop contract.
var _ linop.Operator = (*Op)(nil)

// New constructs the difference operator for the given target shape and
// axis selection (nil dims = all axes in increasing order).
//
// Validation is eager — the same checks Forward and Adjoint perform happen
// once here, so a constructed Op cannot fail on anything but input length:
//   - ErrBadShape        — empty shape or non-positive extent.
//   - ErrInvalidDims     — empty, out-of-range, or duplicate dims.
//   - ErrDegenerateAxis  — size-1 axis selected alongside a larger one.
//
// Complexity: O(rank + |dims|); no element-sized allocation.
func New(shape []int, dims []int, opts ...Option) (*Op, error) {
	if !validShape(shape) {
		return nil, opErrorf("New", ErrBadShape)
	}
	sel, err := normalizeDims(shape, dims)
	if err != nil {
		return nil, opErrorf("New", err)
	}

	var o options
	for _, apply := range opts {
		apply(&o)
	}

	shp := make([]int, len(shape))
	copy(shp, shape)

	return &Op{
		shape:    shp,
		dims:     sel,
		rows:     stackLen(shp, sel),
		cols:     ndarray.SizeOf(shp),
		parallel: o.parallel,
	}, nil
}

// Apply computes T·x for a flattened array x of length Cols and returns the
// difference-stack vector of length Rows. Returns ErrLengthMismatch when
// len(x) != Cols.
// Complexity: O(Cols · |dims|).
func (op *Op) Apply(x []float64) ([]float64, error) {
	if len(x) != op.cols {
		return nil, opErrorf("Apply",
			fmt.Errorf("len(x)=%d, expected %d: %w", len(x), op.cols, ErrLengthMismatch))
	}

	out := make([]float64, op.rows)
	if op.parallel {
		var g errgroup.Group
		off := 0
		for _, ax := range op.dims {
			ax, lo, hi := ax, off, off+blockLen(op.shape, ax)
			off = hi
			g.Go(func() error {
				forwardAxis(out[lo:hi], x, op.shape, ax)

				return nil
			})
		}
		_ = g.Wait() // axis kernels cannot fail
	} else {
		off := 0
		for _, ax := range op.dims {
			n := blockLen(op.shape, ax)
			forwardAxis(out[off:off+n], x, op.shape, ax)
			off += n
		}
	}

	return out, nil
}

// ApplyAdjoint computes Tᵀ·y for a difference-stack vector y of length Rows
// and returns the flattened array of length Cols. Returns ErrLengthMismatch
// when len(y) != Rows.
//
// In parallel mode each axis scatters into a private buffer and the buffers
// are summed in dims order afterwards; per element that is the same single
// addition per axis, in the same order, as the sequential path, so the two
// modes agree bitwise.
//
// Complexity: O(Cols · |dims|).
func (op *Op) ApplyAdjoint(y []float64) ([]float64, error) {
	if len(y) != op.rows {
		return nil, opErrorf("ApplyAdjoint",
			fmt.Errorf("len(y)=%d, expected %d: %w", len(y), op.rows, ErrLengthMismatch))
	}

	z := make([]float64, op.cols)
	if op.parallel {
		parts := make([][]float64, len(op.dims))
		var g errgroup.Group
		off := 0
		for k, ax := range op.dims {
			k, ax, lo, hi := k, ax, off, off+blockLen(op.shape, ax)
			off = hi
			g.Go(func() error {
				parts[k] = make([]float64, op.cols)
				adjointAxis(parts[k], y[lo:hi], op.shape, ax)

				return nil
			})
		}
		_ = g.Wait() // axis kernels cannot fail
		for _, part := range parts {
			for i, v := range part {
				z[i] += v
			}
		}
	} else {
		off := 0
		for _, ax := range op.dims {
			n := blockLen(op.shape, ax)
			adjointAxis(z, y[off:off+n], op.shape, ax)
			off += n
		}
	}

	return z, nil
}

// ApplyArray is Apply for an N-D array: the array must have the operator's
// shape (ErrLengthMismatch otherwise, same policy as the flat form).
func (op *Op) ApplyArray(x *ndarray.Array) ([]float64, error) {
	if x == nil {
		return nil, opErrorf("ApplyArray", ErrNilArray)
	}
	if !sameShape(x.Shape(), op.shape) {
		return nil, opErrorf("ApplyArray",
			fmt.Errorf("array shape %v, operator shape %v: %w", x.Shape(), op.shape, ErrLengthMismatch))
	}

	return op.Apply(x.Data())
}

// AdjointArray is ApplyAdjoint returning the result in array form.
func (op *Op) AdjointArray(y []float64) (*ndarray.Array, error) {
	z, err := op.ApplyAdjoint(y)
	if err != nil {
		return nil, err
	}

	return ndarray.FromSlice(z, op.shape...)
}

// Rows returns the difference-stack length: Σ_k prod(shape with dims[k]
// reduced by 1).
func (op *Op) Rows() int { return op.rows }

// Cols returns prod(shape).
func (op *Op) Cols() int { return op.cols }

// Name returns "diff_map" for every constructed operator.
func (op *Op) Name() string { return MapName }

// Shape returns a copy of the target array shape.
func (op *Op) Shape() []int {
	shp := make([]int, len(op.shape))
	copy(shp, op.shape)

	return shp
}

// Dims returns a copy of the resolved axis selection, in block order.
func (op *Op) Dims() []int {
	sel := make([]int, len(op.dims))
	copy(sel, op.dims)

	return sel
}

// sameShape reports element-wise equality of two shape slices.
func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
