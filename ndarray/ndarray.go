// Package ndarray: Array is a concrete, row-major implementation of a dense
// rank-D container, storing elements in a flat slice for performance and
// cache friendliness.
package ndarray

import (
	"fmt"
	"strings"
)

// Array is a dense N-dimensional array of float64 values.
// shape holds the extent of each axis, strides the row-major step per axis,
// and data the prod(shape) elements in row-major order.
type Array struct {
	shape   []int
	strides []int
	data    []float64
}

// arrayErrorf wraps an underlying error with method context.
func arrayErrorf(method string, err error) error {
	return fmt.Errorf("Array.%s: %w", method, err)
}

// validShape reports whether shape is non-empty with all extents > 0.
func validShape(shape []int) bool {
	if len(shape) == 0 {
		return false
	}
	for _, n := range shape {
		if n <= 0 {
			return false
		}
	}

	return true
}

// rowMajorStrides computes row-major strides for shape: the last axis is
// contiguous (stride 1) and each earlier axis steps over the product of the
// extents that follow it.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	step := 1
	for ax := len(shape) - 1; ax >= 0; ax-- {
		strides[ax] = step
		step *= shape[ax]
	}

	return strides
}

// SizeOf returns prod(shape), the number of elements a shape addresses.
// It does not validate the shape; callers validate first.
func SizeOf(shape []int) int {
	size := 1
	for _, n := range shape {
		size *= n
	}

	return size
}

// New creates a zero-initialized Array with the given shape.
// Returns ErrBadShape when shape is empty or has a non-positive extent.
// Complexity: O(prod(shape)) time and memory.
func New(shape ...int) (*Array, error) {
	if !validShape(shape) {
		return nil, ErrBadShape
	}
	shp := make([]int, len(shape))
	copy(shp, shape)

	return &Array{
		shape:   shp,
		strides: rowMajorStrides(shp),
		data:    make([]float64, SizeOf(shp)),
	}, nil
}

// FromSlice wraps data (taking ownership, no copy) as an Array of the given
// shape. Returns ErrBadShape on an invalid shape and ErrSizeMismatch when
// len(data) != prod(shape).
// Complexity: O(rank).
func FromSlice(data []float64, shape ...int) (*Array, error) {
	if !validShape(shape) {
		return nil, ErrBadShape
	}
	if len(data) != SizeOf(shape) {
		return nil, fmt.Errorf("FromSlice: len(data)=%d, shape size=%d: %w",
			len(data), SizeOf(shape), ErrSizeMismatch)
	}
	shp := make([]int, len(shape))
	copy(shp, shape)

	return &Array{shape: shp, strides: rowMajorStrides(shp), data: data}, nil
}

// ZerosLike returns a new zero Array with the same shape as a.
// Complexity: O(Size).
func ZerosLike(a *Array) *Array {
	out, _ := New(a.shape...) // a's shape was validated at construction

	return out
}

// Rank returns the number of axes.
func (a *Array) Rank() int { return len(a.shape) }

// Size returns the total number of elements.
func (a *Array) Size() int { return len(a.data) }

// Shape returns a copy of the per-axis extents.
func (a *Array) Shape() []int {
	shp := make([]int, len(a.shape))
	copy(shp, a.shape)

	return shp
}

// Dim returns the extent of axis ax, or ErrOutOfRange for an invalid axis.
func (a *Array) Dim(ax int) (int, error) {
	if ax < 0 || ax >= len(a.shape) {
		return 0, arrayErrorf("Dim", ErrOutOfRange)
	}

	return a.shape[ax], nil
}

// Stride returns the row-major step of axis ax, or ErrOutOfRange.
func (a *Array) Stride(ax int) (int, error) {
	if ax < 0 || ax >= len(a.strides) {
		return 0, arrayErrorf("Stride", ErrOutOfRange)
	}

	return a.strides[ax], nil
}

// Data returns the flat backing slice in row-major order.
// The slice aliases the array's storage; callers that need an independent
// copy should Clone first.
func (a *Array) Data() []float64 { return a.data }

// offsetOf computes the flat index of idx or returns a bounds error.
// Complexity: O(rank).
func (a *Array) offsetOf(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, ErrRankMismatch
	}
	off := 0
	for ax, i := range idx {
		if i < 0 || i >= a.shape[ax] {
			return 0, ErrOutOfRange
		}
		off += i * a.strides[ax]
	}

	return off, nil
}

// At retrieves the element addressed by idx (one index per axis).
// Complexity: O(rank).
func (a *Array) At(idx ...int) (float64, error) {
	off, err := a.offsetOf(idx)
	if err != nil {
		return 0, arrayErrorf("At", err)
	}

	return a.data[off], nil
}

// Set assigns v at idx (one index per axis).
// Complexity: O(rank).
func (a *Array) Set(v float64, idx ...int) error {
	off, err := a.offsetOf(idx)
	if err != nil {
		return arrayErrorf("Set", err)
	}
	a.data[off] = v

	return nil
}

// Clone returns a deep copy of the array.
// Complexity: O(Size) time and memory.
func (a *Array) Clone() *Array {
	data := make([]float64, len(a.data))
	copy(data, a.data)
	out, _ := FromSlice(data, a.shape...)

	return out
}

// SameShape reports whether a and b have identical shapes.
func (a *Array) SameShape(b *Array) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for ax := range a.shape {
		if a.shape[ax] != b.shape[ax] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging: shape followed by the
// flat row-major contents.
// Complexity: O(Size) for string construction.
func (a *Array) String() string {
	var sb strings.Builder
	sb.WriteString("shape=")
	fmt.Fprintf(&sb, "%v [", a.shape)
	for i, v := range a.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	sb.WriteString("]")

	return sb.String()
}
