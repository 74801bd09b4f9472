package diffop

import "github.com/reconlab/diffkit/ndarray"

// Forward — stacked first-order forward differences
//
// Description:
//
//	For each axis in dims (nil = all axes, increasing), compute the
//	forward difference of x along that axis only:
//
//	    out[..., i, ...] = x[..., i+1, ...] − x[..., i, ...]
//
//	for i in 0..N_ax−2, every other axis unchanged. Each per-axis result
//	is flattened in row-major order and the blocks are concatenated in
//	dims order. Block k therefore starts at the sum of the preceding
//	block lengths and has length prod(shape with dims[k] reduced by 1) —
//	an invariant the adjoint and all callers depend on.
//
// Errors:
//   - ErrNilArray        — x is nil.
//   - ErrInvalidDims     — empty, out-of-range, or duplicate dims.
//   - ErrDegenerateAxis  — size-1 axis selected alongside a larger one.
//
// A selected axis of size 1 (legal only when no selected axis is larger)
// contributes an empty block; an all-size-1 shape yields an empty stack.
//
// Complexity: O(prod(shape) · |dims|) time, O(stack length) memory.
// The input is read-only; the output is newly allocated.
func Forward(x *ndarray.Array, dims []int) ([]float64, error) {
	if x == nil {
		return nil, opErrorf("Forward", ErrNilArray)
	}
	shape := x.Shape()
	sel, err := normalizeDims(shape, dims)
	if err != nil {
		return nil, opErrorf("Forward", err)
	}

	out := make([]float64, stackLen(shape, sel))
	off := 0
	for _, ax := range sel {
		n := blockLen(shape, ax)
		forwardAxis(out[off:off+n], x.Data(), shape, ax)
		off += n
	}

	return out, nil
}

// forwardAxis writes the axis-ax difference block of src into dst.
// dst must have length blockLen(shape, ax); for a size-1 axis that length
// is zero and the function is a no-op.
func forwardAxis(dst, src []float64, shape []int, ax int) {
	n := shape[ax]
	if n < 2 {
		return
	}
	outer, inner := axisSpan(shape, ax)

	idx := 0
	for o := 0; o < outer; o++ {
		base := o * n * inner
		for i := 0; i < n-1; i++ {
			lo := base + i*inner
			hi := lo + inner
			for k := 0; k < inner; k++ {
				dst[idx] = src[hi+k] - src[lo+k]
				idx++
			}
		}
	}
}
