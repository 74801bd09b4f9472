package diffop

import (
	"fmt"

	"github.com/reconlab/diffkit/ndarray"
)

// Adjoint — transpose of the stacked difference operator
//
// Description:
//
//	Scatters a difference-stack vector d back onto an array of the given
//	shape. For each axis in dims (nil = all axes, increasing), the
//	corresponding contiguous block of d — boundaries computed exactly as
//	Forward concatenates them — is reshaped to the per-axis difference
//	shape and accumulated with the adjoint-of-diff stencil along that
//	axis:
//
//	    Z[first]     −= block[first]
//	    Z[interior i] += block[i−1] − block[i]   (1 ≤ i ≤ N_ax−2)
//	    Z[last]      += block[N_ax−2]
//
//	Contributions from multiple axes are summed into the shared result,
//	which realizes the adjoint of a vertically stacked block operator as
//	the sum of axis-wise adjoints. Dense(Forward)ᵀ equals Dense(Adjoint)
//	bit-for-bit.
//
// Errors:
//   - ErrBadShape        — empty shape or non-positive extent.
//   - ErrInvalidDims     — empty, out-of-range, or duplicate dims.
//   - ErrDegenerateAxis  — size-1 axis selected alongside a larger one.
//   - ErrLengthMismatch  — len(d) differs from the stack length; the
//     vector is never truncated or padded.
//
// The adjoint of an empty stack (all selected axes of size 1) is the zero
// array of the given shape.
//
// Complexity: O(prod(shape) · |dims|) time, O(prod(shape)) memory.
func Adjoint(d []float64, shape []int, dims []int) (*ndarray.Array, error) {
	if !validShape(shape) {
		return nil, opErrorf("Adjoint", ErrBadShape)
	}
	sel, err := normalizeDims(shape, dims)
	if err != nil {
		return nil, opErrorf("Adjoint", err)
	}
	if want := stackLen(shape, sel); len(d) != want {
		return nil, opErrorf("Adjoint",
			fmt.Errorf("len(d)=%d, expected %d: %w", len(d), want, ErrLengthMismatch))
	}

	z, err := ndarray.New(shape...)
	if err != nil {
		return nil, opErrorf("Adjoint", err) // unreachable after validShape
	}

	off := 0
	for _, ax := range sel {
		n := blockLen(shape, ax)
		adjointAxis(z.Data(), d[off:off+n], shape, ax)
		off += n
	}

	return z, nil
}

// adjointAxis accumulates the adjoint-of-diff stencil of block into z along
// axis ax. Each element of z receives exactly one addition per call: the
// first index along the axis subtracts the first difference, interior
// indices add block[i−1] − block[i], and the last index adds the final
// difference. A size-1 axis has an empty block and contributes nothing.
//
// z is accumulated into, not overwritten, so calls for different axes sum.
func adjointAxis(z, block []float64, shape []int, ax int) {
	n := shape[ax]
	if n < 2 {
		return
	}
	outer, inner := axisSpan(shape, ax)

	for o := 0; o < outer; o++ {
		zBase := o * n * inner
		bBase := o * (n - 1) * inner
		for k := 0; k < inner; k++ {
			// First index along the axis.
			z[zBase+k] -= block[bBase+k]
			// Interior run.
			for i := 1; i <= n-2; i++ {
				z[zBase+i*inner+k] += block[bBase+(i-1)*inner+k] - block[bBase+i*inner+k]
			}
			// Last index along the axis.
			z[zBase+(n-1)*inner+k] += block[bBase+(n-2)*inner+k]
		}
	}
}
