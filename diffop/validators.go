package diffop

import "fmt"

// opErrorf wraps an underlying sentinel with call-site context.
func opErrorf(op string, err error) error {
	return fmt.Errorf("diffop.%s: %w", op, err)
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

// normalizeDims resolves the dims selection against shape and validates it.
// A nil selection defaults to every axis in increasing order. The returned
// slice is always a fresh copy owned by the caller.
//
// Validation order: ErrInvalidDims (empty, out-of-range, duplicate), then
// ErrDegenerateAxis (size-1 axis mixed with a larger selected axis).
func normalizeDims(shape []int, dims []int) ([]int, error) {
	rank := len(shape)
	if dims == nil {
		dims = make([]int, rank)
		for ax := range dims {
			dims[ax] = ax
		}

		return dims, checkDegenerate(shape, dims)
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("empty dims: %w", ErrInvalidDims)
	}

	out := make([]int, len(dims))
	seen := make([]bool, rank)
	for k, ax := range dims {
		if ax < 0 || ax >= rank {
			return nil, fmt.Errorf("axis %d out of range for rank %d: %w", ax, rank, ErrInvalidDims)
		}
		if seen[ax] {
			return nil, fmt.Errorf("axis %d selected twice: %w", ax, ErrInvalidDims)
		}
		seen[ax] = true
		out[k] = ax
	}

	return out, checkDegenerate(shape, out)
}

// checkDegenerate enforces the degeneracy policy: a selected axis of size 1
// is only legal when no selected axis is larger. An all-size-1 selection
// (or a lone size-1 axis) yields an empty difference stack, which both
// kernels handle; mixing sizes would leave the adjoint ill-defined.
func checkDegenerate(shape []int, dims []int) error {
	hasUnit, maxSize := false, 0
	for _, ax := range dims {
		if shape[ax] == 1 {
			hasUnit = true
		}
		if shape[ax] > maxSize {
			maxSize = shape[ax]
		}
	}
	if hasUnit && maxSize > 1 {
		return ErrDegenerateAxis
	}

	return nil
}

// axisSpan decomposes shape around axis ax for flat row-major traversal:
// outer = prod(shape[:ax]), inner = prod(shape[ax+1:]). Element (o, i, k)
// of the (outer, shape[ax], inner) view lives at flat offset
// o*shape[ax]*inner + i*inner + k.
func axisSpan(shape []int, ax int) (outer, inner int) {
	outer, inner = 1, 1
	for a := 0; a < ax; a++ {
		outer *= shape[a]
	}
	for a := ax + 1; a < len(shape); a++ {
		inner *= shape[a]
	}

	return outer, inner
}

// blockLen returns the flattened length of the axis-ax difference block:
// prod(shape with shape[ax] reduced by 1).
func blockLen(shape []int, ax int) int {
	outer, inner := axisSpan(shape, ax)

	return outer * (shape[ax] - 1) * inner
}

// stackLen returns the total difference-stack length over dims:
// the sum of per-axis block lengths, in any order. dims must be validated.
func stackLen(shape []int, dims []int) int {
	total := 0
	for _, ax := range dims {
		total += blockLen(shape, ax)
	}

	return total
}
