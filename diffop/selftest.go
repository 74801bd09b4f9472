package diffop

import (
	"errors"

	"github.com/reconlab/diffkit/linop"
)

// selfTestShapes is the fixed verification matrix: ranks 1 through 4,
// mixed even/odd extents, and the all-size-1 degenerate shape.
var selfTestShapes = [][]int{
	{2},
	{10},
	{2, 3},
	{10, 11},
	{1, 1, 1},
	{2, 3, 4},
	{4, 4, 4, 4},
}

// SelfTest exercises the operator over the fixed shape matrix and reports
// whether every property held:
//
//   - for each shape and each dims selection (all axes, every single axis,
//     and all axes reversed), Dense(T)ᵀ equals Dense(Tᵀ) bit-for-bit;
//   - every constructed operator is named "diff_map";
//   - empty operators (all selected axes of size 1) map zeros to an empty
//     stack and an empty stack back to zeros;
//   - the known degenerate combination — shape (1,2) with both axes
//     selected — is rejected with ErrDegenerateAxis instead of returning
//     wrong data.
//
// Intended as a cheap install/regression check; the package tests cover
// the same ground with diagnostics.
func SelfTest() bool {
	for _, shape := range selfTestShapes {
		for _, dims := range selfTestDims(len(shape)) {
			op, err := New(shape, dims)
			if err != nil {
				return false
			}
			if op.Name() != MapName {
				return false
			}
			if !verifyAdjoint(op) {
				return false
			}
		}
	}

	// Known degenerate combination must fail fast, at construction.
	if _, err := New([]int{1, 2}, []int{0, 1}); !errors.Is(err, ErrDegenerateAxis) {
		return false
	}

	return true
}

// selfTestDims enumerates the selections checked per rank: all axes (nil
// default), each single axis, and the reversed full selection for rank > 1
// (block order is part of the contract, so a non-increasing order is worth
// pinning).
func selfTestDims(rank int) [][]int {
	sels := [][]int{nil}
	for ax := 0; ax < rank; ax++ {
		sels = append(sels, []int{ax})
	}
	if rank > 1 {
		rev := make([]int, rank)
		for ax := 0; ax < rank; ax++ {
			rev[ax] = rank - 1 - ax
		}
		sels = append(sels, rev)
	}

	return sels
}

// verifyAdjoint checks Dense(T)ᵀ == Dense(Tᵀ) exactly. An operator with an
// empty stack cannot be densified, so it is verified directly: forward of
// the zero array is empty, adjoint of the empty vector is all zeros.
func verifyAdjoint(op *Op) bool {
	if op.Rows() == 0 {
		d, err := op.Apply(make([]float64, op.Cols()))
		if err != nil || len(d) != 0 {
			return false
		}
		z, err := op.ApplyAdjoint(nil)
		if err != nil || len(z) != op.Cols() {
			return false
		}
		for _, v := range z {
			if v != 0 {
				return false
			}
		}

		return true
	}

	ok, err := linop.AdjointExact(op)

	return err == nil && ok
}
