package linop

import "fmt"

// Densify materializes op into its dense Rows×Cols matrix by applying op to
// every basis vector: column j of the result is T·e_j.
//
// Intended for verification and small problems only; the whole point of an
// Operator is to avoid this allocation on solver hot paths.
//
// Complexity: O(Cols) operator applications, O(Rows·Cols) memory.
func Densify(op Operator) (*Dense, error) {
	if op == nil {
		return nil, ErrNilOperator
	}
	mat, err := NewDense(op.Rows(), op.Cols())
	if err != nil {
		return nil, fmt.Errorf("Densify(%s): %w", op.Name(), err)
	}

	basis := make([]float64, op.Cols())
	for j := 0; j < op.Cols(); j++ {
		basis[j] = 1
		col, err := op.Apply(basis)
		basis[j] = 0
		if err != nil {
			return nil, fmt.Errorf("Densify(%s): column %d: %w", op.Name(), j, err)
		}
		if err = mat.SetCol(j, col); err != nil {
			return nil, fmt.Errorf("Densify(%s): %w", op.Name(), err)
		}
	}

	return mat, nil
}

// DensifyAdjoint materializes the declared adjoint of op into its dense
// Cols×Rows matrix: column i of the result is Tᵀ·e_i.
// Complexity: O(Rows) adjoint applications, O(Rows·Cols) memory.
func DensifyAdjoint(op Operator) (*Dense, error) {
	if op == nil {
		return nil, ErrNilOperator
	}

	return Densify(Transpose(op))
}

// AdjointExact reports whether the dense matrix of op's declared adjoint
// equals the transpose of op's own dense matrix, element by element with
// float64 equality (no tolerance).
//
// This is the operator-level soundness check: a true result certifies that
// ApplyAdjoint really is the algebraic transpose of Apply for this shape.
// Errors from either materialization are propagated, not swallowed — an
// operator whose adjoint fails on some input is reported as an error, never
// as a silent false.
//
// Complexity: O(Rows + Cols) operator applications, O(Rows·Cols) memory.
func AdjointExact(op Operator) (bool, error) {
	forward, err := Densify(op)
	if err != nil {
		return false, err
	}
	adjoint, err := DensifyAdjoint(op)
	if err != nil {
		return false, err
	}

	return forward.Transpose().Equal(adjoint), nil
}
