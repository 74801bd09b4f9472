package tvreg

import (
	"fmt"
	"math"

	"github.com/reconlab/diffkit/diffop"
)

// Penalty computes the smoothed anisotropic TV value
//
//	TV_ε(x) = Σ_i sqrt((T·x)_i² + ε²)
//
// for a flattened image x of length op.Cols(). ε = 0 gives the exact
// anisotropic TV (the L1 norm of the difference stack); ε < 0 is rejected
// with ErrBadEpsilon. Length mismatches propagate from the operator.
//
// Complexity: one operator application plus O(rows).
func Penalty(op *diffop.Op, x []float64, eps float64) (float64, error) {
	if op == nil {
		return 0, ErrNilOperator
	}
	if eps < 0 {
		return 0, fmt.Errorf("Penalty: eps=%g: %w", eps, ErrBadEpsilon)
	}

	d, err := op.Apply(x)
	if err != nil {
		return 0, fmt.Errorf("Penalty: %w", err)
	}

	sum := 0.0
	e2 := eps * eps
	for _, v := range d {
		sum += math.Sqrt(v*v + e2)
	}

	return sum, nil
}

// Gradient computes ∇TV_ε(x) = Tᵀ·w with w_i = (T·x)_i / sqrt((T·x)_i²+ε²),
// a flattened array of length op.Cols(). Requires ε > 0: the exact penalty
// has no gradient where a difference vanishes.
//
// Complexity: one forward and one adjoint application plus O(rows).
func Gradient(op *diffop.Op, x []float64, eps float64) ([]float64, error) {
	if op == nil {
		return nil, ErrNilOperator
	}
	if eps <= 0 {
		return nil, fmt.Errorf("Gradient: eps=%g: %w", eps, ErrBadEpsilon)
	}

	d, err := op.Apply(x)
	if err != nil {
		return nil, fmt.Errorf("Gradient: %w", err)
	}

	e2 := eps * eps
	for i, v := range d {
		d[i] = v / math.Sqrt(v*v+e2)
	}

	g, err := op.ApplyAdjoint(d)
	if err != nil {
		return nil, fmt.Errorf("Gradient: %w", err)
	}

	return g, nil
}
