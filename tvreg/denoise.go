package tvreg

import (
	"fmt"

	"github.com/reconlab/diffkit/diffop"
)

// Options configures the Denoise solver.
//
// Fields:
//   - Lambda     — regularization weight λ ≥ 0; 0 returns the input.
//   - Epsilon    — TV smoothing parameter ε > 0.
//   - Iterations — fixed number of gradient steps, > 0.
//   - Step       — gradient step size, > 0. Must stay below 2/L with
//     L = 1 + λ·‖T‖²/ε for convergence; the default is conservative for
//     typical λ and ε.
//   - Dims       — axis selection forwarded to diffop.New (nil = all axes).
type Options struct {
	Lambda     float64
	Epsilon    float64
	Iterations int
	Step       float64
	Dims       []int
}

// DefaultOptions returns the solver defaults: λ=0.1, ε=1e-3, 100 iterations,
// step 0.05, all axes.
func DefaultOptions() Options {
	return Options{
		Lambda:     0.1,
		Epsilon:    1e-3,
		Iterations: 100,
		Step:       0.05,
	}
}

// Denoise minimizes
//
//	J(u) = ½‖u − x‖² + λ·TV_ε(u)
//
// by fixed-step gradient descent from u₀ = x and returns the final iterate.
// x is the flattened noisy image of the given shape; it is not modified.
//
// Errors: ErrBadOption for a non-positive step or iteration count or a
// negative λ, ErrBadEpsilon for ε ≤ 0, and operator construction errors
// from diffop.New (bad shape, invalid or degenerate dims).
//
// Complexity: O(Iterations · prod(shape) · |dims|).
func Denoise(x []float64, shape []int, opts Options) ([]float64, error) {
	if opts.Iterations <= 0 || opts.Step <= 0 || opts.Lambda < 0 {
		return nil, fmt.Errorf("Denoise: iterations=%d step=%g lambda=%g: %w",
			opts.Iterations, opts.Step, opts.Lambda, ErrBadOption)
	}
	if opts.Epsilon <= 0 {
		return nil, fmt.Errorf("Denoise: eps=%g: %w", opts.Epsilon, ErrBadEpsilon)
	}

	op, err := diffop.New(shape, opts.Dims)
	if err != nil {
		return nil, fmt.Errorf("Denoise: %w", err)
	}
	if len(x) != op.Cols() {
		return nil, fmt.Errorf("Denoise: len(x)=%d, expected %d: %w",
			len(x), op.Cols(), diffop.ErrLengthMismatch)
	}

	u := make([]float64, len(x))
	copy(u, x)

	for it := 0; it < opts.Iterations; it++ {
		tv, err := Gradient(op, u, opts.Epsilon)
		if err != nil {
			return nil, fmt.Errorf("Denoise: iteration %d: %w", it, err)
		}
		for i := range u {
			u[i] -= opts.Step * ((u[i] - x[i]) + opts.Lambda*tv[i])
		}
	}

	return u, nil
}

// Objective evaluates J(u) = ½‖u − x‖² + λ·TV_ε(u), the quantity Denoise
// descends. Exposed so callers can monitor or compare solver runs.
func Objective(op *diffop.Op, u, x []float64, lambda, eps float64) (float64, error) {
	if op == nil {
		return 0, ErrNilOperator
	}
	if len(u) != len(x) {
		return 0, fmt.Errorf("Objective: len(u)=%d len(x)=%d: %w",
			len(u), len(x), diffop.ErrLengthMismatch)
	}
	tv, err := Penalty(op, u, eps)
	if err != nil {
		return 0, fmt.Errorf("Objective: %w", err)
	}

	fidelity := 0.0
	for i := range u {
		r := u[i] - x[i]
		fidelity += r * r
	}

	return 0.5*fidelity + lambda*tv, nil
}
