// Package tvreg builds total-variation (TV) regularization on top of the
// diffop difference operator: the penalty value, its gradient, and a small
// gradient-descent denoiser.
//
// 🚀 What is TV regularization?
//
//	TV penalizes the finite differences of an image, favoring piecewise
//	smooth reconstructions while preserving edges. tvreg uses the smoothed
//	anisotropic form
//
//	    TV_ε(x) = Σ_i sqrt((T·x)_i² + ε²)
//
//	where T is the stacked difference operator (diffop) and ε > 0 rounds
//	the |·| corner so the penalty is differentiable:
//
//	    ∇TV_ε(x) = Tᵀ·w,   w_i = (T·x)_i / sqrt((T·x)_i² + ε²)
//
//	Gradient-based solvers only ever call these two functions; the
//	operator itself stays matrix-free.
//
// ⚙️ Usage:
//
//	op, _ := diffop.New(shape, nil)
//	p, err := tvreg.Penalty(op, x, 1e-3)
//	g, err := tvreg.Gradient(op, x, 1e-3)
//
//	opts := tvreg.DefaultOptions()
//	opts.Lambda = 0.2
//	u, err := tvreg.Denoise(noisy, shape, opts)
//
// Penalty accepts ε = 0 (the exact anisotropic TV value); Gradient requires
// ε > 0 because the exact penalty is not differentiable at zero differences.
package tvreg
