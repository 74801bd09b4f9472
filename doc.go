// Package diffkit provides matrix-free finite-difference operators for
// iterative image reconstruction (MRI / tomography) in pure Go.
//
// 🚀 What is diffkit?
//
//	A small, dependency-light toolkit that brings together:
//		• ndarray — dense N-D arrays over a flat float64 slice (row-major)
//		• linop   — the matrix-free linear-operator contract: Apply,
//		  ApplyAdjoint, shape metadata, transpose views, densification
//		• diffop  — forward/adjoint first-order finite differences along
//		  arbitrary subsets of array axes, packaged as a "diff_map" operator
//		• tvreg   — total-variation penalty, gradient, and a small denoiser
//		  built on top of the diffop operator
//
// ✨ Why choose diffkit?
//
//   - Exact adjoints – Dense(T)ᵀ equals Dense(T') bit-for-bit, verified by
//     the built-in self-test over a fixed matrix of shapes
//   - Stateless operators – safe to reuse across goroutines and solver
//     iterations; every call is referentially transparent
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example (forward difference along one axis):
//
//	x = [x0 x1 x2 x3]  →  Tx = [x1−x0  x2−x1  x3−x2]
//
// The operator stacks one such block per selected axis, which is the
// building block of total-variation priors in regularized reconstruction.
//
//	go get github.com/reconlab/diffkit
package diffkit
