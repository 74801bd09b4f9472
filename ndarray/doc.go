// Package ndarray provides a dense N-dimensional array of float64 values
// backed by a single flat slice in row-major (C) order.
//
// The ndarray package provides:
//
//   - Array, a rank-D container with O(1) element access through
//     precomputed strides.
//   - Constructors (New, FromSlice, ZerosLike) that validate shapes up
//     front and return sentinel errors, never panic, on caller mistakes.
//   - Axis bookkeeping helpers (Size, Shape, Stride) used by operator
//     kernels that walk one axis at a time.
//
// Arrays are best for dense numeric kernels where a contiguous backing
// slice and a fixed element order are part of the caller's contract, such
// as finite-difference operators that flatten and concatenate per-axis
// blocks.
//
// See the examples in this package and diffop for usage patterns.
package ndarray
