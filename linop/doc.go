// Package linop defines the matrix-free linear-operator contract used
// throughout diffkit, plus the small dense toolkit needed to verify it.
//
// The linop package provides:
//
//   - Operator, the minimal interface of a linear map T: Apply (T·x),
//     ApplyAdjoint (Tᵀ·y), declared shape (Rows, Cols) and a Name.
//   - Transpose, an O(1) adjoint view: Transpose(op).Apply is exactly
//     op.ApplyAdjoint, and Transpose(Transpose(op)) returns op itself.
//   - Func, a closure-backed Operator for callers that carry their linear
//     map as a pair of functions.
//   - Dense, a row-major materialized matrix, and Densify/DensifyAdjoint,
//     which build the dense form of an operator column by column from
//     basis vectors.
//   - AdjointExact, the bit-for-bit check Dense(T)ᵀ == Dense(Tᵀ) used by
//     operator self-tests.
//
// Operators are expected to be stateless: every call independent and
// referentially transparent, safe for concurrent reuse from independent
// call sites.
package linop
