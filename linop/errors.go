package linop

import "errors"

var (
	// ErrNilOperator indicates that a nil Operator was passed into a helper.
	ErrNilOperator = errors.New("linop: operator is nil")
	// ErrBadShape indicates a declared operator or matrix shape with a
	// non-positive dimension.
	ErrBadShape = errors.New("linop: dimensions must be > 0")
	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("linop: index out of range")
	// ErrShapeMismatch indicates that an operator produced a vector whose
	// length disagrees with its declared shape, or that two matrices of
	// different shapes were combined.
	ErrShapeMismatch = errors.New("linop: shape mismatch")
)
