package tvreg

import "errors"

var (
	// ErrNilOperator indicates a nil difference operator.
	ErrNilOperator = errors.New("tvreg: operator is nil")
	// ErrBadEpsilon indicates a negative smoothing parameter, or a zero one
	// where differentiability is required (Gradient, Denoise).
	ErrBadEpsilon = errors.New("tvreg: epsilon must be positive")
	// ErrBadOption indicates a non-positive iteration count or step size,
	// or a negative regularization weight.
	ErrBadOption = errors.New("tvreg: invalid solver option")
)
