package ndarray

import "errors"

var (
	// ErrBadShape indicates an empty shape or a non-positive extent.
	ErrBadShape = errors.New("ndarray: shape must be non-empty with extents > 0")
	// ErrOutOfRange indicates an index outside the valid bounds of its axis.
	ErrOutOfRange = errors.New("ndarray: index out of range")
	// ErrRankMismatch indicates an index tuple whose length differs from the array rank.
	ErrRankMismatch = errors.New("ndarray: index rank does not match array rank")
	// ErrSizeMismatch indicates a data slice whose length differs from the shape's element count.
	ErrSizeMismatch = errors.New("ndarray: data length does not match shape size")
)
