// Package diffop: sentinel error set.
// All public entry points return these sentinels (optionally wrapped with
// call-site context via fmt.Errorf and %w); tests match them with errors.Is.
// No kernel panics on caller mistakes.
package diffop

import "errors"

// Error priority (enforced in validators and tests):
// bad shape -> invalid dims -> degenerate axis -> length mismatch.

var (
	// ErrBadShape indicates an empty target shape or a non-positive extent.
	ErrBadShape = errors.New("diffop: shape must be non-empty with extents > 0")

	// ErrInvalidDims indicates a dims selection with an out-of-range or
	// duplicate axis index, or an explicitly empty selection. Surfaced
	// before any computation.
	ErrInvalidDims = errors.New("diffop: dims must be distinct in-range axes")

	// ErrDegenerateAxis indicates a selection mixing a size-1 axis with a
	// larger one. The difference block of a size-1 axis is empty, which
	// leaves the adjoint's last-index stencil with nothing to reference,
	// so the combination is rejected up front rather than left undefined.
	ErrDegenerateAxis = errors.New("diffop: selected size-1 axis mixed with a larger axis")

	// ErrLengthMismatch indicates that a vector's length disagrees with the
	// operator shape: the adjoint input is not exactly the difference-stack
	// length, or the forward input is not exactly prod(shape). Never
	// silently truncated or padded.
	ErrLengthMismatch = errors.New("diffop: vector length does not match operator shape")

	// ErrNilArray indicates a nil *ndarray.Array input.
	ErrNilArray = errors.New("diffop: array is nil")
)
