package diffop

// options carries construction-time knobs for Op. The zero value is the
// default: sequential axis processing.
type options struct {
	parallel bool
}

// Option mutates construction options; pass to New.
type Option func(*options)

// WithParallel makes Apply and ApplyAdjoint process axes concurrently, one
// goroutine per selected axis. Per-axis work is independent (forward blocks
// are disjoint output segments; adjoint contributions are accumulated in
// dims order after all axes finish), so results are bitwise identical to
// sequential execution regardless of scheduling.
//
// Worth it only when prod(shape) is large; for small arrays the goroutine
// overhead dominates.
func WithParallel() Option {
	return func(o *options) { o.parallel = true }
}
