package tvreg_test

import (
	"fmt"

	"github.com/reconlab/diffkit/diffop"
	"github.com/reconlab/diffkit/tvreg"
)

// ExamplePenalty evaluates the exact anisotropic TV (ε=0) of a 1-D signal:
// the L1 norm of its forward differences.
func ExamplePenalty() {
	op, _ := diffop.New([]int{4}, nil)

	p, _ := tvreg.Penalty(op, []float64{0, 3, -2, 5}, 0)
	fmt.Println(p)
	// Output:
	// 15
}

// ExampleDenoise smooths a spiky signal and reports that the TV objective
// went down.
func ExampleDenoise() {
	shape := []int{8}
	noisy := []float64{0, 0, 0, 5, 0, 0, 0, 0}

	opts := tvreg.DefaultOptions()
	opts.Lambda = 0.2
	opts.Epsilon = 0.1

	u, _ := tvreg.Denoise(noisy, shape, opts)

	op, _ := diffop.New(shape, opts.Dims)
	before, _ := tvreg.Objective(op, noisy, noisy, opts.Lambda, opts.Epsilon)
	after, _ := tvreg.Objective(op, u, noisy, opts.Lambda, opts.Epsilon)
	fmt.Println("objective decreased:", after < before)
	// Output:
	// objective decreased: true
}
