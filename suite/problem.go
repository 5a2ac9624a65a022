// SPDX-License-Identifier: MIT

// Package suite: gonum optimize adapter.

package suite

import "gonum.org/v1/gonum/optimize"

// Problem adapts a deterministic benchmark to gonum's optimize.Problem
// so it plugs directly into that package's minimizers.
//
// gonum's objective contract is func([]float64) float64 with no error
// channel; a structural failure (wrong dimension, non-finite point)
// therefore panics, matching the convention of gonum's own benchmark
// functions. Optimizers generate points of the dimension they were
// started with, so a panic indicates caller misuse, not a runtime
// hazard.
func Problem(f *Function) optimize.Problem {
	return optimize.Problem{
		Func: func(x []float64) float64 {
			v, err := f.Evaluate(x)
			if err != nil {
				panic(err)
			}

			return v
		},
	}
}
