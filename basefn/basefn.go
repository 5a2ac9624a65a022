// Package basefn: shared helpers for the landscape formulas.

package basefn

import "math"

// twoPi is 2π, the angular period shared by several formulas.
const twoPi = 2 * math.Pi

// Func is the shape every deterministic landscape shares: a pure
// callable from a fixed-length vector to a scalar.
type Func func(x []float64) float64

// RoundHalf returns round(2v)/2, the half-unit grid snap the
// non-continuous landscape variants are built on. Halves round away from
// zero, matching the published reference data.
func RoundHalf(v float64) float64 {
	return math.Round(2*v) / 2
}

// NonCont maps x onto the half-unit grid wherever |x_i| ≥ 0.5 and leaves
// near-origin coordinates untouched, returning a fresh slice. This is
// the standard non-continuity transform applied by the non-continuous
// Rastrigin and expanded Schaffer variants.
func NonCont(x []float64) []float64 {
	y := make([]float64, len(x))
	for i, v := range x {
		if math.Abs(v) < 0.5 {
			y[i] = v
		} else {
			y[i] = RoundHalf(v)
		}
	}

	return y
}
