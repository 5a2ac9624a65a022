// Package basefn: noisy landscape forms.

package basefn

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/cec2005/randx"
)

// Noisy wraps a deterministic landscape with multiplicative Gaussian
// fitness noise: the returned callable yields a pending draw resolving
// to fn(x)·(1 + amplitude·|N(0,1)|). The draw consumes exactly one
// normal variate from its source, which is what keeps composed draw
// sequences aligned across components.
//
// CEC2005 uses amplitude 0.4 for the noisy Schwefel benchmark, 0.2 for
// the noisy composition, and 0.1 for the in-composition noisy sphere.
func Noisy(fn Func, amplitude float64) func(x []float64) randx.Draw[float64] {
	return func(x []float64) randx.Draw[float64] {
		return func(src *rand.Rand) float64 {
			return fn(x) * (1 + amplitude*math.Abs(src.NormFloat64()))
		}
	}
}
