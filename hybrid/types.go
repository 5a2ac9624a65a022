// SPDX-License-Identifier: MIT
// Package hybrid: public component types shared by both composers.

package hybrid

import (
	"github.com/katalvlaran/cec2005/numeric"
	"github.com/katalvlaran/cec2005/randx"
	"github.com/katalvlaran/cec2005/vec"
)

// ComponentCount is the fixed number of component landscapes in a
// CEC2005 hybrid composition. Constructors reject any other arity with
// ErrComponentArity.
const ComponentCount = 10

// Func is a deterministic component landscape: a pure callable from a
// fixed-length vector to a scalar. The composer owns the argument slice;
// implementations must not retain or mutate it.
type Func[T numeric.Real] func(x []T) T

// StochasticFunc is a component landscape that may consume randomness:
// it returns a pending draw instead of a scalar. The draw is resolved by
// the composer in fixed component order.
type StochasticFunc[T numeric.Real] func(x []T) randx.Draw[T]

// ComponentSpec describes one deterministic component of a composition:
// its shift offset, rotation matrix, base function, scale λ, spread σ,
// and bias constant. All specs of one composition share dimension N.
// Offset and Rotation are deep-copied at construction, so the composer
// is unaffected by later mutation of caller-owned data.
type ComponentSpec[T numeric.Real] struct {
	Offset   []T
	Rotation *vec.Dense[T]
	Fn       Func[T]
	Lambda   T
	Sigma    T
	Bias     T
}

// StochasticSpec is ComponentSpec with a draw-returning base function.
type StochasticSpec[T numeric.Real] struct {
	Offset   []T
	Rotation *vec.Dense[T]
	Fn       StochasticFunc[T]
	Lambda   T
	Sigma    T
	Bias     T
}
