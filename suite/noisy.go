// SPDX-License-Identifier: MIT

// Package suite: stochastic benchmark assembly (F4, F17, F24, F25).
//
// Two noise shapes exist in the suite. F4 and F17 apply multiplicative
// fitness noise to a fully deterministic landscape G:
// F(x) = G(x)·(1 + amp·|N(0,1)|) + fbias. F24 and F25 instead carry the
// noise inside their composition — the tenth component is a noisy
// sphere — so they are built on the stochastic composer and its fixed
// draw order.

package suite

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/cec2005/basefn"
	"github.com/katalvlaran/cec2005/hybrid"
	"github.com/katalvlaran/cec2005/randx"
)

// noisyEvalFn is the assembled evaluation closure of one stochastic
// benchmark.
type noisyEvalFn func(x []float64) (randx.Draw[float64], error)

// NoisyFunction is one stochastic CEC2005 benchmark. Evaluate returns a
// pending draw; resolving it against a random source realizes the
// value. Immutable; safe for concurrent use under the randx
// source-ownership rules.
type NoisyFunction struct {
	id   FuncID
	dim  int
	def  definition
	eval noisyEvalFn
}

// ID returns the benchmark identifier.
func (f *NoisyFunction) ID() FuncID { return f.id }

// Dim returns the dimension every evaluation point must have.
func (f *NoisyFunction) Dim() int { return f.dim }

// Name returns the published descriptive name.
func (f *NoisyFunction) Name() string { return f.def.name }

// Bias returns the published fbias constant.
func (f *NoisyFunction) Bias() float64 { return f.def.fbias }

// Bounds returns the search-domain metadata.
func (f *NoisyFunction) Bounds() Bounds { return f.def.boundsView() }

// Evaluate computes the pending draw for x. All structural errors
// surface here, eagerly; the returned draw cannot fail, only realize.
func (f *NoisyFunction) Evaluate(x []float64) (randx.Draw[float64], error) {
	return f.eval(x)
}

// NewNoisy assembles the stochastic benchmark id at dimension dim.
//
// Implementation:
//   - Stage 1 (Validate): id known, stochastic, dim > 0, store non-nil.
//   - Stage 2 (Fetch + Assemble): route by id. F24/F25 construct a
//     stochastic composer, whose fmax precompute resolves one draw per
//     component against src in fixed index order — identical src states
//     therefore yield bit-identical instances.
//
// Inputs:
//   - src: random source for construction-time draws; nil falls back to
//     the deterministic seed-zero stream. Evaluation draws are always
//     deferred to Draw resolution.
//
// Errors:
//   - ErrUnknownFunction, ErrDeterministic, ErrBadDimension,
//     ErrNilStore, ErrMissingParams, plus store and composer errors.
func NewNoisy(id FuncID, dim int, store Store, src *rand.Rand) (*NoisyFunction, error) {
	if !id.Valid() {
		return nil, suiteErrorf(opNewNoisy, id, ErrUnknownFunction)
	}
	if !id.Stochastic() {
		return nil, suiteErrorf(opNewNoisy, id, ErrDeterministic)
	}
	if dim <= 0 {
		return nil, suiteErrorf(opNewNoisy, id, ErrBadDimension)
	}
	if store == nil {
		return nil, suiteErrorf(opNewNoisy, id, ErrNilStore)
	}

	p, err := store.Params(id, dim)
	if err != nil {
		return nil, suiteErrorf(opNewNoisy, id, err)
	}

	var eval noisyEvalFn
	switch id {
	case F4:
		eval, err = fitnessNoise(id, dim, noiseAmpF4, func() (evalFn, error) {
			return shifted(id, dim, p, basefn.SchwefelDoubleSum)
		})
	case F17:
		eval, err = fitnessNoise(id, dim, noiseAmpF17, func() (evalFn, error) {
			return composed(id, dim, p)
		})
	case F24, F25:
		eval, err = composedNoisy(id, dim, p, src)
	}
	if err != nil {
		return nil, err
	}

	return &NoisyFunction{id: id, dim: dim, def: defs[id], eval: eval}, nil
}

// fitnessNoise wraps a deterministic assembly with multiplicative
// Gaussian noise on the bias-free value: the realized result is
// (F(x) − fbias)·(1 + amp·|N(0,1)|) + fbias, consuming exactly one
// normal variate per resolution.
func fitnessNoise(id FuncID, dim int, amp float64, build func() (evalFn, error)) (noisyEvalFn, error) {
	inner, err := build()
	if err != nil {
		return nil, err
	}
	bias := defs[id].fbias

	return func(x []float64) (randx.Draw[float64], error) {
		v, err := inner(x)
		if err != nil {
			return nil, err
		}
		g := v - bias // noise applies to the bias-free landscape value

		return func(src *rand.Rand) float64 {
			return g*(1+amp*math.Abs(src.NormFloat64())) + bias
		}, nil
	}, nil
}

// composedNoisy wires F24/F25: the roster's first nine landscapes are
// lifted deterministic components, the tenth is the sphere with fitness
// noise, and the whole blend runs on the stochastic composer.
func composedNoisy(id FuncID, dim int, p Params, src *rand.Rand) (noisyEvalFn, error) {
	det, err := componentSpecs(opNewNoisy, id, dim, p)
	if err != nil {
		return nil, err
	}

	specs := make([]hybrid.StochasticSpec[float64], len(det))
	for i, s := range det {
		fn := randx.Lift((func(x []float64) float64)(s.Fn))
		if i == len(det)-1 {
			// The published tenth component: sphere with fitness noise.
			fn = basefn.Noisy(basefn.Sphere, noiseAmpComponent)
		}
		specs[i] = hybrid.StochasticSpec[float64]{
			Offset:   s.Offset,
			Rotation: s.Rotation,
			Fn:       hybrid.StochasticFunc[float64](fn),
			Lambda:   s.Lambda,
			Sigma:    s.Sigma,
			Bias:     s.Bias,
		}
	}

	c, err := hybrid.NewStochastic(specs, dim, src)
	if err != nil {
		return nil, suiteErrorf(opNewNoisy, id, err)
	}
	bias := defs[id].fbias

	return func(x []float64) (randx.Draw[float64], error) {
		d, err := c.Evaluate(x)
		if err != nil {
			return nil, suiteErrorf(opEvaluate, id, err)
		}

		return func(src *rand.Rand) float64 {
			return d.Resolve(src) + bias
		}, nil
	}, nil
}
