// SPDX-License-Identifier: MIT

// Package hybrid: the stochastic composer.

package hybrid

import (
	"math/rand"

	"github.com/katalvlaran/cec2005/numeric"
	"github.com/katalvlaran/cec2005/randx"
)

// StochasticComposer is the hybrid composition whose component
// landscapes may consume randomness: each base function yields a pending
// draw instead of a scalar. Immutable after construction; concurrent
// resolutions must use independent random sources.
type StochasticComposer[T numeric.Real] struct {
	*core[T]
	fns []StochasticFunc[T]
}

// NewStochastic constructs a StochasticComposer from exactly
// ComponentCount specs sharing dimension dim.
//
// Implementation:
//   - Stage 1 (Validate): identical to New — arity, then per-component
//     structure via buildCore.
//   - Stage 2 (Precompute): the fmax probes need realized values, so the
//     constructor takes the random source and resolves one draw per
//     component in fixed index order 0..9. The source state after
//     construction is therefore a deterministic function of the specs.
//
// Inputs:
//   - specs: exactly ComponentCount component definitions.
//   - dim: the shared dimension N (> 0).
//   - src: random source for the fmax draws; nil falls back to the
//     deterministic seed-zero stream.
//   - opts: optional engine knobs.
//
// Errors:
//   - Same taxonomy as New.
//
// Determinism:
//   - Identical specs + identical source state ⇒ identical fmax tables,
//     bit for bit.
//
// Complexity:
//   - O(K·N²) plus the cost of the K component draws.
func NewStochastic[T numeric.Real](specs []StochasticSpec[T], dim int, src *rand.Rand, opts ...Option) (*StochasticComposer[T], error) {
	if len(specs) != ComponentCount {
		return nil, hybridErrorf(opNewStochastic, ErrComponentArity)
	}

	comps := make([]component[T], len(specs))
	fns := make([]StochasticFunc[T], len(specs))
	for i, s := range specs {
		if s.Fn == nil {
			return nil, componentErrorf(opNewStochastic, i, ErrNilFunction)
		}
		comps[i] = component[T]{offset: s.Offset, rot: s.Rotation, lambda: s.Lambda, sigma: s.Sigma, bias: s.Bias}
		fns[i] = s.Fn
	}

	c, err := buildCore(opNewStochastic, comps, dim, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}

	if src == nil {
		src = randx.FromSeed(0)
	}

	// fmax precompute: one realized draw per component, in index order.
	// No interleaving: component i's draw fully completes before i+1
	// begins, which is what makes the table reproducible.
	for i := range fns {
		probe, err := c.syntheticPoint(i)
		if err != nil {
			return nil, componentErrorf(opNewStochastic, i, err)
		}
		if err := c.setFmax(opNewStochastic, i, fns[i](probe).Resolve(src)); err != nil {
			return nil, err
		}
	}

	return &StochasticComposer[T]{core: c, fns: fns}, nil
}

// Evaluate blends the component landscapes at x, returning a pending
// draw instead of a scalar.
//
// Implementation:
//   - Eager: input policy, weight pipeline, and the K component-frame
//     transforms — everything deterministic in x happens now, so a
//     malformed point or degenerate weight sum fails before any
//     randomness is consumed.
//   - Deferred: the returned Draw, when resolved, draws one outcome per
//     component in fixed index order 0..9 and folds the realized values
//     through the shared blend.
//
// Determinism:
//   - Identical source state + identical x ⇒ bit-identical result; the
//     draw order never varies, so resolving twice against equal source
//     states consumes the same variates.
//
// Errors:
//   - Same as Composer.Evaluate; all surfaced eagerly.
//
// Complexity:
//   - O(K·N²) eager, O(K · cost of one component draw) per resolution.
func (c *StochasticComposer[T]) Evaluate(x []T) (randx.Draw[T], error) {
	if err := c.validatePoint(x); err != nil {
		return nil, err
	}

	w, err := c.weightsFor(x)
	if err != nil {
		return nil, err
	}

	zs := make([][]T, len(c.fns))
	for i := range c.fns {
		z, err := c.transformed(i, x)
		if err != nil {
			return nil, hybridErrorf(opEvaluate, err)
		}
		zs[i] = z
	}

	return func(src *rand.Rand) T {
		f := make([]T, len(c.fns))
		for i := range c.fns {
			f[i] = c.fns[i](zs[i]).Resolve(src)
		}

		return c.blend(w, f)
	}, nil
}
