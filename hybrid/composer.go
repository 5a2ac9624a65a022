// SPDX-License-Identifier: MIT

// Package hybrid: the deterministic composer.

package hybrid

import "github.com/katalvlaran/cec2005/numeric"

// Composer is the deterministic hybrid composition: exactly
// ComponentCount landscapes blended by the distance-weighted pipeline.
// Immutable after construction; safe for concurrent Evaluate calls.
type Composer[T numeric.Real] struct {
	*core[T]
	fns []Func[T]
}

// New constructs a Composer from exactly ComponentCount specs sharing
// dimension dim.
//
// Implementation:
//   - Stage 1 (Validate): arity first (ErrComponentArity), then per-
//     component structure via buildCore: offset length/finiteness,
//     rotation shape, coefficient domains, non-nil functions.
//   - Stage 2 (Precompute): per component, evaluate the base function at
//     the rotated all-(5/λ_i) probe and cache fmax_i = |f_i(probe)|.
//     A zero or non-finite probe value is rejected with
//     ErrNumericDegeneracy — it would poison every later evaluation.
//
// Inputs:
//   - specs: exactly ComponentCount component definitions.
//   - dim: the shared dimension N (> 0).
//   - opts: optional engine knobs (contribution scale, suppression
//     exponent).
//
// Returns:
//   - *Composer ready for any number of Evaluate calls.
//
// Errors:
//   - ErrComponentArity, ErrDimensionMismatch, ErrNilMatrix, ErrNaNInf,
//     ErrInvalidCoefficient, ErrNilFunction, ErrNumericDegeneracy; all
//     wrapped with operation and component context.
//
// Determinism:
//   - Pure function of its inputs; no randomness anywhere on this path.
//
// Complexity:
//   - O(K·N²) construction (rotation copies and probes).
func New[T numeric.Real](specs []ComponentSpec[T], dim int, opts ...Option) (*Composer[T], error) {
	// Arity is the very first gate: nothing else is looked at before it.
	if len(specs) != ComponentCount {
		return nil, hybridErrorf(opNew, ErrComponentArity)
	}

	comps := make([]component[T], len(specs))
	fns := make([]Func[T], len(specs))
	for i, s := range specs {
		if s.Fn == nil {
			return nil, componentErrorf(opNew, i, ErrNilFunction)
		}
		comps[i] = component[T]{offset: s.Offset, rot: s.Rotation, lambda: s.Lambda, sigma: s.Sigma, bias: s.Bias}
		fns[i] = s.Fn
	}

	c, err := buildCore(opNew, comps, dim, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}

	// fmax precompute: exactly once per component, never at evaluation.
	for i := range fns {
		probe, err := c.syntheticPoint(i)
		if err != nil {
			return nil, componentErrorf(opNew, i, err)
		}
		if err := c.setFmax(opNew, i, fns[i](probe)); err != nil {
			return nil, err
		}
	}

	return &Composer[T]{core: c, fns: fns}, nil
}

// Evaluate blends the component landscapes at x.
//
// Implementation:
//   - Stage 1 (Validate): exact dimension, all entries finite.
//   - Stage 2 (Weights): raw → suppression → normalization (weights.go).
//   - Stage 3 (Blend): per component, transform x into the component
//     frame, evaluate, and fold Σ w_i·(scale·f_i/fmax_i + bias_i).
//
// Errors:
//   - ErrDimensionMismatch / ErrNilMatrix for a malformed x, ErrNaNInf
//     for non-finite entries, ErrNumericDegeneracy when the weight sum
//     collapses.
//
// Complexity:
//   - O(K·N²) per call, dominated by the K rotations.
func (c *Composer[T]) Evaluate(x []T) (T, error) {
	var zero T
	if err := c.validatePoint(x); err != nil {
		return zero, err
	}

	w, err := c.weightsFor(x)
	if err != nil {
		return zero, err
	}

	f := make([]T, len(c.fns))
	for i := range c.fns {
		z, err := c.transformed(i, x)
		if err != nil {
			return zero, hybridErrorf(opEvaluate, err)
		}
		f[i] = c.fns[i](z)
	}

	return c.blend(w, f), nil
}
