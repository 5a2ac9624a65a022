// SPDX-License-Identifier: MIT

// Package hybrid: shared engine state and construction-time validation.
//
// Both composers keep their per-component data in the same internal core:
// deep-copied offsets and rotations, coefficient tables, the cached fmax
// normalizers, and the resolved options. Everything here is written once
// during construction and read-only afterwards, which is what makes
// composers safe to share across goroutines.

package hybrid

import (
	"fmt"

	"github.com/katalvlaran/cec2005/numeric"
	"github.com/katalvlaran/cec2005/vec"
)

// syntheticAnchor is the coordinate magnitude of the fmax probe point:
// every element of the synthetic vector equals anchor/λ_i before rotation.
const syntheticAnchor = 5.0

// Operation tags for error wrapping.
const (
	opNew           = "New"
	opNewStochastic = "NewStochastic"
	opEvaluate      = "Evaluate"
)

// hybridErrorf wraps an underlying sentinel with an operation tag.
func hybridErrorf(op string, err error) error {
	return fmt.Errorf("hybrid.%s: %w", op, err)
}

// componentErrorf wraps an underlying sentinel with operation and
// component context.
func componentErrorf(op string, i int, err error) error {
	return fmt.Errorf("hybrid.%s: component %d: %w", op, i, err)
}

// component is the neutral per-component tuple both public spec types
// reduce to for validation and storage.
type component[T numeric.Real] struct {
	offset []T
	rot    *vec.Dense[T]
	lambda T
	sigma  T
	bias   T
}

// core is the immutable engine state shared by both composers.
type core[T numeric.Real] struct {
	dim      int
	offsets  [][]T
	rots     []*vec.Dense[T]
	lambdas  []T
	sigmas   []T
	biases   []T
	fmax     []T // filled by the constructor after buildCore
	scale    T
	exponent T
}

// Dim returns the dimension every evaluation point must have.
func (c *core[T]) Dim() int { return c.dim }

// buildCore validates the neutral components against dim, deep-copies
// their data, and returns a core with an unfilled fmax table.
//
// Validation order per component: offset (non-nil, length, finite),
// rotation (non-nil, square, dimension), λ (finite, non-zero), σ (finite,
// positive), bias (finite). The first violation is returned wrapped with
// its component index.
//
// Complexity: O(K·N²) time and memory (rotation copies dominate).
func buildCore[T numeric.Real](op string, comps []component[T], dim int, o Options) (*core[T], error) {
	if dim <= 0 {
		return nil, hybridErrorf(op, vec.ErrBadShape)
	}

	k := len(comps)
	c := &core[T]{
		dim:      dim,
		offsets:  make([][]T, k),
		rots:     make([]*vec.Dense[T], k),
		lambdas:  make([]T, k),
		sigmas:   make([]T, k),
		biases:   make([]T, k),
		fmax:     make([]T, k),
		scale:    T(o.contributionScale),
		exponent: T(o.suppressionExponent),
	}

	for i, comp := range comps {
		if err := vec.ValidateVecLen(comp.offset, dim); err != nil {
			return nil, componentErrorf(op, i, err)
		}
		if err := vec.ValidateFinite(comp.offset); err != nil {
			return nil, componentErrorf(op, i, err)
		}
		if err := vec.ValidateSquare(comp.rot, dim); err != nil {
			return nil, componentErrorf(op, i, err)
		}
		// λ scales the shifted point; zero would divide by zero.
		if !numeric.IsFinite(comp.lambda) || comp.lambda == 0 {
			return nil, componentErrorf(op, i, ErrInvalidCoefficient)
		}
		// σ is a spread; the weight formula needs it strictly positive.
		if !numeric.IsFinite(comp.sigma) || comp.sigma <= 0 {
			return nil, componentErrorf(op, i, ErrInvalidCoefficient)
		}
		if !numeric.IsFinite(comp.bias) {
			return nil, componentErrorf(op, i, ErrInvalidCoefficient)
		}

		// Deep-copy caller data: the composer must stay correct even if
		// the caller mutates its slices after construction.
		off := make([]T, dim)
		copy(off, comp.offset)
		c.offsets[i] = off
		c.rots[i] = comp.rot.Clone()
		c.lambdas[i] = comp.lambda
		c.sigmas[i] = comp.sigma
		c.biases[i] = comp.bias
	}

	return c, nil
}

// syntheticPoint builds the fmax probe for component i: an all-(5/λ_i)
// vector rotated by the component's matrix. No shift is applied; the
// probe is defined in the component's own frame.
func (c *core[T]) syntheticPoint(i int) ([]T, error) {
	v := make([]T, c.dim)
	for j := range v {
		v[j] = syntheticAnchor / c.lambdas[i]
	}

	return vec.Rotate(v, c.rots[i])
}

// setFmax records a realized probe value, enforcing that the normalizer
// is usable: |f| must be finite and non-zero or every later evaluation
// would divide by zero.
func (c *core[T]) setFmax(op string, i int, f T) error {
	a := numeric.Abs(f)
	if !numeric.IsFinite(a) || a == 0 {
		return componentErrorf(op, i, ErrNumericDegeneracy)
	}
	c.fmax[i] = a

	return nil
}

// transformed maps an evaluation point into component i's frame:
// z = rotate(shift(x, o_i) ÷ λ_i, M_i). This helper is the single place
// the shift → scale → rotate order lives.
func (c *core[T]) transformed(i int, x []T) ([]T, error) {
	shifted, err := vec.Shift(x, c.offsets[i])
	if err != nil {
		return nil, err
	}
	// The shifted slice is fresh; scaling in place allocates nothing.
	for j := range shifted {
		shifted[j] /= c.lambdas[i]
	}

	return vec.Rotate(shifted, c.rots[i])
}

// validatePoint applies the strict input policy shared by both
// composers: exact dimension, all entries finite.
func (c *core[T]) validatePoint(x []T) error {
	if err := vec.ValidateVecLen(x, c.dim); err != nil {
		return hybridErrorf(opEvaluate, err)
	}
	if err := vec.ValidateFinite(x); err != nil {
		return hybridErrorf(opEvaluate, err)
	}

	return nil
}

// blend folds realized component values into the final result:
// Σ w_i·(scale·f_i/fmax_i + bias_i).
func (c *core[T]) blend(w, f []T) T {
	var sum T
	for i := range w {
		sum += w[i] * (c.scale*f[i]/c.fmax[i] + c.biases[i])
	}

	return sum
}
