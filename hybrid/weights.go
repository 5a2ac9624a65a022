// SPDX-License-Identifier: MIT

// Package hybrid: the shared weight pipeline (raw weights, dominance
// suppression, normalization). Both composers call exactly this code, so
// the deterministic and stochastic paths can never drift apart.

package hybrid

import "github.com/katalvlaran/cec2005/numeric"

// rawWeights fills w with the distance-based component weights of x:
// w_i = exp(−Σ_k (x_k − o_i,k)² / (2·N·σ_i²)).
//
// Weights lie in (0,1]: the exponent is never positive. Underflow to
// exactly 0 is possible for points astronomically far from an offset and
// is handled by the degeneracy check during normalization.
//
// Complexity: O(K·N).
func (c *core[T]) rawWeights(x []T, w []T) {
	n := T(c.dim)
	for i := range c.offsets {
		off := c.offsets[i]
		var d2 T
		for k := range x {
			d := x[k] - off[k]
			d2 += d * d
		}
		sigma := c.sigmas[i]
		w[i] = numeric.Exp(-d2 / (2 * n * sigma * sigma))
	}
}

// refineWeights applies dominance suppression and normalization in
// place.
//
// Implementation:
//   - Stage 1: locate the maximal weight; the FIRST index attaining the
//     maximum is "the" maximum (documented deterministic tie-break).
//   - Stage 2: multiply every other weight by (1 − wmax^exponent),
//     leaving the maximal one untouched.
//   - Stage 3: normalize to sum 1; a zero or non-finite sum is
//     ErrNumericDegeneracy, never a silent NaN.
//
// Complexity: O(K).
func (c *core[T]) refineWeights(w []T) error {
	// Stage 1: first-index argmax. Strict > keeps the lowest index on
	// ties; NaN weights never win and are caught by the sum check.
	maxIdx := 0
	for i := 1; i < len(w); i++ {
		if w[i] > w[maxIdx] {
			maxIdx = i
		}
	}

	// Stage 2: suppression. wmax ∈ (0,1] keeps the factor in [0,1).
	factor := 1 - numeric.Pow(w[maxIdx], c.exponent)
	for i := range w {
		if i != maxIdx {
			w[i] *= factor
		}
	}

	// Stage 3: normalization with explicit degeneracy detection.
	var sum T
	for _, v := range w {
		sum += v
	}
	if !numeric.IsFinite(sum) || sum == 0 {
		return hybridErrorf(opEvaluate, ErrNumericDegeneracy)
	}
	for i := range w {
		w[i] /= sum
	}

	return nil
}

// weightsFor runs the full pipeline for x into a fresh slice.
func (c *core[T]) weightsFor(x []T) ([]T, error) {
	w := make([]T, len(c.offsets))
	c.rawWeights(x, w)
	if err := c.refineWeights(w); err != nil {
		return nil, err
	}

	return w, nil
}
