// SPDX-License-Identifier: MIT

// Package hybrid implements the CEC2005 hybrid composition engine: the
// distance-weighted blend of K=10 component landscapes — each with its
// own shift offset, rotation matrix, scale λ, spread σ, and bias — into
// one multi-basin surface.
//
// Evaluation pipeline, for a point x of dimension N:
//
//  1. Per component i: z_i = rotate(shift(x, o_i) ÷ λ_i, M_i).
//     The shift → scale → rotate order is fixed and lives in exactly one
//     internal helper.
//  2. Raw weight: w_i = exp(−Σ_k (x_k − o_i,k)² / (2·N·σ_i²)).
//  3. Dominance suppression: with wmax the maximum weight (first index
//     wins ties), every non-maximal w_i is multiplied by (1 − wmax^10),
//     sharpening basin boundaries so only the nearest basin dominates
//     near shared regions.
//  4. Normalization: w_i ← w_i / Σ w_k; a zero or non-finite sum is a
//     detected error (ErrNumericDegeneracy), never a silent NaN.
//  5. Result: Σ w_i · (2000·f_i(z_i)/fmax_i + bias_i).
//
// fmax_i — the per-component contribution normalizer — is computed once
// at construction from a synthetic all-(5/λ_i) point rotated by M_i, and
// cached for the composer's entire lifetime.
//
// Two composers share this pipeline:
//
//   - Composer: deterministic component functions (vector → scalar).
//   - StochasticComposer: component functions returning pending random
//     draws (vector → randx.Draw); evaluation yields a Draw that, when
//     resolved, draws one outcome per component in fixed index order
//     0..9. Identical source state + identical x ⇒ bit-identical result.
//
// Both are immutable after construction and safe to share across
// goroutines; concurrent resolutions must use independent random
// sources.
//
// Scalars are generic over numeric.Real: double precision is the
// reference instantiation, and the CEC2005 constants (contribution scale
// 2000, suppression exponent 10, component count 10) are the defaults.
package hybrid
