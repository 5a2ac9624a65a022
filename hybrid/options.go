// SPDX-License-Identifier: MIT

// Package hybrid: functional configuration for the composition engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package hybrid

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultContributionScale is the factor applied to every component's
	// normalized value (2000·f_i/fmax_i). 2000 is the published CEC2005
	// constant.
	DefaultContributionScale = 2000.0

	// DefaultSuppressionExponent is the power in the dominance-suppression
	// factor (1 − wmax^p). 10 is the published CEC2005 constant; larger
	// values sharpen basin boundaries further.
	DefaultSuppressionExponent = 10.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicScaleInvalid       = "hybrid: WithContributionScale: scale must be finite, > 0"
	panicSuppressionInvalid = "hybrid: WithSuppressionExponent: exponent must be finite, > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Fields are intentionally unexported; public entry points
// accept ...Option and resolve them via gatherOptions.
type Options struct {
	contributionScale   float64 // > 0; DefaultContributionScale
	suppressionExponent float64 // > 0; DefaultSuppressionExponent
}

// ---------- Constructors (WithX) ----------

// WithContributionScale overrides the per-component contribution factor.
//
// Implementation:
//   - Stage 1: validate scale is finite and > 0.
//   - Stage 2: return a setter that writes it into Options.
//
// Inputs:
//   - scale: positive finite factor (CEC2005 uses 2000).
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when scale is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithContributionScale(scale float64) Option {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		panic(panicScaleInvalid)
	}

	return func(o *Options) { o.contributionScale = scale }
}

// WithSuppressionExponent overrides the dominance-suppression power.
//
// Implementation:
//   - Stage 1: validate exponent is finite and > 0.
//   - Stage 2: return a setter that writes it into Options.
//
// Inputs:
//   - exponent: positive finite power (CEC2005 uses 10).
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when exponent is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Raw weights lie in (0,1], so any positive exponent keeps the
//     suppression factor (1 − wmax^p) inside [0,1) and weights
//     non-negative.
func WithSuppressionExponent(exponent float64) Option {
	if math.IsNaN(exponent) || math.IsInf(exponent, 0) || exponent <= 0 {
		panic(panicSuppressionInvalid)
	}

	return func(o *Options) { o.suppressionExponent = exponent }
}

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves option setters against documented defaults.
// Last-writer-wins; pure function.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of defaults. This is
// the canonical internal entry used by both composer constructors.
//
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		contributionScale:   DefaultContributionScale,
		suppressionExponent: DefaultSuppressionExponent,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
