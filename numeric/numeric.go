// SPDX-License-Identifier: MIT

// Package numeric: Real constraint and the generic math kernels.
// This file is the single place that touches the standard math package on
// behalf of generic code; callers never convert scalars by hand.

package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Real is the numeric-capability contract for every generic kernel in the
// module: a floating-point scalar supporting native arithmetic, ordering,
// and conversion from untyped literals. float64 is the reference
// implementation; float32 (and named types over either) satisfy it too.
type Real interface {
	constraints.Float
}

// Abs returns |v|.
func Abs[T Real](v T) T { return T(math.Abs(float64(v))) }

// Sqrt returns √v (NaN for v < 0, following IEEE 754).
func Sqrt[T Real](v T) T { return T(math.Sqrt(float64(v))) }

// Exp returns e^v.
func Exp[T Real](v T) T { return T(math.Exp(float64(v))) }

// Pow returns base^exponent with the standard math.Pow special cases.
func Pow[T Real](base, exponent T) T {
	return T(math.Pow(float64(base), float64(exponent)))
}

// Sin returns the sine of v (radians).
func Sin[T Real](v T) T { return T(math.Sin(float64(v))) }

// Cos returns the cosine of v (radians).
func Cos[T Real](v T) T { return T(math.Cos(float64(v))) }

// Round returns v rounded to the nearest integer, halves away from zero.
func Round[T Real](v T) T { return T(math.Round(float64(v))) }

// IsNaN reports whether v is an IEEE 754 "not-a-number" value.
func IsNaN[T Real](v T) bool { return v != v }

// IsInf reports whether v is infinite in either direction.
func IsInf[T Real](v T) bool { return math.IsInf(float64(v), 0) }

// IsFinite reports whether v is neither NaN nor ±Inf. Every validation
// path in the module funnels through this single predicate.
func IsFinite[T Real](v T) bool { return !IsNaN(v) && !IsInf(v) }
