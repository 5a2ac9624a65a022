// SPDX-License-Identifier: MIT
// Package hybrid: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// hybrid package. All entry points MUST return these sentinels wrapped
// with operation context and tests MUST check them via errors.Is.

package hybrid

import (
	"errors"

	"github.com/katalvlaran/cec2005/vec"
)

var (
	// ErrComponentArity indicates a composer was constructed with a
	// component count other than the fixed CEC2005 arity (ComponentCount).
	// Rejected at construction, before any evaluation.
	ErrComponentArity = errors.New("hybrid: component count must be exactly 10")

	// ErrNilFunction indicates a component spec carries a nil base
	// function.
	ErrNilFunction = errors.New("hybrid: nil component function")

	// ErrInvalidCoefficient indicates a component coefficient violates its
	// domain: λ must be finite and non-zero, σ finite and positive, bias
	// finite.
	ErrInvalidCoefficient = errors.New("hybrid: invalid component coefficient")

	// ErrNumericDegeneracy indicates the weight-normalization denominator
	// (or a precomputed fmax normalizer) is zero or non-finite. Raised
	// explicitly so degenerate inputs never yield silent NaN/Inf results.
	ErrNumericDegeneracy = errors.New("hybrid: degenerate weight normalization")
)

// Aliases to the vec sentinels surfaced by this package's validation, so
// callers can match against either package's name with errors.Is.
var (
	// ErrDimensionMismatch mirrors vec.ErrDimensionMismatch.
	ErrDimensionMismatch = vec.ErrDimensionMismatch

	// ErrNaNInf mirrors vec.ErrNaNInf (strict finite-input policy).
	ErrNaNInf = vec.ErrNaNInf

	// ErrNilMatrix mirrors vec.ErrNilMatrix.
	ErrNilMatrix = vec.ErrNilMatrix
)
