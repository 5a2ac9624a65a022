// SPDX-License-Identifier: MIT
// Package: vec
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation
//     checks used by this package and by the composition engine.
//   - Keep kernels minimal by delegating shape/nil/finite checks here.
//   - Return sentinel errors wrapped with the validator tag so call
//     sites can add only their own operation context.
//
// Determinism & Performance:
//   - All checks are pure, deterministic, and allocate only on failure.

package vec

import (
	"fmt"

	"github.com/katalvlaran/cec2005/numeric"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateVecLen ensures x is non-nil and has exactly n elements.
//
// Returns ErrNilMatrix for nil input and ErrDimensionMismatch for a
// length disagreement.
// Complexity: O(1).
func ValidateVecLen[T numeric.Real](x []T, n int) error {
	// Nil stands for "no vector", which is never a valid operand.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameLen ensures two vectors have equal length.
// Complexity: O(1).
func ValidateSameLen[T numeric.Real](a, b []T) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameLen", ErrNilMatrix)
	}
	if len(a) != len(b) {
		return validatorErrorf("ValidateSameLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare ensures m is non-nil, square, and of dimension n.
//
// Returns ErrNilMatrix for nil input and ErrDimensionMismatch otherwise.
// Complexity: O(1).
func ValidateSquare[T numeric.Real](m *Dense[T], n int) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c || m.r != n {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite ensures every element of x is neither NaN nor ±Inf.
//
// Returns ErrNaNInf on the first offending element. Used by consumers
// that enforce a strict input policy before arithmetic begins.
// Complexity: O(n).
func ValidateFinite[T numeric.Real](x []T) error {
	for i := range x {
		if !numeric.IsFinite(x[i]) {
			return validatorErrorf("ValidateFinite", ErrNaNInf)
		}
	}

	return nil
}
