// SPDX-License-Identifier: MIT
// Package vec: vector kernels (Shift, Neg, Scale, Rotate).
//
// Purpose:
//   - Implement the transform primitives every benchmark composes:
//     y = x − o (shift) and y = M·x (rotate), plus the scalar helpers.
//   - Fail fast with package sentinels on any dimension disagreement.
//
// Determinism & Performance:
//   - Pure functions; inputs are never mutated, results are fresh slices.
//   - All kernels are single-pass; Rotate is the only O(n²) operation.

package vec

import (
	"fmt"

	"github.com/katalvlaran/cec2005/numeric"
)

// Operation tags used to wrap sentinel errors with call-site context.
const (
	opShift  = "Shift"
	opRotate = "Rotate"
)

// vecErrorf wraps an underlying sentinel with the given operation tag.
func vecErrorf(op string, err error) error {
	return fmt.Errorf("vec.%s: %w", op, err)
}

// Shift returns y with y_i = x_i − o_i.
//
// Inputs: x (evaluation point) and o (offset) of equal length.
// Returns: fresh slice; ErrNilMatrix on a nil operand,
// ErrDimensionMismatch when lengths disagree.
// Complexity: O(n).
func Shift[T numeric.Real](x, o []T) ([]T, error) {
	// Both operands are mandatory.
	if x == nil || o == nil {
		return nil, vecErrorf(opShift, ErrNilMatrix)
	}
	// Equal length is the whole contract.
	if len(x) != len(o) {
		return nil, vecErrorf(opShift, ErrDimensionMismatch)
	}
	y := make([]T, len(x))
	for i := range x {
		y[i] = x[i] - o[i]
	}

	return y, nil
}

// Neg returns a fresh slice with every element negated. Nil input yields
// nil, so Neg(o) composes directly with Shift for the inverse transform.
// Complexity: O(n).
func Neg[T numeric.Real](x []T) []T {
	if x == nil {
		return nil
	}
	y := make([]T, len(x))
	for i := range x {
		y[i] = -x[i]
	}

	return y
}

// Scale returns a fresh slice with every element multiplied by s.
// Complexity: O(n).
func Scale[T numeric.Real](x []T, s T) []T {
	if x == nil {
		return nil
	}
	y := make([]T, len(x))
	for i := range x {
		y[i] = x[i] * s
	}

	return y
}

// Rotate returns y = M·x for a square row-major matrix M.
//
// Inputs: x of length n, m of shape n×n.
// Returns: fresh slice; ErrNilMatrix on a nil matrix or vector,
// ErrDimensionMismatch when m is non-square or its dimension does not
// match len(x).
// Complexity: O(n²), zero allocations beyond the result.
func Rotate[T numeric.Real](x []T, m *Dense[T]) ([]T, error) {
	// Matrix and vector are both mandatory.
	if m == nil || x == nil {
		return nil, vecErrorf(opRotate, ErrNilMatrix)
	}
	// Rotation matrices are square by definition.
	if m.r != m.c {
		return nil, vecErrorf(opRotate, ErrDimensionMismatch)
	}
	// The matrix dimension must match its vector operand.
	if len(x) != m.c {
		return nil, vecErrorf(opRotate, ErrDimensionMismatch)
	}

	y := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		row := m.row(i)
		var acc T
		for j, v := range row {
			acc += v * x[j]
		}
		y[i] = acc
	}

	return y, nil
}
