// SPDX-License-Identifier: MIT
// Package vec: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the vec
// package. All kernels MUST return these sentinels and tests MUST check
// them via errors.Is. No kernel panics on user-triggered error conditions.

package vec

import "errors"

var (
	// ErrDimensionMismatch indicates operand vector/matrix dimensions
	// disagree (vector lengths differ, or a matrix shape does not match
	// its vector operand).
	ErrDimensionMismatch = errors.New("vec: dimension mismatch")

	// ErrBadShape indicates a malformed construction request: non-positive
	// dimensions or ragged row data.
	ErrBadShape = errors.New("vec: bad shape")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("vec: index out of range")

	// ErrNilMatrix indicates a nil *Dense (or nil slice standing in for a
	// required vector) was passed where a value is mandatory.
	ErrNilMatrix = errors.New("vec: nil matrix")

	// ErrNaNInf indicates a NaN or ±Inf value was rejected by the strict
	// ingestion policy. Matrix data is external configuration; refusing
	// non-finite entries at construction keeps every later evaluation
	// free of silent poison values.
	ErrNaNInf = errors.New("vec: NaN or Inf not allowed")
)
