// SPDX-License-Identifier: MIT
// Package suite: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// suite package. All entry points MUST return these sentinels wrapped
// with operation context and tests MUST check them via errors.Is.
// Dimension and finiteness violations surface the vec package's
// sentinels unchanged.

package suite

import "errors"

var (
	// ErrUnknownFunction indicates a FuncID outside F1..F25.
	ErrUnknownFunction = errors.New("suite: unknown benchmark function")

	// ErrBadDimension indicates a non-positive benchmark dimension.
	ErrBadDimension = errors.New("suite: dimension must be positive")

	// ErrNilStore indicates a nil parameter store was passed where one is
	// required.
	ErrNilStore = errors.New("suite: nil parameter store")

	// ErrMissingParams indicates the store holds no entry — or an
	// incomplete entry — for the requested (id, dimension) pair.
	ErrMissingParams = errors.New("suite: missing benchmark parameters")

	// ErrStochastic indicates New was called for a benchmark that is
	// stochastic by definition (F4, F17, F24, F25); use NewNoisy.
	ErrStochastic = errors.New("suite: benchmark is stochastic; use NewNoisy")

	// ErrDeterministic indicates NewNoisy was called for a deterministic
	// benchmark; use New.
	ErrDeterministic = errors.New("suite: benchmark is deterministic; use New")
)
