// SPDX-License-Identifier: MIT
// Package randx: the Draw type and its combinators.

package randx

import "math/rand"

// Draw is a pending computation requiring a random source. Nothing
// happens until Resolve is called; a Draw value can be stored, passed
// around, and resolved any number of times. Resolving the same Draw
// against sources in identical states yields identical values.
type Draw[T any] func(src *rand.Rand) T

// Resolve runs the pending computation against src and returns its
// value. A nil src resolves against the deterministic default stream
// (seed-zero policy), so Resolve(nil) is reproducible too.
//
// Complexity: O(cost of the underlying computation).
func (d Draw[T]) Resolve(src *rand.Rand) T {
	if src == nil {
		src = FromSeed(0)
	}

	return d(src)
}

// Const lifts an already-known value into a Draw that consumes no
// randomness when resolved.
func Const[T any](v T) Draw[T] {
	return func(*rand.Rand) T { return v }
}

// Lift converts a pure function into its Draw-returning form: the result
// is fully determined by the argument and resolving it consumes no
// randomness. This is how deterministic component functions participate
// in a stochastic composition without changing its draw order.
func Lift[A, T any](f func(A) T) func(A) Draw[T] {
	return func(a A) Draw[T] { return Const(f(a)) }
}
