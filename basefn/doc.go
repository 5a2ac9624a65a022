// Package basefn implements the elementary CEC2005 landscape functions:
// pure float64 callables evaluated at already-transformed points.
//
// Every function here is a closed-form formula with a known global
// minimum of 0 at a documented point; all shifting, rotation, scaling,
// and bias belong to the callers assembling full benchmarks. Functions
// accept any dimension their formula is defined for and panic only where
// a formula is inherently fixed-dimensional (SchafferF6 is 2-D).
//
// Noisy variants live in this package too, but return a randx.Draw
// instead of a scalar: the randomness they need is explicit in the type.
package basefn
