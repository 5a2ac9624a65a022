// SPDX-License-Identifier: MIT

// Package numeric defines the scalar capability surface shared by every
// generic kernel in the module.
//
// The contract is split in two:
//
//   - Real — the constraint naming which scalar types the kernels accept.
//     Arithmetic (+ − × ÷), ordering (< ≤ > ≥) and construction from a
//     literal come from the constraint itself: any Real type supports
//     them natively.
//   - Function kernels (Abs, Sqrt, Exp, Pow, Sin, Cos, Round, IsNaN,
//     IsInf, IsFinite) — the transcendental and classification
//     capabilities the composition engine and user-written component
//     functions rely on.
//
// float64 is the reference instantiation: every kernel routes through the
// standard math package at double precision. float32 also satisfies Real;
// its results are the double-precision value rounded once at the end,
// which is the usual contract for single-precision math helpers.
//
// Determinism: all kernels are pure. Same input, same output, on every
// platform with IEEE 754 arithmetic.
package numeric
