// SPDX-License-Identifier: MIT

// Package vec provides the dimension-checked vector and square-matrix
// primitives every benchmark in the module is built from: shift, negate,
// scale, and rotate over fixed-length slices of any numeric.Real scalar,
// plus a flat row-major Dense matrix for rotation data.
//
// Design rules:
//
//   - Fixed dimension is enforced at call time: any operation combining
//     two operands of disagreeing length fails with ErrDimensionMismatch
//     before touching the data. Nothing mismatched can be produced.
//   - Operations return fresh slices and never alias or mutate their
//     inputs, so values can be shared freely across goroutines.
//   - Matrix data is validated on ingestion: FromRows rejects ragged
//     rows (ErrBadShape) and non-finite entries (ErrNaNInf), keeping
//     every constructed Dense safe to use unchecked afterwards.
//   - Plain sentinel errors, wrapped with an operation tag at each call
//     site; match with errors.Is.
//
// Transform order is load-bearing for the benchmark definitions: call
// sites combining these primitives apply shift, then per-element scale,
// then rotate. The package supplies the pieces; consuming packages keep
// the order in exactly one helper each.
package vec
