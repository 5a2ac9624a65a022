// SPDX-License-Identifier: MIT

// Package suite assembles the twenty-five CEC2005 benchmark functions
// from the module's primitives: shift/rotate transforms (vec),
// elementary landscapes (basefn), the hybrid composition engine
// (hybrid), and explicit randomness (randx).
//
// A benchmark is identified by a FuncID (F1..F25) and a dimension. Its
// published data — shift offsets, rotation matrices, and the auxiliary
// matrices of F5 and F12 — is supplied by a Store: the package consumes
// parameter data, it never loads or persists it. SyntheticStore
// generates reproducible random data for dimensions the published
// tables do not cover.
//
// Four benchmarks are stochastic by definition: F4 and F17 apply
// multiplicative fitness noise to an otherwise deterministic landscape,
// and F24/F25 carry a noisy sphere inside their composition. These are
// built with NewNoisy and evaluate to a pending randx.Draw; the
// remaining twenty-one are built with New and evaluate to a plain
// scalar. Constructing a stochastic id through New (or vice versa)
// fails with ErrStochastic (ErrDeterministic).
//
// Beyond construction and evaluation the package offers:
//
//   - EvaluateAll / EvaluateAllNoisy — population evaluation fanned out
//     over a bounded worker pool; the noisy form derives one stream per
//     point, so results do not depend on scheduling or worker count.
//   - Problem — a gonum optimize.Problem adapter, plugging any
//     deterministic benchmark straight into gonum's optimizers.
//
// Everything constructed here is immutable and safe for concurrent use;
// stochastic evaluations follow the randx source-ownership rules.
package suite
