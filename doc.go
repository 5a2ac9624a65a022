// Package cec2005 is your evaluation toolkit for the CEC2005 benchmark
// suite — the twenty-five shifted, rotated, and noise-perturbed
// landscapes used to measure continuous-optimization algorithms.
//
// 🚀 What is cec2005?
//
//	A deterministic, reproducibility-first library that brings together:
//		• Transform primitives: dimension-checked shift, scale & rotate kernels
//		• Elementary landscapes: sphere, Rosenbrock, Rastrigin, Ackley,
//		  Griewank, Weierstrass, Schwefel variants, elliptic, Schaffer
//		• The hybrid composition engine: K=10 landscapes blended by
//		  distance weights with dominance suppression (F15–F25)
//		• Explicit randomness: pending draws resolved against seeded
//		  sources, never hidden globals
//		• Benchmark assembly: F1–F25 wired from externally supplied
//		  parameter data, plus parallel population evaluation and a
//		  gonum optimize adapter
//
// ✨ Why choose cec2005?
//
//   - Reproducible by construction – same seed, same point, same bits
//   - Rock-solid guarantees – sentinel errors, strict finite-input policy,
//     construction-time validation; no panics on user input
//   - Generic scalars – every kernel runs on float64 or float32 through
//     one numeric capability constraint
//   - Extensible – bring your own parameter store, landscapes, and
//     composition knobs
//
// Under the hood, everything is organized under six subpackages:
//
//	numeric/ — the Real scalar constraint & generic math kernels
//	vec/     — vectors, square matrices, shift/rotate transforms
//	randx/   — pending random draws & deterministic stream derivation
//	basefn/  — the elementary CEC2005 landscape formulas
//	hybrid/  — the hybrid composition engine (deterministic & stochastic)
//	suite/   — F1–F25 assembly, parameter stores, batch evaluation
//
// Quick sketch of a hybrid surface:
//
//	    basin 0 (bias 0)      basin 1 (bias 100)
//	       \__   __/             \__   __/
//	          \_/        ...        \_/
//
//	ten component landscapes, each with its own offset, rotation,
//	stretch and spread, blended into one multi-basin surface.
//
// Dive into the package docs for the evaluation pipeline, determinism
// contracts, and worked examples.
//
//	go get github.com/katalvlaran/cec2005
package cec2005
