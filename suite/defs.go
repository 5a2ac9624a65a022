// SPDX-License-Identifier: MIT
// Package suite: the published per-benchmark definition tables.
//
// Everything here is constant data from the CEC2005 technical report:
// fbias values, search bounds, and the λ/σ/component rosters of the
// hybrid compositions. The tables are package-private and reached only
// through the constructors; nothing reads them ambiently.

package suite

import "github.com/katalvlaran/cec2005/basefn"

// definition is the static metadata of one benchmark.
type definition struct {
	name      string
	fbias     float64
	lower     float64 // search bound, valid when bounded
	upper     float64
	bounded   bool
	initLower float64 // initialization range for unbounded benchmarks
	initUpper float64
}

// bounds returns the definition's Bounds view.
func (d definition) boundsView() Bounds {
	b := Bounds{Bounded: d.bounded, InitLower: d.initLower, InitUpper: d.initUpper}
	if d.bounded {
		b.Lower, b.Upper = d.lower, d.upper
		b.InitLower, b.InitUpper = d.lower, d.upper
	}

	return b
}

// defs is the per-id metadata table.
var defs = map[FuncID]definition{
	F1:  {name: "Shifted Sphere Function", fbias: -450, lower: -100, upper: 100, bounded: true},
	F2:  {name: "Shifted Schwefel's Problem 1.2", fbias: -450, lower: -100, upper: 100, bounded: true},
	F3:  {name: "Shifted Rotated High Conditioned Elliptic Function", fbias: -450, lower: -100, upper: 100, bounded: true},
	F4:  {name: "Shifted Schwefel's Problem 1.2 with Noise in Fitness", fbias: -450, lower: -100, upper: 100, bounded: true},
	F5:  {name: "Schwefel's Problem 2.6 with Global Optimum on Bounds", fbias: -310, lower: -100, upper: 100, bounded: true},
	F6:  {name: "Shifted Rosenbrock's Function", fbias: 390, lower: -100, upper: 100, bounded: true},
	F7:  {name: "Shifted Rotated Griewank's Function without Bounds", fbias: -180, initLower: 0, initUpper: 600},
	F8:  {name: "Shifted Rotated Ackley's Function with Global Optimum on Bounds", fbias: -140, lower: -32, upper: 32, bounded: true},
	F9:  {name: "Shifted Rastrigin's Function", fbias: -330, lower: -5, upper: 5, bounded: true},
	F10: {name: "Shifted Rotated Rastrigin's Function", fbias: -330, lower: -5, upper: 5, bounded: true},
	F11: {name: "Shifted Rotated Weierstrass Function", fbias: 90, lower: -0.5, upper: 0.5, bounded: true},
	F12: {name: "Schwefel's Problem 2.13", fbias: -460, lower: -piBound, upper: piBound, bounded: true},
	F13: {name: "Shifted Expanded Griewank's plus Rosenbrock's Function", fbias: -130, lower: -3, upper: 1, bounded: true},
	F14: {name: "Shifted Rotated Expanded Scaffer's F6 Function", fbias: -300, lower: -100, upper: 100, bounded: true},
	F15: {name: "Hybrid Composition Function", fbias: 120, lower: -5, upper: 5, bounded: true},
	F16: {name: "Rotated Version of Hybrid Composition Function F15", fbias: 120, lower: -5, upper: 5, bounded: true},
	F17: {name: "F16 with Noise in Fitness", fbias: 120, lower: -5, upper: 5, bounded: true},
	F18: {name: "Rotated Hybrid Composition Function", fbias: 10, lower: -5, upper: 5, bounded: true},
	F19: {name: "Rotated Hybrid Composition Function with Narrow Basin Global Optimum", fbias: 10, lower: -5, upper: 5, bounded: true},
	F20: {name: "Rotated Hybrid Composition Function with Global Optimum on the Bounds", fbias: 10, lower: -5, upper: 5, bounded: true},
	F21: {name: "Rotated Hybrid Composition Function", fbias: 360, lower: -5, upper: 5, bounded: true},
	F22: {name: "Rotated Hybrid Composition Function with High Condition Number Matrix", fbias: 360, lower: -5, upper: 5, bounded: true},
	F23: {name: "Non-Continuous Rotated Hybrid Composition Function", fbias: 360, lower: -5, upper: 5, bounded: true},
	F24: {name: "Rotated Hybrid Composition Function", fbias: 260, lower: -5, upper: 5, bounded: true},
	F25: {name: "Rotated Hybrid Composition Function without Bounds", fbias: 260, initLower: 2, initUpper: 5},
}

// piBound is the F12 search bound ±π.
const piBound = 3.141592653589793

// Noise amplitudes of the stochastic benchmarks.
const (
	noiseAmpF4        = 0.4 // fitness noise of F4
	noiseAmpF17       = 0.2 // fitness noise of F17
	noiseAmpComponent = 0.1 // the noisy sphere inside F24/F25
)

// hybridDef is the composition roster of one hybrid benchmark: exactly
// ten component landscapes with their λ stretch and σ spread tables.
// The in-composition biases are always 0, 100, …, 900.
type hybridDef struct {
	fns    []basefn.Func
	lambda []float64
	sigma  []float64
}

// componentBias returns the in-composition bias of component i.
func componentBias(i int) float64 { return float64(100 * i) }

// Roster shared by F15, F16, and F17: two each of Rastrigin,
// Weierstrass, Griewank, Ackley, and sphere.
var hybridF15 = hybridDef{
	fns: []basefn.Func{
		basefn.Rastrigin, basefn.Rastrigin,
		basefn.Weierstrass, basefn.Weierstrass,
		basefn.Griewank, basefn.Griewank,
		basefn.Ackley, basefn.Ackley,
		basefn.Sphere, basefn.Sphere,
	},
	lambda: []float64{1, 1, 10, 10, 5.0 / 60, 5.0 / 60, 5.0 / 32, 5.0 / 32, 5.0 / 100, 5.0 / 100},
	sigma:  []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// Roster shared by F18, F19, and F20: two each of Ackley, Rastrigin,
// sphere, Weierstrass, and Griewank.
var hybridF18 = hybridDef{
	fns: []basefn.Func{
		basefn.Ackley, basefn.Ackley,
		basefn.Rastrigin, basefn.Rastrigin,
		basefn.Sphere, basefn.Sphere,
		basefn.Weierstrass, basefn.Weierstrass,
		basefn.Griewank, basefn.Griewank,
	},
	lambda: []float64{2 * 5.0 / 32, 5.0 / 32, 2, 1, 2 * 5.0 / 100, 5.0 / 100, 20, 10, 2 * 5.0 / 60, 5.0 / 60},
	sigma:  []float64{1, 2, 1.5, 1.5, 1, 1, 1.5, 1.5, 2, 2},
}

// hybridF19 narrows the first component's basin (σ₁ = 0.1) and stretches
// its landscape to match; everything else follows F18.
var hybridF19 = hybridDef{
	fns:    hybridF18.fns,
	lambda: []float64{0.1 * 5.0 / 32, 5.0 / 32, 2, 1, 2 * 5.0 / 100, 5.0 / 100, 20, 10, 2 * 5.0 / 60, 5.0 / 60},
	sigma:  []float64{0.1, 2, 1.5, 1.5, 1, 1, 1.5, 1.5, 2, 2},
}

// Roster shared by F21, F22, and F23: two each of expanded Schaffer F6,
// Rastrigin, expanded Griewank+Rosenbrock, Weierstrass, and Griewank.
var hybridF21 = hybridDef{
	fns: []basefn.Func{
		basefn.ExpandedSchafferF6, basefn.ExpandedSchafferF6,
		basefn.Rastrigin, basefn.Rastrigin,
		basefn.ExpandedGriewankRosenbrock, basefn.ExpandedGriewankRosenbrock,
		basefn.Weierstrass, basefn.Weierstrass,
		basefn.Griewank, basefn.Griewank,
	},
	lambda: []float64{5 * 5.0 / 100, 5.0 / 100, 5, 1, 5, 1, 50, 10, 5 * 5.0 / 200, 5.0 / 200},
	sigma:  []float64{1, 1, 1, 1, 1, 2, 2, 2, 2, 2},
}

// Roster shared by F24 and F25: ten distinct landscapes, the last being
// the sphere with fitness noise (handled specially by the noisy
// assembly). The fns table carries its deterministic part.
var hybridF24 = hybridDef{
	fns: []basefn.Func{
		basefn.Weierstrass,
		basefn.ExpandedSchafferF6,
		basefn.ExpandedGriewankRosenbrock,
		basefn.Ackley,
		basefn.Rastrigin,
		basefn.Griewank,
		basefn.ExpandedSchafferF6NonCont,
		basefn.RastriginNonCont,
		basefn.Elliptic,
		basefn.Sphere, // noisy in assembly: f·(1 + 0.1|N(0,1)|)
	},
	lambda: []float64{10, 5.0 / 20, 1, 5.0 / 32, 1, 5.0 / 100, 5.0 / 50, 1, 5.0 / 100, 5.0 / 100},
	sigma:  []float64{2, 2, 2, 2, 2, 2, 2, 2, 2, 2},
}

// hybridDefs maps a hybrid id to its roster.
var hybridDefs = map[FuncID]hybridDef{
	F15: hybridF15,
	F16: hybridF15,
	F17: hybridF15,
	F18: hybridF18,
	F19: hybridF19,
	F20: hybridF18,
	F21: hybridF21,
	F22: hybridF21,
	F23: hybridF21,
	F24: hybridF24,
	F25: hybridF24,
}
