// SPDX-License-Identifier: MIT
// Package suite: benchmark identifiers.

package suite

import "fmt"

// FuncID identifies one of the twenty-five CEC2005 benchmark functions.
// The zero value is invalid; valid ids run F1 through F25.
type FuncID int

// The CEC2005 benchmark functions.
const (
	F1  FuncID = iota + 1 // shifted sphere
	F2                    // shifted Schwefel 1.2
	F3                    // shifted rotated high conditioned elliptic
	F4                    // shifted Schwefel 1.2 with fitness noise
	F5                    // Schwefel 2.6 with global optimum on bounds
	F6                    // shifted Rosenbrock
	F7                    // shifted rotated Griewank without bounds
	F8                    // shifted rotated Ackley with optimum on bounds
	F9                    // shifted Rastrigin
	F10                   // shifted rotated Rastrigin
	F11                   // shifted rotated Weierstrass
	F12                   // Schwefel 2.13
	F13                   // shifted expanded Griewank plus Rosenbrock
	F14                   // shifted rotated expanded Schaffer F6
	F15                   // hybrid composition
	F16                   // rotated hybrid composition
	F17                   // rotated hybrid composition with fitness noise
	F18                   // rotated hybrid composition
	F19                   // rotated hybrid composition, narrow basin
	F20                   // rotated hybrid composition, optimum on bounds
	F21                   // rotated hybrid composition
	F22                   // rotated hybrid composition, high condition number
	F23                   // non-continuous rotated hybrid composition
	F24                   // rotated hybrid composition with a noisy component
	F25                   // F24 without bounds

	funcCount = 25
)

// Valid reports whether id names one of the twenty-five benchmarks.
func (id FuncID) Valid() bool { return id >= F1 && id <= F25 }

// Stochastic reports whether the benchmark consumes randomness by
// definition: fitness noise for F4 and F17, a noisy composition
// component for F24 and F25. Stochastic ids are built with NewNoisy.
func (id FuncID) Stochastic() bool {
	return id == F4 || id == F17 || id == F24 || id == F25
}

// String returns the conventional short name, "F1" through "F25".
func (id FuncID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("FuncID(%d)", int(id))
	}

	return fmt.Sprintf("F%d", int(id))
}

// Name returns the published descriptive name of the benchmark, or ""
// for an invalid id.
func (id FuncID) Name() string {
	if !id.Valid() {
		return ""
	}

	return defs[id].name
}
