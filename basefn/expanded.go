// Package basefn: Schaffer's F6 and the expanded (pairwise cyclic)
// landscapes used by the hybrid compositions.

package basefn

import "math"

// schafferF6Pair evaluates Schaffer's F6 on one coordinate pair.
func schafferF6Pair(a, b float64) float64 {
	ss := a*a + b*b
	s := math.Sin(math.Sqrt(ss))
	den := 1 + 0.001*ss

	return 0.5 + (s*s-0.5)/(den*den)
}

// SchafferF6 is the two-dimensional Schaffer F6 function.
// Global minimum 0 at the origin. Panics unless len(x) == 2.
func SchafferF6(x []float64) float64 {
	if len(x) != 2 {
		panic("basefn: SchafferF6 is defined for dimension 2 only")
	}

	return schafferF6Pair(x[0], x[1])
}

// ExpandedSchafferF6 chains Schaffer's F6 over cyclic coordinate pairs:
// F(x₁,x₂) + F(x₂,x₃) + … + F(x_D,x₁). Global minimum 0 at the origin.
func ExpandedSchafferF6(x []float64) float64 {
	d := len(x)
	var sum float64
	for i := 0; i < d; i++ {
		sum += schafferF6Pair(x[i], x[(i+1)%d])
	}

	return sum
}

// ExpandedSchafferF6NonCont is ExpandedSchafferF6 on the half-unit grid
// snap of its argument (see NonCont).
func ExpandedSchafferF6NonCont(x []float64) float64 {
	return ExpandedSchafferF6(NonCont(x))
}

// ExpandedGriewankRosenbrock (F8F2) chains Griewank over the scalar
// Rosenbrock of cyclic coordinate pairs:
// Σ F8(F2(x_i, x_{i+1})) with F2(a,b) = 100(a²−b)² + (a−1)² and
// F8(s) = s²/4000 − cos(s) + 1. Global minimum 0 at (1, …, 1); callers
// wire z = x − o + 1 like plain Rosenbrock.
func ExpandedGriewankRosenbrock(x []float64) float64 {
	d := len(x)
	var sum float64
	for i := 0; i < d; i++ {
		a, b := x[i], x[(i+1)%d]
		t := a*a - b
		f2 := 100*t*t + (a-1)*(a-1)
		sum += f2*f2/4000 - math.Cos(f2) + 1
	}

	return sum
}
