// Package basefn: unimodal landscapes (sphere, elliptic, Schwefel 1.2
// and 2.21, Rosenbrock).

package basefn

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ellipticCondition is the axis condition number of the high conditioned
// elliptic function.
const ellipticCondition = 1e6

// Sphere returns Σ x_i². Global minimum 0 at the origin.
func Sphere(x []float64) float64 {
	return floats.Dot(x, x)
}

// Elliptic returns the high conditioned elliptic function
// Σ (10⁶)^(i/(D−1))·x_i². Global minimum 0 at the origin. For D=1 the
// exponent is taken as 0 and the function degenerates to x₀².
func Elliptic(x []float64) float64 {
	d := len(x)
	if d == 1 {
		return x[0] * x[0]
	}
	var sum float64
	for i, v := range x {
		sum += math.Pow(ellipticCondition, float64(i)/float64(d-1)) * v * v
	}

	return sum
}

// SchwefelDoubleSum returns Schwefel's problem 1.2,
// Σ_i (Σ_{j≤i} x_j)². Global minimum 0 at the origin.
func SchwefelDoubleSum(x []float64) float64 {
	var sum, prefix float64
	for _, v := range x {
		prefix += v
		sum += prefix * prefix
	}

	return sum
}

// SchwefelAbsMax returns Schwefel's problem 2.21, max_i |x_i|.
// Global minimum 0 at the origin.
func SchwefelAbsMax(x []float64) float64 {
	var m float64
	for _, v := range x {
		if a := math.Abs(v); a > m {
			m = a
		}
	}

	return m
}

// Rosenbrock returns Σ_{i<D−1} [100(x_i² − x_{i+1})² + (x_i − 1)²].
// Global minimum 0 at (1, …, 1). The shifted benchmark wires z = x − o + 1
// so the optimum lands on its published offset.
func Rosenbrock(x []float64) float64 {
	var sum float64
	for i := 0; i+1 < len(x); i++ {
		a := x[i]*x[i] - x[i+1]
		b := x[i] - 1
		sum += 100*a*a + b*b
	}

	return sum
}
