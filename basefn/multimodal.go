// Package basefn: multimodal landscapes (Griewank, Ackley, Rastrigin,
// Weierstrass).

package basefn

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Weierstrass series parameters fixed by the CEC2005 definition.
const (
	weierstrassA    = 0.5
	weierstrassB    = 3.0
	weierstrassKMax = 20
)

// Griewank returns Σ x_i²/4000 − Π cos(x_i/√(i+1)) + 1.
// Global minimum 0 at the origin.
func Griewank(x []float64) float64 {
	sum := floats.Dot(x, x) / 4000
	prod := 1.0
	for i, v := range x {
		prod *= math.Cos(v / math.Sqrt(float64(i+1)))
	}

	return sum - prod + 1
}

// Ackley returns
// −20·exp(−0.2·√(Σx²/D)) − exp(Σcos(2πx_i)/D) + 20 + e.
// Global minimum 0 at the origin.
func Ackley(x []float64) float64 {
	d := float64(len(x))
	sumSq := floats.Dot(x, x)
	var sumCos float64
	for _, v := range x {
		sumCos += math.Cos(twoPi * v)
	}

	return -20*math.Exp(-0.2*math.Sqrt(sumSq/d)) - math.Exp(sumCos/d) + 20 + math.E
}

// Rastrigin returns Σ (x_i² − 10cos(2πx_i) + 10).
// Global minimum 0 at the origin.
func Rastrigin(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v*v - 10*math.Cos(twoPi*v) + 10
	}

	return sum
}

// RastriginNonCont is Rastrigin evaluated on the half-unit grid snap of
// its argument (see NonCont). Global minimum 0 at the origin.
func RastriginNonCont(x []float64) float64 {
	return Rastrigin(NonCont(x))
}

// Weierstrass returns the CEC2005 Weierstrass function with a=0.5, b=3,
// kmax=20:
//
//	Σ_i Σ_k a^k·cos(2π·b^k·(x_i+0.5)) − D·Σ_k a^k·cos(π·b^k)
//
// Global minimum 0 at the origin. The k-sums are short (21 terms) and
// the constant second term depends only on D, so it is folded in one
// pass.
func Weierstrass(x []float64) float64 {
	// Precompute a^k and 2π·b^k once per call; 21 terms each.
	var ak, bk [weierstrassKMax + 1]float64
	ak[0], bk[0] = 1, twoPi
	for k := 1; k <= weierstrassKMax; k++ {
		ak[k] = ak[k-1] * weierstrassA
		bk[k] = bk[k-1] * weierstrassB
	}

	var sum float64
	for _, v := range x {
		for k := 0; k <= weierstrassKMax; k++ {
			sum += ak[k] * math.Cos(bk[k]*(v+0.5))
		}
	}
	var center float64
	for k := 0; k <= weierstrassKMax; k++ {
		center += ak[k] * math.Cos(bk[k]*0.5)
	}

	return sum - float64(len(x))*center
}
