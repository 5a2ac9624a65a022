package basefn_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cec2005/basefn"
	"github.com/katalvlaran/cec2005/randx"
	"github.com/stretchr/testify/require"
)

// TestGlobalMinima pins every landscape to value 0 at its documented
// optimum.
func TestGlobalMinima(t *testing.T) {
	t.Parallel()

	zeros := []float64{0, 0, 0, 0, 0}
	ones := []float64{1, 1, 1, 1, 1}

	tests := []struct {
		name  string
		fn    basefn.Func
		at    []float64
		delta float64
	}{
		{name: "sphere", fn: basefn.Sphere, at: zeros},
		{name: "elliptic", fn: basefn.Elliptic, at: zeros},
		{name: "schwefel_1_2", fn: basefn.SchwefelDoubleSum, at: zeros},
		{name: "schwefel_2_21", fn: basefn.SchwefelAbsMax, at: zeros},
		{name: "rosenbrock", fn: basefn.Rosenbrock, at: ones},
		{name: "griewank", fn: basefn.Griewank, at: zeros},
		{name: "ackley", fn: basefn.Ackley, at: zeros, delta: 1e-12},
		{name: "rastrigin", fn: basefn.Rastrigin, at: zeros},
		{name: "rastrigin_noncont", fn: basefn.RastriginNonCont, at: zeros},
		{name: "weierstrass", fn: basefn.Weierstrass, at: zeros, delta: 1e-9},
		{name: "expanded_schaffer", fn: basefn.ExpandedSchafferF6, at: zeros},
		{name: "expanded_f8f2", fn: basefn.ExpandedGriewankRosenbrock, at: ones},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tc.fn(tc.at)
			if tc.delta == 0 {
				require.Equal(t, 0.0, got, "minimum value")

				return
			}
			require.InDelta(t, 0.0, got, tc.delta, "minimum value")
		})
	}
}

// TestKnownValues checks hand-computed points.
func TestKnownValues(t *testing.T) {
	t.Parallel()

	require.Equal(t, 14.0, basefn.Sphere([]float64{1, 2, 3}))
	require.Equal(t, 46.0, basefn.SchwefelDoubleSum([]float64{1, 2, 3}))
	require.Equal(t, 7.0, basefn.SchwefelAbsMax([]float64{1, -7, 3}))
	require.Equal(t, 9.0, basefn.Elliptic([]float64{3}), "D=1 degenerates to x²")
	require.Equal(t, 4.0+9e6, basefn.Elliptic([]float64{2, 3}), "D=2 endpoints are exact powers")
	require.Equal(t, 1.0, basefn.Rosenbrock([]float64{0, 0}))
	require.Equal(t, 14410.0, basefn.Rosenbrock([]float64{2, 4, 4}))
	require.Equal(t, 0.0, basefn.Rosenbrock([]float64{5}), "single coordinate has no pair terms")
}

// TestSymmetry checks the even landscapes are unchanged under negation.
func TestSymmetry(t *testing.T) {
	t.Parallel()

	x := []float64{1.3, -2.7, 0.4, 5.1}
	neg := make([]float64, len(x))
	for i, v := range x {
		neg[i] = -v
	}

	for _, tc := range []struct {
		name string
		fn   basefn.Func
	}{
		{name: "sphere", fn: basefn.Sphere},
		{name: "elliptic", fn: basefn.Elliptic},
		{name: "griewank", fn: basefn.Griewank},
		{name: "ackley", fn: basefn.Ackley},
		{name: "rastrigin", fn: basefn.Rastrigin},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.fn(x), tc.fn(neg), "f(x) must equal f(-x)")
		})
	}
}

// TestSchafferF6 covers the 2-D base case and its expansion identity.
func TestSchafferF6(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.0, basefn.SchafferF6([]float64{0, 0}))
	require.Equal(t,
		basefn.SchafferF6([]float64{3, 4}),
		basefn.SchafferF6([]float64{4, 3}),
		"F6 depends only on the pair's norm")

	// The 2-D expansion visits (x1,x2) and (x2,x1).
	require.Equal(t,
		2*basefn.SchafferF6([]float64{3, 4}),
		basefn.ExpandedSchafferF6([]float64{3, 4}))

	require.Panics(t, func() { basefn.SchafferF6([]float64{1, 2, 3}) })
}

// TestNonCont pins the half-unit grid transform.
func TestNonCont(t *testing.T) {
	t.Parallel()

	got := basefn.NonCont([]float64{0.49, -0.49, 0.74, 0.76, -1.3})
	require.Equal(t, []float64{0.49, -0.49, 0.5, 1.0, -1.5}, got)

	// Halves snap away from zero.
	require.Equal(t, 1.0, basefn.RoundHalf(0.75))
	require.Equal(t, -1.0, basefn.RoundHalf(-0.75))

	// The non-continuous Rastrigin is plain Rastrigin on the snapped point.
	x := []float64{0.4, 0.6}
	require.Equal(t,
		basefn.Rastrigin([]float64{0.4, 0.5}),
		basefn.RastriginNonCont(x))
}

// TestNoisy verifies the noise model and its reproducibility.
func TestNoisy(t *testing.T) {
	t.Parallel()

	x := []float64{1, 2, 3}
	noisy := basefn.Noisy(basefn.Sphere, 0.4)

	// Identical source states must resolve identically.
	a := noisy(x).Resolve(randx.FromSeed(5))
	b := noisy(x).Resolve(randx.FromSeed(5))
	require.Equal(t, a, b)

	// The realized value is fn(x)·(1+0.4|N|) with N from the same stream.
	want := basefn.Sphere(x) * (1 + 0.4*math.Abs(randx.FromSeed(5).NormFloat64()))
	require.Equal(t, want, a)

	// Zero amplitude degenerates to the deterministic value.
	flat := basefn.Noisy(basefn.Sphere, 0)
	require.Equal(t, basefn.Sphere(x), flat(x).Resolve(randx.FromSeed(9)))

	// Noise always inflates a positive landscape.
	require.GreaterOrEqual(t, a, basefn.Sphere(x))
}
