package suite_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cec2005/hybrid"
	"github.com/katalvlaran/cec2005/randx"
	"github.com/katalvlaran/cec2005/suite"
	"github.com/katalvlaran/cec2005/vec"
	"github.com/stretchr/testify/require"
)

const testDim = 10

// mustStore builds the synthetic store all black-box tests share.
func mustStore(t *testing.T, dim int) *suite.StaticStore {
	t.Helper()
	s, err := suite.SyntheticStore(dim, randx.FromSeed(2005))
	require.NoError(t, err)

	return s
}

// deterministicIDs lists the twenty-one non-noisy benchmarks.
func deterministicIDs() []suite.FuncID {
	var ids []suite.FuncID
	for id := suite.F1; id <= suite.F25; id++ {
		if !id.Stochastic() {
			ids = append(ids, id)
		}
	}

	return ids
}

// TestNew_AllDeterministic constructs every deterministic benchmark and
// checks its metadata surface.
func TestNew_AllDeterministic(t *testing.T) {
	t.Parallel()

	store := mustStore(t, testDim)
	for _, id := range deterministicIDs() {
		id := id
		t.Run(id.String(), func(t *testing.T) {
			t.Parallel()
			f, err := suite.New(id, testDim, store)
			require.NoError(t, err)
			require.Equal(t, id, f.ID())
			require.Equal(t, testDim, f.Dim())
			require.Equal(t, id.Name(), f.Name())

			b := f.Bounds()
			if b.Bounded {
				require.Less(t, b.Lower, b.Upper)
			} else {
				require.Less(t, b.InitLower, b.InitUpper)
			}
		})
	}
}

// TestEvaluate_AtOptimum pins the central published property: every
// deterministic benchmark evaluates to exactly its fbias at the global
// optimum the synthetic data encodes (the generated offset, α for F12,
// the first component offset for the hybrids).
func TestEvaluate_AtOptimum(t *testing.T) {
	t.Parallel()

	store := mustStore(t, testDim)
	for _, id := range deterministicIDs() {
		id := id
		t.Run(id.String(), func(t *testing.T) {
			t.Parallel()
			f, err := suite.New(id, testDim, store)
			require.NoError(t, err)

			p, err := store.Params(id, testDim)
			require.NoError(t, err)
			optimum := p.Offset
			if optimum == nil {
				optimum = p.Offsets[0]
			}

			got, err := f.Evaluate(optimum)
			require.NoError(t, err)
			require.InDelta(t, f.Bias(), got, 1e-8, "value at the optimum must be fbias")
		})
	}
}

// TestEvaluate_AboveBias checks that off-optimum points never fall
// below fbias: every landscape in the suite is non-negative before the
// bias is added.
func TestEvaluate_AboveBias(t *testing.T) {
	t.Parallel()

	store := mustStore(t, testDim)
	x := make([]float64, testDim)
	for i := range x {
		x[i] = 0.25 * float64(i%4)
	}

	for _, id := range deterministicIDs() {
		id := id
		t.Run(id.String(), func(t *testing.T) {
			t.Parallel()
			f, err := suite.New(id, testDim, store)
			require.NoError(t, err)
			got, err := f.Evaluate(x)
			require.NoError(t, err)
			require.GreaterOrEqual(t, got, f.Bias()-1e-9)
		})
	}
}

// TestNew_Validation covers the constructor gates.
func TestNew_Validation(t *testing.T) {
	t.Parallel()

	store := mustStore(t, testDim)

	_, err := suite.New(suite.FuncID(0), testDim, store)
	require.ErrorIs(t, err, suite.ErrUnknownFunction)
	_, err = suite.New(suite.F4, testDim, store)
	require.ErrorIs(t, err, suite.ErrStochastic)
	_, err = suite.New(suite.F1, 0, store)
	require.ErrorIs(t, err, suite.ErrBadDimension)
	_, err = suite.New(suite.F1, testDim, nil)
	require.ErrorIs(t, err, suite.ErrNilStore)
	_, err = suite.New(suite.F1, testDim+1, store)
	require.ErrorIs(t, err, suite.ErrMissingParams, "the store only covers testDim")
}

// TestNew_IncompleteParams verifies the assembly rejects malformed
// store data before any evaluation.
func TestNew_IncompleteParams(t *testing.T) {
	t.Parallel()

	src := randx.FromSeed(8)
	rot, err := vec.RandomOrthogonal(testDim, src)
	require.NoError(t, err)

	tests := []struct {
		name string
		id   suite.FuncID
		p    suite.Params
		want error
	}{
		{name: "f1_no_offset", id: suite.F1, p: suite.Params{}, want: suite.ErrMissingParams},
		{
			name: "f1_short_offset",
			id:   suite.F1,
			p:    suite.Params{Offset: []float64{1, 2}},
			want: vec.ErrDimensionMismatch,
		},
		{
			name: "f3_no_rotation",
			id:   suite.F3,
			p:    suite.Params{Offset: make([]float64, testDim)},
			want: vec.ErrNilMatrix,
		},
		{
			name: "f5_no_system",
			id:   suite.F5,
			p:    suite.Params{Offset: make([]float64, testDim)},
			want: vec.ErrNilMatrix,
		},
		{
			name: "f15_wrong_component_count",
			id:   suite.F15,
			p:    suite.Params{Offsets: make([][]float64, 9)},
			want: suite.ErrMissingParams,
		},
		{
			name: "f12_no_matrices",
			id:   suite.F12,
			p:    suite.Params{Offset: make([]float64, testDim), Rotation: rot},
			want: vec.ErrNilMatrix,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := suite.NewStaticStore()
			s.Put(tc.id, testDim, tc.p)
			_, err := suite.New(tc.id, testDim, s)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestEvaluate_InputPolicy checks the shared point validation on a
// plain and a hybrid benchmark.
func TestEvaluate_InputPolicy(t *testing.T) {
	t.Parallel()

	store := mustStore(t, testDim)
	for _, id := range []suite.FuncID{suite.F1, suite.F21} {
		id := id
		t.Run(id.String(), func(t *testing.T) {
			t.Parallel()
			f, err := suite.New(id, testDim, store)
			require.NoError(t, err)

			_, err = f.Evaluate(nil)
			require.ErrorIs(t, err, vec.ErrNilMatrix)
			_, err = f.Evaluate(make([]float64, testDim-1))
			require.ErrorIs(t, err, vec.ErrDimensionMismatch)
			bad := make([]float64, testDim)
			bad[3] = math.NaN()
			_, err = f.Evaluate(bad)
			require.ErrorIs(t, err, vec.ErrNaNInf)
		})
	}
}

// TestF1_KnownValue hand-checks the simplest assembly: shifted sphere
// plus bias.
func TestF1_KnownValue(t *testing.T) {
	t.Parallel()

	const dim = 3
	s := suite.NewStaticStore()
	s.Put(suite.F1, dim, suite.Params{Offset: []float64{1, 2, 3}})
	f, err := suite.New(suite.F1, dim, s)
	require.NoError(t, err)

	// z = (1,1,1), sphere = 3, fbias = −450.
	got, err := f.Evaluate([]float64{2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 3.0-450, got)
}

// TestF6_OptimumOnOffset pins the z = x − o + 1 wiring: the Rosenbrock
// optimum must sit on the offset itself, not one unit away.
func TestF6_OptimumOnOffset(t *testing.T) {
	t.Parallel()

	const dim = 4
	o := []float64{3, -2, 0.5, 7}
	s := suite.NewStaticStore()
	s.Put(suite.F6, dim, suite.Params{Offset: o})
	f, err := suite.New(suite.F6, dim, s)
	require.NoError(t, err)

	got, err := f.Evaluate(o)
	require.NoError(t, err)
	require.Equal(t, 390.0, got, "F6 at its offset must be exactly fbias")
}

// TestF23_NonContinuity verifies the half-unit snap: two points that
// snap to the same grid cell must evaluate identically, while the
// anchor's immediate neighborhood stays continuous.
func TestF23_NonContinuity(t *testing.T) {
	t.Parallel()

	store := mustStore(t, testDim)
	f, err := suite.New(suite.F23, testDim, store)
	require.NoError(t, err)

	p, err := store.Params(suite.F23, testDim)
	require.NoError(t, err)
	anchor := p.Offsets[0]

	// Two points far from the anchor in every coordinate, both snapping
	// onto the same half-unit grid points.
	a := make([]float64, testDim)
	b := make([]float64, testDim)
	for i := range a {
		a[i] = anchor[i] + 2.1
		b[i] = anchor[i] + 2.1
	}
	a[0] = anchor[0] + 2.04
	b[0] = anchor[0] + 1.96
	// Snap both to the grid only if they land on the same cell; build
	// them so they do: both round to the same half-unit.
	a[0] = math.Round(2*a[0])/2 + 0.2
	b[0] = a[0] + 0.049 // still rounds to the same half-unit

	va, err := f.Evaluate(a)
	require.NoError(t, err)
	vb, err := f.Evaluate(b)
	require.NoError(t, err)
	require.Equal(t, va, vb, "points snapping to one grid cell must evaluate identically")
}

// TestHybrid_ComponentCountConstant keeps the suite and engine arities
// in lockstep.
func TestHybrid_ComponentCountConstant(t *testing.T) {
	t.Parallel()

	require.Equal(t, 10, hybrid.ComponentCount)
}
