package vec_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/cec2005/randx"
	"github.com/katalvlaran/cec2005/vec"
	"github.com/stretchr/testify/require"
)

// TestRandomOrthogonal_IsOrthogonal checks Q·Qᵀ = I to tolerance at a
// few dimensions.
func TestRandomOrthogonal_IsOrthogonal(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 5, 10} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			q, err := vec.RandomOrthogonal(n, randx.FromSeed(31))
			require.NoError(t, err)

			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					// Dot product of rows i and j.
					var dot float64
					for k := 0; k < n; k++ {
						a, err := q.At(i, k)
						require.NoError(t, err)
						b, err := q.At(j, k)
						require.NoError(t, err)
						dot += a * b
					}
					want := 0.0
					if i == j {
						want = 1
					}
					require.InDelta(t, want, dot, 1e-12, "row dot (%d,%d)", i, j)
				}
			}
		})
	}
}

// TestRandomOrthogonal_Deterministic pins the source-state contract.
func TestRandomOrthogonal_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := vec.RandomOrthogonal(6, randx.FromSeed(99))
	require.NoError(t, err)
	b, err := vec.RandomOrthogonal(6, randx.FromSeed(99))
	require.NoError(t, err)
	require.Equal(t, a.String(), b.String(), "same seed must give the same matrix")

	c, err := vec.RandomOrthogonal(6, randx.FromSeed(100))
	require.NoError(t, err)
	require.NotEqual(t, a.String(), c.String())
}

// TestRandomOrthogonal_PreservesNorm verifies the defining property on
// the Rotate path: rotation must not change a vector's length.
func TestRandomOrthogonal_PreservesNorm(t *testing.T) {
	t.Parallel()

	const n = 8
	q, err := vec.RandomOrthogonal(n, randx.FromSeed(5))
	require.NoError(t, err)

	x := []float64{3, -1, 4, 1, -5, 9, 2, -6}
	y, err := vec.Rotate(x, q)
	require.NoError(t, err)

	norm := func(v []float64) float64 {
		var s float64
		for _, e := range v {
			s += e * e
		}

		return s
	}
	require.InDelta(t, norm(x), norm(y), 1e-9)
}

// TestRandomOrthogonal_BadDimension rejects non-positive n.
func TestRandomOrthogonal_BadDimension(t *testing.T) {
	t.Parallel()

	_, err := vec.RandomOrthogonal(0, nil)
	require.ErrorIs(t, err, vec.ErrBadShape)
	_, err = vec.RandomOrthogonal(-3, nil)
	require.ErrorIs(t, err, vec.ErrBadShape)
}
