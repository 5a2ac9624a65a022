package vec_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cec2005/vec"
	"github.com/stretchr/testify/require"
)

// mustRows builds a Dense from rows or stops the test.
func mustRows(t *testing.T, rows [][]float64) *vec.Dense[float64] {
	t.Helper()
	m, err := vec.FromRows(rows)
	require.NoError(t, err)

	return m
}

// TestShift_Basic checks elementwise subtraction and input isolation.
func TestShift_Basic(t *testing.T) {
	t.Parallel()

	x := []float64{10, 20, 30}
	o := []float64{1, 2, 3}
	y, err := vec.Shift(x, o)
	require.NoError(t, err)
	require.Equal(t, []float64{9, 18, 27}, y)
	require.Equal(t, []float64{10, 20, 30}, x, "input must not be mutated")
}

// TestShift_Invertible pins the round-trip property:
// shift(shift(x,o), -o) == x. Values are chosen exactly representable so
// the equality is bitwise.
func TestShift_Invertible(t *testing.T) {
	t.Parallel()

	x := []float64{1.5, -2.25, 0, 100, -0.5}
	o := []float64{4, 8.5, -3, 0.25, 16}

	shifted, err := vec.Shift(x, o)
	require.NoError(t, err)
	back, err := vec.Shift(shifted, vec.Neg(o))
	require.NoError(t, err)
	require.Equal(t, x, back, "shift then unshift must restore the input")
}

// TestShift_Errors covers nil operands and length disagreement.
func TestShift_Errors(t *testing.T) {
	t.Parallel()

	_, err := vec.Shift(nil, []float64{1})
	require.ErrorIs(t, err, vec.ErrNilMatrix)
	_, err = vec.Shift([]float64{1}, nil)
	require.ErrorIs(t, err, vec.ErrNilMatrix)
	_, err = vec.Shift([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, vec.ErrDimensionMismatch)
}

// TestNegScale covers the two scalar helpers.
func TestNegScale(t *testing.T) {
	t.Parallel()

	require.Equal(t, []float64{-1, 2, -0.5}, vec.Neg([]float64{1, -2, 0.5}))
	require.Nil(t, vec.Neg[float64](nil))
	require.Equal(t, []float64{2, -4, 1}, vec.Scale([]float64{1, -2, 0.5}, 2))
	require.Nil(t, vec.Scale[float64](nil, 3))
}

// TestRotate_Identity pins the property rotate(x, I) == x.
func TestRotate_Identity(t *testing.T) {
	t.Parallel()

	x := []float64{3, -1, 4, 1.5}
	eye, err := vec.Identity[float64](len(x))
	require.NoError(t, err)

	y, err := vec.Rotate(x, eye)
	require.NoError(t, err)
	require.Equal(t, x, y, "identity rotation must be the identity")
}

// TestRotate_Known checks a hand-computed 2×2 product.
func TestRotate_Known(t *testing.T) {
	t.Parallel()

	// Row-major: y_0 = 1*5 + 2*7 = 19; y_1 = 3*5 + 4*7 = 43.
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	y, err := vec.Rotate([]float64{5, 7}, m)
	require.NoError(t, err)
	require.Equal(t, []float64{19, 43}, y)
}

// TestRotate_Permutation verifies row-major orientation: a permutation
// matrix must reorder coordinates, not scramble them.
func TestRotate_Permutation(t *testing.T) {
	t.Parallel()

	// Maps (x0,x1,x2) to (x2,x0,x1).
	p := mustRows(t, [][]float64{
		{0, 0, 1},
		{1, 0, 0},
		{0, 1, 0},
	})
	y, err := vec.Rotate([]float64{10, 20, 30}, p)
	require.NoError(t, err)
	require.Equal(t, []float64{30, 10, 20}, y)
}

// TestRotate_Errors covers nil and shape failures.
func TestRotate_Errors(t *testing.T) {
	t.Parallel()

	square := mustRows(t, [][]float64{{1, 0}, {0, 1}})
	rect := mustRows(t, [][]float64{{1, 0, 0}, {0, 1, 0}})

	_, err := vec.Rotate[float64](nil, square)
	require.ErrorIs(t, err, vec.ErrNilMatrix)
	_, err = vec.Rotate([]float64{1, 2}, nil)
	require.ErrorIs(t, err, vec.ErrNilMatrix)
	_, err = vec.Rotate([]float64{1, 2}, rect)
	require.ErrorIs(t, err, vec.ErrDimensionMismatch, "non-square matrix must be rejected")
	_, err = vec.Rotate([]float64{1, 2, 3}, square)
	require.ErrorIs(t, err, vec.ErrDimensionMismatch, "vector length must match matrix dimension")
}

// TestValidators exercises the shared validators directly.
func TestValidators(t *testing.T) {
	t.Parallel()

	require.NoError(t, vec.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, vec.ValidateVecLen[float64](nil, 2), vec.ErrNilMatrix)
	require.ErrorIs(t, vec.ValidateVecLen([]float64{1}, 2), vec.ErrDimensionMismatch)

	require.NoError(t, vec.ValidateSameLen([]float64{1}, []float64{2}))
	require.ErrorIs(t, vec.ValidateSameLen([]float64{1}, []float64{1, 2}), vec.ErrDimensionMismatch)

	square := mustRows(t, [][]float64{{1, 0}, {0, 1}})
	require.NoError(t, vec.ValidateSquare(square, 2))
	require.ErrorIs(t, vec.ValidateSquare(square, 3), vec.ErrDimensionMismatch)
	require.ErrorIs(t, vec.ValidateSquare[float64](nil, 2), vec.ErrNilMatrix)
}

// TestValidateFinite rejects NaN and ±Inf entries.
func TestValidateFinite(t *testing.T) {
	t.Parallel()

	require.NoError(t, vec.ValidateFinite([]float64{0, -1e300, 1e300}))
	require.ErrorIs(t, vec.ValidateFinite([]float64{0, math.NaN()}), vec.ErrNaNInf)
	require.ErrorIs(t, vec.ValidateFinite([]float64{math.Inf(1), 0}), vec.ErrNaNInf)
}
