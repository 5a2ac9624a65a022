package hybrid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cec2005/hybrid"
	"github.com/stretchr/testify/require"
)

// TestOptions_Defaults pins the documented CEC2005 constants.
func TestOptions_Defaults(t *testing.T) {
	t.Parallel()

	require.Equal(t, 2000.0, hybrid.DefaultContributionScale)
	require.Equal(t, 10.0, hybrid.DefaultSuppressionExponent)
	require.Equal(t, 10, hybrid.ComponentCount)
}

// TestOptions_PanicsOnInvalid checks the programmer-error contract of
// the With* constructors.
func TestOptions_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		call func()
	}{
		{name: "scale_zero", call: func() { hybrid.WithContributionScale(0) }},
		{name: "scale_negative", call: func() { hybrid.WithContributionScale(-5) }},
		{name: "scale_nan", call: func() { hybrid.WithContributionScale(math.NaN()) }},
		{name: "scale_inf", call: func() { hybrid.WithContributionScale(math.Inf(1)) }},
		{name: "exponent_zero", call: func() { hybrid.WithSuppressionExponent(0) }},
		{name: "exponent_negative", call: func() { hybrid.WithSuppressionExponent(-1) }},
		{name: "exponent_nan", call: func() { hybrid.WithSuppressionExponent(math.NaN()) }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Panics(t, tc.call)
		})
	}
}

// TestOptions_ValidAccepted confirms valid overrides do not panic and
// NewOptions resolves without error.
func TestOptions_ValidAccepted(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		hybrid.NewOptions(
			hybrid.WithContributionScale(1000),
			hybrid.WithSuppressionExponent(8),
		)
	})
}
