package uncertainty

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-rema/internal/testutil"
)

func TestQuadratureKnownValues(t *testing.T) {
	dst := make([]float64, 2)
	require.NoError(t, Quadrature(dst, []float64{3, 0}, []float64{4, 0}))
	require.Equal(t, []float64{5, 0}, dst)

	dst = make([]float64, 3)
	require.NoError(t, Quadrature(dst, []float64{1, 2, 2}, []float64{2, 3, 4}, []float64{2, 6, 4}))
	testutil.RequireSliceNearlyEqual(t, dst, []float64{3, 7, 6}, 1e-12)
}

func TestQuadratureSingleArrayIsAbsoluteValue(t *testing.T) {
	a := []float64{-3, 0, 2.5, -1e-3, 1e10}
	dst := make([]float64, len(a))
	require.NoError(t, Quadrature(dst, a))
	for i, v := range a {
		require.Equalf(t, math.Abs(v), dst[i], "index %d", i)
	}
}

func TestQuadratureRepresentableRange(t *testing.T) {
	a := []float64{1e-150, -1e150, 1e-170, 1e160}
	dst := make([]float64, len(a))
	require.NoError(t, Quadrature(dst, a))

	require.InEpsilon(t, 1e-150, dst[0], 1e-12)
	require.InEpsilon(t, 1e150, dst[1], 1e-12)
	require.Zero(t, dst[2], "square underflows")
	require.True(t, math.IsInf(dst[3], 1), "square overflows")
}

func TestQuadratureEmptyListIsZero(t *testing.T) {
	dst := []float64{7, 8, 9}
	require.NoError(t, Quadrature(dst))
	require.Equal(t, []float64{0, 0, 0}, dst)
}

func TestQuadratureCommutativeAndAssociative(t *testing.T) {
	const n = 257
	a := testutil.DeterministicNoise(1, 5, n)
	b := testutil.DeterministicNoise(2, 50, n)
	c := testutil.DeterministicNoise(3, 0.5, n)

	abc := make([]float64, n)
	require.NoError(t, Quadrature(abc, a, b, c))

	cba := make([]float64, n)
	require.NoError(t, Quadrature(cba, c, b, a))
	testutil.RequireSliceNearlyEqual(t, cba, abc, 1e-12)

	ab := make([]float64, n)
	require.NoError(t, Quadrature(ab, a, b))
	nested := make([]float64, n)
	require.NoError(t, Quadrature(nested, ab, c))
	testutil.RequireSliceNearlyEqual(t, nested, abc, 1e-12)

	for i := range abc {
		want := math.Sqrt(a[i]*a[i] + b[i]*b[i] + c[i]*c[i])
		require.InDeltaf(t, want, abc[i], 1e-12, "index %d", i)
	}
}

func TestQuadratureLengthMismatch(t *testing.T) {
	dst := []float64{1, 1}
	err := Quadrature(dst, []float64{1, 2}, []float64{1})
	require.True(t, errors.Is(err, ErrLengthMismatch))
	require.Equal(t, []float64{1, 1}, dst, "dst must be untouched on error")
}
