package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-rema/binned"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range got {
		require.InDeltaf(t, want[i], got[i], eps, "index %d", i)
	}
}

// RequireRowEqual fails t unless row i of m equals want exactly.
func RequireRowEqual(t *testing.T, m *binned.Matrix, i int, want []float64) {
	t.Helper()
	require.Equalf(t, want, m.Row(i), "row %d", i)
}
