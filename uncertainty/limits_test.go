package uncertainty

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLimits(t *testing.T) {
	values := []float64{10, 1, 0}
	unc := []float64{2, 3, 0.5}

	low, up, err := Limits(values, unc, false)
	require.NoError(t, err)
	require.Equal(t, []float64{8, -2, -0.5}, low)
	require.Equal(t, []float64{12, 4, 0.5}, up)

	low, _, err = Limits(values, unc, true)
	require.NoError(t, err)
	require.Equal(t, []float64{8, 0, 0}, low)

	_, _, err = Limits(values, unc[:2], true)
	require.True(t, errors.Is(err, ErrLengthMismatch))
}
