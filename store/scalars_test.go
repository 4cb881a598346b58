package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestScalarsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.txt")
	values := []float64{1, 2.5, -3e-7, 1e12}

	require.NoError(t, WriteScalars(path, values))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "1\t2.5\t-3e-07\t1e+12\n", string(data))

	got, err := ReadScalars(path)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestIntScalarsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limits.txt")
	require.NoError(t, WriteIntScalars(path, []int{100, 9000}))

	got, err := ReadIntScalars(path)
	require.NoError(t, err)
	require.Equal(t, []int{100, 9000}, got)
}

func TestReadScalarsOnlyFirstLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.txt")
	require.NoError(t, os.WriteFile(path, []byte("1  2\t3\n4 5\n"), 0o644))

	got, err := ReadScalars(path)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, got)
}

func TestReadScalarsMissingFile(t *testing.T) {
	got, err := ReadScalars(filepath.Join(t.TempDir(), "missing.txt"))
	require.Nil(t, got)
	require.True(t, errors.Is(err, fs.ErrNotExist))

	ints, err := ReadIntScalars(filepath.Join(t.TempDir(), "missing.txt"))
	require.Nil(t, ints)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestReadIntScalarsRejectsFloats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2.5\n"), 0o644))

	_, err := ReadIntScalars(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "field 2")
}

func TestReadTextSpectrum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n\n3.5\n4\n5\n"), 0o644))

	spec, err := ReadTextSpectrum(path, 4)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 3.5, 4}, spec.Values())

	_, err = ReadTextSpectrum(filepath.Join(t.TempDir(), "missing.txt"), 4)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestWriteCorrelationMatrix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corr.txt")
	m := mat.NewSymDense(3, []float64{
		1, 0.5, -0.25,
		0.5, 1, 0,
		-0.25, 0, 1,
	})

	require.NoError(t, WriteCorrelationMatrix(path, m))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "1\t0.5\t-0.25\n0.5\t1\t0\n-0.25\t0\t1\n", string(data))
}

func TestCorrelationFromCovariance(t *testing.T) {
	cov := mat.NewSymDense(3, []float64{
		4, 3, 0,
		3, 9, 1,
		0, 1, 0,
	})

	corr := CorrelationFromCovariance(cov)
	require.Equal(t, 1.0, corr.At(0, 0))
	require.Equal(t, 1.0, corr.At(1, 1))
	require.Equal(t, 0.5, corr.At(0, 1))
	require.Equal(t, 0.5, corr.At(1, 0))
	require.Equal(t, 0.0, corr.At(2, 2), "zero variance yields zero correlation")
	require.Equal(t, 0.0, corr.At(1, 2))
}
