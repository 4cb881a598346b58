package store

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-rema/binned"
)

// Object names used for a persisted response matrix.
const (
	MatrixObject    = "rema"
	ParticlesObject = "n_simulated_particles"
)

// WriteMatrix writes m and its simulated-particle counts to a new container
// at path, replacing any existing file.
func WriteMatrix(ctx context.Context, path string, m *binned.Matrix, particles *binned.Array) (err error) {
	if particles.Len() != m.N() {
		return fmt.Errorf("%w: matrix is %dx%d, particle counts have %d bins",
			binned.ErrDimensionMismatch, m.N(), m.N(), particles.Len())
	}

	c, err := Create(ctx, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}()

	if err := c.PutMatrix(ctx, MatrixObject, m); err != nil {
		return err
	}
	return c.PutArray(ctx, ParticlesObject, particles.Values())
}

// ReadMatrix reads a response matrix and its simulated-particle counts.
// Both objects must be present.
func ReadMatrix(ctx context.Context, path string) (*binned.Matrix, *binned.Array, error) {
	c, err := Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	defer c.Close()

	m, err := c.Matrix(ctx, MatrixObject)
	if err != nil {
		return nil, nil, err
	}
	p, err := c.Array(ctx, ParticlesObject)
	if err != nil {
		return nil, nil, err
	}
	return m, binned.ArrayFrom(p), nil
}

// ReadMatrixOnly reads a response matrix without its particle counts.
func ReadMatrixOnly(ctx context.Context, path string) (*binned.Matrix, error) {
	c, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	return c.Matrix(ctx, MatrixObject)
}

// ReadSpectrum reads the named 1-D spectrum from the container at path.
func ReadSpectrum(ctx context.Context, path, name string) (*binned.Array, error) {
	c, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	v, err := c.Array(ctx, name)
	if err != nil {
		return nil, err
	}
	return binned.ArrayFrom(v), nil
}
