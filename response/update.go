package response

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-rema/binned"
	"github.com/cwbudde/algo-rema/library"
)

// Update merges oldMatrix, which was built from oldLib, with the simulations
// in newLib.
//
// For each bin the closest simulation of both libraries is determined. If the
// new one is strictly closer, the row is rebuilt from it exactly as Build
// would. Otherwise the row of oldMatrix is copied unchanged and the particle
// count of the old simulation is kept. An empty library, or one without a
// finite energy, never wins a bin; a bin neither library can serve aborts the
// update.
func (b *Builder) Update(ctx context.Context, oldLib library.Library, oldMatrix *binned.Matrix,
	newLib library.Library, spectrum string,
) (*binned.Matrix, *binned.Array, error) {
	n := b.cfg.Bins
	if oldMatrix == nil {
		return nil, nil, fmt.Errorf("response: update: no old matrix: %w", binned.ErrDimensionMismatch)
	}
	if oldMatrix.N() != n {
		return nil, nil, fmt.Errorf("response: update: old matrix is %dx%d, want %dx%d: %w",
			oldMatrix.N(), oldMatrix.N(), n, n, binned.ErrDimensionMismatch)
	}
	if len(oldLib) == 0 && len(newLib) == 0 {
		return nil, nil, fmt.Errorf("response: update: %w", library.ErrEmptyLibrary)
	}

	log := b.cfg.Logger
	start := time.Now()
	log.Info("Updating matrix",
		zap.Int("bins", n),
		zap.Int("old_simulations", len(oldLib)),
		zap.Int("new_simulations", len(newLib)),
		zap.String("spectrum", spectrum))

	m := binned.NewMatrix(n)
	particles := binned.NewArray(n)
	var rebuilt atomic.Int64

	err := b.forEachBin(ctx, func(ctx context.Context, i int) error {
		// A library without a match reports Index -1 and an infinite distance.
		oldMatch, _ := oldLib.Nearest(i)
		newMatch, _ := newLib.Nearest(i)
		if !oldMatch.Found() && !newMatch.Found() {
			return fmt.Errorf("response: bin %d: %w", i, library.ErrNoFiniteEnergy)
		}

		if newMatch.Found() && (!oldMatch.Found() || newMatch.Abs() < oldMatch.Abs()) {
			e := newLib[newMatch.Index]
			log.Debug("Using new simulation",
				zap.Int("bin", i),
				zap.String("source", e.Source),
				zap.Float64("energy", e.Energy),
				zap.Int("shift", newMatch.Shift()))

			if err := b.fillRow(ctx, m.Row(i), e.Source, spectrum, newMatch.Shift()); err != nil {
				return fmt.Errorf("response: bin %d: %w", i, err)
			}
			particles.Set(i, e.Particles)
			rebuilt.Add(1)
			return nil
		}

		e := oldLib[oldMatch.Index]
		log.Debug("Keeping old simulation",
			zap.Int("bin", i),
			zap.Float64("energy", e.Energy))

		copy(m.Row(i), oldMatrix.Row(i))
		particles.Set(i, e.Particles)
		return nil
	})
	if err != nil {
		log.Error("Matrix update aborted", zap.Error(err))
		return nil, nil, err
	}

	log.Info("Matrix updated",
		zap.Int64("rows_rebuilt", rebuilt.Load()),
		zap.Duration("elapsed", time.Since(start)))
	return m, particles, nil
}
