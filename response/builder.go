package response

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-rema/binned"
	"github.com/cwbudde/algo-rema/library"
)

// Loader reads the spectrum called name from a simulation source into dst.
// Implementations must release any resource they acquire before returning.
type Loader interface {
	Load(ctx context.Context, source, name string, dst *binned.Array) error
}

// Builder creates and updates response matrices.
type Builder struct {
	cfg    Config
	loader Loader
	pool   *binned.Pool
}

// NewBuilder returns a Builder that reads simulated spectra through loader.
func NewBuilder(loader Loader, opts ...Option) *Builder {
	return &Builder{
		cfg:    ApplyOptions(opts...),
		loader: loader,
		pool:   binned.NewPool(),
	}
}

// Config returns the effective configuration.
func (b *Builder) Config() Config {
	return b.cfg
}

// Build creates a response matrix from lib. Row i is the spectrum called
// spectrum of the simulation closest in energy to bin i, shifted by the
// truncated signed distance. The returned array holds the simulated-particle
// count of the simulation used for each row.
//
// If any selected source lacks the spectrum the whole build fails and no
// matrix is returned.
func (b *Builder) Build(ctx context.Context, lib library.Library, spectrum string) (*binned.Matrix, *binned.Array, error) {
	if len(lib) == 0 {
		return nil, nil, fmt.Errorf("response: build: %w", library.ErrEmptyLibrary)
	}

	n := b.cfg.Bins
	log := b.cfg.Logger
	start := time.Now()
	log.Info("Creating matrix",
		zap.Int("bins", n),
		zap.Int("simulations", len(lib)),
		zap.String("spectrum", spectrum),
		zap.Int("workers", b.cfg.Workers))

	m := binned.NewMatrix(n)
	particles := binned.NewArray(n)

	err := b.forEachBin(ctx, func(ctx context.Context, i int) error {
		match, err := lib.Nearest(i)
		if err != nil {
			return fmt.Errorf("response: bin %d: %w", i, err)
		}
		e := lib[match.Index]

		log.Debug("Selected simulation",
			zap.Int("bin", i),
			zap.String("source", e.Source),
			zap.Float64("energy", e.Energy),
			zap.Int("shift", match.Shift()))

		if err := b.fillRow(ctx, m.Row(i), e.Source, spectrum, match.Shift()); err != nil {
			return fmt.Errorf("response: bin %d: %w", i, err)
		}
		particles.Set(i, e.Particles)
		return nil
	})
	if err != nil {
		log.Error("Matrix creation aborted", zap.Error(err))
		return nil, nil, err
	}

	log.Info("Matrix created", zap.Duration("elapsed", time.Since(start)))
	return m, particles, nil
}

// fillRow loads spectrum name from source and copies it into dst shifted by
// shift bins: column j receives spectrum bin j+shift when 0 <= j+shift < N.
// Bin 0 is the empty underflow bin. Columns without a source bin keep their
// current value.
func (b *Builder) fillRow(ctx context.Context, dst []float64, source, name string, shift int) error {
	spec := b.pool.Get(0)
	defer b.pool.Put(spec)

	if err := b.loader.Load(ctx, source, name, spec); err != nil {
		return fmt.Errorf("no spectrum %q from %s: %w", name, source, err)
	}

	n := len(dst)
	for j := 1; j <= n; j++ {
		k := j + shift
		if k >= 0 && k < n {
			dst[j-1] = spec.At(k)
		}
	}
	return nil
}

// forEachBin calls fn for every bin in [1, Bins]. With one worker the bins are
// visited in order on the calling goroutine; otherwise they run on an errgroup
// limited to Workers goroutines and the first error cancels the rest.
func (b *Builder) forEachBin(ctx context.Context, fn func(context.Context, int) error) error {
	n := b.cfg.Bins

	if b.cfg.Workers <= 1 {
		for i := 1; i <= n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.cfg.Workers)
	for i := 1; i <= n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, i)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
