package store

import (
	"context"
	"path/filepath"

	"github.com/cwbudde/algo-rema/binned"
)

// SpectrumLoader reads reference spectra from per-simulation containers.
// Relative source identifiers are resolved against Dir.
type SpectrumLoader struct {
	Dir string
}

// Load opens source, reads the spectrum called name into dst and closes the
// container again before returning, on success and on failure.
func (l SpectrumLoader) Load(ctx context.Context, source, name string, dst *binned.Array) error {
	path := source
	if l.Dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(l.Dir, path)
	}

	c, err := Open(ctx, path)
	if err != nil {
		return err
	}
	defer c.Close()

	return c.ReadArrayInto(ctx, name, dst)
}
