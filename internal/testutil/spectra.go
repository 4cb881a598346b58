// Package testutil provides deterministic spectra and comparison helpers for
// tests across the module.
package testutil

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/cwbudde/algo-rema/binned"
)

// MonoEnergetic returns a synthetic n-bin detector response to gamma rays of
// the given energy (keV): a Gaussian full-energy peak at bin energy with the
// given height, sitting on a flat continuum of height/20 below the peak.
// Bin k of the result is element k-1.
func MonoEnergetic(n int, energy, height float64) []float64 {
	out := make([]float64, n)
	const sigma = 2.0
	for k := 1; k <= n; k++ {
		x := float64(k) - energy
		v := height * math.Exp(-x*x/(2*sigma*sigma))
		if float64(k) < energy {
			v += height / 20
		}
		out[k-1] = v
	}
	return out
}

// Ramp returns [offset+1, offset+2, ..., offset+n]. A ramp makes every bin
// distinguishable, which exposes off-by-one shifts.
func Ramp(n int, offset float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = offset + float64(i+1)
	}
	return out
}

// DeterministicNoise returns uniform values in [-amplitude, amplitude] from a
// fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// MemLoader serves reference spectra from memory. Spectra maps a source
// identifier to its named spectra. It records every load so tests can check
// which sources were read.
type MemLoader struct {
	Spectra map[string]map[string][]float64
	Loads   []string

	mu sync.Mutex
}

// Load copies the spectrum name of source into dst.
func (l *MemLoader) Load(_ context.Context, source, name string, dst *binned.Array) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.Loads = append(l.Loads, source)
	spectra, ok := l.Spectra[source]
	if !ok {
		return fmt.Errorf("testutil: unknown source %q", source)
	}
	v, ok := spectra[name]
	if !ok {
		return fmt.Errorf("testutil: no spectrum %q in %q", name, source)
	}
	dst.Resize(len(v))
	copy(dst.Values(), v)
	return nil
}
