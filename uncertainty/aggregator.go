package uncertainty

import (
	"fmt"

	"github.com/cwbudde/algo-rema/binned"
)

// Evaluator returns per-bin statistical uncertainties of a fit. It is
// implemented by the fit-function model; bins are 1-based on the rebinned
// axis.
type Evaluator interface {
	// SimulationUncertainty returns the contribution of the limited number
	// of simulated particles to the uncertainty of bin.
	SimulationUncertainty(bin int, params []float64) float64
	// SpectrumUncertainty returns the contribution of the counting
	// statistics of the observed spectrum to the uncertainty of bin.
	SpectrumUncertainty(bin int, params, spectrum []float64) float64
}

// EvaluatorFactory builds an Evaluator for a response matrix restricted to
// the fit window [binStart, binStop].
type EvaluatorFactory func(m *binned.Matrix, binStart, binStop int) Evaluator

// Aggregator computes uncertainty arrays of length Bins/Binning.
type Aggregator struct {
	bins    int
	binning int
	factory EvaluatorFactory
}

// NewAggregator returns an Aggregator for bins original bins rebinned by
// binning, evaluating contributions through factory.
func NewAggregator(bins, binning int, factory EvaluatorFactory) (*Aggregator, error) {
	if bins <= 0 || binning <= 0 {
		return nil, fmt.Errorf("%w: bins=%d binning=%d", ErrInvalidBinning, bins, binning)
	}
	return &Aggregator{bins: bins, binning: binning, factory: factory}, nil
}

// Len returns the length of every uncertainty array, Bins/Binning.
func (a *Aggregator) Len() int {
	return a.bins / a.binning
}

// Compute returns the simulation- and spectrum-statistical uncertainty for
// each bin in [1, Len()]. Both are zero outside [binStart, binStop].
func (a *Aggregator) Compute(params, spectrum []float64, m *binned.Matrix, binStart, binStop int) (sim, spec []float64, err error) {
	if a.factory == nil {
		return nil, nil, ErrNoEvaluator
	}
	ev := a.factory(m, binStart, binStop)

	n := a.Len()
	sim = make([]float64, n)
	spec = make([]float64, n)
	for i := 1; i <= n; i++ {
		if i < binStart || i > binStop {
			continue
		}
		sim[i-1] = ev.SimulationUncertainty(i, params)
		spec[i-1] = ev.SpectrumUncertainty(i, params, spectrum)
	}
	return sim, spec, nil
}

// Combine adds arrays in quadrature into a new array of length Len().
// With no arrays the result is all zero.
func (a *Aggregator) Combine(arrays [][]float64) ([]float64, error) {
	total := make([]float64, a.Len())
	if err := Quadrature(total, arrays...); err != nil {
		return nil, err
	}
	return total, nil
}
