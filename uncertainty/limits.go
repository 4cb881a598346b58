package uncertainty

import "fmt"

// Limits returns the lower and upper edge of the uncertainty band
// values ± unc. With clampAtZero, negative lower edges are raised to 0, which
// suits non-negative quantities such as reconstructed spectra.
func Limits(values, unc []float64, clampAtZero bool) (low, up []float64, err error) {
	if len(values) != len(unc) {
		return nil, nil, fmt.Errorf("%w: %d values, %d uncertainties", ErrLengthMismatch, len(values), len(unc))
	}
	low = make([]float64, len(values))
	up = make([]float64, len(values))
	for i, v := range values {
		low[i] = v - unc[i]
		if clampAtZero && low[i] < 0 {
			low[i] = 0
		}
		up[i] = v + unc[i]
	}
	return low, up, nil
}
