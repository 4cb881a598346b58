// Package spectrum summarizes binned spectra: total content, peak position
// and the content-weighted centroid and width in bins.
package spectrum

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds summary statistics of a binned spectrum. Bin numbers are
// 1-based; 0 means "no such bin".
type Stats struct {
	Length   int
	Total    float64 // sum of all bins
	Max      float64
	MaxBin   int
	Min      float64
	MinBin   int
	NonEmpty int // bins with positive content
	First    int // first non-empty bin
	Last     int // last non-empty bin
	Centroid float64
	Width    float64 // population standard deviation around Centroid
}

// Calculate computes all statistics of values, where values[k-1] holds bin k.
// Centroid and Width are weighted by the positive bin contents only; they are
// zero when no bin is positive.
func Calculate(values []float64) Stats {
	n := len(values)
	if n == 0 {
		return Stats{}
	}

	s := Stats{
		Length: n,
		Total:  floats.Sum(values),
		MaxBin: floats.MaxIdx(values) + 1,
		MinBin: floats.MinIdx(values) + 1,
	}
	s.Max = values[s.MaxBin-1]
	s.Min = values[s.MinBin-1]

	bins := make([]float64, 0, n)
	weights := make([]float64, 0, n)
	for i, v := range values {
		if v <= 0 {
			continue
		}
		if s.First == 0 {
			s.First = i + 1
		}
		s.Last = i + 1
		bins = append(bins, float64(i+1))
		weights = append(weights, v)
	}
	s.NonEmpty = len(bins)
	if s.NonEmpty == 0 {
		return s
	}

	mean, variance := stat.PopMeanVariance(bins, weights)
	s.Centroid = mean
	s.Width = math.Sqrt(variance)
	return s
}

// FullWidthHalfMax returns the full width at half maximum of a Gaussian with
// the given standard deviation.
func FullWidthHalfMax(width float64) float64 {
	return 2 * math.Sqrt(2*math.Ln2) * width
}
