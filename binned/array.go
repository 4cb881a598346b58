package binned

import "gonum.org/v1/gonum/floats"

// Array is a 1-D histogram of float64 bin contents addressed by 1-based bin
// numbers. Values() exposes the backing slice (index 0 holds bin 1) for code
// that works on raw slices.
type Array struct {
	values []float64
}

// NewArray returns a zero-filled Array with n bins.
func NewArray(n int) *Array {
	if n < 0 {
		n = 0
	}
	return &Array{values: make([]float64, n)}
}

// ArrayFrom wraps an existing slice without copying.
// Mutations to the slice are visible through the Array and vice versa.
func ArrayFrom(values []float64) *Array {
	return &Array{values: values}
}

// Values returns the underlying slice.
func (a *Array) Values() []float64 {
	return a.values
}

// Len returns the number of bins.
func (a *Array) Len() int {
	return len(a.values)
}

// At returns the content of bin i. Bins outside [1, Len()] read as 0.
func (a *Array) At(i int) float64 {
	if i < 1 || i > len(a.values) {
		return 0
	}
	return a.values[i-1]
}

// Set stores v in bin i. Out-of-range bins are ignored.
func (a *Array) Set(i int, v float64) {
	if i < 1 || i > len(a.values) {
		return
	}
	a.values[i-1] = v
}

// Resize sets the bin count to n, reusing existing capacity when possible.
// Every bin is zero after the call.
func (a *Array) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if cap(a.values) >= n {
		a.values = a.values[:n]
	} else {
		a.values = make([]float64, n)
	}
	clear(a.values)
}

// Sum returns the total content of all bins.
func (a *Array) Sum() float64 {
	return floats.Sum(a.values)
}

// Equal reports whether a and b have the same length and identical contents.
func (a *Array) Equal(b *Array) bool {
	return floats.Same(a.values, b.values)
}

// Copy returns a deep copy of the array.
func (a *Array) Copy() *Array {
	s := make([]float64, len(a.values))
	copy(s, a.values)
	return &Array{values: s}
}

// Rebin returns a new Array whose bin k holds the sum of bins
// (k-1)*factor+1 .. k*factor of a. The bin count must be a multiple of factor.
func (a *Array) Rebin(factor int) (*Array, error) {
	if factor <= 0 || len(a.values)%factor != 0 {
		return nil, ErrInvalidFactor
	}
	out := NewArray(len(a.values) / factor)
	for k := range out.values {
		out.values[k] = floats.Sum(a.values[k*factor : (k+1)*factor])
	}
	return out, nil
}
