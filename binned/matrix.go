package binned

import "gonum.org/v1/gonum/floats"

// Matrix is a square N×N response matrix stored row-major. Row i holds the
// detector response attributed to true-energy bin i; column j is the
// observed-energy bin.
type Matrix struct {
	n    int
	data []float64
}

// NewMatrix returns a zero-filled n×n Matrix.
func NewMatrix(n int) *Matrix {
	if n < 0 {
		n = 0
	}
	return &Matrix{n: n, data: make([]float64, n*n)}
}

// MatrixFrom wraps row-major data of an n×n matrix without copying.
func MatrixFrom(n int, data []float64) (*Matrix, error) {
	if n < 0 || len(data) != n*n {
		return nil, ErrDimensionMismatch
	}
	return &Matrix{n: n, data: data}, nil
}

// N returns the number of rows (and columns).
func (m *Matrix) N() int {
	return m.n
}

// Data returns the row-major backing slice.
func (m *Matrix) Data() []float64 {
	return m.data
}

// Row returns the backing slice of row i (1-based); element 0 is column 1.
// It returns nil for rows outside [1, N()].
func (m *Matrix) Row(i int) []float64 {
	if i < 1 || i > m.n {
		return nil
	}
	return m.data[(i-1)*m.n : i*m.n]
}

// At returns the content of bin (i, j). Bins outside the matrix read as 0.
func (m *Matrix) At(i, j int) float64 {
	if i < 1 || i > m.n || j < 1 || j > m.n {
		return 0
	}
	return m.data[(i-1)*m.n+j-1]
}

// Set stores v in bin (i, j). Out-of-range bins are ignored.
func (m *Matrix) Set(i, j int, v float64) {
	if i < 1 || i > m.n || j < 1 || j > m.n {
		return
	}
	m.data[(i-1)*m.n+j-1] = v
}

// Equal reports whether m and o have the same shape and identical contents.
func (m *Matrix) Equal(o *Matrix) bool {
	return m.n == o.n && floats.Same(m.data, o.data)
}

// Rebin returns a new Matrix whose bin (r, c) holds the sum of the
// factor×factor block of m it covers. N() must be a multiple of factor.
func (m *Matrix) Rebin(factor int) (*Matrix, error) {
	if factor <= 0 || m.n%factor != 0 {
		return nil, ErrInvalidFactor
	}
	n := m.n / factor
	out := NewMatrix(n)
	for i := 0; i < m.n; i++ {
		src := m.data[i*m.n : (i+1)*m.n]
		dst := out.data[(i/factor)*n : (i/factor+1)*n]
		for c := range dst {
			dst[c] += floats.Sum(src[c*factor : (c+1)*factor])
		}
	}
	return out, nil
}
