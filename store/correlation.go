package store

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// WriteCorrelationMatrix writes m as plain text: one row per line, fields
// separated by tabs, no header.
func WriteCorrelationMatrix(path string, m mat.Symmetric) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: create correlation file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	n := m.SymmetricDim()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j > 0 {
				w.WriteByte('\t')
			}
			w.WriteString(strconv.FormatFloat(m.At(i, j), 'g', -1, 64))
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// CorrelationFromCovariance normalizes a covariance matrix to correlation
// coefficients cov(i,j)/sqrt(cov(i,i)*cov(j,j)). Entries involving a
// parameter with non-positive variance are 0.
func CorrelationFromCovariance(cov mat.Symmetric) *mat.SymDense {
	n := cov.SymmetricDim()
	sigma := make([]float64, n)
	for i := range sigma {
		if v := cov.At(i, i); v > 0 {
			sigma[i] = math.Sqrt(v)
		}
	}

	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if sigma[i] == 0 || sigma[j] == 0 {
				continue
			}
			out.SetSym(i, j, cov.At(i, j)/(sigma[i]*sigma[j]))
		}
	}
	return out
}
