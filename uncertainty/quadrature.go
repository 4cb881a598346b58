package uncertainty

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Quadrature writes sqrt(sum_k arrays[k][i]^2) into dst[i]. Every array must
// have len(dst) elements. With no arrays dst is zeroed.
//
// The sum is accumulated as a running hypotenuse, one contribution at a time,
// using the SIMD magnitude kernel. Each step squares its operands, so
// magnitudes below about 1e-154 lose precision (below about 1e-162 they
// underflow to 0) and magnitudes above about 1e154 overflow to +Inf. Within
// that range a single array yields |a|.
func Quadrature(dst []float64, arrays ...[]float64) error {
	for k, arr := range arrays {
		if len(arr) != len(dst) {
			return fmt.Errorf("%w: array %d has %d bins, want %d", ErrLengthMismatch, k, len(arr), len(dst))
		}
	}

	clear(dst)
	if len(arrays) == 0 || len(dst) == 0 {
		return nil
	}

	acc := make([]float64, len(dst))
	for _, arr := range arrays {
		vecmath.Magnitude(dst, acc, arr)
		copy(acc, dst)
	}
	return nil
}
