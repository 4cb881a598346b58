package store

import (
	"encoding/binary"
	"math"
)

func encodeRow(values []float64) []byte {
	buf := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(v))
	}
	return buf
}

// decodeRow fills dst from blob. It reports false if the blob does not hold
// exactly len(dst) values.
func decodeRow(dst []float64, blob []byte) bool {
	if len(blob) != 8*len(dst) {
		return false
	}
	for i := range dst {
		dst[i] = math.Float64frombits(binary.LittleEndian.Uint64(blob[8*i:]))
	}
	return true
}
