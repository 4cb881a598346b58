package store

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-rema/binned"
)

// ReadTextSpectrum reads a spectrum with one value per line into an Array of
// n bins: line k fills bin k. Blank lines count as empty bins and lines past
// bin n are ignored.
func ReadTextSpectrum(path string, n int) (*binned.Array, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: open spectrum: %w", err)
	}
	defer f.Close()

	out := binned.NewArray(n)
	sc := bufio.NewScanner(f)
	for bin := 1; bin <= n && sc.Scan(); bin++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("store: %s: line %d: %w", path, bin, err)
		}
		out.Set(bin, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("store: %s: %w", path, err)
	}
	return out, nil
}
