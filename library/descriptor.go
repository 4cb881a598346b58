package library

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ReadDescriptor reads a library descriptor file.
//
// A file that cannot be opened yields a nil Library and the underlying os
// error, so callers can test it with errors.Is(err, fs.ErrNotExist) and decide
// whether to continue.
func ReadDescriptor(path string) (Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("library: open descriptor: %w", err)
	}
	defer f.Close()

	lib, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("library: %s: %w", path, err)
	}
	return lib, nil
}

// Parse reads descriptor lines from r.
func Parse(r io.Reader) (Library, error) {
	var lib Library

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: want 3 fields, got %d", line, len(fields))
		}

		energy, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: energy: %w", line, err)
		}
		particles, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: particles: %w", line, err)
		}

		if math.IsNaN(energy) || math.IsInf(energy, 0) {
			return nil, fmt.Errorf("line %d: energy %q is not finite", line, fields[1])
		}
		if math.IsNaN(particles) || math.IsInf(particles, 0) {
			return nil, fmt.Errorf("line %d: particles %q is not finite", line, fields[2])
		}

		lib = append(lib, Entry{Source: fields[0], Energy: energy, Particles: particles})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lib, nil
}

// Write serializes lib in descriptor format.
func Write(w io.Writer, lib Library) error {
	bw := bufio.NewWriter(w)
	for _, e := range lib {
		if _, err := fmt.Fprintf(bw, "%s %s %s\n",
			e.Source,
			strconv.FormatFloat(e.Energy, 'g', -1, 64),
			strconv.FormatFloat(e.Particles, 'g', -1, 64)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
