package store

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadScalars reads the first line of path as whitespace-separated floating
// point values. If the file cannot be opened the returned slice is nil and the
// error wraps the os error.
func ReadScalars(path string) ([]float64, error) {
	fields, err := firstLineFields(path)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("store: %s: field %d: %w", path, i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadIntScalars reads the first line of path as whitespace-separated
// integers, e.g. fit limits.
func ReadIntScalars(path string) ([]int, error) {
	fields, err := firstLineFields(path)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("store: %s: field %d: %w", path, i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func firstLineFields(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: open scalars: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	if !sc.Scan() {
		return nil, sc.Err()
	}
	return strings.Fields(sc.Text()), nil
}

// WriteScalars writes values to path as a single tab-separated line.
func WriteScalars(path string, values []float64) error {
	fields := make([]string, len(values))
	for i, v := range values {
		fields[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return writeLine(path, fields)
}

// WriteIntScalars writes values to path as a single tab-separated line.
func WriteIntScalars(path string, values []int) error {
	fields := make([]string, len(values))
	for i, v := range values {
		fields[i] = strconv.Itoa(v)
	}
	return writeLine(path, fields)
}

func writeLine(path string, fields []string) error {
	data := strings.Join(fields, "\t") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("store: write scalars: %w", err)
	}
	return nil
}
