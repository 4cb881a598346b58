package binned

import (
	"errors"
	"testing"
)

func TestMatrixRowLayout(t *testing.T) {
	m := NewMatrix(3)
	m.Set(2, 1, 4)
	m.Set(2, 3, 6)

	row := m.Row(2)
	if len(row) != 3 {
		t.Fatalf("len(Row(2)) = %d, want 3", len(row))
	}
	if row[0] != 4 || row[2] != 6 {
		t.Fatalf("Row(2) = %v, want [4 0 6]", row)
	}
	if m.Data()[3] != 4 {
		t.Fatalf("row-major layout broken: %v", m.Data())
	}

	if m.Row(0) != nil || m.Row(4) != nil {
		t.Fatal("Row outside range should be nil")
	}
	if m.At(0, 1) != 0 || m.At(1, 4) != 0 {
		t.Fatal("At outside range should read 0")
	}
}

func TestMatrixFromValidatesShape(t *testing.T) {
	if _, err := MatrixFrom(2, make([]float64, 3)); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("err = %v, want ErrDimensionMismatch", err)
	}
	m, err := MatrixFrom(2, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("MatrixFrom error: %v", err)
	}
	if m.At(2, 1) != 3 {
		t.Fatalf("At(2,1) = %v, want 3", m.At(2, 1))
	}
}

func TestMatrixEqual(t *testing.T) {
	a, _ := MatrixFrom(2, []float64{1, 2, 3, 4})
	b, _ := MatrixFrom(2, []float64{1, 2, 3, 4})
	if !a.Equal(b) {
		t.Fatal("identical matrices reported unequal")
	}
	b.Set(1, 1, 0)
	if a.Equal(b) {
		t.Fatal("different matrices reported equal")
	}
	if a.Equal(NewMatrix(1)) {
		t.Fatal("matrices of different shape reported equal")
	}
}

func TestMatrixRebin(t *testing.T) {
	m, _ := MatrixFrom(4, []float64{
		1, 1, 2, 2,
		1, 1, 2, 2,
		3, 3, 4, 4,
		3, 3, 4, 4,
	})

	out, err := m.Rebin(2)
	if err != nil {
		t.Fatalf("Rebin error: %v", err)
	}
	want := []float64{4, 8, 12, 16}
	for i, v := range want {
		if out.Data()[i] != v {
			t.Fatalf("Rebin data[%d] = %v, want %v", i, out.Data()[i], v)
		}
	}

	if _, err := m.Rebin(3); !errors.Is(err, ErrInvalidFactor) {
		t.Fatalf("Rebin(3) err = %v, want ErrInvalidFactor", err)
	}
}
