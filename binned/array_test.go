package binned

import (
	"errors"
	"testing"
)

func TestNewArrayZeroFilled(t *testing.T) {
	a := NewArray(8)
	if a.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", a.Len())
	}
	for i, v := range a.Values() {
		if v != 0 {
			t.Fatalf("Values()[%d] = %v, want 0", i, v)
		}
	}
}

func TestNewArrayNegativeLength(t *testing.T) {
	if a := NewArray(-3); a.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 for negative input", a.Len())
	}
}

func TestArrayOneBasedAccess(t *testing.T) {
	a := ArrayFrom([]float64{10, 20, 30})

	if got := a.At(1); got != 10 {
		t.Fatalf("At(1) = %v, want 10", got)
	}
	if got := a.At(3); got != 30 {
		t.Fatalf("At(3) = %v, want 30", got)
	}

	for _, bin := range []int{-1, 0, 4, 100} {
		if got := a.At(bin); got != 0 {
			t.Fatalf("At(%d) = %v, want 0 outside range", bin, got)
		}
	}

	a.Set(2, 7)
	a.Set(0, 99)
	a.Set(4, 99)
	if a.Values()[1] != 7 {
		t.Fatalf("Set(2) did not store value: %v", a.Values())
	}
	if a.Sum() != 47 {
		t.Fatalf("Sum() = %v, want 47 (out-of-range Set must be ignored)", a.Sum())
	}
}

func TestArrayFromSharesMemory(t *testing.T) {
	s := []float64{1, 2, 3}
	a := ArrayFrom(s)
	a.Set(1, 99)
	if s[0] != 99 {
		t.Fatal("ArrayFrom should share underlying memory")
	}
}

func TestArrayCopyIsDeep(t *testing.T) {
	a := ArrayFrom([]float64{1, 2})
	c := a.Copy()
	c.Set(1, 5)
	if a.At(1) != 1 {
		t.Fatal("Copy should not share memory")
	}
	if a.Equal(c) {
		t.Fatal("Equal reported true for different contents")
	}
	c.Set(1, 1)
	if !a.Equal(c) {
		t.Fatal("Equal reported false for identical contents")
	}
}

func TestArrayResizeZeroes(t *testing.T) {
	a := ArrayFrom(make([]float64, 4, 8))
	a.Set(2, 3)
	a.Resize(6)
	if a.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", a.Len())
	}
	if a.Sum() != 0 {
		t.Fatalf("Resize left stale content: %v", a.Values())
	}
}

func TestArrayRebin(t *testing.T) {
	a := ArrayFrom([]float64{1, 2, 3, 4, 5, 6})

	out, err := a.Rebin(2)
	if err != nil {
		t.Fatalf("Rebin(2) error: %v", err)
	}
	want := []float64{3, 7, 11}
	for i, v := range want {
		if out.Values()[i] != v {
			t.Fatalf("Rebin(2)[%d] = %v, want %v", i, out.Values()[i], v)
		}
	}

	for _, f := range []int{0, -1, 4} {
		if _, err := a.Rebin(f); !errors.Is(err, ErrInvalidFactor) {
			t.Fatalf("Rebin(%d) err = %v, want ErrInvalidFactor", f, err)
		}
	}
}

func TestResizeReusesCapacity(t *testing.T) {
	a := ArrayFrom(make([]float64, 4, 8))
	a.Set(2, 5)

	a.Resize(6)
	if a.Len() != 6 {
		t.Fatalf("Len = %d, want 6", a.Len())
	}
	if cap(a.Values()) != 8 {
		t.Fatalf("cap = %d, want 8", cap(a.Values()))
	}
	if a.At(2) != 0 {
		t.Fatalf("At(2) = %v after Resize, want 0", a.At(2))
	}

	a.Resize(0)
	if a.Len() != 0 {
		t.Fatalf("Len = %d, want 0", a.Len())
	}
}
