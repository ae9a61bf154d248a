package plot

import (
	"errors"
	"math"
	"testing"
)

func TestNewAxisRange(t *testing.T) {
	r, err := NewAxisRange(0.0, 10.0)
	if err != nil {
		t.Fatalf("NewAxisRange(0, 10) failed: %v", err)
	}
	if r.Min() != 0 || r.Max() != 10 {
		t.Errorf("range = %v, want [0, 10]", r)
	}
	if r.Span() != 10 {
		t.Errorf("Span = %v, want 10", r.Span())
	}
}

func TestNewAxisRangeInverted(t *testing.T) {
	_, err := NewAxisRange(5.0, 1.0)
	if err == nil {
		t.Fatal("NewAxisRange(5, 1) succeeded, want error")
	}
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("error = %v, want ErrInvalidRange", err)
	}
}

func TestNewAxisRangeNonFinite(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
	}{
		{"nan min", math.NaN(), 1},
		{"nan max", 0, math.NaN()},
		{"pos inf", 0, math.Inf(1)},
		{"neg inf", math.Inf(-1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAxisRange(tt.min, tt.max)
			if !errors.Is(err, ErrInvalidRange) {
				t.Errorf("NewAxisRange(%v, %v) error = %v, want ErrInvalidRange", tt.min, tt.max, err)
			}
		})
	}
}

func TestAxisRangeDegenerate(t *testing.T) {
	r, err := NewAxisRange(3.0, 3.0)
	if err != nil {
		t.Fatalf("degenerate range rejected: %v", err)
	}
	if !r.IsDegenerate() {
		t.Error("IsDegenerate = false, want true")
	}
	if r.Span() != 0 {
		t.Errorf("Span = %v, want 0", r.Span())
	}
}

func TestAxisRangeContains(t *testing.T) {
	r := MustAxisRange(-1.0, 1.0)
	for _, v := range []float64{-1, 0, 1} {
		if !r.Contains(v) {
			t.Errorf("Contains(%v) = false, want true", v)
		}
	}
	for _, v := range []float64{-1.001, 1.001} {
		if r.Contains(v) {
			t.Errorf("Contains(%v) = true, want false", v)
		}
	}
}

func TestAxisRangeIntType(t *testing.T) {
	r, err := NewAxisRange(0, 100)
	if err != nil {
		t.Fatalf("int range failed: %v", err)
	}
	if r.Span() != 100 {
		t.Errorf("Span = %d, want 100", r.Span())
	}
}

func TestMustAxisRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustAxisRange(5, 1) did not panic")
		}
	}()
	MustAxisRange(5.0, 1.0)
}
