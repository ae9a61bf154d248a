package plot

import (
	"errors"
	"fmt"
	"math"
)

// Construction errors. All live model instances are internally valid:
// these are returned at construction time and never later.
var (
	// ErrInvalidRange reports an axis range whose minimum exceeds its
	// maximum or whose bounds are not finite.
	ErrInvalidRange = errors.New("plot: invalid axis range")

	// ErrInvalidGrid reports a negative grid division count.
	ErrInvalidGrid = errors.New("plot: invalid grid division count")
)

// AxisRange is a 1-D data-space interval with min <= max. It is an
// immutable value: resizing an axis replaces the range wholesale, which
// keeps concurrent readers free of torn-read hazards.
//
// A degenerate range (min == max) is valid; the transform maps it to a
// single anchored screen coordinate (see Transform).
type AxisRange[T Number] struct {
	min, max T
}

// NewAxisRange constructs a range. It fails with ErrInvalidRange if
// min > max or either bound is NaN or infinite.
func NewAxisRange[T Number](min, max T) (AxisRange[T], error) {
	lo, hi := float64(min), float64(max)
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) {
		return AxisRange[T]{}, fmt.Errorf("%w: non-finite bound [%v, %v]", ErrInvalidRange, min, max)
	}
	if lo > hi {
		return AxisRange[T]{}, fmt.Errorf("%w: min %v > max %v", ErrInvalidRange, min, max)
	}
	return AxisRange[T]{min: min, max: max}, nil
}

// MustAxisRange is like NewAxisRange but panics on error. Intended for
// literals in examples and tests.
func MustAxisRange[T Number](min, max T) AxisRange[T] {
	r, err := NewAxisRange(min, max)
	if err != nil {
		panic(err)
	}
	return r
}

// Min returns the lower bound.
func (r AxisRange[T]) Min() T { return r.min }

// Max returns the upper bound.
func (r AxisRange[T]) Max() T { return r.max }

// Span returns max - min. It is zero for a degenerate range.
func (r AxisRange[T]) Span() T { return r.max - r.min }

// IsDegenerate reports whether the range covers a single value.
func (r AxisRange[T]) IsDegenerate() bool { return r.min == r.max }

// Contains reports whether v lies within the range, endpoints included.
func (r AxisRange[T]) Contains(v T) bool { return r.min <= v && v <= r.max }

func (r AxisRange[T]) String() string {
	return fmt.Sprintf("[%v, %v]", r.min, r.max)
}

// AxesBounds pairs the x and y ranges of one axes region.
type AxesBounds[X, Y Number] struct {
	X AxisRange[X]
	Y AxisRange[Y]
}

// NewAxesBounds constructs an AxesBounds from two ranges.
func NewAxesBounds[X, Y Number](x AxisRange[X], y AxisRange[Y]) AxesBounds[X, Y] {
	return AxesBounds[X, Y]{X: x, Y: y}
}
