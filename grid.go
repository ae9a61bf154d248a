package plot

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
)

// GridModel describes how many evenly spaced divisions each axis of a
// grid has. It holds division counts only, never coordinates, so one
// GridModel is reusable across axes with different ranges. Tick
// positions are derived on demand from an AxesBounds by Gridlines.
type GridModel struct {
	XDivisions int
	YDivisions int
}

// NewGridModel constructs a GridModel. It fails with ErrInvalidGrid if
// either division count is negative. Zero divisions means "endpoints
// only".
func NewGridModel(xDivisions, yDivisions int) (GridModel, error) {
	if xDivisions < 0 || yDivisions < 0 {
		return GridModel{}, fmt.Errorf("%w: (%d, %d)", ErrInvalidGrid, xDivisions, yDivisions)
	}
	return GridModel{XDivisions: xDivisions, YDivisions: yDivisions}, nil
}

// Gridlines derives the data-space tick positions for bounds under g:
// divisions+1 evenly spaced values per axis, inclusive of both
// endpoints, in increasing order. Zero divisions yields the two
// endpoints only. The function is pure and deterministic, safe to call
// every frame.
//
// Positions are returned as float64 data-space values regardless of the
// axis value types; the transform consumes float64 internally.
func Gridlines[X, Y Number](g GridModel, b AxesBounds[X, Y]) (xs, ys []float64) {
	xs = splitRange(float64(b.X.Min()), float64(b.X.Max()), g.XDivisions)
	ys = splitRange(float64(b.Y.Min()), float64(b.Y.Max()), g.YDivisions)
	return xs, ys
}

// splitRange returns divisions+1 evenly spaced values from min to max,
// endpoints exact. Zero divisions means endpoints only, same as one
// division. For a degenerate range every position equals min.
func splitRange(min, max float64, divisions int) []float64 {
	if divisions < 1 {
		return []float64{min, max}
	}
	out := make([]float64, divisions+1)
	span := max - min
	for i := 1; i < divisions; i++ {
		out[i] = min + span*float64(i)/float64(divisions)
	}
	out[0] = min
	out[divisions] = max
	return out
}

// NiceTicks chooses up to maxTicks "nice" tick positions covering
// [min, max]: multiples of a 1, 2, or 5 times a power of ten step. The
// returned values lie within the interval but are not required to touch
// its endpoints. Backends use this for axis labels; the grid itself
// follows the even divisions of GridModel.
//
// If no nice step satisfies the constraints the interval endpoints are
// returned as a fallback.
func NiceTicks(min, max float64, maxTicks int) []float64 {
	if min > max {
		min, max = max, min
	}
	if min == max {
		return []float64{min}
	}
	if maxTicks < 2 {
		maxTicks = 2
	}

	count := func(level int) int {
		step := tickStep(level)
		n := int(math.Floor(max/step+tickEps)) - int(math.Ceil(min/step-tickEps)) + 1
		if n < 0 {
			return 0
		}
		return n
	}
	ticks := func(level int) []float64 {
		step := tickStep(level)
		first := int(math.Ceil(min/step - tickEps))
		last := int(math.Floor(max/step + tickEps))
		out := make([]float64, 0, last-first+1)
		for i := first; i <= last; i++ {
			out = append(out, float64(i)*step)
		}
		return out
	}

	// Start the search near the step that would yield maxTicks ticks.
	guess := 3 * int(math.Round(math.Log10((max-min)/float64(maxTicks))))

	opts := scale.TickOptions{Max: maxTicks}
	level, ok := opts.FindLevel(funcTicker{count, ticks}, guess)
	if !ok {
		return []float64{min, max}
	}
	return ticks(level)
}

const tickEps = 1e-9

// funcTicker adapts NiceTicks's count and ticks closures to the
// scale.Ticker interface expected by TickOptions.FindLevel.
type funcTicker struct {
	count func(level int) int
	ticks func(level int) []float64
}

func (t funcTicker) CountTicks(level int) int          { return t.count(level) }
func (t funcTicker) TicksAtLevel(level int) interface{} { return t.ticks(level) }

// tickStep maps a tick level to its step size. Levels cycle through
// mantissas 1, 2, 5 and shift a decade every three levels, so
// level 0 => 1, 1 => 2, 2 => 5, 3 => 10, -1 => 0.5, and so on.
func tickStep(level int) float64 {
	mod := ((level % 3) + 3) % 3
	exp := (level - mod) / 3
	mant := [3]float64{1, 2, 5}[mod]
	return mant * math.Pow(10, float64(exp))
}
