package plot

// FuncSeries renders y = f(x) by sampling f lazily over the x range of
// whichever axes it is attached to at render time. Unlike Line it holds
// no points of its own, so the same series re-samples automatically when
// the axes are re-ranged.
type FuncSeries struct {
	f     func(x float64) float64
	step  float64
	style LineStyle
}

// NewFuncSeries creates a procedural series sampling f at the given
// data-space step. Steps that are zero or negative fall back to 1/128th
// of the x span at render time.
func NewFuncSeries(f func(x float64) float64, step float64) *FuncSeries {
	return &FuncSeries{f: f, step: step, style: DefaultLineStyle()}
}

// Color sets the stroke color and returns the series for chaining.
func (s *FuncSeries) Color(c RGBA) *FuncSeries {
	s.style.Color = c
	return s
}

// Width sets the stroke width and returns the series for chaining.
func (s *FuncSeries) Width(w float64) *FuncSeries {
	s.style.Width = w
	return s
}

// RenderAxes samples f from the x minimum to the x maximum inclusive and
// emits the connected segments. Degenerate x ranges produce a single
// sample and therefore no segments.
func (s *FuncSeries) RenderAxes(ctx *AxesContext[float64, float64]) {
	xr := ctx.Bounds().X
	min, max := xr.Min(), xr.Max()
	step := s.step
	if step <= 0 {
		step = (max - min) / 128
	}
	if step <= 0 {
		// Degenerate x range: a single sample strokes nothing.
		return
	}

	prev := ctx.Transform().ApplyXY(min, s.f(min))
	for x := min + step; x <= max; x += step {
		cur := ctx.Transform().ApplyXY(x, s.f(x))
		ctx.Push(Segment{P0: prev, P1: cur, Style: s.style})
		prev = cur
	}
	// Close the final partial step so the curve reaches the x maximum.
	if last := ctx.Transform().ApplyXY(max, s.f(max)); last != prev {
		ctx.Push(Segment{P0: prev, P1: last, Style: s.style})
	}
}
