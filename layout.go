package plot

// Layout supplies the destination rectangle for each axes region at
// render time. The counts let a layout divide a fixed surface without
// knowing the figure's structure in advance.
type Layout interface {
	// AxesRect returns the destination for axes region `axes` of plot
	// `plot`, given how many plots the figure has and how many axes
	// regions that plot has.
	AxesRect(plot, plotCount, axes, axesCount int) Rect
}

// LayoutFunc adapts a function to the Layout interface.
type LayoutFunc func(plot, plotCount, axes, axesCount int) Rect

// AxesRect calls f.
func (f LayoutFunc) AxesRect(plot, plotCount, axes, axesCount int) Rect {
	return f(plot, plotCount, axes, axesCount)
}

// FixedLayout places every axes region in the same rectangle, overlaying
// all plots. Useful for single-plot figures and for stacking series that
// share one coordinate frame.
func FixedLayout(r Rect) Layout {
	return LayoutFunc(func(int, int, int, int) Rect {
		return r
	})
}

// GridLayout splits total into one row per plot and one column per axes
// region within the row, separated by pad logical units on every side.
func GridLayout(total Rect, pad float64) Layout {
	return LayoutFunc(func(plot, plotCount, axes, axesCount int) Rect {
		if plotCount < 1 || axesCount < 1 {
			return Rect{}
		}
		h := (total.H - pad*float64(plotCount+1)) / float64(plotCount)
		w := (total.W - pad*float64(axesCount+1)) / float64(axesCount)
		if h < 0 {
			h = 0
		}
		if w < 0 {
			w = 0
		}
		return Rect{
			X: total.X + pad + float64(axes)*(w+pad),
			Y: total.Y + pad + float64(plot)*(h+pad),
			W: w,
			H: h,
		}
	})
}
