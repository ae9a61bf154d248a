package plot

// Line is an ordered sequence of data-space points drawn as a connected
// polyline, plus a stroke style. Points are append-only and preserved
// in insertion order; there is no deduplication, interpolation, or
// smoothing. A line is typically constructed for one render pass and
// discarded, but nothing prevents retaining one across frames.
type Line[X, Y Number] struct {
	points []Point2[X, Y]
	style  LineStyle
}

// NewLine creates an empty line with the default style.
func NewLine[X, Y Number]() *Line[X, Y] {
	return &Line[X, Y]{style: DefaultLineStyle()}
}

// Color sets the stroke color and returns the line for chaining.
func (l *Line[X, Y]) Color(c RGBA) *Line[X, Y] {
	l.style.Color = c
	return l
}

// Width sets the stroke width and returns the line for chaining.
func (l *Line[X, Y]) Width(w float64) *Line[X, Y] {
	l.style.Width = w
	return l
}

// Dash sets the dash pattern and returns the line for chaining. Calling
// with no lengths restores a solid stroke.
func (l *Line[X, Y]) Dash(lengths ...float64) *Line[X, Y] {
	l.style.Dash = lengths
	return l
}

// Style returns the current stroke style.
func (l *Line[X, Y]) Style() LineStyle {
	return l.style
}

// AddPoint appends a point to the end of the sequence.
func (l *Line[X, Y]) AddPoint(p Point2[X, Y]) {
	l.points = append(l.points, p)
}

// Len returns the number of points.
func (l *Line[X, Y]) Len() int {
	return len(l.points)
}

// RenderAxes walks the sequence once, transforms each point through the
// context, and emits the n-1 connected segments between consecutive
// points. A sequence of length 0 or 1 emits no segments; that is not an
// error.
func (l *Line[X, Y]) RenderAxes(ctx *AxesContext[X, Y]) {
	ctx.StrokePolyline(l.points, l.style)
}
