package plot

// Points is a scatter series: each data-space point is rendered as an
// independent filled marker rather than a connected polyline.
type Points[X, Y Number] struct {
	points []Point2[X, Y]
	style  LineStyle
	radius float64
}

// NewPoints creates an empty scatter series with the default style and
// a marker radius of 2 logical units.
func NewPoints[X, Y Number]() *Points[X, Y] {
	return &Points[X, Y]{style: DefaultLineStyle(), radius: 2}
}

// Color sets the marker color and returns the series for chaining.
func (s *Points[X, Y]) Color(c RGBA) *Points[X, Y] {
	s.style.Color = c
	return s
}

// Radius sets the marker radius and returns the series for chaining.
func (s *Points[X, Y]) Radius(r float64) *Points[X, Y] {
	s.radius = r
	return s
}

// AddPoint appends a point to the series.
func (s *Points[X, Y]) AddPoint(p Point2[X, Y]) {
	s.points = append(s.points, p)
}

// Len returns the number of points.
func (s *Points[X, Y]) Len() int {
	return len(s.points)
}

// RenderAxes emits one dot per point, in insertion order.
func (s *Points[X, Y]) RenderAxes(ctx *AxesContext[X, Y]) {
	for _, p := range s.points {
		ctx.Push(Dot{Center: ctx.Transform().Apply(p), Radius: s.radius, Style: s.style})
	}
}
