package plot

// Transform maps data-space coordinates onto a destination rectangle in
// screen space. It is a pure total function over well-formed inputs:
// points outside the declared ranges are still transformed (no clipping
// at this layer), and a degenerate range maps every coordinate to the
// destination's left or top edge instead of dividing by zero.
//
// A Transform is a snapshot: it captures the bounds it was built from
// and is unaffected by later mutation of the owning AxesModel.
type Transform[X, Y Number] struct {
	bounds AxesBounds[X, Y]
	dest   Rect
	m      Matrix
}

// NewTransform builds the affine mapping from bounds onto dest. The x
// axis maps min..max onto dest.X..dest.X+dest.W; the y axis is flipped,
// mapping max..min onto dest.Y..dest.Y+dest.H, since screen y grows
// downward while plot y grows upward.
func NewTransform[X, Y Number](bounds AxesBounds[X, Y], dest Rect) Transform[X, Y] {
	xMin := float64(bounds.X.Min())
	yMax := float64(bounds.Y.Max())
	xSpan := float64(bounds.X.Span())
	ySpan := float64(bounds.Y.Span())

	// Zero-span axes anchor at the destination edge: a zero scale factor
	// realizes the "fraction is 0" policy with no special cases downstream.
	var sx, sy float64
	if xSpan != 0 {
		sx = dest.W / xSpan
	}
	if ySpan != 0 {
		sy = dest.H / ySpan
	}

	m := Translate(dest.X-sx*xMin, dest.Y+sy*yMax).Multiply(Scale(sx, -sy))
	return Transform[X, Y]{bounds: bounds, dest: dest, m: m}
}

// Apply maps a data-space point to screen space.
func (t Transform[X, Y]) Apply(p Point2[X, Y]) Point {
	return t.m.TransformPoint(Pt(float64(p.X), float64(p.Y)))
}

// ApplyXY maps separate data-space coordinates to screen space. The
// coordinates are taken as float64 data values, which lets callers
// transform derived positions (gridlines, tick marks) without building
// typed points.
func (t Transform[X, Y]) ApplyXY(x, y float64) Point {
	return t.m.TransformPoint(Pt(x, y))
}

// Unapply maps a screen-space point back to data space. It reports
// false when the transform is not invertible, which happens exactly
// when an axis range is degenerate.
func (t Transform[X, Y]) Unapply(p Point) (x, y float64, ok bool) {
	inv, ok := t.m.Invert()
	if !ok {
		return 0, 0, false
	}
	q := inv.TransformPoint(p)
	return q.X, q.Y, true
}

// Bounds returns the data-space bounds the transform was built from.
func (t Transform[X, Y]) Bounds() AxesBounds[X, Y] { return t.bounds }

// Dest returns the destination rectangle the transform maps onto.
func (t Transform[X, Y]) Dest() Rect { return t.dest }

// Matrix returns the underlying affine matrix.
func (t Transform[X, Y]) Matrix() Matrix { return t.m }
