package plot

// Rect is an axis-aligned rectangle in screen/logical space: origin at
// the top-left corner, width and height extending right and down.
type Rect struct {
	X, Y, W, H float64
}

// R is a convenience function to create a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Inset returns the rectangle shrunk by d on every side. If the result
// would have negative size it collapses to the center.
func (r Rect) Inset(d float64) Rect {
	dx, dy := d, d
	if 2*dx > r.W {
		dx = r.W / 2
	}
	if 2*dy > r.H {
		dy = r.H / 2
	}
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }
