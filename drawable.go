package plot

// LineStyle describes how a series or gridline is stroked.
type LineStyle struct {
	Color RGBA
	Width float64
	Dash  []float64
}

// DefaultLineStyle returns the style applied to unstyled series: the
// first palette color at one logical unit of width.
func DefaultLineStyle() LineStyle {
	return LineStyle{Color: PaletteColor(0), Width: 1}
}

// Drawable is a resolved, screen-space renderable primitive ready for
// painting. The set is closed: painters switch over Segment and Dot.
type Drawable interface {
	isDrawable()
}

// Segment is a straight screen-space line segment with style.
type Segment struct {
	P0, P1 Point
	Style  LineStyle
}

func (Segment) isDrawable() {}

// Dot is a filled screen-space disc with style, used for point markers.
type Dot struct {
	Center Point
	Radius float64
	Style  LineStyle
}

func (Dot) isDrawable() {}

// DrawList accumulates drawables for one axes region during a render
// pass, in emission order.
type DrawList struct {
	items []Drawable
}

// Append adds a drawable to the end of the list.
func (l *DrawList) Append(d Drawable) {
	l.items = append(l.items, d)
}

// Items returns the accumulated drawables in emission order. The
// returned slice is owned by the list; painters must not mutate it.
func (l *DrawList) Items() []Drawable {
	return l.items
}

// Len returns the number of accumulated drawables.
func (l *DrawList) Len() int {
	return len(l.items)
}

// Reset clears the list for reuse without deallocating memory.
func (l *DrawList) Reset() {
	l.items = l.items[:0]
}
