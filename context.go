package plot

// AxesContext is the scoped handle passed to each geometry object's
// RenderAxes callback. It exposes the data→screen transform of one axes
// region and accumulates the drawables the object emits. A context is
// created once per (axes, render pass) and is not retained past the
// pass: the accumulated drawables are flushed into the rendered figure
// before the context goes out of scope.
//
// Render callbacks may read the transform and push drawables. They must
// not mutate the AxesModel: re-ranging from inside a render callback
// would invalidate the pass it is part of.
type AxesContext[X, Y Number] struct {
	transform Transform[X, Y]
	sink      *DrawList
}

// newAxesContext wires a context to its per-pass accumulation sink.
func newAxesContext[X, Y Number](t Transform[X, Y], sink *DrawList) *AxesContext[X, Y] {
	return &AxesContext[X, Y]{transform: t, sink: sink}
}

// Transform returns the data→screen transform for this axes region.
func (c *AxesContext[X, Y]) Transform() Transform[X, Y] {
	return c.transform
}

// Bounds returns the data-space bounds snapshot of this render pass.
func (c *AxesContext[X, Y]) Bounds() AxesBounds[X, Y] {
	return c.transform.Bounds()
}

// Dest returns the destination rectangle of this axes region.
func (c *AxesContext[X, Y]) Dest() Rect {
	return c.transform.Dest()
}

// Push appends a drawable to the accumulation sink.
func (c *AxesContext[X, Y]) Push(d Drawable) {
	c.sink.Append(d)
}

// StrokePolyline transforms a data-space point sequence and emits the
// connected segments between consecutive points. Sequences of fewer
// than two points emit nothing.
func (c *AxesContext[X, Y]) StrokePolyline(points []Point2[X, Y], style LineStyle) {
	if len(points) < 2 {
		return
	}
	prev := c.transform.Apply(points[0])
	for _, p := range points[1:] {
		cur := c.transform.Apply(p)
		c.sink.Append(Segment{P0: prev, P1: cur, Style: style})
		prev = cur
	}
}

// GeometryAxes is the capability every geometry object implements: given
// an axes rendering context, emit its own drawable geometry. The engine
// calls RenderAxes exactly once per render pass per attached object and
// does not know which concrete kind it is rendering.
type GeometryAxes[X, Y Number] interface {
	RenderAxes(ctx *AxesContext[X, Y])
}
