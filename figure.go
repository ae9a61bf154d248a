package plot

import "sync"

// FigureModel is the top-level container of plots and the unit the
// painting collaborator observes. A figure has no persistent state
// beyond "has plots" and "empty": the documented usage pattern is a full
// clear-then-rebuild cycle per frame, an accepted O(total geometry) cost
// given bounded point counts.
//
// The model is safe for concurrent use. A render pass holds the write
// lock only for the clear-and-rebuild traversal; the returned drawables
// are an independent snapshot the painter consumes lock-free.
type FigureModel struct {
	mu    sync.RWMutex
	title string
	plots []*PlotModel

	// requestFrame, when set, is called to schedule the next repaint.
	// The model never renders synchronously inside a mutation call.
	requestFrame func()
}

// NewFigureModel creates an empty figure with the given title.
func NewFigureModel(title string) *FigureModel {
	return &FigureModel{title: title}
}

// Title returns the figure title.
func (f *FigureModel) Title() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.title
}

// SetTitle replaces the figure title.
func (f *FigureModel) SetTitle(title string) {
	f.mu.Lock()
	f.title = title
	f.mu.Unlock()
	f.Invalidate()
}

// NumPlots returns the number of plots currently attached.
func (f *FigureModel) NumPlots() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.plots)
}

// ClearPlots discards all owned plots. Axes models attached to those
// plots survive if externally shared; they are simply detached. Repeated
// calls are idempotent.
func (f *FigureModel) ClearPlots() {
	f.mu.Lock()
	f.plots = f.plots[:0]
	f.mu.Unlock()
	f.Invalidate()
}

// AddPlotWith constructs a new empty plot, passes it to build for
// configuration, and appends it to the figure.
func (f *FigureModel) AddPlotWith(build func(p *PlotModel)) {
	f.mu.Lock()
	p := &PlotModel{fig: f}
	if build != nil {
		build(p)
	}
	f.plots = append(f.plots, p)
	f.mu.Unlock()
	f.Invalidate()
}

// SetFrameRequester installs the trigger the figure calls when its model
// changes and a repaint is warranted. The windowing collaborator wires
// this to its own "request next frame" mechanism; the core never renders
// inline on mutation.
func (f *FigureModel) SetFrameRequester(fn func()) {
	f.mu.Lock()
	f.requestFrame = fn
	f.mu.Unlock()
}

// Invalidate schedules the next repaint through the installed frame
// requester, if any.
func (f *FigureModel) Invalidate() {
	f.mu.RLock()
	fn := f.requestFrame
	f.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

// Render traverses the figure and produces, per axes region, the
// destination rectangle, tick positions, and accumulated drawables ready
// to paint. The layout supplies each region's destination at render
// time.
//
// The traversal holds the figure's write lock: geometry callbacks may
// mutate their own series state, and no structural mutation can
// interleave with the pass. The lock is released before the result is
// returned to the painter.
func (f *FigureModel) Render(layout Layout, opts ...RenderOption) *RenderedFigure {
	ro := defaultRenderOptions()
	for _, opt := range opts {
		opt(&ro)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	out := &RenderedFigure{Title: f.title, Plots: make([]RenderedPlot, len(f.plots))}

	var wg sync.WaitGroup
	for i, p := range f.plots {
		rendered := RenderedPlot{Axes: make([]RenderedAxes, len(p.axes))}
		for j, entry := range p.axes {
			dest := layout.AxesRect(i, len(f.plots), j, len(p.axes))
			if ro.parallel {
				wg.Add(1)
				go func(slot *RenderedAxes, entry axesEntry, dest Rect) {
					defer wg.Done()
					*slot = entry.render(dest, ro)
				}(&rendered.Axes[j], entry, dest)
			} else {
				rendered.Axes[j] = entry.render(dest, ro)
			}
		}
		out.Plots[i] = rendered
	}
	wg.Wait()

	return out
}

// PlotModel owns an ordered set of axes regions plus, per region, the
// geometry drawn against it. A plot may contain multiple independent
// axes regions (subplots). Attach regions with AddAxes.
type PlotModel struct {
	fig  *FigureModel
	axes []axesEntry
}

// NumAxes returns the number of attached axes regions.
func (p *PlotModel) NumAxes() int {
	return len(p.axes)
}

// ClearElements empties the geometry lists of every attached axes
// region, keeping the regions and their model configuration.
func (p *PlotModel) ClearElements() {
	for _, e := range p.axes {
		e.clearElements()
	}
}

// axesEntry erases the axis value types of an attached region so a plot
// can hold regions with heterogeneous coordinate types.
type axesEntry interface {
	render(dest Rect, ro renderOptions) RenderedAxes
	clearElements()
}

// AddAxes attaches an axes region to the plot by shared reference (the
// same model may be attached to several plots) and passes a handle to
// build for attaching geometry. It is a package-level function because
// the axis value types are introduced here, and Go methods cannot add
// type parameters.
//
// Attaching also installs the owning figure's repaint trigger on the
// model, so programmatic re-ranging schedules a new frame.
func AddAxes[X, Y Number](p *PlotModel, model *AxesModel[X, Y], build func(ax *AxesHandle[X, Y])) *AxesHandle[X, Y] {
	h := &AxesHandle[X, Y]{model: model}
	if build != nil {
		build(h)
	}
	p.axes = append(p.axes, h)
	if p.fig != nil {
		model.SetNotify(p.fig.Invalidate)
	}
	return h
}

// AxesHandle binds one attached axes region to the geometry rendered
// against it.
type AxesHandle[X, Y Number] struct {
	model    *AxesModel[X, Y]
	elements []GeometryAxes[X, Y]
}

// Model returns the shared axes model.
func (h *AxesHandle[X, Y]) Model() *AxesModel[X, Y] {
	return h.model
}

// Plot appends a geometry object to render against this region.
func (h *AxesHandle[X, Y]) Plot(g GeometryAxes[X, Y]) {
	h.elements = append(h.elements, g)
}

// ClearElements empties the geometry list without touching the model's
// bounds or grid configuration. This is the pattern for "rebuild
// geometry every frame, keep axes configuration stable".
func (h *AxesHandle[X, Y]) ClearElements() {
	h.elements = h.elements[:0]
}

// NumElements returns the number of attached geometry objects.
func (h *AxesHandle[X, Y]) NumElements() int {
	return len(h.elements)
}

func (h *AxesHandle[X, Y]) clearElements() { h.ClearElements() }

// render builds this region's context, emits gridlines, and invokes each
// geometry object's render callback exactly once.
func (h *AxesHandle[X, Y]) render(dest Rect, ro renderOptions) RenderedAxes {
	bounds, grid := h.model.snapshot()
	t := NewTransform(bounds, dest)

	list := &DrawList{}
	xs, ys := Gridlines(grid, bounds)

	yMin, yMax := float64(bounds.Y.Min()), float64(bounds.Y.Max())
	xMin, xMax := float64(bounds.X.Min()), float64(bounds.X.Max())

	xTicks := make([]Tick, len(xs))
	for i, x := range xs {
		top := t.ApplyXY(x, yMax)
		if ro.grid {
			list.Append(Segment{P0: top, P1: t.ApplyXY(x, yMin), Style: ro.gridStyle})
		}
		xTicks[i] = Tick{Value: x, Screen: top.X}
	}
	yTicks := make([]Tick, len(ys))
	for i, y := range ys {
		left := t.ApplyXY(xMin, y)
		if ro.grid {
			list.Append(Segment{P0: left, P1: t.ApplyXY(xMax, y), Style: ro.gridStyle})
		}
		yTicks[i] = Tick{Value: y, Screen: left.Y}
	}

	ctx := newAxesContext(t, list)
	for _, g := range h.elements {
		g.RenderAxes(ctx)
	}

	return RenderedAxes{
		Dest:      dest,
		XTicks:    xTicks,
		YTicks:    yTicks,
		Drawables: list.Items(),
	}
}

// Tick is one gridline position: the data-space value and the screen
// coordinate it maps to (x for vertical gridlines, y for horizontal).
type Tick struct {
	Value  float64
	Screen float64
}

// RenderedAxes is one axes region resolved to screen space: its
// destination, tick positions for labeling, and the drawables
// accumulated during the pass (gridlines first, then series geometry in
// attachment order).
type RenderedAxes struct {
	Dest      Rect
	XTicks    []Tick
	YTicks    []Tick
	Drawables []Drawable
}

// RenderedPlot is the ordered axes regions of one plot.
type RenderedPlot struct {
	Axes []RenderedAxes
}

// RenderedFigure is the full result of one render pass, handed to the
// painter.
type RenderedFigure struct {
	Title string
	Plots []RenderedPlot
}
