package plot

import "sync"

// AxesModel owns the data-space bounds and grid configuration of one
// axes region. It is shared by reference between the rendering pipeline
// and application code: concurrent readers during a render pass, brief
// exclusive access during mutation. Bounds are replaced by a single
// atomic swap, never field by field, so a reader sees either the old or
// the new pair, never a mix.
//
// The model is created once per logical axes region and lives until its
// owning plot is discarded.
type AxesModel[X, Y Number] struct {
	mu     sync.RWMutex
	bounds AxesBounds[X, Y]
	grid   GridModel

	// notify, when set, is invoked after each mutation with no locks
	// held. Figures install their frame requester here so a re-range
	// schedules a repaint instead of rendering inline.
	notify func()
}

// NewAxesModel creates an axes model with the given bounds and grid.
func NewAxesModel[X, Y Number](bounds AxesBounds[X, Y], grid GridModel) *AxesModel[X, Y] {
	return &AxesModel[X, Y]{bounds: bounds, grid: grid}
}

// Bounds returns the current data-space bounds.
func (m *AxesModel[X, Y]) Bounds() AxesBounds[X, Y] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bounds
}

// Grid returns the current grid configuration.
func (m *AxesModel[X, Y]) Grid() GridModel {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.grid
}

// SetBounds replaces the bounds wholesale.
func (m *AxesModel[X, Y]) SetBounds(bounds AxesBounds[X, Y]) {
	m.mu.Lock()
	m.bounds = bounds
	fn := m.notify
	m.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// SetGrid replaces the grid configuration.
func (m *AxesModel[X, Y]) SetGrid(grid GridModel) {
	m.mu.Lock()
	m.grid = grid
	fn := m.notify
	m.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// SetNotify installs a callback invoked after each mutation, outside the
// model's lock. Pass nil to remove it.
func (m *AxesModel[X, Y]) SetNotify(fn func()) {
	m.mu.Lock()
	m.notify = fn
	m.mu.Unlock()
}

// snapshot reads bounds and grid under a single lock acquisition so a
// render pass never pairs old bounds with a new grid.
func (m *AxesModel[X, Y]) snapshot() (AxesBounds[X, Y], GridModel) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bounds, m.grid
}

// Transform snapshots the current bounds and returns the data→screen
// mapping onto dest. The destination is supplied at render time rather
// than stored, since window geometry changes independently of the data
// range.
func (m *AxesModel[X, Y]) Transform(dest Rect) Transform[X, Y] {
	return NewTransform(m.Bounds(), dest)
}

// Pan shifts both ranges by the given fractions of their spans: dx=0.1
// moves the view one tenth of the x span toward larger x. Integer axis
// types truncate toward zero.
func (m *AxesModel[X, Y]) Pan(dx, dy float64) {
	m.mu.Lock()
	b := m.bounds
	xShift := X(float64(b.X.Span()) * dx)
	yShift := Y(float64(b.Y.Span()) * dy)
	m.bounds = AxesBounds[X, Y]{
		X: AxisRange[X]{min: b.X.min + xShift, max: b.X.max + xShift},
		Y: AxisRange[Y]{min: b.Y.min + yShift, max: b.Y.max + yShift},
	}
	fn := m.notify
	m.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Zoom scales both spans about their centers. A factor above 1 widens
// the view (zoom out); below 1 narrows it (zoom in). Factors that are
// zero, negative, or would collapse an integer axis below one unit are
// ignored for that axis.
func (m *AxesModel[X, Y]) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	m.mu.Lock()
	b := m.bounds
	m.bounds = AxesBounds[X, Y]{
		X: zoomRange(b.X, factor),
		Y: zoomRange(b.Y, factor),
	}
	fn := m.notify
	m.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// zoomRange scales a range's span about its center, keeping min <= max.
func zoomRange[T Number](r AxisRange[T], factor float64) AxisRange[T] {
	center := (float64(r.min) + float64(r.max)) / 2
	half := float64(r.Span()) * factor / 2
	lo, hi := T(center-half), T(center+half)
	if lo > hi {
		return r
	}
	return AxisRange[T]{min: lo, max: hi}
}
