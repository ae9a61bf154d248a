package plot

// RenderOption configures a single render pass.
// Use functional options to customize FigureModel.Render behavior.
//
// Example:
//
//	// Default: gridlines on, sequential traversal
//	rendered := fig.Render(layout)
//
//	// No grid, axes rendered concurrently
//	rendered := fig.Render(layout, plot.WithGrid(false), plot.WithParallel(true))
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for one render pass.
type renderOptions struct {
	grid      bool
	gridStyle LineStyle
	parallel  bool
}

// defaultRenderOptions returns the default render pass options.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		grid:      true,
		gridStyle: LineStyle{Color: RGB(0.85, 0.85, 0.85), Width: 1},
	}
}

// WithGrid enables or disables gridline emission. Tick positions are
// computed either way so painters can still label the axes.
func WithGrid(enabled bool) RenderOption {
	return func(o *renderOptions) {
		o.grid = enabled
	}
}

// WithGridStyle sets the stroke style used for gridlines.
func WithGridStyle(s LineStyle) RenderOption {
	return func(o *renderOptions) {
		o.gridStyle = s
	}
}

// WithParallel renders the axes regions of the figure concurrently.
// Distinct AxesModel instances have no cross-dependencies, so this is
// safe whenever geometry callbacks touch only their own series state.
func WithParallel(enabled bool) RenderOption {
	return func(o *renderOptions) {
		o.parallel = enabled
	}
}
