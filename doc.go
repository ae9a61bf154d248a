// Package plot provides a 2D data-plotting engine for Go.
//
// # Overview
//
// plot maps abstract data-space coordinates into screen-space drawing
// instructions. A figure owns plots, a plot owns axes regions, and each
// axes region owns the geometric series drawn against it. Rendering a
// figure produces resolved screen-space drawables (segments and dots with
// style) that a painter backend turns into pixels, terminal cells, or
// GPU commands.
//
// # Quick Start
//
//	import "github.com/gogpu/plot"
//
//	xr, _ := plot.NewAxisRange(0.0, 2*math.Pi)
//	yr, _ := plot.NewAxisRange(-1.5, 1.5)
//	grid, _ := plot.NewGridModel(10, 8)
//	axes := plot.NewAxesModel(plot.NewAxesBounds(xr, yr), grid)
//
//	fig := plot.NewFigureModel("y = sin(x)")
//	fig.AddPlotWith(func(p *plot.PlotModel) {
//		plot.AddAxes(p, axes, func(ax *plot.AxesHandle[float64, float64]) {
//			line := plot.NewLine[float64, float64]().Color(plot.Blue)
//			for x := 0.0; x <= 2*math.Pi; x += 0.05 {
//				line.AddPoint(plot.Pt2(x, math.Sin(x)))
//			}
//			ax.Plot(line)
//		})
//	})
//
//	rendered := fig.Render(plot.GridLayout(plot.R(0, 0, 800, 600), 10))
//
// # Architecture
//
// The library is organized into:
//   - Core model: FigureModel, PlotModel, AxesModel, GridModel, AxisRange
//   - Geometry: Line, Points, FuncSeries, and the GeometryAxes capability
//   - Output: Drawable, DrawList, RenderedFigure
//   - Backends: backend/ggraster (software raster via gogpu/gg),
//     backend/ebitenview (Ebitengine), backend/term (braille terminal)
//
// # Coordinate System
//
// Data space is the coordinate system of the plotted values; screen space
// uses standard computer graphics coordinates with the origin at the
// top-left and Y increasing downward. The axes transform flips Y so plot
// values grow upward on screen.
//
// # Concurrency
//
// FigureModel and AxesModel are safe for concurrent use: readers share
// the model during a render pass, writers (resize, re-range) take brief
// exclusive sections and replace bounds wholesale. A render pass never
// observes a half-updated bounds pair.
package plot
