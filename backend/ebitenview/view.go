package ebitenview

import (
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gogpu/plot"
)

// FigureView draws a figure model onto an Ebitengine image. It is the
// window-system-facing collaborator: it re-renders the model only when
// the model reported a change or the screen size moved, and repaints the
// cached drawable snapshot otherwise.
//
// Call Draw from your game's Draw method; the game loop itself stays
// outside this package.
type FigureView struct {
	// Pad is the spacing, in logical pixels, around and between axes
	// regions.
	Pad float64

	// RenderOptions are passed through to every render pass.
	RenderOptions []plot.RenderOption

	model *plot.FigureModel
	dirty atomic.Bool

	mu      sync.Mutex
	cached  *plot.RenderedFigure
	cachedW int
	cachedH int
}

// New creates a view over the model and installs itself as the model's
// frame requester: any model mutation marks the view dirty, and the next
// Draw picks the change up. The defer-and-notify pattern keeps mutation
// calls from rendering inline.
func New(model *plot.FigureModel) *FigureView {
	v := &FigureView{Pad: 8, model: model}
	v.dirty.Store(true)
	model.SetFrameRequester(func() { v.dirty.Store(true) })
	return v
}

// Invalidate forces a re-render on the next Draw.
func (v *FigureView) Invalidate() {
	v.dirty.Store(true)
}

// Draw renders the model if needed and paints it onto screen.
func (v *FigureView) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	v.mu.Lock()
	if v.cached == nil || v.dirty.Swap(false) || w != v.cachedW || h != v.cachedH {
		layout := plot.GridLayout(plot.R(0, 0, float64(w), float64(h)), v.Pad)
		v.cached = v.model.Render(layout, v.RenderOptions...)
		v.cachedW, v.cachedH = w, h
	}
	fig := v.cached
	v.mu.Unlock()

	Paint(screen, fig)
}

// Paint strokes a rendered figure onto dst. Dash patterns are not
// supported by the vector stroker and paint as solid lines.
func Paint(dst *ebiten.Image, fig *plot.RenderedFigure) {
	for _, rp := range fig.Plots {
		for _, ax := range rp.Axes {
			paintFrame(dst, ax.Dest)
			for _, d := range ax.Drawables {
				switch d := d.(type) {
				case plot.Segment:
					w := float32(d.Style.Width)
					if w <= 0 {
						w = 1
					}
					vector.StrokeLine(dst,
						float32(d.P0.X), float32(d.P0.Y),
						float32(d.P1.X), float32(d.P1.Y),
						w, d.Style.Color, true)
				case plot.Dot:
					vector.DrawFilledCircle(dst,
						float32(d.Center.X), float32(d.Center.Y),
						float32(d.Radius), d.Style.Color, true)
				}
			}
		}
	}
}

func paintFrame(dst *ebiten.Image, r plot.Rect) {
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.MaxX()), float32(r.MaxY())
	c := plot.Gray
	vector.StrokeLine(dst, x0, y0, x1, y0, 1, c, true)
	vector.StrokeLine(dst, x1, y0, x1, y1, 1, c, true)
	vector.StrokeLine(dst, x1, y1, x0, y1, 1, c, true)
	vector.StrokeLine(dst, x0, y1, x0, y0, 1, c, true)
}
