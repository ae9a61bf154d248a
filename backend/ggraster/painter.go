// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggraster

import (
	"errors"
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/gogpu/plot"
)

// Painter strokes rendered figures into a gg drawing context.
//
// Painter is not safe for concurrent use; paint one figure at a time.
type Painter struct {
	dc *gg.Context

	// FrameStyle strokes each axes region's destination rectangle.
	// Set to nil to paint without frames.
	FrameStyle *plot.LineStyle
}

// New creates a painter with a fresh software context of the given
// pixel dimensions, cleared to white.
func New(width, height int) *Painter {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.White)
	return NewWithContext(dc)
}

// NewWithContext wraps an existing drawing context. The caller keeps
// ownership of the context and may draw around the figure.
func NewWithContext(dc *gg.Context) *Painter {
	frame := plot.LineStyle{Color: plot.Gray, Width: 1}
	return &Painter{dc: dc, FrameStyle: &frame}
}

// Context returns the underlying drawing context.
func (p *Painter) Context() *gg.Context {
	return p.dc
}

// Paint strokes every drawable of the rendered figure, plot by plot and
// axes by axes, in emission order. Stroke failures are logged and
// joined into the returned error; painting continues past them.
func (p *Painter) Paint(fig *plot.RenderedFigure) error {
	var errs []error
	for _, rp := range fig.Plots {
		for _, ax := range rp.Axes {
			if err := p.paintAxes(ax); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (p *Painter) paintAxes(ax plot.RenderedAxes) error {
	var errs []error

	if p.FrameStyle != nil {
		p.applyStyle(*p.FrameStyle)
		p.dc.DrawRectangle(ax.Dest.X, ax.Dest.Y, ax.Dest.W, ax.Dest.H)
		if err := p.dc.Stroke(); err != nil {
			errs = append(errs, err)
		}
	}

	for _, d := range ax.Drawables {
		switch d := d.(type) {
		case plot.Segment:
			p.applyStyle(d.Style)
			p.dc.MoveTo(d.P0.X, d.P0.Y)
			p.dc.LineTo(d.P1.X, d.P1.Y)
			if err := p.dc.Stroke(); err != nil {
				plot.Logger().Warn("ggraster: segment stroke failed", "err", err)
				errs = append(errs, err)
			}
		case plot.Dot:
			p.dc.ClearDash()
			p.dc.SetColor(d.Style.Color)
			p.dc.DrawCircle(d.Center.X, d.Center.Y, d.Radius)
			if err := p.dc.Fill(); err != nil {
				plot.Logger().Warn("ggraster: dot fill failed", "err", err)
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// applyStyle moves a line style onto the drawing context.
func (p *Painter) applyStyle(s plot.LineStyle) {
	p.dc.SetColor(s.Color)
	w := s.Width
	if w <= 0 {
		w = 1
	}
	p.dc.SetLineWidth(w)
	if len(s.Dash) > 0 {
		p.dc.SetDash(s.Dash...)
	} else {
		p.dc.ClearDash()
	}
}

// Image returns the painted pixels.
func (p *Painter) Image() image.Image {
	return p.dc.Image()
}

// EncodePNG writes the painted pixels as PNG.
func (p *Painter) EncodePNG(w io.Writer) error {
	return p.dc.EncodePNG(w)
}

// SavePNG writes the painted pixels to a PNG file.
func (p *Painter) SavePNG(path string) error {
	return p.dc.SavePNG(path)
}
