// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggraster

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/gogpu/plot"
)

func sineFigure() *plot.FigureModel {
	model := plot.NewAxesModel(
		plot.NewAxesBounds(plot.MustAxisRange(0.0, 1.0), plot.MustAxisRange(0.0, 1.0)),
		plot.GridModel{XDivisions: 4, YDivisions: 4},
	)
	line := plot.NewLine[float64, float64]().Color(plot.Red).Width(2)
	line.AddPoint(plot.Pt2(0.0, 0.5))
	line.AddPoint(plot.Pt2(1.0, 0.5))

	fig := plot.NewFigureModel("test")
	fig.AddPlotWith(func(p *plot.PlotModel) {
		plot.AddAxes(p, model, func(ax *plot.AxesHandle[float64, float64]) {
			ax.Plot(line)
		})
	})
	return fig
}

func TestPainterPaint(t *testing.T) {
	p := New(100, 100)
	rendered := sineFigure().Render(plot.FixedLayout(plot.R(0, 0, 100, 100)))
	if err := p.Paint(rendered); err != nil {
		t.Fatalf("Paint failed: %v", err)
	}

	img := p.Image()
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 100 {
		t.Fatalf("image size = %v", img.Bounds())
	}

	// The horizontal line at data y=0.5 crosses screen y=50 in red.
	r, g, b, _ := img.At(50, 50).RGBA()
	if r < 0xc000 || g > 0x4000 || b > 0x4000 {
		t.Errorf("pixel at line = (%#x, %#x, %#x), want red", r, g, b)
	}

	// Away from any geometry the background stays white.
	r, g, b, _ = img.At(30, 30).RGBA()
	if r < 0xc000 || g < 0xc000 || b < 0xc000 {
		t.Errorf("background pixel = (%#x, %#x, %#x), want white", r, g, b)
	}
}

func TestPainterDots(t *testing.T) {
	model := plot.NewAxesModel(
		plot.NewAxesBounds(plot.MustAxisRange(0.0, 1.0), plot.MustAxisRange(0.0, 1.0)),
		plot.GridModel{},
	)
	pts := plot.NewPoints[float64, float64]().Color(plot.Blue).Radius(5)
	pts.AddPoint(plot.Pt2(0.5, 0.5))

	fig := plot.NewFigureModel("")
	fig.AddPlotWith(func(p *plot.PlotModel) {
		plot.AddAxes(p, model, func(ax *plot.AxesHandle[float64, float64]) {
			ax.Plot(pts)
		})
	})

	p := New(60, 60)
	p.FrameStyle = nil
	if err := p.Paint(fig.Render(plot.FixedLayout(plot.R(0, 0, 60, 60)), plot.WithGrid(false))); err != nil {
		t.Fatalf("Paint failed: %v", err)
	}

	_, _, b, _ := p.Image().At(30, 30).RGBA()
	if b < 0xc000 {
		t.Errorf("dot center blue channel = %#x, want near full", b)
	}
}

func TestPainterFrame(t *testing.T) {
	p := New(50, 50)
	p.FrameStyle = &plot.LineStyle{Color: plot.Black, Width: 1}

	fig := plot.NewFigureModel("")
	fig.AddPlotWith(func(pm *plot.PlotModel) {
		model := plot.NewAxesModel(
			plot.NewAxesBounds(plot.MustAxisRange(0.0, 1.0), plot.MustAxisRange(0.0, 1.0)),
			plot.GridModel{},
		)
		plot.AddAxes(pm, model, nil)
	})

	if err := p.Paint(fig.Render(plot.FixedLayout(plot.R(10, 10, 30, 30)), plot.WithGrid(false))); err != nil {
		t.Fatalf("Paint failed: %v", err)
	}

	// The frame edge darkens pixels along the destination boundary.
	r, g, b, _ := p.Image().At(25, 10).RGBA()
	if r > 0xc000 && g > 0xc000 && b > 0xc000 {
		t.Error("top frame edge not stroked")
	}
}

func TestPainterEncodePNG(t *testing.T) {
	p := New(20, 20)
	if err := p.Paint(sineFigure().Render(plot.FixedLayout(plot.R(0, 0, 20, 20)))); err != nil {
		t.Fatalf("Paint failed: %v", err)
	}

	var buf bytes.Buffer
	if err := p.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	sig := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if !bytes.HasPrefix(buf.Bytes(), sig) {
		t.Errorf("output does not start with the PNG signature: % x", buf.Bytes()[:8])
	}
}

func TestPainterBackgroundIsWhite(t *testing.T) {
	p := New(10, 10)
	got := p.Image().At(5, 5)
	r, g, b, a := got.RGBA()
	want := color.RGBA{255, 255, 255, 255}
	wr, wg, wb, wa := want.RGBA()
	if r != wr || g != wg || b != wb || a != wa {
		t.Errorf("fresh context pixel = %v, want white", got)
	}
}
