package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/plot"
)

// Canvas rasterizes rendered figures into braille characters for
// terminal display. Each character cell holds a 2x4 grid of
// micro-pixels, so a canvas of C columns and R rows exposes a
// 2C x 4R screen space to the plotting core.
//
// Colors resolve per cell, last writer wins, and are emitted through
// lipgloss styles in View.
type Canvas struct {
	cols, rows int
	mask       [][]uint8  // per-cell 8-bit braille mask
	fg         [][]string // per-cell foreground, "" = default
}

// NewCanvas creates an empty canvas of the given character cell size.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{cols: cols, rows: rows}
	c.mask = make([][]uint8, rows)
	c.fg = make([][]string, rows)
	for y := range c.mask {
		c.mask[y] = make([]uint8, cols)
		c.fg[y] = make([]string, cols)
	}
	return c
}

// Cols returns the width in character cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the height in character cells.
func (c *Canvas) Rows() int { return c.rows }

// Bounds returns the canvas's micro-pixel screen space. Pass this (or a
// sub-rectangle) as the layout destination when rendering a figure for
// this canvas.
func (c *Canvas) Bounds() plot.Rect {
	return plot.R(0, 0, float64(2*c.cols), float64(4*c.rows))
}

// Clear empties the canvas for reuse.
func (c *Canvas) Clear() {
	for y := 0; y < c.rows; y++ {
		for x := 0; x < c.cols; x++ {
			c.mask[y][x] = 0
			c.fg[y][x] = ""
		}
	}
}

// setPixel sets one micro-pixel. Braille dot numbering puts dots 1-3 and
// 7 in the left column, 4-6 and 8 in the right.
func (c *Canvas) setPixel(mx, my int, hex string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= c.rows || cx >= c.cols {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	c.mask[cy][cx] |= bit
	c.fg[cy][cx] = hex
}

// strokeLine draws a micro-pixel line with Bresenham's algorithm.
func (c *Canvas) strokeLine(x0, y0, x1, y1 int, hex string) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.setPixel(x0, y0, hex)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillDot draws a filled micro-pixel disc.
func (c *Canvas) fillDot(cx, cy, r int, hex string) {
	if r < 1 {
		r = 1
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.setPixel(cx+dx, cy+dy, hex)
			}
		}
	}
}

// Paint rasterizes every drawable of the rendered figure onto the
// canvas. Coordinates are interpreted in the canvas's micro-pixel space;
// render the figure with a layout over Bounds.
func (c *Canvas) Paint(fig *plot.RenderedFigure) {
	for _, rp := range fig.Plots {
		for _, ax := range rp.Axes {
			for _, d := range ax.Drawables {
				switch d := d.(type) {
				case plot.Segment:
					hex := d.Style.Color.HexString()
					c.strokeLine(
						roundInt(d.P0.X), roundInt(d.P0.Y),
						roundInt(d.P1.X), roundInt(d.P1.Y), hex)
				case plot.Dot:
					c.fillDot(roundInt(d.Center.X), roundInt(d.Center.Y),
						roundInt(d.Radius), d.Style.Color.HexString())
				}
			}
		}
	}
}

// View assembles the canvas into styled terminal lines. Runs of cells
// sharing a foreground color collapse into a single styled segment to
// keep the output compact.
func (c *Canvas) View() string {
	var b strings.Builder
	for y := 0; y < c.rows; y++ {
		x := 0
		for x < c.cols {
			hex := c.fg[y][x]
			run := x
			for run < c.cols && c.fg[y][run] == hex {
				run++
			}
			text := c.cellRunes(y, x, run)
			if hex == "" {
				b.WriteString(text)
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(text))
			}
			x = run
		}
		if y < c.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Runes returns the canvas as plain unstyled lines, one per row. Useful
// for tests and non-color terminals.
func (c *Canvas) Runes() []string {
	out := make([]string, c.rows)
	for y := 0; y < c.rows; y++ {
		out[y] = c.cellRunes(y, 0, c.cols)
	}
	return out
}

func (c *Canvas) cellRunes(y, from, to int) string {
	row := make([]rune, 0, to-from)
	for x := from; x < to; x++ {
		m := c.mask[y][x]
		if m == 0 {
			row = append(row, ' ')
		} else {
			row = append(row, rune(0x2800+int(m)))
		}
	}
	return string(row)
}

func roundInt(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
