// Command plotdemo animates a sine/cosine figure in the terminal.
//
// Keys: +/- zoom, left/right pan, g toggles the grid, q quits.
package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/backend/term"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7dc4e4"))
	statusStyle = lipgloss.NewStyle().Faint(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

type tickMsg time.Time

func animate() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	width  int
	height int
	phase  float64
	grid   bool

	fig  *plot.FigureModel
	axes *plot.AxesModel[float64, float64]
}

func newModel() model {
	xr := plot.MustAxisRange(0.0, 2*math.Pi)
	yr := plot.MustAxisRange(-1.5, 1.5)
	gm, _ := plot.NewGridModel(8, 6)

	return model{
		grid: true,
		fig:  plot.NewFigureModel("y = sin(x+t), cos(x+t)"),
		axes: plot.NewAxesModel(plot.NewAxesBounds(xr, yr), gm),
	}
}

func (m model) Init() tea.Cmd {
	return animate()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "+", "=":
			m.axes.Zoom(0.8)
		case "-", "_":
			m.axes.Zoom(1.25)
		case "left":
			m.axes.Pan(-0.1, 0)
		case "right":
			m.axes.Pan(0.1, 0)
		case "g":
			m.grid = !m.grid
		}
	case tickMsg:
		m.phase += 0.08
		return m, animate()
	}
	return m, nil
}

func (m model) View() string {
	if m.width < 10 || m.height < 6 {
		return "terminal too small"
	}

	cols := m.width
	rows := m.height - 3 // title, labels, status

	// Full clear-then-rebuild cycle, the documented per-frame pattern.
	phase := m.phase
	m.fig.ClearPlots()
	m.fig.AddPlotWith(func(p *plot.PlotModel) {
		plot.AddAxes(p, m.axes, func(ax *plot.AxesHandle[float64, float64]) {
			ax.ClearElements()
			sine := plot.NewFuncSeries(func(x float64) float64 {
				return math.Sin(x + phase)
			}, 0.03).Color(plot.PaletteColor(0))
			cosine := plot.NewFuncSeries(func(x float64) float64 {
				return math.Cos(x + phase)
			}, 0.03).Color(plot.PaletteColor(1))
			ax.Plot(sine)
			ax.Plot(cosine)
		})
	})

	canvas := term.NewCanvas(cols, rows)
	rendered := m.fig.Render(
		plot.FixedLayout(canvas.Bounds().Inset(2)),
		plot.WithGrid(m.grid),
	)
	canvas.Paint(rendered)

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.fig.Title()))
	b.WriteByte('\n')
	b.WriteString(canvas.View())
	b.WriteByte('\n')
	b.WriteString(labelStyle.Render(xAxisLabels(rendered, cols)))
	b.WriteByte('\n')

	bounds := m.axes.Bounds()
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"x %s  y %s   +/- zoom  ←/→ pan  g grid  q quit",
		bounds.X, bounds.Y)))
	return b.String()
}

// xAxisLabels places nice tick values under their screen positions.
// Micro-pixel x coordinates divide by two to land on character columns.
func xAxisLabels(fig *plot.RenderedFigure, cols int) string {
	if len(fig.Plots) == 0 || len(fig.Plots[0].Axes) == 0 {
		return ""
	}
	ax := fig.Plots[0].Axes[0]
	if len(ax.XTicks) == 0 {
		return ""
	}

	t := ax.XTicks
	lo, hi := t[0].Value, t[len(t)-1].Value
	loCol, hiCol := t[0].Screen/2, t[len(t)-1].Screen/2

	row := []rune(strings.Repeat(" ", cols))
	for _, v := range plot.NiceTicks(lo, hi, 8) {
		var col int
		if hi > lo {
			col = int(loCol + (v-lo)/(hi-lo)*(hiCol-loCol))
		} else {
			col = int(loCol)
		}
		label := []rune(fmt.Sprintf("%.3g", v))
		for i, r := range label {
			if col+i >= 0 && col+i < cols {
				row[col+i] = r
			}
		}
	}
	return string(row)
}

func main() {
	if _, err := tea.NewProgram(newModel(), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
