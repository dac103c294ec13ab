package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jscyril/mock_music_player/internal/arc"
)

// Arc draws the semicircular progress indicator on a character grid.
// Terminal cells are about twice as tall as wide, so columns are doubled.
type Arc struct {
	Radius      int // in rows
	FilledChar  string
	EmptyChar   string
	KnobChar    string
	FilledStyle lipgloss.Style
	EmptyStyle  lipgloss.Style
	KnobStyle   lipgloss.Style
}

// NewArc creates an arc of the given radius in rows
func NewArc(radius int) Arc {
	if radius < 2 {
		radius = 2
	}
	return Arc{
		Radius:      radius,
		FilledChar:  "●",
		EmptyChar:   "·",
		KnobChar:    "◉",
		FilledStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		EmptyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		KnobStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Bold(true),
	}
}

type cell int

const (
	cellBlank cell = iota
	cellEmpty
	cellFilled
	cellKnob
)

// Size returns the canvas width and height in cells
func (a Arc) Size() (int, int) {
	return 4*a.Radius + 1, a.Radius + 1
}

// geometry places the centre on the baseline, y growing upwards
func (a Arc) geometry() arc.Geometry {
	r := float64(a.Radius)
	return arc.New(r, r, 0)
}

// toCell maps geometry coordinates to grid column/row
func (a Arc) toCell(x, y float64) (int, int) {
	col := int(math.Round(x * 2))
	row := a.Radius - int(math.Round(y))
	return col, row
}

// Grid computes the cell grid for progress
func (a Arc) Grid(progress float64) [][]cell {
	w, h := a.Size()
	grid := make([][]cell, h)
	for i := range grid {
		grid[i] = make([]cell, w)
	}

	g := a.geometry()
	p := arc.Clamp(progress)
	samples := 8 * a.Radius
	for i := 0; i <= samples; i++ {
		sp := float64(i) * 100 / float64(samples)
		pt := g.At(sp)
		col, row := a.toCell(pt.KnobX, pt.KnobY)
		if row < 0 || row >= h || col < 0 || col >= w {
			continue
		}
		c := cellEmpty
		if sp <= p {
			c = cellFilled
		}
		if grid[row][col] < c {
			grid[row][col] = c
		}
	}

	knob := g.At(p)
	col, row := a.toCell(knob.KnobX, knob.KnobY)
	if row >= 0 && row < h && col >= 0 && col < w {
		grid[row][col] = cellKnob
	}
	return grid
}

// View renders the arc for progress (percent)
func (a Arc) View(progress float64) string {
	grid := a.Grid(progress)
	lines := make([]string, len(grid))
	for i, row := range grid {
		var sb strings.Builder
		for _, c := range row {
			switch c {
			case cellEmpty:
				sb.WriteString(a.EmptyStyle.Render(a.EmptyChar))
			case cellFilled:
				sb.WriteString(a.FilledStyle.Render(a.FilledChar))
			case cellKnob:
				sb.WriteString(a.KnobStyle.Render(a.KnobChar))
			default:
				sb.WriteString(" ")
			}
		}
		lines[i] = strings.TrimRight(sb.String(), " ")
	}
	return strings.Join(lines, "\n")
}
