package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Button is a clickable label in a ButtonRow
type Button struct {
	Label  string
	Active bool
	Badge  string // hidden when empty
}

// ButtonRow renders buttons on one line and maps click columns back to them
type ButtonRow struct {
	Buttons     []Button
	Gap         int
	Style       lipgloss.Style
	ActiveStyle lipgloss.Style
	BadgeStyle  lipgloss.Style
}

// NewButtonRow creates a button row with the default styles
func NewButtonRow(buttons ...Button) ButtonRow {
	return ButtonRow{
		Buttons: buttons,
		Gap:     1,
		Style: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("240")),
		ActiveStyle: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Background(lipgloss.Color("236")),
		BadgeStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("204")),
	}
}

func (r ButtonRow) renderButton(b Button) string {
	style := r.Style
	if b.Active {
		style = r.ActiveStyle
	}
	out := style.Render(b.Label)
	if b.Badge != "" {
		out += r.BadgeStyle.Render(" " + b.Badge + " ")
	}
	return out
}

// View renders the row
func (r ButtonRow) View() string {
	parts := make([]string, len(r.Buttons))
	for i, b := range r.Buttons {
		parts[i] = r.renderButton(b)
	}
	return strings.Join(parts, strings.Repeat(" ", r.Gap))
}

// Hit returns the index of the button under column x
func (r ButtonRow) Hit(x int) (int, bool) {
	start := 0
	for i, b := range r.Buttons {
		end := start + lipgloss.Width(r.renderButton(b))
		if x >= start && x < end {
			return i, true
		}
		start = end + r.Gap
	}
	return 0, false
}
