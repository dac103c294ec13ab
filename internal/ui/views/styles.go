package views

import "github.com/charmbracelet/lipgloss"

// Palette holds the colours every view draws with
type Palette struct {
	Accent    string
	Text      string
	Muted     string
	Highlight string
	Badge     string
	Border    string
}

// DefaultPalette returns the built-in colours
func DefaultPalette() Palette {
	return Palette{
		Accent:    "212",
		Text:      "255",
		Muted:     "240",
		Highlight: "62",
		Badge:     "204",
		Border:    "62",
	}
}

// Styles are the lipgloss styles derived from a palette
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Selected  lipgloss.Style
	Heart     lipgloss.Style
	Badge     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Border    lipgloss.Style
	Error     lipgloss.Style
}

// NewStyles builds the styles for p
func NewStyles(p Palette) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Accent)),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Accent)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Highlight)).
			Foreground(lipgloss.Color("230")).
			Bold(true),
		Heart: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Badge)),
		Badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color(p.Badge)),
		Tab: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color(p.Muted)),
		ActiveTab: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color(p.Accent)).
			Background(lipgloss.Color("236")),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Border)).
			Padding(0, 2),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}
