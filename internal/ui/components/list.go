package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jscyril/mock_music_player/api"
	"github.com/mattn/go-runewidth"
)

const (
	heartOn  = "♥"
	heartOff = "♡"
	nowMark  = "▶"
)

// TrackList represents a scrollable list of tracks
type TrackList struct {
	Items          []api.Track
	Favorites      map[int]bool
	CurrentID      int // id of the track loaded in the player, 0 for none
	Selected       int
	Height         int
	Width          int
	Offset         int
	SelectedStyle  lipgloss.Style
	NormalStyle    lipgloss.Style
	CurrentStyle   lipgloss.Style
	MutedStyle     lipgloss.Style
	HeartStyle     lipgloss.Style
	HeartOffStyle  lipgloss.Style
	EmptyText      string
	EmptyHint      string // second line under EmptyText, hidden when empty
	EmptyHintStyle lipgloss.Style
}

// NewTrackList creates a new track list
func NewTrackList(height, width int) TrackList {
	return TrackList{
		Items:     make([]api.Track, 0),
		Favorites: make(map[int]bool),
		Height:    height,
		Width:     width,
		SelectedStyle: lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Bold(true),
		NormalStyle:    lipgloss.NewStyle(),
		CurrentStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		MutedStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HeartStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
		HeartOffStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		EmptyText:      "No tracks",
		EmptyHintStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	}
}

// SetItems replaces the list items, keeping the selection in range
func (l *TrackList) SetItems(items []api.Track) {
	l.Items = items
	if l.Selected >= len(items) {
		l.Selected = len(items) - 1
	}
	if l.Selected < 0 {
		l.Selected = 0
	}
	l.ensureVisible()
}

// SetFavorites replaces the set of favorite ids
func (l *TrackList) SetFavorites(ids []int) {
	l.Favorites = make(map[int]bool, len(ids))
	for _, id := range ids {
		l.Favorites[id] = true
	}
}

// Update handles messages for the track list
func (l TrackList) Update(msg tea.Msg) (TrackList, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "home":
			l.Selected = 0
			l.Offset = 0
		case "end":
			if len(l.Items) > 0 {
				l.Selected = len(l.Items) - 1
				l.ensureVisible()
			}
		case "pgup":
			l.PageUp()
		case "pgdown":
			l.PageDown()
		}
	}
	return l, nil
}

// MoveUp moves selection up
func (l *TrackList) MoveUp() {
	if l.Selected > 0 {
		l.Selected--
		l.ensureVisible()
	}
}

// MoveDown moves selection down
func (l *TrackList) MoveDown() {
	if l.Selected < len(l.Items)-1 {
		l.Selected++
		l.ensureVisible()
	}
}

// PageUp moves selection up by a page
func (l *TrackList) PageUp() {
	l.Selected -= l.visibleHeight()
	if l.Selected < 0 {
		l.Selected = 0
	}
	l.ensureVisible()
}

// PageDown moves selection down by a page
func (l *TrackList) PageDown() {
	l.Selected += l.visibleHeight()
	if l.Selected >= len(l.Items) {
		l.Selected = len(l.Items) - 1
	}
	if l.Selected < 0 {
		l.Selected = 0
	}
	l.ensureVisible()
}

func (l *TrackList) visibleHeight() int {
	if l.Height < 1 {
		return 1
	}
	return l.Height
}

// ensureVisible ensures the selected item is visible
func (l *TrackList) ensureVisible() {
	visible := l.visibleHeight()
	if l.Selected < l.Offset {
		l.Offset = l.Selected
	} else if l.Selected >= l.Offset+visible {
		l.Offset = l.Selected - visible + 1
	}
	if l.Offset < 0 {
		l.Offset = 0
	}
}

// SelectedItem returns the currently selected track
func (l *TrackList) SelectedItem() (api.Track, bool) {
	if l.Selected >= 0 && l.Selected < len(l.Items) {
		return l.Items[l.Selected], true
	}
	return api.Track{}, false
}

// RowAt maps a line offset inside the list to an item index
func (l *TrackList) RowAt(y int) (int, bool) {
	if y < 0 || y >= l.visibleHeight() {
		return 0, false
	}
	index := l.Offset + y
	if index >= len(l.Items) {
		return 0, false
	}
	return index, true
}

// OnHeart reports whether column x falls on the heart toggle of a row
func (l *TrackList) OnHeart(x int) bool {
	heartCol := l.rowWidth() - runewidth.StringWidth(heartOn)
	return x >= heartCol-1 && x < l.rowWidth()
}

func (l *TrackList) rowWidth() int {
	if l.Width < 30 {
		return 30
	}
	return l.Width
}

// formatRow lays out: marker, number, title, artist, duration, heart
func (l *TrackList) formatRow(i int, track api.Track) string {
	width := l.rowWidth()

	marker := "  "
	if track.ID == l.CurrentID {
		marker = nowMark + " "
	}
	number := fmt.Sprintf("%2d. ", i+1)
	duration := fmt.Sprintf(" %5s ", track.Duration)
	heart := heartOff
	if l.Favorites[track.ID] {
		heart = heartOn
	}

	fixed := runewidth.StringWidth(marker+number+duration) + runewidth.StringWidth(heart)
	free := width - fixed
	titleW := free * 3 / 5
	artistW := free - titleW

	title := runewidth.FillRight(runewidth.Truncate(track.Title, titleW-1, "…"), titleW)
	artist := runewidth.FillRight(runewidth.Truncate(track.Artist, artistW-1, "…"), artistW)

	return marker + number + title + artist + duration + heart
}

// View renders the track list
func (l TrackList) View() string {
	if len(l.Items) == 0 {
		if l.EmptyHint == "" {
			return l.MutedStyle.Render(l.EmptyText)
		}
		return l.MutedStyle.Render(l.EmptyText) + "\n" + l.EmptyHintStyle.Render(l.EmptyHint)
	}

	end := l.Offset + l.visibleHeight()
	if end > len(l.Items) {
		end = len(l.Items)
	}

	lines := make([]string, 0, end-l.Offset)
	for i := l.Offset; i < end; i++ {
		track := l.Items[i]
		row := l.formatRow(i, track)

		switch {
		case i == l.Selected:
			row = l.SelectedStyle.Render(row)
		case track.ID == l.CurrentID:
			row = l.CurrentStyle.Render(row)
		default:
			// colour only the heart so the rest stays readable
			body, heart := splitHeart(row)
			style := l.HeartOffStyle
			if l.Favorites[track.ID] {
				style = l.HeartStyle
			}
			row = l.NormalStyle.Render(body) + style.Render(heart)
		}
		lines = append(lines, row)
	}

	return strings.Join(lines, "\n")
}

func splitHeart(row string) (string, string) {
	for _, h := range []string{heartOn, heartOff} {
		if strings.HasSuffix(row, h) {
			return strings.TrimSuffix(row, h), h
		}
	}
	return row, ""
}
