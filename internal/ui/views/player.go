package views

import (
	"fmt"
	"strings"

	"github.com/jscyril/mock_music_player/api"
	"github.com/jscyril/mock_music_player/internal/player"
	"github.com/jscyril/mock_music_player/internal/ui/components"
)

// PlayerView is the now-playing screen
type PlayerView struct {
	Width  int
	Height int
	Album  *api.Album
	State  api.PlayerState
	Arc    components.Arc
	Styles Styles
}

// NewPlayerView creates a new player view
func NewPlayerView(album *api.Album, styles Styles, width, height int) PlayerView {
	v := PlayerView{
		Width:  width,
		Height: height,
		Album:  album,
		Styles: styles,
	}
	v.Arc = components.NewArc(arcRadius(height))
	v.Arc.FilledStyle = styles.Accent
	v.Arc.EmptyStyle = styles.Muted
	return v
}

// arcRadius picks the largest arc that leaves room for the other rows
func arcRadius(height int) int {
	r := height - (playerArcTop + 5)
	if r > 8 {
		r = 8
	}
	if r < 3 {
		r = 3
	}
	return r
}

// SetState updates the playback state
func (v *PlayerView) SetState(state api.PlayerState) {
	v.State = state
}

// Resize adapts the arc to the new height
func (v *PlayerView) Resize(width, height int) {
	v.Width = width
	v.Height = height
	radius := arcRadius(height)
	if radius != v.Arc.Radius {
		arc := components.NewArc(radius)
		arc.FilledStyle = v.Arc.FilledStyle
		arc.EmptyStyle = v.Arc.EmptyStyle
		v.Arc = arc
	}
}

func (v PlayerView) header() components.ButtonRow {
	badge, _ := player.Badge(len(v.State.FavoriteIDs))
	row := components.NewButtonRow(
		components.Button{Label: "←"},
		components.Button{Label: "☰ Playlist"},
		components.Button{Label: "♥ Favorites", Badge: badge},
	)
	row.Style = v.Styles.Tab
	row.ActiveStyle = v.Styles.ActiveTab
	row.BadgeStyle = v.Styles.Badge
	return row
}

func (v PlayerView) controls() components.ButtonRow {
	play := "▶ Play"
	if v.State.Playing() {
		play = "⏸ Pause"
	}
	heart := "♡"
	if v.State.IsFavorite(v.State.CurrentTrack.ID) {
		heart = "♥"
	}
	row := components.NewButtonRow(
		components.Button{Label: "⏮"},
		components.Button{Label: play, Active: true},
		components.Button{Label: "⏭"},
		components.Button{Label: heart},
	)
	row.Gap = 2
	row.Style = v.Styles.Subtitle.Padding(0, 1)
	row.ActiveStyle = v.Styles.ActiveTab
	return row
}

// layout rows, relative to the top of the view
const (
	playerHeaderRow = 0
	playerCardRows  = 4
	playerArcTop    = 2 + playerCardRows + 1
)

// ControlsRow is the row of the transport buttons
func (v PlayerView) ControlsRow() int {
	_, h := v.Arc.Size()
	return playerArcTop + h + 3
}

// View renders the player view
func (v PlayerView) View() string {
	lines := []string{v.header().View(), ""}

	card := v.Styles.Title.Render(v.Album.Title) + "\n" + v.Styles.Subtitle.Render(v.Album.Artist)
	lines = append(lines, strings.Split(v.Styles.Border.Render(card), "\n")...)
	lines = append(lines, "")

	lines = append(lines, strings.Split(v.Arc.View(v.State.Progress), "\n")...)
	_, arcHeight := v.Arc.Size()
	for len(lines) < playerArcTop+arcHeight {
		lines = append(lines, "")
	}

	track := v.State.CurrentTrack
	lines = append(lines,
		v.Styles.Subtitle.Render(v.State.TimeLabel)+v.Styles.Muted.Render(" / "+track.Duration),
		fmt.Sprintf("%s %s",
			v.Styles.Title.Render(track.Title),
			v.Styles.Muted.Render("· "+track.Artist)),
		"",
		v.controls().View(),
	)

	return strings.Join(lines, "\n")
}

// Click maps a click at (x, y) relative to the view to an action
func (v PlayerView) Click(x, y int) (Click, bool) {
	switch y {
	case playerHeaderRow:
		i, ok := v.header().Hit(x)
		if !ok {
			return Click{}, false
		}
		return Click{Action: []Action{ActionBack, ActionShowPlaylist, ActionShowFavorites}[i]}, true
	case v.ControlsRow():
		i, ok := v.controls().Hit(x)
		if !ok {
			return Click{}, false
		}
		actions := []Action{ActionPrev, ActionTogglePlay, ActionNext, ActionToggleFavorite}
		return Click{Action: actions[i], TrackID: v.State.CurrentTrack.ID}, true
	}
	return Click{}, false
}
