package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jscyril/mock_music_player/internal/ui/components"
)

// Action is what a click on a view asks the player to do
type Action int

const (
	ActionNone Action = iota
	ActionBack
	ActionShowPlaylist
	ActionShowFavorites
	ActionPrev
	ActionTogglePlay
	ActionNext
	ActionToggleFavorite
	ActionSelect
)

// Click is the outcome of a mouse click on a view
type Click struct {
	Action  Action
	TrackID int
}

// listTop is the first row of the track list in the list views
const listTop = 4

// backHeader renders "← title" where only the arrow is clickable
func backHeader(styles Styles, title string) (components.ButtonRow, string) {
	back := components.NewButtonRow(components.Button{Label: "←"})
	back.Style = styles.Tab
	return back, lipgloss.JoinHorizontal(lipgloss.Top, back.View(), " ", styles.Title.Render(title))
}
