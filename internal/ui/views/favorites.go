package views

import (
	"fmt"
	"strings"

	"github.com/jscyril/mock_music_player/api"
	"github.com/jscyril/mock_music_player/internal/ui/components"
)

// FavoritesView lists the favorite tracks in album order
type FavoritesView struct {
	Width     int
	Height    int
	Album     *api.Album
	TrackList components.TrackList
	Styles    Styles
}

// NewFavoritesView creates a new favorites view
func NewFavoritesView(a *api.Album, styles Styles, width, height int) FavoritesView {
	v := FavoritesView{
		Width:     width,
		Height:    height,
		Album:     a,
		TrackList: newStyledList(styles, width, height),
		Styles:    styles,
	}
	v.TrackList.EmptyText = "No favorites yet"
	v.TrackList.EmptyHint = "Press f on a track to add it"
	return v
}

// Resize updates view dimensions
func (v *FavoritesView) Resize(width, height int) {
	v.Width = width
	v.Height = height
	v.TrackList.Width = width
	v.TrackList.Height = listHeight(height)
}

// SetState rebuilds the list from the favorites set
func (v *FavoritesView) SetState(state api.PlayerState) {
	v.TrackList.SetItems(state.Favorites)
	v.TrackList.SetFavorites(state.FavoriteIDs)
	v.TrackList.CurrentID = state.CurrentTrack.ID
}

// SelectedTrack returns the highlighted track
func (v *FavoritesView) SelectedTrack() (api.Track, bool) {
	return v.TrackList.SelectedItem()
}

// View renders the favorites view
func (v FavoritesView) View() string {
	_, header := backHeader(v.Styles, "Favorites")

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n\n")
	sb.WriteString(v.Styles.Subtitle.Render("My Favorites"))
	sb.WriteString(v.Styles.Muted.Render(fmt.Sprintf(" · %d songs", len(v.TrackList.Items))))
	sb.WriteString("\n\n")
	sb.WriteString(v.TrackList.View())
	if len(v.TrackList.Items) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(v.Styles.Muted.Render("[Enter] Play  [f] Remove  [↑↓] Navigate  [Esc] Back"))
	}

	return sb.String()
}

// Click maps a click at (x, y) relative to the view to an action
func (v FavoritesView) Click(x, y int) (Click, bool) {
	return clickList(v.Styles, &v.TrackList, "Favorites", x, y)
}
