package views

import (
	"fmt"
	"strings"

	"github.com/jscyril/mock_music_player/api"
	"github.com/jscyril/mock_music_player/internal/ui/components"
)

// PlaylistView lists every track of the album
type PlaylistView struct {
	Width     int
	Height    int
	Album     *api.Album
	TrackList components.TrackList
	Styles    Styles
}

// NewPlaylistView creates a new playlist view
func NewPlaylistView(album *api.Album, styles Styles, width, height int) PlaylistView {
	v := PlaylistView{
		Width:     width,
		Height:    height,
		Album:     album,
		TrackList: newStyledList(styles, width, height),
		Styles:    styles,
	}
	v.TrackList.SetItems(album.Tracks)
	return v
}

func newStyledList(styles Styles, width, height int) components.TrackList {
	l := components.NewTrackList(listHeight(height), width)
	l.SelectedStyle = styles.Selected
	l.CurrentStyle = styles.Title
	l.MutedStyle = styles.Muted
	l.EmptyHintStyle = styles.Subtitle
	l.HeartStyle = styles.Heart
	l.HeartOffStyle = styles.Muted
	return l
}

// listHeight leaves room for the header rows and the hint line
func listHeight(height int) int {
	h := height - listTop - 2
	if h < 1 {
		h = 1
	}
	return h
}

// Resize updates view dimensions
func (v *PlaylistView) Resize(width, height int) {
	v.Width = width
	v.Height = height
	v.TrackList.Width = width
	v.TrackList.Height = listHeight(height)
}

// SetState refreshes the favorites and the current track marker
func (v *PlaylistView) SetState(state api.PlayerState) {
	v.TrackList.SetFavorites(state.FavoriteIDs)
	v.TrackList.CurrentID = state.CurrentTrack.ID
}

// SelectedTrack returns the highlighted track
func (v *PlaylistView) SelectedTrack() (api.Track, bool) {
	return v.TrackList.SelectedItem()
}

// View renders the playlist view
func (v PlaylistView) View() string {
	_, header := backHeader(v.Styles, "Playlist")

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n\n")
	sb.WriteString(v.Styles.Subtitle.Render(v.Album.Title))
	sb.WriteString(v.Styles.Muted.Render(fmt.Sprintf(" · %s · %d songs", v.Album.Artist, v.Album.Len())))
	sb.WriteString("\n\n")
	sb.WriteString(v.TrackList.View())
	sb.WriteString("\n\n")
	sb.WriteString(v.Styles.Muted.Render("[Enter] Play  [f] Favorite  [↑↓] Navigate  [Esc] Back"))

	return sb.String()
}

// Click maps a click at (x, y) relative to the view to an action
func (v PlaylistView) Click(x, y int) (Click, bool) {
	return clickList(v.Styles, &v.TrackList, "Playlist", x, y)
}

// clickList resolves clicks shared by the list views: the back arrow,
// a heart toggle or a row
func clickList(styles Styles, list *components.TrackList, title string, x, y int) (Click, bool) {
	if y == 0 {
		back, _ := backHeader(styles, title)
		if _, ok := back.Hit(x); ok {
			return Click{Action: ActionBack}, true
		}
		return Click{}, false
	}

	index, ok := list.RowAt(y - listTop)
	if !ok {
		return Click{}, false
	}
	track := list.Items[index]
	if list.OnHeart(x) {
		return Click{Action: ActionToggleFavorite, TrackID: track.ID}, true
	}
	return Click{Action: ActionSelect, TrackID: track.ID}, true
}
