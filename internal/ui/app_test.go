package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jscyril/mock_music_player/api"
	"github.com/jscyril/mock_music_player/internal/album"
	"github.com/jscyril/mock_music_player/internal/playback"
	"github.com/jscyril/mock_music_player/internal/player"
	"github.com/jscyril/mock_music_player/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) Model {
	t.Helper()
	state, err := player.New(album.Sample(), player.DefaultOptions())
	require.NoError(t, err)
	engine := playback.NewEngine(state, events.NewBus(), time.Millisecond)
	t.Cleanup(engine.Close)
	return NewModel(engine, DefaultOptions())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewModel(t *testing.T) {
	m := newModel(t)

	assert.Equal(t, api.ScreenPlayer, m.State().Screen)
	assert.Contains(t, m.View(), "Bad guy")
	assert.Contains(t, m.View(), "Small Talk")
}

func TestScreenKeys(t *testing.T) {
	m := newModel(t)

	m, _ = press(t, m, runes("2"))
	assert.Equal(t, api.ScreenPlaylist, m.State().Screen)

	m, _ = press(t, m, runes("3"))
	assert.Equal(t, api.ScreenFavorites, m.State().Screen)
	assert.Contains(t, m.View(), "No favorites yet")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, api.ScreenPlayer, m.State().Screen)
}

func TestPlaylist_SelectTrack(t *testing.T) {
	m := newModel(t)

	m, _ = press(t, m,
		runes("2"),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	assert.Equal(t, 3, m.State().TrackIndex)
	assert.Equal(t, api.ScreenPlayer, m.State().Screen)
	assert.Contains(t, m.View(), "Les Us Love")
}

func TestPlayPauseAndTrackKeys(t *testing.T) {
	m := newModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, m.State().Playing())
	assert.Contains(t, m.View(), "Pause")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.False(t, m.State().Playing())

	m, _ = press(t, m, runes("p"))
	assert.Equal(t, 4, m.State().TrackIndex)
	assert.Equal(t, 0.0, m.State().Progress)

	m, _ = press(t, m, runes("n"))
	assert.Equal(t, 0, m.State().TrackIndex)
}

func TestFavoriteBadge(t *testing.T) {
	m := newModel(t)

	m, _ = press(t, m, runes("n"), runes("f"))
	assert.Equal(t, []int{2}, m.State().FavoriteIDs)
	badge, shown := player.Badge(len(m.State().FavoriteIDs))
	assert.True(t, shown)
	assert.Equal(t, "1", badge)

	m, _ = press(t, m, runes("f"))
	assert.Empty(t, m.State().FavoriteIDs)
}

func TestFavorites_ToggleSelectedRow(t *testing.T) {
	m := newModel(t)
	require.NoError(t, m.engine.ToggleFavorite(3))
	require.NoError(t, m.engine.ToggleFavorite(5))

	m, _ = press(t, m, runes("3"), tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 4, m.State().TrackIndex, "second favorite is the fifth album track")
	assert.Equal(t, api.ScreenPlayer, m.State().Screen)

	// the selection stays on the second row
	m, _ = press(t, m, runes("3"), runes("f"))
	assert.Equal(t, []int{3}, m.State().FavoriteIDs)
}

func TestBackNavigation(t *testing.T) {
	m := newModel(t)
	esc := tea.KeyMsg{Type: tea.KeyEscape}

	m, _ = press(t, m, runes("3"), esc)
	assert.Equal(t, api.ScreenPlaylist, m.State().Screen)

	m, _ = press(t, m, esc)
	assert.Equal(t, api.ScreenPlayer, m.State().Screen)

	_, cmd := press(t, m, esc)
	assert.True(t, isQuit(cmd), "back on the player screen exits")
}

func TestQuit(t *testing.T) {
	m := newModel(t)

	m, cmd := press(t, m, runes("q"))
	assert.True(t, isQuit(cmd))

	_, open := <-m.events
	assert.False(t, open, "quitting unsubscribes from player events")
	assert.Nil(t, m.listenForEvents()(), "listener stops once unsubscribed")
}

func TestMouse_Tabs(t *testing.T) {
	m := newModel(t)
	tabs := m.tabs()

	for i, screen := range api.Screens {
		x := 0
		for x < 200 {
			if hit, ok := tabs.Hit(x); ok && hit == i {
				break
			}
			x++
		}
		m, _ = press(t, m, click(x, 0))
		assert.Equal(t, screen, m.State().Screen)
	}
}

func TestMouse_PlaylistRows(t *testing.T) {
	m := newModel(t)
	m, _ = press(t, m, runes("2"))

	m, _ = press(t, m, click(m.width-1, contentTop+4))
	assert.Equal(t, []int{1}, m.State().FavoriteIDs, "heart column toggles the favorite")
	assert.Equal(t, api.ScreenPlaylist, m.State().Screen)

	m, _ = press(t, m, click(6, contentTop+4+2))
	assert.Equal(t, 2, m.State().TrackIndex)
	assert.Equal(t, api.ScreenPlayer, m.State().Screen)
}

func TestMouse_PlayerControls(t *testing.T) {
	m := newModel(t)

	m, _ = press(t, m, click(0, contentTop+m.playerView.ControlsRow()))
	assert.Equal(t, 4, m.State().TrackIndex, "first control is previous")

	_, cmd := press(t, m, click(0, contentTop))
	assert.True(t, isQuit(cmd), "back arrow on the player screen exits")
}

func TestMouse_IgnoresRelease(t *testing.T) {
	m := newModel(t)
	before := m.State()

	m, _ = press(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Equal(t, before, m.State())
}

func TestStateUpdateMsg(t *testing.T) {
	m := newModel(t)
	snap := m.engine.Snapshot()
	snap.Progress = 60

	m, cmd := press(t, m, StateUpdateMsg{State: snap})

	assert.Equal(t, 60.0, m.State().Progress)
	assert.NotNil(t, cmd, "model keeps listening for events")
}

func TestWindowResize(t *testing.T) {
	m := newModel(t)

	m, _ = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, m.playlistView.TrackList.Width)
	assert.Equal(t, 8, m.playerView.Arc.Radius)
}
