package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/jscyril/mock_music_player/api"
	"github.com/jscyril/mock_music_player/internal/config"
	"github.com/jscyril/mock_music_player/internal/playback"
	"github.com/jscyril/mock_music_player/internal/player"
	"github.com/jscyril/mock_music_player/internal/ui/components"
	"github.com/jscyril/mock_music_player/internal/ui/views"
	playerrors "github.com/jscyril/mock_music_player/pkg/errors"
	zlog "github.com/rs/zerolog/log"
)

// contentTop is the first row below the tab bar
const contentTop = 2

// Options configure the UI
type Options struct {
	Keys    config.KeyMap
	Palette views.Palette
	Mouse   bool
}

// DefaultOptions returns the UI options of the default configuration
func DefaultOptions() Options {
	return Options{
		Keys:    config.Default().UI.KeyBindings,
		Palette: views.DefaultPalette(),
		Mouse:   true,
	}
}

// Model is the main bubbletea model
type Model struct {
	// Dimensions
	width  int
	height int

	// Views
	playerView    views.PlayerView
	playlistView  views.PlaylistView
	favoritesView views.FavoritesView

	// Components
	engine *playback.Engine
	events <-chan api.PlayerEvent
	keys   keyMap
	styles views.Styles

	// State
	state  api.PlayerState
	ctx    context.Context
	cancel context.CancelFunc
	err    error
}

// StateUpdateMsg is sent when the player state changes
type StateUpdateMsg struct {
	State api.PlayerState
}

// NewModel creates a new application model
func NewModel(engine *playback.Engine, opts Options) Model {
	ctx, cancel := context.WithCancel(context.Background())
	styles := views.NewStyles(opts.Palette)
	album := engine.Album()

	m := Model{
		width:  80,
		height: 24,
		engine: engine,
		events: engine.Events(),
		keys:   keyMap{opts.Keys},
		styles: styles,
		ctx:    ctx,
		cancel: cancel,
	}

	m.playerView = views.NewPlayerView(album, styles, m.width, m.viewHeight())
	m.playlistView = views.NewPlaylistView(album, styles, m.width, m.viewHeight())
	m.favoritesView = views.NewFavoritesView(album, styles, m.width, m.viewHeight())
	m.setState(engine.Snapshot())

	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.listenForEvents()
}

// listenForEvents waits for the next player event
func (m Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		select {
		case event, ok := <-m.events:
			if !ok {
				return nil
			}
			return StateUpdateMsg{State: event.State}
		case <-m.ctx.Done():
			return nil
		}
	}
}

// State returns the last state the model rendered
func (m Model) State() api.PlayerState {
	return m.state
}

// Err returns the last operation error shown to the user
func (m Model) Err() error {
	return m.err
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewSizes()

	case StateUpdateMsg:
		m.setState(msg.State)
		cmds = append(cmds, m.listenForEvents())

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	k := m.keys

	switch {
	case k.is(key, k.Quit):
		return m.quit()

	case k.is(key, k.Player):
		m.engine.SetScreen(api.ScreenPlayer)
	case k.is(key, k.Playlist):
		m.engine.SetScreen(api.ScreenPlaylist)
	case k.is(key, k.Favorites):
		m.engine.SetScreen(api.ScreenFavorites)
	case key == "tab":
		m.engine.SetScreen(api.Screens[(int(m.state.Screen)+1)%len(api.Screens)])

	case k.is(key, k.Back):
		return m.perform(views.Click{Action: views.ActionBack})

	case k.is(key, k.PlayPause):
		m.engine.TogglePlay()
	case k.is(key, k.Next):
		m.engine.NextTrack()
	case k.is(key, k.Previous):
		m.engine.PrevTrack()

	case k.is(key, k.Favorite):
		id := m.state.CurrentTrack.ID
		if track, ok := m.selectedTrack(); ok {
			id = track.ID
		}
		return m.perform(views.Click{Action: views.ActionToggleFavorite, TrackID: id})

	case k.is(key, k.Select):
		if track, ok := m.selectedTrack(); ok {
			return m.perform(views.Click{Action: views.ActionSelect, TrackID: track.ID})
		}

	case k.is(key, k.Up):
		m.moveSelection(-1)
	case k.is(key, k.Down):
		m.moveSelection(1)

	default:
		switch m.state.Screen {
		case api.ScreenPlaylist:
			m.playlistView.TrackList, _ = m.playlistView.TrackList.Update(msg)
		case api.ScreenFavorites:
			m.favoritesView.TrackList, _ = m.favoritesView.TrackList.Update(msg)
		}
	}

	m.setState(m.engine.Snapshot())
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveSelection(-1)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.moveSelection(1)
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}

	if msg.Y == 0 {
		if i, ok := m.tabs().Hit(msg.X); ok {
			m.engine.SetScreen(api.Screens[i])
			m.setState(m.engine.Snapshot())
		}
		return m, nil
	}

	x, y := msg.X, msg.Y-contentTop
	var (
		click views.Click
		ok    bool
	)
	switch m.state.Screen {
	case api.ScreenPlayer:
		click, ok = m.playerView.Click(x, y)
	case api.ScreenPlaylist:
		click, ok = m.playlistView.Click(x, y)
	case api.ScreenFavorites:
		click, ok = m.favoritesView.Click(x, y)
	}
	if !ok {
		return m, nil
	}
	return m.perform(click)
}

// perform applies a view action to the engine
func (m Model) perform(click views.Click) (tea.Model, tea.Cmd) {
	m.err = nil

	switch click.Action {
	case views.ActionBack:
		if !m.engine.Back() {
			// the player screen has no back target: leave
			return m.quit()
		}
	case views.ActionShowPlaylist:
		m.engine.SetScreen(api.ScreenPlaylist)
	case views.ActionShowFavorites:
		m.engine.SetScreen(api.ScreenFavorites)
	case views.ActionPrev:
		m.engine.PrevTrack()
	case views.ActionTogglePlay:
		m.engine.TogglePlay()
	case views.ActionNext:
		m.engine.NextTrack()
	case views.ActionToggleFavorite:
		m.err = m.engine.ToggleFavorite(click.TrackID)
	case views.ActionSelect:
		m.err = m.selectTrack(click.TrackID)
	}

	switch {
	case m.err == nil:
	case playerrors.Is(m.err, playerrors.ErrTrackNotFound):
		zlog.Warn().Err(m.err).Int("track", click.TrackID).Msg("ui action on unknown track")
	default:
		zlog.Error().Err(m.err).Msg("ui action failed")
	}
	m.setState(m.engine.Snapshot())
	return m, nil
}

// quit stops listening for player events and ends the program
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.cancel()
	m.engine.Bus().Unsubscribe(m.events)
	return m, tea.Quit
}

// selectTrack loads a track chosen from a list; the playlist selects by
// album position, the favorites list by id
func (m Model) selectTrack(id int) error {
	if m.state.Screen == api.ScreenPlaylist {
		return m.engine.SelectTrack(m.engine.Album().IndexOf(id))
	}
	return m.engine.SelectTrackID(id)
}

func (m *Model) selectedTrack() (api.Track, bool) {
	switch m.state.Screen {
	case api.ScreenPlaylist:
		return m.playlistView.SelectedTrack()
	case api.ScreenFavorites:
		return m.favoritesView.SelectedTrack()
	}
	return api.Track{}, false
}

func (m *Model) moveSelection(delta int) {
	var list *components.TrackList
	switch m.state.Screen {
	case api.ScreenPlaylist:
		list = &m.playlistView.TrackList
	case api.ScreenFavorites:
		list = &m.favoritesView.TrackList
	default:
		return
	}
	if delta < 0 {
		list.MoveUp()
	} else {
		list.MoveDown()
	}
}

func (m *Model) setState(state api.PlayerState) {
	m.state = state
	m.playerView.SetState(state)
	m.playlistView.SetState(state)
	m.favoritesView.SetState(state)
}

// viewHeight is the height left for a view below the tabs and above the
// status line
func (m Model) viewHeight() int {
	return m.height - contentTop - 2
}

// updateViewSizes updates view dimensions
func (m *Model) updateViewSizes() {
	m.playerView.Resize(m.width, m.viewHeight())
	m.playlistView.Resize(m.width, m.viewHeight())
	m.favoritesView.Resize(m.width, m.viewHeight())
}

// tabs builds the tab bar for the current state
func (m Model) tabs() components.ButtonRow {
	badge, _ := player.Badge(len(m.state.FavoriteIDs))
	row := components.NewButtonRow(
		components.Button{Label: "[1] Player", Active: m.state.Screen == api.ScreenPlayer},
		components.Button{Label: "[2] Playlist", Active: m.state.Screen == api.ScreenPlaylist},
		components.Button{Label: "[3] Favorites", Active: m.state.Screen == api.ScreenFavorites, Badge: badge},
	)
	row.Style = m.styles.Tab
	row.ActiveStyle = m.styles.ActiveTab
	row.BadgeStyle = m.styles.Badge
	return row
}

// View renders the UI
func (m Model) View() string {
	var sb string

	sb += m.tabs().View()
	sb += "\n\n"

	switch m.state.Screen {
	case api.ScreenPlayer:
		sb += m.playerView.View()
	case api.ScreenPlaylist:
		sb += m.playlistView.View()
	case api.ScreenFavorites:
		sb += m.favoritesView.View()
	}

	sb += "\n\n"
	if m.err != nil {
		sb += m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	} else {
		sb += m.styles.Muted.Render("[Space] Play/Pause  [n] Next  [p] Prev  [f] Favorite  [Tab] Switch  [q] Quit")
	}

	return lipgloss.NewStyle().MaxWidth(m.width).Render(sb)
}

// Run starts the bubbletea program
func Run(ctx context.Context, engine *playback.Engine, opts Options) error {
	model := NewModel(engine, opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, progOpts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
