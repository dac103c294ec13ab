// Package player holds the single state bag every screen renders from.
//
// State is not safe for concurrent use; the playback engine serialises
// access to it.
package player

import (
	"fmt"
	"time"

	"github.com/jscyril/mock_music_player/api"
	"github.com/jscyril/mock_music_player/internal/album"
	playerrors "github.com/jscyril/mock_music_player/pkg/errors"
)

// TimeLabelMode selects how the current time label is produced
type TimeLabelMode string

const (
	// TimeLabelStatic keeps the configured label regardless of progress
	TimeLabelStatic TimeLabelMode = "static"
	// TimeLabelDerived computes the label from progress and track length
	TimeLabelDerived TimeLabelMode = "derived"
)

// Options tune the simulated playback
type Options struct {
	Step             float64
	InitialProgress  float64
	InitialTimeLabel string
	TimeLabel        TimeLabelMode
	AutoAdvance      bool
	StartScreen      api.Screen
}

// DefaultOptions mirrors the behaviour of the original page
func DefaultOptions() Options {
	return Options{
		Step:             0.5,
		InitialProgress:  25,
		InitialTimeLabel: "01:04",
		TimeLabel:        TimeLabelDerived,
		AutoAdvance:      false,
		StartScreen:      api.ScreenPlayer,
	}
}

// State is the mutable player state
type State struct {
	album     *api.Album
	opts      Options
	screen    api.Screen
	playing   bool
	cursor    cursor
	progress  float64
	timeLabel string
	favorites map[int]struct{}
}

// New creates the state for the given album
func New(a *api.Album, opts Options) (*State, error) {
	if a == nil || a.Len() == 0 {
		return nil, playerrors.ErrEmptyAlbum
	}
	if opts.Step <= 0 {
		opts.Step = DefaultOptions().Step
	}

	s := &State{
		album:     a,
		opts:      opts,
		screen:    opts.StartScreen,
		cursor:    cursor{size: a.Len()},
		progress:  clampProgress(opts.InitialProgress),
		timeLabel: opts.InitialTimeLabel,
		favorites: make(map[int]struct{}),
	}
	if opts.TimeLabel == TimeLabelDerived {
		s.refreshTimeLabel()
	}
	return s, nil
}

// Album returns the album the state is bound to
func (s *State) Album() *api.Album {
	return s.album
}

// Screen returns the active screen
func (s *State) Screen() api.Screen {
	return s.screen
}

// SetScreen switches screens unconditionally
func (s *State) SetScreen(target api.Screen) {
	s.screen = target
}

// Back moves to the fixed back target of the active screen. It reports
// false on the player screen, where back means exit.
func (s *State) Back() bool {
	target, ok := s.screen.BackTarget()
	if ok {
		s.screen = target
	}
	return ok
}

// Playing reports whether the simulator is running
func (s *State) Playing() bool {
	return s.playing
}

// TogglePlay flips between playing and stopped
func (s *State) TogglePlay() {
	s.playing = !s.playing
}

// Progress returns the simulated position in percent
func (s *State) Progress() float64 {
	return s.progress
}

// TimeLabel returns the current time display string
func (s *State) TimeLabel() string {
	return s.timeLabel
}

// Tick advances progress by one step while playing. Reaching 100 wraps
// back to 0; the track only changes on wrap when auto-advance is on.
// It reports whether a wrap happened.
func (s *State) Tick() bool {
	if !s.playing {
		return false
	}

	next := s.progress + s.opts.Step
	wrapped := next >= 100
	if wrapped {
		next = 0
		if s.opts.AutoAdvance {
			s.cursor.next()
		}
	}
	s.progress = next
	s.refreshTimeLabel()
	return wrapped
}

// TrackIndex returns the position of the current track
func (s *State) TrackIndex() int {
	return s.cursor.index
}

// CurrentTrack returns the current track
func (s *State) CurrentTrack() api.Track {
	return s.album.Tracks[s.cursor.index]
}

// NextTrack moves to the following track, wrapping at the end
func (s *State) NextTrack() {
	s.cursor.next()
	s.resetProgress()
}

// PrevTrack moves to the preceding track, wrapping at the start
func (s *State) PrevTrack() {
	s.cursor.previous()
	s.resetProgress()
}

// SelectTrack jumps to the track at index and shows the player screen
func (s *State) SelectTrack(index int) error {
	if err := s.cursor.jumpTo(index); err != nil {
		return playerrors.NewPlayerError("select", 0, err)
	}
	s.refreshTimeLabel()
	s.screen = api.ScreenPlayer
	return nil
}

// SelectTrackID jumps to the track with the given id
func (s *State) SelectTrackID(id int) error {
	index := s.album.IndexOf(id)
	if index < 0 {
		return playerrors.NewPlayerError("select", id, playerrors.ErrTrackNotFound)
	}
	return s.SelectTrack(index)
}

// ToggleFavorite adds id to the favorites or removes it when present
func (s *State) ToggleFavorite(id int) error {
	if !s.album.Has(id) {
		return playerrors.NewPlayerError("favorite", id, playerrors.ErrTrackNotFound)
	}
	if _, ok := s.favorites[id]; ok {
		delete(s.favorites, id)
	} else {
		s.favorites[id] = struct{}{}
	}
	return nil
}

// IsFavorite reports whether id is in the favorites set
func (s *State) IsFavorite(id int) bool {
	_, ok := s.favorites[id]
	return ok
}

// FavoriteCount returns the size of the favorites set
func (s *State) FavoriteCount() int {
	return len(s.favorites)
}

// FavoriteIDs returns the favorite ids in album order
func (s *State) FavoriteIDs() []int {
	ids := make([]int, 0, len(s.favorites))
	for _, t := range s.album.Tracks {
		if s.IsFavorite(t.ID) {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// FavoriteTracks returns the favorite tracks in album order
func (s *State) FavoriteTracks() []api.Track {
	return album.Filter(s.album, s.FavoriteIDs())
}

// Badge returns the favorites badge text, hidden when the set is empty
func (s *State) Badge() (string, bool) {
	return Badge(len(s.favorites))
}

// Snapshot returns a copy of the state
func (s *State) Snapshot() api.PlayerState {
	status := api.StatusStopped
	if s.playing {
		status = api.StatusPlaying
	}
	return api.PlayerState{
		Screen:       s.screen,
		Status:       status,
		TrackIndex:   s.cursor.index,
		CurrentTrack: s.CurrentTrack(),
		Progress:     s.progress,
		TimeLabel:    s.timeLabel,
		FavoriteIDs:  s.FavoriteIDs(),
		Favorites:    s.FavoriteTracks(),
	}
}

func (s *State) resetProgress() {
	s.progress = 0
	s.refreshTimeLabel()
}

func (s *State) refreshTimeLabel() {
	if s.opts.TimeLabel != TimeLabelDerived {
		return
	}
	length := s.CurrentTrack().Length()
	s.timeLabel = FormatClock(time.Duration(float64(length) * s.progress / 100))
}

// Badge formats a favorites count for display
func Badge(count int) (string, bool) {
	if count <= 0 {
		return "", false
	}
	return fmt.Sprintf("%d", count), true
}

// FormatClock formats a duration as MM:SS
func FormatClock(d time.Duration) string {
	d = d.Round(time.Second)
	m := d / time.Minute
	sec := (d % time.Minute) / time.Second
	return fmt.Sprintf("%02d:%02d", m, sec)
}

func clampProgress(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
