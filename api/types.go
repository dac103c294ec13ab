package api

import (
	"strconv"
	"strings"
	"time"

	playerrors "github.com/jscyril/mock_music_player/pkg/errors"
)

type Track struct {
	ID       int    `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Duration string `json:"duration" yaml:"duration"`
	Artist   string `json:"artist" yaml:"artist"`
}

// Length parses the "M:SS" display duration. Malformed values yield zero.
func (t Track) Length() time.Duration {
	min, sec, ok := strings.Cut(t.Duration, ":")
	if !ok {
		return 0
	}
	m, err := strconv.Atoi(min)
	if err != nil || m < 0 {
		return 0
	}
	s, err := strconv.Atoi(sec)
	if err != nil || s < 0 || s > 59 {
		return 0
	}
	return time.Duration(m)*time.Minute + time.Duration(s)*time.Second
}

type Album struct {
	Title  string  `json:"title" yaml:"title"`
	Artist string  `json:"artist" yaml:"artist"`
	Cover  string  `json:"cover" yaml:"cover"`
	Tracks []Track `json:"tracks" yaml:"tracks"`
}

// Len returns the number of tracks on the album
func (a *Album) Len() int {
	return len(a.Tracks)
}

// IndexOf returns the position of the track with the given id, or -1
func (a *Album) IndexOf(id int) int {
	for i, t := range a.Tracks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Has reports whether the album carries a track with the given id
func (a *Album) Has(id int) bool {
	return a.IndexOf(id) >= 0
}

// Screen is one of the mutually exclusive views
type Screen int

const (
	ScreenPlayer Screen = iota
	ScreenPlaylist
	ScreenFavorites
)

// Screens lists every screen in navigation order
var Screens = []Screen{ScreenPlayer, ScreenPlaylist, ScreenFavorites}

func (s Screen) String() string {
	switch s {
	case ScreenPlayer:
		return "player"
	case ScreenPlaylist:
		return "playlist"
	case ScreenFavorites:
		return "favorites"
	default:
		return "unknown"
	}
}

// ParseScreen maps a screen name to its Screen value
func ParseScreen(name string) (Screen, error) {
	for _, s := range Screens {
		if strings.EqualFold(strings.TrimSpace(name), s.String()) {
			return s, nil
		}
	}
	return ScreenPlayer, playerrors.Wrapf(playerrors.ErrUnknownScreen, "%q", name)
}

// BackTarget returns the fixed screen the back button leads to.
// The player screen has none; its back button exits.
func (s Screen) BackTarget() (Screen, bool) {
	switch s {
	case ScreenPlaylist:
		return ScreenPlayer, true
	case ScreenFavorites:
		return ScreenPlaylist, true
	default:
		return ScreenPlayer, false
	}
}

// PlaybackStatus is the simulated transport state
type PlaybackStatus int

const (
	StatusStopped PlaybackStatus = iota
	StatusPlaying
)

func (s PlaybackStatus) String() string {
	if s == StatusPlaying {
		return "playing"
	}
	return "stopped"
}

// PlayerState is a point-in-time copy of the player state bag
type PlayerState struct {
	Screen       Screen
	Status       PlaybackStatus
	TrackIndex   int
	CurrentTrack Track
	Progress     float64
	TimeLabel    string
	FavoriteIDs  []int   // album order
	Favorites    []Track // tracks of FavoriteIDs
}

// Playing reports whether the simulator is running
func (s PlayerState) Playing() bool {
	return s.Status == StatusPlaying
}

// IsFavorite reports whether id is in the favorites set
func (s PlayerState) IsFavorite(id int) bool {
	for _, f := range s.FavoriteIDs {
		if f == id {
			return true
		}
	}
	return false
}

// EventType identifies player events
type EventType int

const (
	EventStateChange EventType = iota
	EventProgress
	EventTrackChanged
	EventFavoritesChanged
	EventScreenChanged
)

// AllEventTypes lists every event type a subscriber can receive
var AllEventTypes = []EventType{
	EventStateChange,
	EventProgress,
	EventTrackChanged,
	EventFavoritesChanged,
	EventScreenChanged,
}

func (t EventType) String() string {
	switch t {
	case EventStateChange:
		return "state_change"
	case EventProgress:
		return "progress"
	case EventTrackChanged:
		return "track_changed"
	case EventFavoritesChanged:
		return "favorites_changed"
	case EventScreenChanged:
		return "screen_changed"
	default:
		return "unknown"
	}
}

// PlayerEvent carries the state right after a change
type PlayerEvent struct {
	Type  EventType
	State PlayerState
}

// Player defines the operations the UI drives
type Player interface {
	TogglePlay()
	NextTrack()
	PrevTrack()
	SelectTrack(index int) error
	SelectTrackID(id int) error
	ToggleFavorite(id int) error
	SetScreen(screen Screen)
	Snapshot() PlayerState
}
