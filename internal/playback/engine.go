// Package playback runs the simulated transport: it owns the player state
// and drives progress from a repeating timer while playing.
package playback

import (
	"context"
	"sync"
	"time"

	"github.com/jscyril/mock_music_player/api"
	"github.com/jscyril/mock_music_player/internal/player"
	"github.com/jscyril/mock_music_player/pkg/events"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// Ensure Engine implements Player interface at compile time
var _ api.Player = (*Engine)(nil)

// DefaultTickInterval is the period of the progress timer
const DefaultTickInterval = 200 * time.Millisecond

// Engine serialises access to the player state and runs at most one
// progress task at a time
type Engine struct {
	state    *player.State
	bus      *events.Bus
	interval time.Duration
	log      zerolog.Logger

	mu     sync.Mutex
	parent context.Context
	cancel context.CancelFunc // active progress task, nil when idle
	done   chan struct{}
	closed bool
}

// NewEngine creates a playback engine around state. Events are published
// on bus.
func NewEngine(state *player.State, bus *events.Bus, interval time.Duration) *Engine {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Engine{
		state:    state,
		bus:      bus,
		interval: interval,
		log:      zlog.With().Str("component", "playback").Logger(),
		parent:   context.Background(),
	}
}

// Start binds the engine to ctx. Cancelling ctx stops any running task
// and closes the engine.
func (e *Engine) Start(ctx context.Context) {
	e.mu.Lock()
	e.parent = ctx
	if e.state.Playing() {
		e.startTaskLocked()
	}
	e.mu.Unlock()

	go func() {
		<-ctx.Done()
		e.Close()
	}()
}

// Events returns a channel receiving every player event
func (e *Engine) Events() <-chan api.PlayerEvent {
	return e.bus.SubscribeAll()
}

// Bus returns the event bus the engine publishes on
func (e *Engine) Bus() *events.Bus {
	return e.bus
}

// Album returns the album being played
func (e *Engine) Album() *api.Album {
	return e.state.Album()
}

// TogglePlay flips playback and starts or cancels the progress task
func (e *Engine) TogglePlay() {
	e.apply(api.EventStateChange, func() {
		e.state.TogglePlay()
		if e.state.Playing() {
			e.startTaskLocked()
		} else {
			e.stopTaskLocked()
		}
		e.log.Debug().Bool("playing", e.state.Playing()).Msg("playback toggled")
	})
}

// NextTrack advances to the following track
func (e *Engine) NextTrack() {
	e.apply(api.EventTrackChanged, func() {
		e.state.NextTrack()
		e.log.Debug().Int("track", e.state.TrackIndex()).Msg("next track")
	})
}

// PrevTrack goes back to the preceding track
func (e *Engine) PrevTrack() {
	e.apply(api.EventTrackChanged, func() {
		e.state.PrevTrack()
		e.log.Debug().Int("track", e.state.TrackIndex()).Msg("previous track")
	})
}

// SelectTrack jumps to the track at index and shows the player screen
func (e *Engine) SelectTrack(index int) error {
	var err error
	e.apply(api.EventTrackChanged, func() {
		err = e.state.SelectTrack(index)
	})
	if err != nil {
		e.log.Warn().Err(err).Int("index", index).Msg("select track")
	}
	return err
}

// SelectTrackID jumps to the track with the given id
func (e *Engine) SelectTrackID(id int) error {
	var err error
	e.apply(api.EventTrackChanged, func() {
		err = e.state.SelectTrackID(id)
	})
	if err != nil {
		e.log.Warn().Err(err).Int("id", id).Msg("select track")
	}
	return err
}

// ToggleFavorite adds or removes id from the favorites
func (e *Engine) ToggleFavorite(id int) error {
	var err error
	e.apply(api.EventFavoritesChanged, func() {
		err = e.state.ToggleFavorite(id)
		if err == nil {
			e.log.Debug().Int("id", id).Bool("favorite", e.state.IsFavorite(id)).Msg("favorite toggled")
		}
	})
	return err
}

// SetScreen switches the visible screen
func (e *Engine) SetScreen(screen api.Screen) {
	e.apply(api.EventScreenChanged, func() {
		e.state.SetScreen(screen)
	})
}

// Back follows the back button of the current screen. It reports false
// when the current screen has no back target.
func (e *Engine) Back() bool {
	var ok bool
	e.apply(api.EventScreenChanged, func() {
		ok = e.state.Back()
	})
	return ok
}

// Snapshot returns a copy of the current state
func (e *Engine) Snapshot() api.PlayerState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Snapshot()
}

// Active reports whether a progress task is running
func (e *Engine) Active() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cancel != nil
}

// Close cancels the progress task, waits for it to exit and closes the
// event bus. It is safe to call more than once.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	done := e.done
	e.stopTaskLocked()
	e.mu.Unlock()

	if done != nil {
		<-done
	}
	e.bus.Close()
}

// apply runs fn and publishes the resulting state under the lock, so
// subscribers see events in the order the state changed
func (e *Engine) apply(eventType api.EventType, fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	fn()
	e.bus.Publish(api.PlayerEvent{Type: eventType, State: e.state.Snapshot()})
}

// startTaskLocked replaces any running task with a fresh one
func (e *Engine) startTaskLocked() {
	if e.closed {
		return
	}
	e.stopTaskLocked()

	ctx, cancel := context.WithCancel(e.parent)
	done := make(chan struct{})
	e.cancel = cancel
	e.done = done
	go e.run(ctx, done)
}

func (e *Engine) stopTaskLocked() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

// run advances progress on every tick until ctx is cancelled
func (e *Engine) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.tick(ctx)
		}
	}
}

func (e *Engine) tick(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	// a cancelled task must not touch the state after pause
	if ctx.Err() != nil {
		return
	}
	before := e.state.TrackIndex()
	wrapped := e.state.Tick()
	snap := e.state.Snapshot()

	e.bus.Publish(api.PlayerEvent{Type: api.EventProgress, State: snap})
	if wrapped {
		e.log.Debug().Int("track", snap.TrackIndex).Msg("progress wrapped")
		if snap.TrackIndex != before {
			e.bus.Publish(api.PlayerEvent{Type: api.EventTrackChanged, State: snap})
		}
	}
}
