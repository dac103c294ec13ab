package main

import (
	"context"

	"github.com/jscyril/mock_music_player/api"
	"github.com/jscyril/mock_music_player/pkg/events"
	"github.com/rs/zerolog"
)

// logTrackChanges writes a line for every track change until ctx is done
// or the bus closes. The returned channel closes when logging stops.
func logTrackChanges(ctx context.Context, bus *events.Bus, log zerolog.Logger) <-chan struct{} {
	ch := bus.Subscribe(api.EventTrackChanged)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			select {
			case ev, ok := <-ch:
				if !ok {
					return
				}
				track := ev.State.CurrentTrack
				log.Info().
					Int("index", ev.State.TrackIndex).
					Int("id", track.ID).
					Str("title", track.Title).
					Str("duration", track.Duration).
					Msg("Now playing")
			case <-ctx.Done():
				bus.Unsubscribe(ch)
				return
			}
		}
	}()

	return done
}
