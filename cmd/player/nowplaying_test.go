package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jscyril/mock_music_player/api"
	"github.com/jscyril/mock_music_player/internal/album"
	"github.com/jscyril/mock_music_player/pkg/events"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("track logger did not stop")
	}
}

func TestLogTrackChanges(t *testing.T) {
	var buf bytes.Buffer
	bus := events.NewBus()
	done := logTrackChanges(context.Background(), bus, zerolog.New(&buf))

	july := album.Sample().Tracks[4]
	bus.Publish(api.PlayerEvent{Type: api.EventProgress, State: api.PlayerState{CurrentTrack: july}})
	bus.Publish(api.PlayerEvent{Type: api.EventTrackChanged, State: api.PlayerState{TrackIndex: 4, CurrentTrack: july}})
	bus.Close()
	waitDone(t, done)

	out := buf.String()
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("Now playing")), "only track changes are logged")
	assert.Contains(t, out, `"title":"July"`)
	assert.Contains(t, out, `"index":4`)
}

func TestLogTrackChanges_UnsubscribesOnCancel(t *testing.T) {
	var buf bytes.Buffer
	bus := events.NewBus()
	ctx, cancel := context.WithCancel(context.Background())
	done := logTrackChanges(ctx, bus, zerolog.New(&buf))

	cancel()
	waitDone(t, done)

	bus.Publish(api.PlayerEvent{Type: api.EventTrackChanged})
	require.NotPanics(t, bus.Close)
	assert.Empty(t, buf.String())
}
