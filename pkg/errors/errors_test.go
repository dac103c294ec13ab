package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerError(t *testing.T) {
	err := NewPlayerError("toggle favorite", 9, ErrTrackNotFound)

	assert.Equal(t, "toggle favorite failed for track 9: track not found", err.Error())
	assert.True(t, Is(err, ErrTrackNotFound))
	assert.False(t, Is(err, ErrUnknownScreen))

	assert.Equal(t, "select failed: album has no tracks", NewPlayerError("select", 0, ErrEmptyAlbum).Error())
}

func TestWrapf(t *testing.T) {
	err := Wrapf(ErrUnknownScreen, "screen %q", "library")

	assert.True(t, Is(err, ErrUnknownScreen))
	assert.Contains(t, err.Error(), `screen "library"`)
}
