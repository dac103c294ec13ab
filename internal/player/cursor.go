package player

import (
	playerrors "github.com/jscyril/mock_music_player/pkg/errors"
)

// cursor is a circular position over a fixed number of tracks
type cursor struct {
	index int
	size  int
}

func (c *cursor) next() {
	if c.size == 0 {
		return
	}
	c.index = (c.index + 1) % c.size
}

func (c *cursor) previous() {
	if c.size == 0 {
		return
	}
	c.index = (c.index - 1 + c.size) % c.size
}

func (c *cursor) jumpTo(index int) error {
	if index < 0 || index >= c.size {
		return playerrors.Wrapf(playerrors.ErrTrackNotFound, "index %d out of bounds", index)
	}
	c.index = index
	return nil
}
