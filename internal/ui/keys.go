package ui

import (
	"github.com/jscyril/mock_music_player/internal/config"
	"github.com/samber/lo"
)

// keyMap resolves key names to the configured actions
type keyMap struct {
	config.KeyMap
}

func (k keyMap) is(key string, bindings []string) bool {
	return lo.Contains(bindings, key)
}
