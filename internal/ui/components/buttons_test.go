package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestButtonRow_Hit(t *testing.T) {
	row := NewButtonRow(
		Button{Label: "abc"},
		Button{Label: "de", Badge: "3"},
		Button{Label: "f"},
	)
	// "abc" padded to 5, gap 1, "de" padded to 4 plus " 3 " badge, gap 1, "f" padded to 3

	tests := []struct {
		x     int
		index int
		ok    bool
	}{
		{0, 0, true},
		{4, 0, true},
		{5, 0, false},
		{6, 1, true},
		{12, 1, true},
		{13, 0, false},
		{14, 2, true},
		{16, 2, true},
		{17, 0, false},
		{-1, 0, false},
	}

	for _, tt := range tests {
		index, ok := row.Hit(tt.x)
		assert.Equal(t, tt.ok, ok, "x=%d", tt.x)
		if tt.ok {
			assert.Equal(t, tt.index, index, "x=%d", tt.x)
		}
	}
}

func TestButtonRow_View(t *testing.T) {
	row := NewButtonRow(Button{Label: "one"}, Button{Label: "two", Badge: "2"})

	out := row.View()

	assert.Contains(t, out, "one")
	assert.Contains(t, out, "two")
	assert.Contains(t, out, " 2 ")

	assert.NotContains(t, NewButtonRow(Button{Label: "x"}).View(), " 2 ")
}
