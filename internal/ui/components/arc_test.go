package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func knobAt(t *testing.T, grid [][]cell) (int, int) {
	t.Helper()
	for r, row := range grid {
		for c, v := range row {
			if v == cellKnob {
				return c, r
			}
		}
	}
	t.Fatal("no knob on grid")
	return 0, 0
}

func TestArc_Size(t *testing.T) {
	w, h := NewArc(4).Size()
	assert.Equal(t, 17, w)
	assert.Equal(t, 5, h)

	w, h = NewArc(0).Size()
	assert.Equal(t, 9, w)
	assert.Equal(t, 3, h)
}

func TestArc_KnobPositions(t *testing.T) {
	a := NewArc(4)

	col, row := knobAt(t, a.Grid(0))
	assert.Equal(t, 0, col, "0% sits on the left end")
	assert.Equal(t, 4, row, "0% sits on the baseline")

	col, row = knobAt(t, a.Grid(50))
	assert.Equal(t, 8, col, "50% sits at the apex column")
	assert.Equal(t, 0, row, "50% sits on the top row")

	col, row = knobAt(t, a.Grid(100))
	assert.Equal(t, 16, col, "100% sits on the right end")
	assert.Equal(t, 4, row)
}

func TestArc_FilledCountGrows(t *testing.T) {
	a := NewArc(5)
	count := func(p float64) int {
		n := 0
		for _, row := range a.Grid(p) {
			for _, c := range row {
				if c == cellFilled {
					n++
				}
			}
		}
		return n
	}

	prev := -1
	for _, p := range []float64{0, 10, 30, 60, 90, 100} {
		n := count(p)
		assert.GreaterOrEqual(t, n, prev, "p=%v", p)
		prev = n
	}
	assert.Greater(t, count(100), count(0))
}

func TestArc_View(t *testing.T) {
	a := NewArc(3)
	out := a.View(25)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, out, a.KnobChar)
	assert.Contains(t, out, a.FilledChar)
	assert.Contains(t, out, a.EmptyChar)
}
