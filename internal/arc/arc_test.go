package arc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestCompute_KnobPositions(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		angle    float64
		x, y     float64
	}{
		{"start is leftmost", 0, math.Pi, 20, 140},
		{"middle is apex", 50, math.Pi / 2, 140, 260},
		{"end is rightmost", 100, 0, 260, 140},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Compute(tt.progress)
			assert.InDelta(t, tt.angle, p.Angle, eps)
			assert.InDelta(t, tt.x, p.KnobX, eps)
			assert.InDelta(t, tt.y, p.KnobY, eps)
		})
	}
}

func TestCompute_DashOffset(t *testing.T) {
	c := math.Pi * 120

	assert.InDelta(t, c, Compute(0).DashOffset, eps)
	assert.InDelta(t, c*0.75, Compute(25).DashOffset, eps)
	assert.InDelta(t, 0, Compute(100).DashOffset, eps)
	assert.InDelta(t, c, Compute(42).DashArray, eps)
}

func TestCompute_Clamps(t *testing.T) {
	assert.Equal(t, Compute(0), Compute(-10))
	assert.Equal(t, Compute(100), Compute(180))
	assert.Equal(t, 0.0, Compute(math.NaN()).Progress)
}

func TestCompute_MonotonicSweep(t *testing.T) {
	prevX := math.Inf(-1)
	for p := 0.0; p <= 100; p += 0.5 {
		pt := Compute(p)
		assert.Greater(t, pt.KnobX, prevX, "knob must sweep left to right at %v", p)
		assert.InDelta(t, 120, math.Hypot(pt.KnobX-140, pt.KnobY-140), 1e-6)
		prevX = pt.KnobX
	}
}

func TestGeometry_Path(t *testing.T) {
	assert.Equal(t, "M 20 140 A 120 120 0 0 1 260 140", Default().Path())
	assert.Equal(t, "M 0 5 A 5 5 0 0 1 10 5", New(5, 5, 5).Path())
}

func TestGeometry_Circumference(t *testing.T) {
	assert.InDelta(t, math.Pi*10, New(10, 0, 0).Circumference(), eps)
}
