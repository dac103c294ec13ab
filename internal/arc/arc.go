// Package arc maps playback progress onto the semicircular progress
// indicator: the dash offset of the stroked arc and the knob position.
package arc

import (
	"fmt"
	"math"
)

// Defaults match the 280x140 SVG viewBox of the player card
const (
	DefaultRadius  = 120.0
	DefaultCenterX = 140.0
	DefaultCenterY = 140.0
)

// Geometry describes a semicircle sitting on its diameter
type Geometry struct {
	Radius  float64
	CenterX float64
	CenterY float64
}

// Point is the arc rendering for a single progress value
type Point struct {
	Progress   float64 // clamped to [0,100]
	Angle      float64 // radians, π at 0% down to 0 at 100%
	DashArray  float64
	DashOffset float64
	KnobX      float64
	KnobY      float64
}

// New returns the geometry for a semicircle of radius r centred on (cx, cy)
func New(r, cx, cy float64) Geometry {
	return Geometry{Radius: r, CenterX: cx, CenterY: cy}
}

// Default returns the geometry of the player card
func Default() Geometry {
	return New(DefaultRadius, DefaultCenterX, DefaultCenterY)
}

// Compute maps progress with the default geometry
func Compute(progress float64) Point {
	return Default().At(progress)
}

// Circumference returns the length of the half circle
func (g Geometry) Circumference() float64 {
	return math.Pi * g.Radius
}

// At maps progress (percent) to dash offset and knob coordinates
func (g Geometry) At(progress float64) Point {
	p := Clamp(progress)
	c := g.Circumference()
	theta := math.Pi - (p/100)*math.Pi

	return Point{
		Progress:   p,
		Angle:      theta,
		DashArray:  c,
		DashOffset: c - (p/100)*c,
		KnobX:      g.CenterX + g.Radius*math.Cos(theta),
		KnobY:      g.CenterY + g.Radius*math.Sin(theta),
	}
}

// Path returns the SVG path drawing the semicircle from left to right
func (g Geometry) Path() string {
	return fmt.Sprintf("M %s %s A %s %s 0 0 1 %s %s",
		num(g.CenterX-g.Radius), num(g.CenterY),
		num(g.Radius), num(g.Radius),
		num(g.CenterX+g.Radius), num(g.CenterY))
}

// Clamp limits progress to [0,100]; NaN maps to 0
func Clamp(progress float64) float64 {
	switch {
	case math.IsNaN(progress), progress < 0:
		return 0
	case progress > 100:
		return 100
	default:
		return progress
	}
}

func num(v float64) string {
	return fmt.Sprintf("%g", v)
}
