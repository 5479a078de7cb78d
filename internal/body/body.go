package body

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Body is a point mass with derived display attributes. Positions and
// velocities are in world space.
type Body struct {
	Pos      mgl64.Vec2
	Vel      mgl64.Vec2
	Mass     float64
	Radius   float64
	Category Category
	Style    Style
	Name     string
}

// New creates a body of the given mass at pos with zero velocity. Display
// attributes are derived from the mass. Non-positive or non-finite mass is
// rejected here so it can never reach the integrator, where a single NaN
// propagates to every body within one step.
func New(mass float64, pos mgl64.Vec2) (*Body, error) {
	if math.IsNaN(mass) || math.IsInf(mass, 0) {
		return nil, fmt.Errorf("body mass must be finite, got %v", mass)
	}
	if mass <= 0 {
		return nil, fmt.Errorf("body mass must be positive, got %v", mass)
	}
	b := &Body{Pos: pos, Mass: mass}
	b.Retag()
	return b, nil
}

// Retag re-derives category, style, and radius from the current mass.
// Called after any mass change; a merge of two stars may well come out
// the other side as a black hole.
func (b *Body) Retag() {
	b.Category = Classify(b.Mass)
	b.Style = StyleOf(b.Category)
	b.Radius = RadiusFor(b.Mass)
}

// Momentum returns the body's linear momentum.
func (b *Body) Momentum() mgl64.Vec2 {
	return b.Vel.Mul(b.Mass)
}

// Valid reports whether all numeric state is finite.
func (b *Body) Valid() bool {
	for _, v := range []float64{b.Pos[0], b.Pos[1], b.Vel[0], b.Vel[1], b.Mass, b.Radius} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.Mass > 0
}
