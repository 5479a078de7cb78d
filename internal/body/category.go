package body

import (
	"image/color"
	"math"
)

// Category classifies a body by mass, from lightest to heaviest.
type Category int

const (
	Meteor Category = iota
	Asteroid
	Planet
	Star
	NeutronStar
	BlackHole
)

func (c Category) String() string {
	switch c {
	case Meteor:
		return "meteor"
	case Asteroid:
		return "asteroid"
	case Planet:
		return "planet"
	case Star:
		return "star"
	case NeutronStar:
		return "neutron star"
	case BlackHole:
		return "black hole"
	default:
		return "unknown"
	}
}

// Categories lists all categories in ascending mass order.
func Categories() []Category {
	return []Category{Meteor, Asteroid, Planet, Star, NeutronStar, BlackHole}
}

// Classify maps a mass onto its category. Thresholds are evaluated
// highest-first, first match wins.
func Classify(mass float64) Category {
	switch {
	case mass >= 5e6:
		return BlackHole
	case mass >= 1.4e6:
		return NeutronStar
	case mass >= 75000:
		return Star
	case mass >= 0.2:
		return Planet
	case mass >= 5e-5:
		return Asteroid
	default:
		return Meteor
	}
}

// Style holds the display attributes derived from a category.
type Style struct {
	Color   color.RGBA
	Glow    bool
	Special bool // outer ring, currently black holes only
}

var styles = [...]Style{
	Meteor:      {Color: color.RGBA{139, 90, 43, 255}},
	Asteroid:    {Color: color.RGBA{150, 150, 150, 255}},
	Planet:      {Color: color.RGBA{70, 130, 220, 255}},
	Star:        {Color: color.RGBA{255, 200, 60, 255}, Glow: true},
	NeutronStar: {Color: color.RGBA{255, 150, 220, 255}, Glow: true},
	BlackHole:   {Color: color.RGBA{10, 10, 10, 255}, Glow: true, Special: true},
}

// StyleOf returns the fixed style for a category.
func StyleOf(c Category) Style {
	if c < Meteor || c > BlackHole {
		return styles[Meteor]
	}
	return styles[c]
}

// RadiusFor maps mass to a display radius. The power law keeps relative
// sizes distinguishable across six orders of magnitude of mass; the result
// saturates at [3, 35] world units.
func RadiusFor(mass float64) float64 {
	r := 3 + math.Pow(mass, 0.15)*2
	if r < 3 {
		return 3
	}
	if r > 35 {
		return 35
	}
	return r
}

// placementMasses is the mass assigned to a user-placed body of each
// category. Each value sits comfortably inside its category's band.
var placementMasses = [...]float64{
	Meteor:      1e-5,
	Asteroid:    0.01,
	Planet:      10,
	Star:        100000,
	NeutronStar: 2e6,
	BlackHole:   1e7,
}

// PlacementMass returns the mass a newly placed body of the given
// category starts with.
func PlacementMass(c Category) float64 {
	if c < Meteor || c > BlackHole {
		return placementMasses[Planet]
	}
	return placementMasses[c]
}
