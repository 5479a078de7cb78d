package body

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestClassifyThresholds(t *testing.T) {
	tests := []struct {
		mass float64
		want Category
	}{
		{1e-6, Meteor},
		{4.9e-5, Meteor},
		{5e-5, Asteroid},
		{0.1, Asteroid},
		{0.2, Planet},
		{74999, Planet},
		{75000, Star},
		{1.39e6, Star},
		{1.4e6, NeutronStar},
		{4.99e6, NeutronStar},
		{5e6, BlackHole},
		{1e9, BlackHole},
	}

	for _, tt := range tests {
		if got := Classify(tt.mass); got != tt.want {
			t.Errorf("Classify(%g) = %v, want %v", tt.mass, got, tt.want)
		}
	}
}

func TestClassifyMonotonic(t *testing.T) {
	// Category rank must never decrease as mass grows.
	prev := Meteor
	for mass := 1e-7; mass < 1e8; mass *= 1.7 {
		got := Classify(mass)
		if got < prev {
			t.Fatalf("Classify(%g) = %v, below previous %v", mass, got, prev)
		}
		prev = got
	}
}

func TestStyleTable(t *testing.T) {
	for _, c := range Categories() {
		s := StyleOf(c)
		if s.Color.A == 0 {
			t.Errorf("style for %v has zero alpha", c)
		}
	}

	if StyleOf(Meteor).Glow || StyleOf(Asteroid).Glow || StyleOf(Planet).Glow {
		t.Error("non-luminous categories must not glow")
	}
	for _, c := range []Category{Star, NeutronStar, BlackHole} {
		if !StyleOf(c).Glow {
			t.Errorf("%v should glow", c)
		}
	}
	if !StyleOf(BlackHole).Special {
		t.Error("black hole should carry the special ring")
	}
	for _, c := range []Category{Meteor, Asteroid, Planet, Star, NeutronStar} {
		if StyleOf(c).Special {
			t.Errorf("%v should not carry the special ring", c)
		}
	}
}

func TestRadiusFor(t *testing.T) {
	// Exact power law inside the band.
	for _, mass := range []float64{0.5, 10, 1000, 50000} {
		want := 3 + math.Pow(mass, 0.15)*2
		if want > 35 {
			want = 35
		}
		if got := RadiusFor(mass); math.Abs(got-want) > 1e-12 {
			t.Errorf("RadiusFor(%g) = %g, want %g", mass, got, want)
		}
	}

	// The power law stays above the 3-unit floor for any positive mass;
	// the floor only backstops it.
	if got := RadiusFor(1e-10); got < 3 {
		t.Errorf("radius floor violated: got %g, want >= 3", got)
	}
	if got := RadiusFor(1e12); got != 35 {
		t.Errorf("radius ceiling: got %g, want 35", got)
	}

	// Monotone non-decreasing across six orders of magnitude.
	prev := 0.0
	for mass := 1e-6; mass < 1e9; mass *= 2 {
		r := RadiusFor(mass)
		if r < prev {
			t.Fatalf("RadiusFor(%g) = %g decreased from %g", mass, r, prev)
		}
		prev = r
	}
}

func TestNewRejectsBadMass(t *testing.T) {
	tests := []struct {
		name string
		mass float64
	}{
		{"zero", 0},
		{"negative", -5},
		{"nan", math.NaN()},
		{"+inf", math.Inf(1)},
		{"-inf", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.mass, mgl64.Vec2{}); err == nil {
				t.Errorf("New(%g) accepted invalid mass", tt.mass)
			}
		})
	}
}

func TestNewDerivesAttributes(t *testing.T) {
	b, err := New(100000, mgl64.Vec2{1, 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if b.Category != Star {
		t.Errorf("category = %v, want Star", b.Category)
	}
	if !b.Style.Glow {
		t.Error("a star should glow")
	}
	if b.Radius != RadiusFor(100000) {
		t.Errorf("radius = %g, want %g", b.Radius, RadiusFor(100000))
	}
}

func TestPlacementMassMatchesCategory(t *testing.T) {
	// Every placement mass must classify back into its own category.
	for _, c := range Categories() {
		if got := Classify(PlacementMass(c)); got != c {
			t.Errorf("PlacementMass(%v) = %g classifies as %v", c, PlacementMass(c), got)
		}
	}
}

func TestRetagAfterMassChange(t *testing.T) {
	b, _ := New(100000, mgl64.Vec2{})
	b.Mass = 6e6
	b.Retag()
	if b.Category != BlackHole {
		t.Errorf("category after growth = %v, want BlackHole", b.Category)
	}
	if !b.Style.Special {
		t.Error("black hole style not applied on retag")
	}
}
