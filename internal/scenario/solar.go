// Package scenario builds preset body configurations.
package scenario

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/orbitlab/internal/body"
	"github.com/san-kum/orbitlab/internal/engine"
	"github.com/san-kum/orbitlab/internal/view"
)

const (
	SunMass   = 100000
	SunRadius = 25

	// PresetZoom and PresetTimeSpeed are applied when a preset loads.
	PresetZoom      = 0.7
	PresetTimeSpeed = 1
)

// Preset is a complete replacement configuration: bodies plus the camera
// framing they were laid out for. Applying one is destructive.
type Preset struct {
	Name      string
	Bodies    []*body.Body
	Center    mgl64.Vec2
	Zoom      float64
	TimeSpeed float64
}

type planetSpec struct {
	name     string
	distance float64 // orbital distance from the sun, world units
	rel      float64 // mass relative to the Earth analog
	color    color.RGBA
}

// Masses are Earth-relative; distances are compressed so the whole system
// fits a canvas at the preset zoom.
var planets = []planetSpec{
	{"Mercury", 60, 0.055, color.RGBA{169, 142, 110, 255}},
	{"Venus", 100, 0.815, color.RGBA{226, 190, 122, 255}},
	{"Earth", 160, 1.0, color.RGBA{86, 146, 222, 255}},
	{"Mars", 220, 0.107, color.RGBA{205, 92, 52, 255}},
	{"Jupiter", 340, 317.8, color.RGBA{216, 174, 130, 255}},
	{"Saturn", 460, 95.2, color.RGBA{226, 200, 148, 255}},
	{"Uranus", 580, 14.5, color.RGBA{150, 212, 222, 255}},
	{"Neptune", 700, 17.1, color.RGBA{80, 112, 222, 255}},
}

// SolarSystem lays out a sun and eight planets on stable circular orbits
// for the given canvas size. Each planet sits on the +X axis from center
// with a pure-Y tangential velocity of sqrt(G*sunMass/distance); that
// orientation only works because placement is purely along +X, it is not
// a general orbit formula. The build is fully deterministic.
func SolarSystem(canvasW, canvasH float64) *Preset {
	center := mgl64.Vec2{canvasW / 2, canvasH / 2}

	sun, _ := body.New(SunMass, center)
	sun.Name = "Sun"
	sun.Radius = SunRadius
	sun.Style = body.Style{Color: color.RGBA{255, 214, 64, 255}, Glow: true}

	bodies := []*body.Body{sun}
	for _, p := range planets {
		b, _ := body.New(p.rel*5, center.Add(mgl64.Vec2{p.distance, 0}))
		b.Name = p.name
		b.Vel = mgl64.Vec2{0, math.Sqrt(engine.G * SunMass / p.distance)}
		// Planets keep their own colors and a tighter radius scale than
		// the mass-derived defaults.
		b.Radius = planetRadius(p.rel)
		b.Style = body.Style{Color: p.color}
		bodies = append(bodies, b)
	}

	return &Preset{
		Name:      "solar-system",
		Bodies:    bodies,
		Center:    center,
		Zoom:      PresetZoom,
		TimeSpeed: PresetTimeSpeed,
	}
}

func planetRadius(rel float64) float64 {
	r := 4 + math.Sqrt(rel)*1.2
	if r < 4 {
		return 4
	}
	if r > 16 {
		return 16
	}
	return r
}

// Apply replaces the world's bodies with copies of the preset's and
// reframes the camera. Copying keeps the preset reusable after the
// simulation mutates its bodies.
func (p *Preset) Apply(w *engine.World, cam *view.Camera) {
	w.Bodies = w.Bodies[:0]
	for _, b := range p.Bodies {
		cp := *b
		w.Bodies = append(w.Bodies, &cp)
	}
	w.SetTimeSpeed(p.TimeSpeed)
	cam.Reset(p.Center, p.Zoom)
}

// List names the built-in presets.
func List() []string {
	return []string{"solar-system"}
}

// ByName returns a built-in preset for the given canvas size.
func ByName(name string, canvasW, canvasH float64) *Preset {
	if name == "solar-system" {
		return SolarSystem(canvasW, canvasH)
	}
	return nil
}
