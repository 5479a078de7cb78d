package scenario

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/orbitlab/internal/body"
	"github.com/san-kum/orbitlab/internal/engine"
	"github.com/san-kum/orbitlab/internal/view"
)

func TestSolarSystemLayout(t *testing.T) {
	p := SolarSystem(1200, 700)

	if len(p.Bodies) != 9 {
		t.Fatalf("body count = %d, want 9", len(p.Bodies))
	}

	sun := p.Bodies[0]
	if sun.Name != "Sun" || sun.Mass != SunMass || sun.Radius != SunRadius {
		t.Errorf("sun = %q mass %g radius %g", sun.Name, sun.Mass, sun.Radius)
	}
	if sun.Pos != (mgl64.Vec2{600, 350}) {
		t.Errorf("sun position = %v, want (600, 350)", sun.Pos)
	}
	if sun.Vel.Len() != 0 {
		t.Errorf("sun velocity = %v, want zero", sun.Vel)
	}
	if !sun.Style.Glow {
		t.Error("sun should glow")
	}

	for _, b := range p.Bodies[1:] {
		dist := b.Pos[0] - sun.Pos[0]
		if dist <= 0 {
			t.Errorf("%s not placed along +X from center", b.Name)
		}
		if b.Pos[1] != sun.Pos[1] {
			t.Errorf("%s not on the placement axis", b.Name)
		}

		wantV := math.Sqrt(engine.G * SunMass / dist)
		if b.Vel[0] != 0 || math.Abs(b.Vel[1]-wantV) > 1e-12 {
			t.Errorf("%s velocity = %v, want (0, %g)", b.Name, b.Vel, wantV)
		}

		if b.Radius < 4 || b.Radius > 16 {
			t.Errorf("%s radius %g outside [4, 16]", b.Name, b.Radius)
		}
	}
}

func TestSolarSystemDeterministic(t *testing.T) {
	p1 := SolarSystem(900, 500)
	p2 := SolarSystem(900, 500)

	for i := range p1.Bodies {
		a, b := p1.Bodies[i], p2.Bodies[i]
		if a.Pos != b.Pos || a.Vel != b.Vel || a.Mass != b.Mass || a.Name != b.Name {
			t.Errorf("body %d differs between builds: %+v vs %+v", i, a, b)
		}
	}
}

func TestApplyReplacesAndReframes(t *testing.T) {
	w := engine.NewWorld()
	old, _ := body.New(42, mgl64.Vec2{1, 1})
	w.Add(old)
	w.SetTimeSpeed(7)

	cam := view.New(1200, 700)
	cam.Zoom = 5

	p := SolarSystem(1200, 700)
	p.Apply(w, cam)

	if w.Count() != 9 {
		t.Errorf("bodies after apply = %d, want 9", w.Count())
	}
	for _, b := range w.Bodies {
		if b == old {
			t.Error("stale body survived preset apply")
		}
	}
	if w.TimeSpeed != PresetTimeSpeed {
		t.Errorf("time speed = %g, want %g", w.TimeSpeed, float64(PresetTimeSpeed))
	}
	if cam.Zoom != PresetZoom {
		t.Errorf("zoom = %g, want %g", cam.Zoom, float64(PresetZoom))
	}
	if cam.Offset != (mgl64.Vec2{600, 350}) {
		t.Errorf("camera offset = %v, want canvas center", cam.Offset)
	}
}

func TestByName(t *testing.T) {
	if ByName("solar-system", 800, 600) == nil {
		t.Error("solar-system preset missing")
	}
	if ByName("nonexistent", 800, 600) != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestFileRoundTrip(t *testing.T) {
	p := SolarSystem(1200, 700)
	path := filepath.Join(t.TempDir(), "solar.yaml")

	if err := Save(path, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(got.Bodies) != len(p.Bodies) {
		t.Fatalf("bodies = %d, want %d", len(got.Bodies), len(p.Bodies))
	}
	for i := range p.Bodies {
		a, b := p.Bodies[i], got.Bodies[i]
		if a.Name != b.Name || math.Abs(a.Mass-b.Mass) > 1e-9 {
			t.Errorf("body %d: %q/%g vs %q/%g", i, a.Name, a.Mass, b.Name, b.Mass)
		}
		if a.Pos.Sub(b.Pos).Len() > 1e-9 || a.Vel.Sub(b.Vel).Len() > 1e-9 {
			t.Errorf("body %d state drifted through round trip", i)
		}
		if a.Style.Color != b.Style.Color {
			t.Errorf("body %d color drifted through round trip", i)
		}
	}
}

func TestLoadAutoOrbit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.yaml")
	content := `name: pair
auto_orbit: true
bodies:
  - name: center
    mass: 1000
    pos: [0, 0]
  - name: moon
    mass: 1
    pos: [0, 200]
`
	if err := writeFile(path, content); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	moon := p.Bodies[1]
	wantSpeed := math.Sqrt(engine.G * 1000 / 200)
	if math.Abs(moon.Vel.Len()-wantSpeed) > 1e-9 {
		t.Errorf("auto-orbit speed = %g, want %g", moon.Vel.Len(), wantSpeed)
	}
	// Tangential: perpendicular to the radius vector.
	if dot := moon.Vel.Dot(moon.Pos); math.Abs(dot) > 1e-9 {
		t.Errorf("auto-orbit velocity not tangential, dot = %g", dot)
	}
}

func TestLoadRejectsBadBodies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	content := `name: bad
bodies:
  - mass: -5
    pos: [0, 0]
`
	if err := writeFile(path, content); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("negative mass accepted from scenario file")
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
