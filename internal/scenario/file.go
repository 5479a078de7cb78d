package scenario

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/orbitlab/internal/body"
	"github.com/san-kum/orbitlab/internal/engine"
	"gopkg.in/yaml.v3"
)

// File is the on-disk scenario format.
type File struct {
	Name      string       `yaml:"name"`
	TimeSpeed float64      `yaml:"time_speed,omitempty"`
	Zoom      float64      `yaml:"zoom,omitempty"`
	AutoOrbit bool         `yaml:"auto_orbit,omitempty"`
	Bodies    []BodyConfig `yaml:"bodies"`
}

type BodyConfig struct {
	Name  string     `yaml:"name,omitempty"`
	Mass  float64    `yaml:"mass"`
	Pos   [2]float64 `yaml:"pos"`
	Vel   [2]float64 `yaml:"vel,omitempty"`
	Color string     `yaml:"color,omitempty"`
}

// Load reads a YAML scenario and builds a preset from it. When auto_orbit
// is set, bodies with zero velocity get a circular-orbit velocity around
// the first body, which is treated as central.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if len(f.Bodies) == 0 {
		return nil, fmt.Errorf("scenario %s has no bodies", path)
	}

	if f.AutoOrbit {
		setOrbitalVelocities(f.Bodies)
	}

	var bodies []*body.Body
	var center mgl64.Vec2
	for i, bc := range f.Bodies {
		b, err := body.New(bc.Mass, mgl64.Vec2{bc.Pos[0], bc.Pos[1]})
		if err != nil {
			return nil, fmt.Errorf("scenario %s body %d: %w", path, i, err)
		}
		b.Name = bc.Name
		b.Vel = mgl64.Vec2{bc.Vel[0], bc.Vel[1]}
		if c, ok := parseHexColor(bc.Color); ok {
			b.Style.Color = c
		}
		bodies = append(bodies, b)
		center = center.Add(b.Pos.Mul(1 / float64(len(f.Bodies))))
	}

	zoom := f.Zoom
	if zoom <= 0 {
		zoom = PresetZoom
	}
	speed := f.TimeSpeed
	if speed <= 0 {
		speed = PresetTimeSpeed
	}
	return &Preset{Name: f.Name, Bodies: bodies, Center: center, Zoom: zoom, TimeSpeed: speed}, nil
}

// Save writes a scenario file for the given bodies.
func Save(path string, p *Preset) error {
	f := File{Name: p.Name, TimeSpeed: p.TimeSpeed, Zoom: p.Zoom}
	for _, b := range p.Bodies {
		f.Bodies = append(f.Bodies, BodyConfig{
			Name:  b.Name,
			Mass:  b.Mass,
			Pos:   [2]float64{b.Pos[0], b.Pos[1]},
			Vel:   [2]float64{b.Vel[0], b.Vel[1]},
			Color: formatHexColor(b.Style.Color),
		})
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// setOrbitalVelocities fills in a tangential circular-orbit velocity
// around the first body for every later body that has none.
func setOrbitalVelocities(bodies []BodyConfig) {
	central := bodies[0]
	for i := 1; i < len(bodies); i++ {
		if bodies[i].Vel[0] != 0 || bodies[i].Vel[1] != 0 {
			continue
		}
		dx := bodies[i].Pos[0] - central.Pos[0]
		dy := bodies[i].Pos[1] - central.Pos[1]
		r := math.Hypot(dx, dy)
		if r == 0 {
			continue
		}
		v := math.Sqrt(engine.G * central.Mass / r)
		bodies[i].Vel[0] = -dy / r * v
		bodies[i].Vel[1] = dx / r * v
	}
}

func parseHexColor(hex string) (color.RGBA, bool) {
	var r, g, b uint8
	if len(hex) == 7 && hex[0] == '#' {
		n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
		if err == nil && n == 3 {
			return color.RGBA{r, g, b, 255}, true
		}
	}
	return color.RGBA{}, false
}

func formatHexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
