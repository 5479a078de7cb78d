// Package metrics observes headless runs: conservation drift and
// population statistics.
package metrics

import (
	"math"

	"github.com/san-kum/orbitlab/internal/engine"
)

// Metric is an engine observer with a name and a scalar value.
type Metric interface {
	engine.Observer
	Name() string
	Value() float64
	Reset()
}

// EnergyDrift tracks the maximum relative drift of total energy from its
// first observed value. Mergers are inelastic, so some drift is expected
// whenever collisions happen; large drift without collisions points at an
// integration problem.
type EnergyDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift { return &EnergyDrift{} }

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(w *engine.World, t float64) {
	energy := w.Energy()
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++
	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}

// MomentumDrift tracks the maximum deviation of total linear momentum
// from its first observed value. Merging conserves momentum, so this
// should stay at floating-point noise.
type MomentumDrift struct {
	px0, py0 float64
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift { return &MomentumDrift{} }

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(w *engine.World, t float64) {
	px, py := w.Momentum()
	if m.samples == 0 {
		m.px0, m.py0 = px, py
	}
	m.samples++
	m.maxDrift = math.Max(m.maxDrift, math.Hypot(px-m.px0, py-m.py0))
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.px0, m.py0 = 0, 0
	m.maxDrift = 0
	m.samples = 0
}

// MassDrift tracks the maximum deviation of total mass from its first
// observed value. Mergers conserve mass exactly, so any drift is a bug.
type MassDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewMassDrift() *MassDrift { return &MassDrift{} }

func (m *MassDrift) Name() string { return "mass_drift" }

func (m *MassDrift) Observe(w *engine.World, t float64) {
	total := w.TotalMass()
	if m.samples == 0 {
		m.initial = total
	}
	m.samples++
	m.maxDrift = math.Max(m.maxDrift, math.Abs(total-m.initial))
}

func (m *MassDrift) Value() float64 { return m.maxDrift }

func (m *MassDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.samples = 0
}

// Mergers counts how many bodies were lost to merging since observation
// began.
type Mergers struct {
	first   int
	current int
	samples int
}

func NewMergers() *Mergers { return &Mergers{} }

func (c *Mergers) Name() string { return "mergers" }

func (c *Mergers) Observe(w *engine.World, t float64) {
	if c.samples == 0 {
		c.first = w.Count()
	}
	c.samples++
	c.current = w.Count()
}

func (c *Mergers) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.first - c.current)
}

func (c *Mergers) Reset() {
	c.first = 0
	c.current = 0
	c.samples = 0
}
