// Package engine advances the set of bodies: pairwise gravitational
// attraction, semi-implicit Euler integration, and perfectly inelastic
// merging on collision.
package engine

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/orbitlab/internal/body"
)

const (
	// G is tuned for visually stable orbits at the mass/distance scales
	// the tool works at, not the physical constant.
	G = 0.5

	// minForceDist guards the 1/r² singularity: pairs closer than this
	// feel no mutual force. Very close but not-yet-merged bodies coast,
	// a stability trade-off over physical accuracy.
	minForceDist = 1.0

	MinTimeSpeed = 0.1
	MaxTimeSpeed = 10.0
)

// World owns the live body collection. All mutation happens on the frame
// thread; there is no locking.
type World struct {
	Bodies    []*body.Body
	TimeSpeed float64
	Paused    bool

	ax, ay []float64 // acceleration scratch, reused across steps
}

// Stats is the read-only snapshot the presentation layer displays.
type Stats struct {
	BodyCount int
	Paused    bool
	TimeSpeed float64
}

// StepError reports a defensive check tripping inside a physics advance.
type StepError struct {
	Step    int
	Message string
}

func (e StepError) Error() string {
	return fmt.Sprintf("physics step %d: %s", e.Step, e.Message)
}

func NewWorld() *World {
	return &World{TimeSpeed: 1}
}

func (w *World) Add(b *body.Body) { w.Bodies = append(w.Bodies, b) }
func (w *World) Clear()           { w.Bodies = w.Bodies[:0] }
func (w *World) Count() int       { return len(w.Bodies) }
func (w *World) TogglePause()     { w.Paused = !w.Paused }

// SetTimeSpeed clamps the speed to [MinTimeSpeed, MaxTimeSpeed].
func (w *World) SetTimeSpeed(v float64) {
	if v < MinTimeSpeed {
		v = MinTimeSpeed
	}
	if v > MaxTimeSpeed {
		v = MaxTimeSpeed
	}
	w.TimeSpeed = v
}

func (w *World) Stats() Stats {
	return Stats{BodyCount: len(w.Bodies), Paused: w.Paused, TimeSpeed: w.TimeSpeed}
}

// Step advances the world by dt: collisions are resolved first, then
// forces are integrated. With zero or one body both phases are no-ops.
func (w *World) Step(dt float64) {
	w.mergeCollisions()
	w.integrate(dt)
}

// mergeCollisions scans every unordered pair in index order and merges j
// into i when their centers come within half the summed radii, a
// deliberately permissive threshold so bodies merge before their rendered
// circles fully overlap. A body absorbed this step is skipped in later
// pair checks; for three or more simultaneous colliders the outcome
// depends on index order. That tie-break is kept as-is.
func (w *World) mergeCollisions() {
	n := len(w.Bodies)
	if n < 2 {
		return
	}
	removed := make([]bool, n)
	merged := false

	for i := 0; i < n; i++ {
		if removed[i] {
			continue
		}
		for j := i + 1; j < n; j++ {
			if removed[j] {
				continue
			}
			bi, bj := w.Bodies[i], w.Bodies[j]
			if bi.Pos.Sub(bj.Pos).Len() >= (bi.Radius+bj.Radius)/2 {
				continue
			}
			mergeInto(bi, bj)
			removed[j] = true
			merged = true
		}
	}

	if !merged {
		return
	}
	kept := w.Bodies[:0]
	for i, b := range w.Bodies {
		if !removed[i] {
			kept = append(kept, b)
		}
	}
	w.Bodies = kept
}

// mergeInto folds b into a: summed mass, mass-weighted centroid, and
// total-momentum velocity (perfectly inelastic). Display attributes are
// re-derived from the new mass, so the category may jump.
func mergeInto(a, b *body.Body) {
	total := a.Mass + b.Mass
	a.Pos = a.Pos.Mul(a.Mass).Add(b.Pos.Mul(b.Mass)).Mul(1 / total)
	a.Vel = a.Momentum().Add(b.Momentum()).Mul(1 / total)
	a.Mass = total
	a.Retag()
}

// integrate accumulates pairwise accelerations from a positional snapshot,
// then applies the semi-implicit Euler update (velocity first, position
// from the updated velocity). Accumulating before any body moves keeps
// mirror-symmetric systems exactly mirrored. O(n²), no partitioning.
func (w *World) integrate(dt float64) {
	n := len(w.Bodies)
	if n < 2 {
		// A single body feels no force but still coasts.
		for _, b := range w.Bodies {
			b.Pos = b.Pos.Add(b.Vel.Mul(dt))
		}
		return
	}

	if cap(w.ax) < n {
		w.ax = make([]float64, n)
		w.ay = make([]float64, n)
	}
	ax := w.ax[:n]
	ay := w.ay[:n]
	for i := range ax {
		ax[i], ay[i] = 0, 0
	}

	for i := 0; i < n; i++ {
		bi := w.Bodies[i]
		for j := i + 1; j < n; j++ {
			bj := w.Bodies[j]
			d := bj.Pos.Sub(bi.Pos)
			dist := d.Len()
			if dist < minForceDist {
				continue
			}
			distSq := dist * dist
			// F = G*mi*mj/r^2; each side accumulates F/m as acceleration.
			fi := G * bj.Mass / distSq
			ax[i] += fi * d[0] / dist
			ay[i] += fi * d[1] / dist

			fj := G * bi.Mass / distSq
			ax[j] -= fj * d[0] / dist
			ay[j] -= fj * d[1] / dist
		}
	}

	for i, b := range w.Bodies {
		b.Vel = b.Vel.Add(mgl64.Vec2{ax[i], ay[i]}.Mul(dt))
		b.Pos = b.Pos.Add(b.Vel.Mul(dt))
	}
}

// Frame advances the world by one display frame: max(1, floor(TimeSpeed))
// substeps of TimeSpeed/steps each. Simulated time is tied to the frame
// count, not wall-clock time, so physical time advances differently on
// displays with different refresh rates.
//
// If a defensive state check fails mid-frame the pre-frame state is
// restored, the failure is logged, and the frame's physics advance is
// skipped; the render loop keeps running.
func (w *World) Frame() {
	if w.Paused || len(w.Bodies) == 0 {
		return
	}

	before := w.clone()

	steps := int(w.TimeSpeed)
	if steps < 1 {
		steps = 1
	}
	dt := w.TimeSpeed / float64(steps)

	for s := 0; s < steps; s++ {
		w.Step(dt)
		if !w.valid() {
			log.Printf("orbitlab: %v, skipping frame", StepError{Step: s, Message: "non-finite state"})
			w.Bodies = before
			return
		}
	}
}

func (w *World) clone() []*body.Body {
	out := make([]*body.Body, len(w.Bodies))
	for i, b := range w.Bodies {
		cp := *b
		out[i] = &cp
	}
	return out
}

func (w *World) valid() bool {
	for _, b := range w.Bodies {
		if !b.Valid() {
			return false
		}
	}
	return true
}
