package engine

import "math"

// Energy returns kinetic plus pairwise gravitational potential energy.
// Pairs inside the force guard distance contribute no potential, matching
// the force computation.
func (w *World) Energy() float64 {
	ke, pe := 0.0, 0.0
	for i, bi := range w.Bodies {
		ke += 0.5 * bi.Mass * bi.Vel.Dot(bi.Vel)
		for j := i + 1; j < len(w.Bodies); j++ {
			bj := w.Bodies[j]
			r := bi.Pos.Sub(bj.Pos).Len()
			if r < minForceDist {
				continue
			}
			pe -= G * bi.Mass * bj.Mass / r
		}
	}
	return ke + pe
}

// Momentum returns the total linear momentum.
func (w *World) Momentum() (px, py float64) {
	for _, b := range w.Bodies {
		px += b.Mass * b.Vel[0]
		py += b.Mass * b.Vel[1]
	}
	return
}

// AngularMomentum returns the total angular momentum about the origin.
func (w *World) AngularMomentum() float64 {
	L := 0.0
	for _, b := range w.Bodies {
		L += b.Mass * (b.Pos[0]*b.Vel[1] - b.Pos[1]*b.Vel[0])
	}
	return L
}

// TotalMass returns the summed mass of all bodies.
func (w *World) TotalMass() float64 {
	m := 0.0
	for _, b := range w.Bodies {
		m += b.Mass
	}
	return m
}

// EnergyDrift returns the relative drift between two energy readings.
func EnergyDrift(initial, final float64) float64 {
	if initial == 0 {
		return 0
	}
	return math.Abs(final-initial) / math.Abs(initial)
}
