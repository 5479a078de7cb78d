package engine_test

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/orbitlab/internal/body"
	"github.com/san-kum/orbitlab/internal/engine"
	"github.com/san-kum/orbitlab/internal/scenario"
)

func newBody(mass float64, pos, vel mgl64.Vec2) *body.Body {
	b, err := body.New(mass, pos)
	Expect(err).NotTo(HaveOccurred())
	b.Vel = vel
	return b
}

var _ = Describe("merging", func() {
	It("conserves total mass regardless of merge order", func() {
		// A seeded cluster collapses over many steps; however the merge
		// chains resolve, no mass may appear or vanish.
		rng := rand.New(rand.NewSource(42))
		w := engine.NewWorld()
		total := 0.0
		for i := 0; i < 20; i++ {
			mass := 5 + rng.Float64()*100
			pos := mgl64.Vec2{rng.Float64() * 12, rng.Float64() * 12}
			vel := mgl64.Vec2{rng.Float64() - 0.5, rng.Float64() - 0.5}
			w.Add(newBody(mass, pos, vel))
			total += mass
		}

		for i := 0; i < 200; i++ {
			w.Step(0.5)
		}

		Expect(w.Count()).To(BeNumerically("<", 20))
		Expect(w.TotalMass()).To(BeNumerically("~", total, 1e-9))
	})

	It("conserves momentum through an isolated merge", func() {
		w := engine.NewWorld()
		a := newBody(12, mgl64.Vec2{0, 0}, mgl64.Vec2{4, -2})
		b := newBody(7, mgl64.Vec2{1, 1}, mgl64.Vec2{-1, 6})
		w.Add(a)
		w.Add(b)

		want := a.Momentum().Add(b.Momentum())
		w.Step(0.001)

		Expect(w.Count()).To(Equal(1))
		got := w.Bodies[0].Momentum()
		Expect(got[0]).To(BeNumerically("~", want[0], 1e-9))
		Expect(got[1]).To(BeNumerically("~", want[1], 1e-9))
	})
})

var _ = Describe("solar system scenario", func() {
	It("builds deterministically", func() {
		p1 := scenario.SolarSystem(1200, 700)
		p2 := scenario.SolarSystem(1200, 700)

		Expect(len(p1.Bodies)).To(Equal(len(p2.Bodies)))
		for i := range p1.Bodies {
			Expect(p1.Bodies[i].Pos).To(Equal(p2.Bodies[i].Pos))
			Expect(p1.Bodies[i].Vel).To(Equal(p2.Bodies[i].Vel))
			Expect(p1.Bodies[i].Mass).To(Equal(p2.Bodies[i].Mass))
		}
	})

	It("pulls the Earth analog inward on the first step", func() {
		p := scenario.SolarSystem(1200, 700)
		w := engine.NewWorld()
		w.Bodies = p.Bodies

		var earth *body.Body
		for _, b := range w.Bodies {
			if b.Name == "Earth" {
				earth = b
			}
		}
		Expect(earth).NotTo(BeNil())

		sun := w.Bodies[0]
		Expect(sun.Name).To(Equal("Sun"))
		Expect(sun.Pos).To(Equal(mgl64.Vec2{600, 350}))
		Expect(sun.Mass).To(Equal(float64(scenario.SunMass)))

		Expect(earth.Pos[0] - sun.Pos[0]).To(BeNumerically("~", 160, 1e-9))
		Expect(earth.Mass).To(BeNumerically("~", 5.0, 1e-9))
		wantV := math.Sqrt(engine.G * scenario.SunMass / 160)
		Expect(earth.Vel[1]).To(BeNumerically("~", wantV, 1e-9))
		Expect(wantV).To(BeNumerically("~", 17.68, 0.01))

		y0 := earth.Pos[1]
		w.Step(1)

		// Centripetal pull: velocity gains a small negative x component,
		// position advances along y by about the initial speed.
		Expect(earth.Vel[0]).To(BeNumerically("<", 0))
		Expect(earth.Vel[0]).To(BeNumerically(">", -5))
		Expect(earth.Pos[1] - y0).To(BeNumerically("~", wantV, 0.05))
	})
})
