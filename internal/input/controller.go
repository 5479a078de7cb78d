// Package input translates pointer events into body placement, camera
// pan, and zoom. It is framework-free: the GUI adapts its events into
// these calls, and tests drive them directly.
package input

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/orbitlab/internal/body"
	"github.com/san-kum/orbitlab/internal/engine"
	"github.com/san-kum/orbitlab/internal/view"
)

// velocityScale converts a pixel drag distance into world velocity. The
// division by zoom on release means the same drag implies a larger world
// velocity when zoomed out.
const velocityScale = 0.02

type State int

const (
	Idle State = iota
	DraggingNewBody
	Panning
)

// Drag describes an in-progress aim for the render loop: both points in
// screen space, From at the candidate body, To at the pointer.
type Drag struct {
	From mgl64.Vec2
	To   mgl64.Vec2
}

type Controller struct {
	world *engine.World
	cam   *view.Camera

	// Selected is the category the next placed body gets.
	Selected body.Category

	state     State
	anchor    mgl64.Vec2 // screen coords; aim target or last pan point
	candidate *body.Body
}

func New(w *engine.World, cam *view.Camera) *Controller {
	return &Controller{world: w, cam: cam, Selected: body.Planet}
}

func (c *Controller) State() State { return c.state }

// PrimaryDown starts placing a body of the selected category. The world
// position is fixed at press time; only the aim anchor follows the
// pointer afterwards.
func (c *Controller) PrimaryDown(screen mgl64.Vec2) {
	if c.state != Idle {
		return
	}
	b, err := body.New(body.PlacementMass(c.Selected), c.cam.ScreenToWorld(screen))
	if err != nil {
		return
	}
	c.candidate = b
	c.anchor = screen
	c.state = DraggingNewBody
}

// SecondaryDown starts a camera pan.
func (c *Controller) SecondaryDown(screen mgl64.Vec2) {
	if c.state != Idle {
		return
	}
	c.anchor = screen
	c.state = Panning
}

// Move updates whichever drag is active.
func (c *Controller) Move(screen mgl64.Vec2) {
	switch c.state {
	case DraggingNewBody:
		c.anchor = screen
	case Panning:
		c.cam.Pan(screen.Sub(c.anchor))
		c.anchor = screen
	}
}

// PrimaryUp commits the candidate body with a velocity derived from the
// aim vector and returns to Idle.
func (c *Controller) PrimaryUp(screen mgl64.Vec2) {
	if c.state != DraggingNewBody {
		return
	}
	c.Move(screen)
	aim := c.anchor.Sub(c.cam.WorldToScreen(c.candidate.Pos))
	c.candidate.Vel = aim.Mul(velocityScale / c.cam.Zoom)
	c.world.Add(c.candidate)
	c.reset()
}

// SecondaryUp ends a pan.
func (c *Controller) SecondaryUp() {
	if c.state == Panning {
		c.reset()
	}
}

// Leave discards any transient state, e.g. when the pointer exits the
// surface mid-drag. The candidate body is never committed.
func (c *Controller) Leave() {
	c.reset()
}

// Wheel zooms about the viewport center.
func (c *Controller) Wheel(delta float64) {
	if delta > 0 {
		c.cam.ZoomBy(view.WheelStepIn)
	} else if delta < 0 {
		c.cam.ZoomBy(view.WheelStepOut)
	}
}

// Drag returns the active aim indicator, if any.
func (c *Controller) Drag() (Drag, bool) {
	if c.state != DraggingNewBody {
		return Drag{}, false
	}
	return Drag{From: c.cam.WorldToScreen(c.candidate.Pos), To: c.anchor}, true
}

// Candidate exposes the body being placed, for drawing it under the aim
// indicator before it is committed.
func (c *Controller) Candidate() (*body.Body, bool) {
	if c.state != DraggingNewBody {
		return nil, false
	}
	return c.candidate, true
}

func (c *Controller) reset() {
	c.state = Idle
	c.candidate = nil
}
