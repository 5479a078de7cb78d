// Package view maps between world space (simulation coordinates) and
// screen space (pixels on the drawing surface).
package view

import "github.com/go-gl/mathgl/mgl64"

const (
	MinZoom = 0.1
	MaxZoom = 10.0

	// WheelStepIn and WheelStepOut are the zoom factors applied per
	// scroll notch, always about the viewport center.
	WheelStepIn  = 1.1
	WheelStepOut = 0.9
)

// Camera holds the viewport transform: a world-space offset, a zoom
// scalar clamped to [MinZoom, MaxZoom], and the surface size in pixels.
type Camera struct {
	Offset  mgl64.Vec2
	Zoom    float64
	ScreenW float64
	ScreenH float64
}

func New(screenW, screenH float64) *Camera {
	return &Camera{
		Offset:  mgl64.Vec2{screenW / 2, screenH / 2},
		Zoom:    1,
		ScreenW: screenW,
		ScreenH: screenH,
	}
}

// WorldToScreen projects a world point onto the surface.
func (c *Camera) WorldToScreen(w mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		(w[0]-c.Offset[0])*c.Zoom + c.ScreenW/2,
		(w[1]-c.Offset[1])*c.Zoom + c.ScreenH/2,
	}
}

// ScreenToWorld is the exact inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(s mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		(s[0]-c.ScreenW/2)/c.Zoom + c.Offset[0],
		(s[1]-c.ScreenH/2)/c.Zoom + c.Offset[1],
	}
}

// ZoomBy multiplies the zoom and clamps it to [MinZoom, MaxZoom].
func (c *Camera) ZoomBy(factor float64) {
	c.Zoom *= factor
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
	if c.Zoom > MaxZoom {
		c.Zoom = MaxZoom
	}
}

// Pan shifts the camera by a screen-space delta: dragging the view right
// moves the camera left in world space, scaled by the current zoom.
func (c *Camera) Pan(screenDelta mgl64.Vec2) {
	c.Offset = c.Offset.Sub(screenDelta.Mul(1 / c.Zoom))
}

// Resize records a new surface size in pixels.
func (c *Camera) Resize(w, h float64) {
	c.ScreenW = w
	c.ScreenH = h
}

// Reset recenters on the given world point and restores the zoom.
func (c *Camera) Reset(center mgl64.Vec2, zoom float64) {
	c.Offset = center
	c.Zoom = zoom
	c.ZoomBy(1)
}
