package view

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRoundTrip(t *testing.T) {
	zooms := []float64{MinZoom, 0.5, 0.7, 1, 2.7, MaxZoom}
	offsets := []mgl64.Vec2{{0, 0}, {600, 350}, {-1234.5, 987.25}}
	points := []mgl64.Vec2{{0, 0}, {1, 1}, {-500, 250}, {1e4, -1e4}, {0.125, -0.0625}}

	for _, zoom := range zooms {
		for _, off := range offsets {
			c := New(1200, 700)
			c.Offset = off
			c.Zoom = zoom
			for _, p := range points {
				got := c.ScreenToWorld(c.WorldToScreen(p))
				if math.Abs(got[0]-p[0]) > 1e-9 || math.Abs(got[1]-p[1]) > 1e-9 {
					t.Errorf("round trip zoom=%g offset=%v: %v -> %v", zoom, off, p, got)
				}
			}
		}
	}
}

func TestWorldToScreenFormula(t *testing.T) {
	c := New(800, 600)
	c.Offset = mgl64.Vec2{100, 50}
	c.Zoom = 2

	got := c.WorldToScreen(mgl64.Vec2{110, 40})
	want := mgl64.Vec2{(110-100)*2 + 400, (40-50)*2 + 300}
	if got != want {
		t.Errorf("WorldToScreen = %v, want %v", got, want)
	}
}

func TestZoomClamp(t *testing.T) {
	c := New(800, 600)
	for i := 0; i < 200; i++ {
		c.ZoomBy(WheelStepIn)
	}
	if c.Zoom != MaxZoom {
		t.Errorf("zoom after scrolling in = %g, want exactly %g", c.Zoom, MaxZoom)
	}

	for i := 0; i < 200; i++ {
		c.ZoomBy(WheelStepOut)
	}
	if c.Zoom != MinZoom {
		t.Errorf("zoom after scrolling out = %g, want exactly %g", c.Zoom, MinZoom)
	}
}

func TestPan(t *testing.T) {
	c := New(800, 600)
	c.Zoom = 2
	start := c.Offset

	c.Pan(mgl64.Vec2{10, -20})
	want := start.Sub(mgl64.Vec2{5, -10})
	if c.Offset != want {
		t.Errorf("offset after pan = %v, want %v", c.Offset, want)
	}
}

func TestResizeKeepsWorldCenter(t *testing.T) {
	c := New(800, 600)
	c.Offset = mgl64.Vec2{123, 456}
	c.Resize(1024, 768)

	// The world point under the viewport center is the camera offset,
	// whatever the surface size.
	got := c.ScreenToWorld(mgl64.Vec2{512, 384})
	if math.Abs(got[0]-123) > 1e-9 || math.Abs(got[1]-456) > 1e-9 {
		t.Errorf("center after resize = %v, want (123, 456)", got)
	}
}

func TestResetClampsZoom(t *testing.T) {
	c := New(800, 600)
	c.Reset(mgl64.Vec2{1, 2}, 99)
	if c.Zoom != MaxZoom {
		t.Errorf("reset zoom = %g, want %g", c.Zoom, MaxZoom)
	}
}
