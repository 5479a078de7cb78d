package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/orbitlab/internal/body"
)

const (
	labelZoomThreshold = 0.5

	btnH   = 26
	btnPad = 8

	dashLen = 8
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)

	for _, b := range a.World.Bodies {
		a.drawBody(b)
	}
	if cand, ok := a.Input.Candidate(); ok {
		a.drawBody(cand)
	}
	if drag, ok := a.Input.Drag(); ok {
		a.drawAim(drag.From, drag.To)
	}

	a.drawShell()
	rl.EndDrawing()
}

func (a *App) drawBody(b *body.Body) {
	pos := a.Cam.WorldToScreen(b.Pos)
	r := b.Radius * a.Cam.Zoom

	// Cull bodies whose screen circle lies fully outside the viewport.
	// The glow underlay extends past the circle, so give it slack.
	margin := r * 3
	if pos[0]+margin < 0 || pos[0]-margin > a.Cam.ScreenW ||
		pos[1]+margin < 0 || pos[1]-margin > a.Cam.ScreenH {
		return
	}

	center := rl.NewVector2(float32(pos[0]), float32(pos[1]))

	if b.Style.Glow {
		rl.DrawCircleGradient(int32(pos[0]), int32(pos[1]), float32(r*3),
			rl.Fade(b.Style.Color, 0.35), rl.Fade(b.Style.Color, 0))
	}
	rl.DrawCircleV(center, float32(r), b.Style.Color)
	if b.Style.Special {
		rl.DrawRing(center, float32(r*1.4), float32(r*1.4+2), 0, 360, 48,
			rl.NewColor(255, 140, 40, 255))
	}
	if b.Name != "" && a.Cam.Zoom > labelZoomThreshold {
		rl.DrawText(b.Name, int32(pos[0]+r+4), int32(pos[1]-r-4), 10, colTextDim)
	}
}

// drawAim draws the dashed aim line with an arrowhead at the pointer end.
func (a *App) drawAim(from, to mgl64.Vec2) {
	d := to.Sub(from)
	length := d.Len()
	if length < 1 {
		return
	}
	dir := d.Mul(1 / length)

	for off := 0.0; off < length; off += dashLen * 2 {
		end := math.Min(off+dashLen, length)
		p0 := from.Add(dir.Mul(off))
		p1 := from.Add(dir.Mul(end))
		rl.DrawLineEx(
			rl.NewVector2(float32(p0[0]), float32(p0[1])),
			rl.NewVector2(float32(p1[0]), float32(p1[1])),
			1.5, colAim)
	}

	// Arrowhead: two short wings back from the tip.
	tip := to
	left := mgl64.Vec2{-dir[1], dir[0]}
	base := tip.Sub(dir.Mul(10))
	w1 := base.Add(left.Mul(5))
	w2 := base.Sub(left.Mul(5))
	rl.DrawTriangle(
		rl.NewVector2(float32(tip[0]), float32(tip[1])),
		rl.NewVector2(float32(w1[0]), float32(w1[1])),
		rl.NewVector2(float32(w2[0]), float32(w2[1])),
		colAim)
}

type button struct {
	label  string
	action func()
}

func (a *App) buttons() []button {
	pauseLabel := "pause"
	if a.World.Paused {
		pauseLabel = "resume"
	}
	return []button{
		{"solar system", a.LoadSolarSystemScenario},
		{pauseLabel, a.TogglePause},
		{"clear", a.ClearAllBodies},
		{"reset view", a.ResetView},
		{"slower", func() { a.SetTimeSpeed(a.World.TimeSpeed - speedStep) }},
		{"faster", func() { a.SetTimeSpeed(a.World.TimeSpeed + speedStep) }},
		{"type: " + a.Input.Selected.String(), func() { a.cycleType(1) }},
	}
}

func (a *App) buttonRects() []rl.Rectangle {
	rects := make([]rl.Rectangle, 0, 8)
	x := float32(btnPad)
	for _, b := range a.buttons() {
		w := float32(rl.MeasureText(b.label, 10)) + 2*btnPad
		rects = append(rects, rl.NewRectangle(x, btnPad, w, btnH))
		x += w + btnPad
	}
	return rects
}

func (a *App) drawShell() {
	btns := a.buttons()
	rects := a.buttonRects()

	var right float32
	for i, b := range btns {
		rec := rects[i]
		rl.DrawRectangleRec(rec, colPanel)
		rl.DrawRectangleLinesEx(rec, 1, colBorder)
		rl.DrawText(b.label, int32(rec.X)+btnPad, int32(rec.Y)+(btnH-10)/2, 10, colText)
		right = rec.X + rec.Width
	}
	a.uiRect = rl.NewRectangle(0, 0, right+btnPad, btnH+2*btnPad)

	stats := a.World.Stats()
	overlay := fmt.Sprintf("bodies %d   speed %.1fx   zoom %.2fx", stats.BodyCount, stats.TimeSpeed, a.Cam.Zoom)
	if stats.Paused {
		overlay += "   PAUSED"
	}
	rl.DrawText(overlay, btnPad, int32(a.Cam.ScreenH)-20, 10, colTextDim)

	if drag, ok := a.Input.Drag(); ok {
		v := a.aimVelocity(drag)
		rl.DrawText(fmt.Sprintf("v = %.1f", v), int32(drag.To[0])+12, int32(drag.To[1]), 10, colAim)
	}
}

func (a *App) clickButtons(mouse rl.Vector2) {
	rects := a.buttonRects()
	for i, b := range a.buttons() {
		if rl.CheckCollisionPointRec(mouse, rects[i]) {
			b.action()
			return
		}
	}
}
