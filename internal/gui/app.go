// Package gui is the raylib front end: the render loop that drives the
// physics, the pointer interaction, and the on-screen shell controls.
package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/orbitlab/internal/body"
	"github.com/san-kum/orbitlab/internal/engine"
	"github.com/san-kum/orbitlab/internal/input"
	"github.com/san-kum/orbitlab/internal/scenario"
	"github.com/san-kum/orbitlab/internal/view"
)

const (
	defaultWidth  = 1200
	defaultHeight = 700

	speedStep = 0.1
)

// Theme
var (
	colBg      = rl.NewColor(8, 8, 16, 255)
	colText    = rl.NewColor(200, 200, 210, 255)
	colTextDim = rl.NewColor(110, 110, 125, 255)
	colPanel   = rl.NewColor(20, 20, 32, 230)
	colBorder  = rl.NewColor(60, 60, 80, 255)
	colAim     = rl.NewColor(240, 240, 255, 200)
)

type App struct {
	World        *engine.World
	Cam          *view.Camera
	Input        *input.Controller
	ScenarioName string
	uiRect       rl.Rectangle
}

func initWindow() {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(defaultWidth, defaultHeight, "orbitlab")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func NewApp() *App {
	w := engine.NewWorld()
	cam := view.New(defaultWidth, defaultHeight)
	return &App{
		World: w,
		Cam:   cam,
		Input: input.New(w, cam),
	}
}

// Run opens the window and blocks in the update/draw loop until it is
// closed. The loop is the sole driver of physics advancement; closing the
// window tears everything down, so no callback outlives the surface.
func Run(preset *scenario.Preset) {
	initWindow()
	defer rl.CloseWindow()

	app := NewApp()
	if preset == nil {
		preset = scenario.SolarSystem(defaultWidth, defaultHeight)
	}
	app.LoadPreset(preset)

	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}
}

func (a *App) LoadPreset(p *scenario.Preset) {
	p.Apply(a.World, a.Cam)
	a.ScenarioName = p.Name
}

// Commands consumed from the shell surface (buttons and keys).

func (a *App) LoadSolarSystemScenario() {
	a.LoadPreset(scenario.SolarSystem(a.Cam.ScreenW, a.Cam.ScreenH))
}

func (a *App) TogglePause() { a.World.TogglePause() }

func (a *App) ClearAllBodies() { a.World.Clear() }

func (a *App) ResetView() {
	a.Cam.Reset(mgl64.Vec2{a.Cam.ScreenW / 2, a.Cam.ScreenH / 2}, 1)
}

func (a *App) SetTimeSpeed(v float64) { a.World.SetTimeSpeed(v) }

func (a *App) cycleType(dir int) {
	cats := body.Categories()
	idx := int(a.Input.Selected) + dir
	if idx < 0 {
		idx = len(cats) - 1
	}
	a.Input.Selected = cats[idx%len(cats)]
}

func (a *App) Update() {
	if rl.IsWindowResized() {
		a.Cam.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	}

	a.handleKeys()

	mouse := rl.GetMousePosition()
	screen := mgl64.Vec2{float64(mouse.X), float64(mouse.Y)}
	overUI := rl.CheckCollisionPointRec(mouse, a.uiRect)

	if !rl.IsCursorOnScreen() {
		a.Input.Leave()
	} else {
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !overUI {
			a.Input.PrimaryDown(screen)
		}
		if rl.IsMouseButtonPressed(rl.MouseRightButton) && !overUI {
			a.Input.SecondaryDown(screen)
		}
		a.Input.Move(screen)
		if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
			if overUI {
				a.clickButtons(mouse)
			}
			a.releasePrimary(screen, overUI)
		}
		if rl.IsMouseButtonReleased(rl.MouseRightButton) {
			a.Input.SecondaryUp()
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			a.Input.Wheel(float64(wheel))
		}
	}

	a.World.Frame()
}

// releasePrimary ends a primary-button press. A drag released over the
// shell surface was aimed at a button, not at the canvas, so the
// candidate is discarded instead of committed.
func (a *App) releasePrimary(screen mgl64.Vec2, overUI bool) {
	if overUI {
		if _, ok := a.Input.Candidate(); ok {
			a.Input.Leave()
		}
		return
	}
	a.Input.PrimaryUp(screen)
}

func (a *App) handleKeys() {
	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		a.TogglePause()
	case rl.IsKeyPressed(rl.KeyC):
		a.ClearAllBodies()
	case rl.IsKeyPressed(rl.KeyR):
		a.ResetView()
	case rl.IsKeyPressed(rl.KeyS):
		a.LoadSolarSystemScenario()
	case rl.IsKeyPressed(rl.KeyTab):
		a.cycleType(1)
	case rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd):
		a.SetTimeSpeed(a.World.TimeSpeed + speedStep)
	case rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract):
		a.SetTimeSpeed(a.World.TimeSpeed - speedStep)
	}

	for i, key := range []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive, rl.KeySix} {
		if rl.IsKeyPressed(key) {
			a.Input.Selected = body.Categories()[i]
		}
	}
}

// aimVelocity mirrors the input controller's release mapping, for the
// overlay's velocity preview while aiming.
func (a *App) aimVelocity(d input.Drag) float64 {
	dx := d.To[0] - d.From[0]
	dy := d.To[1] - d.From[1]
	return math.Hypot(dx, dy) * 0.02 / a.Cam.Zoom
}
