// Package tui is the terminal front end: a live, headless view of the
// simulation with conservation graphs. It shares the engine with the GUI
// but takes no pointer input; it is a monitor, not an editor.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/orbitlab/internal/engine"
	"github.com/san-kum/orbitlab/internal/scenario"
	"github.com/san-kum/orbitlab/internal/view"
)

const (
	canvasW = 72
	canvasH = 20

	// worldSpan is how many world units the canvas shows edge to edge.
	// At 144 sub-pixels across this frames at zoom 0.1, the minimum the
	// camera allows.
	worldSpan = 1440

	historyCapacity = 600
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	canvasStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

type Model struct {
	world  *engine.World
	cam    *view.Camera
	canvas *Canvas
	preset *scenario.Preset

	frames     int
	energyHist []float64
	countHist  []float64
}

func NewModel(p *scenario.Preset) *Model {
	w := engine.NewWorld()
	cam := view.New(canvasW*2, canvasH*4)
	m := &Model{
		world:      w,
		cam:        cam,
		canvas:     NewCanvas(canvasW, canvasH),
		preset:     p,
		energyHist: make([]float64, 0, historyCapacity),
		countHist:  make([]float64, 0, historyCapacity),
	}
	m.load()
	return m
}

func (m *Model) load() {
	m.preset.Apply(m.world, m.cam)
	// The preset frames itself for a pixel canvas; reframe for braille
	// sub-pixels. Reset clamps the zoom like every other camera mutation.
	m.cam.Reset(m.preset.Center, float64(canvasW*2)/worldSpan)
	m.frames = 0
	m.energyHist = m.energyHist[:0]
	m.countHist = m.countHist[:0]
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.world.TogglePause()
		case "+", "=":
			m.world.SetTimeSpeed(m.world.TimeSpeed + 0.1)
		case "-", "_":
			m.world.SetTimeSpeed(m.world.TimeSpeed - 0.1)
		case "r":
			m.load()
		}
	case TickMsg:
		m.world.Frame()
		if !m.world.Paused {
			m.frames++
			m.energyHist = appendCapped(m.energyHist, m.world.Energy())
			m.countHist = appendCapped(m.countHist, float64(m.world.Count()))
		}
		return m, tick()
	}
	return m, nil
}

func appendCapped(hist []float64, v float64) []float64 {
	hist = append(hist, v)
	if len(hist) > historyCapacity {
		hist = hist[1:]
	}
	return hist
}

func (m *Model) View() string {
	m.canvas.PlotBodies(m.world.Bodies, m.cam)

	var s strings.Builder
	s.WriteString(headerStyle.Render("ORBITLAB "+strings.ToUpper(m.preset.Name)) + "\n")
	if m.world.Paused {
		s.WriteString(pausedStyle.Render("PAUSED") + "\n")
	}
	s.WriteString(canvasStyle.Render(m.canvas.String()) + "\n")

	px, py := m.world.Momentum()
	s.WriteString(labelStyle.Render("Bodies") + valueStyle.Render(fmt.Sprintf("%d", m.world.Count())) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%.1fx", m.world.TimeSpeed)) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.1f", m.world.Energy())) + "\n")
	s.WriteString(labelStyle.Render("Momentum") + valueStyle.Render(fmt.Sprintf("(%.1f, %.1f)", px, py)) + "\n")

	if len(m.energyHist) > 1 {
		chart := asciigraph.Plot(m.energyHist, asciigraph.Height(4), asciigraph.Width(40), asciigraph.Caption("total energy"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if len(m.countHist) > 1 {
		chart := asciigraph.Plot(m.countHist, asciigraph.Height(3), asciigraph.Width(40), asciigraph.Caption("body count"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("space pause | +/- speed | r reload | q quit"))
	return s.String()
}

// Run starts the live terminal view and blocks until quit.
func Run(p *scenario.Preset) error {
	prog := tea.NewProgram(NewModel(p))
	_, err := prog.Run()
	return err
}
