package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/TurbulentGoat/orbitals/internal/analysis"
	"github.com/TurbulentGoat/orbitals/internal/engine"
	"github.com/TurbulentGoat/orbitals/internal/isosurface"
	"github.com/TurbulentGoat/orbitals/internal/storage"
	"github.com/TurbulentGoat/orbitals/internal/viz"
)

const (
	width         = 80
	height        = 28
	maxShell      = 16
	radialSamples = 120
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type TickMsg time.Time

type computeDoneMsg struct {
	gen int
	res *engine.Result
	err error
}

// selectable fields, cycled with tab.
var fields = []string{"n", "l", "m", "quality"}

// Model is the interactive orbital viewer. Recomputation runs off the
// update loop; a generation counter discards results that were
// superseded by further key presses before they finished.
type Model struct {
	eng   *engine.Engine
	store *storage.Store

	req engine.Request
	res *engine.Result
	err error

	canvas *viz.Canvas
	camera *viz.Camera

	gen        int
	cancel     context.CancelFunc
	pending    tea.Cmd
	computing  bool
	frame      int
	selected   int
	autoRotate bool
	showHelp   bool
	status     string

	radial []float64
}

func NewModel(eng *engine.Engine, store *storage.Store, req engine.Request) Model {
	m := Model{
		eng:        eng,
		store:      store,
		req:        req,
		canvas:     viz.NewCanvas(width, height),
		camera:     viz.NewCamera(),
		autoRotate: true,
	}
	m.pending = m.recompute()
	return m
}

// Run starts the viewer in the alternate screen.
func Run(eng *engine.Engine, store *storage.Store, req engine.Request) error {
	p := tea.NewProgram(NewModel(eng, store, req), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.pending, tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// recompute cancels any in-flight computation and returns a command
// that computes the current request.
func (m *Model) recompute() tea.Cmd {
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.gen++
	m.computing = true
	m.status = ""

	gen := m.gen
	req := m.req
	eng := m.eng
	return func() tea.Msg {
		res, err := eng.Compute(ctx, req)
		return computeDoneMsg{gen: gen, res: res, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case computeDoneMsg:
		if msg.gen != m.gen {
			return m, nil // superseded
		}
		m.computing = false
		m.err = msg.err
		if msg.err == nil {
			m.res = msg.res
			_, ps := analysis.RadialDistribution(m.res.State.N, m.res.State.L, m.res.Extent, radialSamples)
			m.radial = ps
		}
		return m, nil

	case TickMsg:
		m.frame++
		if m.autoRotate {
			m.camera.RotateY(0.015)
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case "tab":
		m.selected = (m.selected + 1) % len(fields)
	case "up", "k":
		return m.adjust(1)
	case "down", "j":
		return m.adjust(-1)

	case "p":
		if m.req.Rep == engine.PointCloud {
			m.req.Rep = engine.TriangleMesh
		} else {
			m.req.Rep = engine.PointCloud
		}
		return m, m.recompute()

	case "i":
		pol := m.policy()
		if pol.Mode == isosurface.MaxFraction {
			pol.Mode = isosurface.ProbabilityMass
		} else {
			pol.Mode = isosurface.MaxFraction
		}
		m.req.Iso = pol
		return m, m.recompute()

	case "[":
		return m.scaleIsolevel(0.5)
	case "]":
		return m.scaleIsolevel(2)

	case "w":
		m.saveRun()

	case "a":
		m.autoRotate = !m.autoRotate
	case "t":
		names := viz.ThemeNames()
		for i, name := range names {
			if name == viz.CurrentTheme.Name {
				viz.SetTheme(names[(i+1)%len(names)])
				break
			}
		}
	case "?":
		m.showHelp = !m.showHelp

	case "x":
		m.camera.RotateX(0.1)
	case "X":
		m.camera.RotateX(-0.1)
	case "y":
		m.camera.RotateY(0.1)
	case "Y":
		m.camera.RotateY(-0.1)
	case "z":
		m.camera.RotateZ(0.1)
	case "Z":
		m.camera.RotateZ(-0.1)
	case "+", "=":
		m.camera.ZoomIn()
	case "-", "_":
		m.camera.ZoomOut()
	}
	return m, nil
}

// policy returns the request's isolevel policy with the zero value
// filled in, so toggles start from the defaults.
func (m *Model) policy() isosurface.Policy {
	pol := m.req.Iso
	if pol.Fraction == 0 && pol.Mass == 0 {
		pol = isosurface.DefaultPolicy()
	}
	return pol
}

func (m Model) adjust(dir int) (tea.Model, tea.Cmd) {
	switch fields[m.selected] {
	case "n":
		m.req.N = clamp(m.req.N+dir, 1, maxShell)
	case "l":
		m.req.L = clamp(m.req.L+dir, 0, m.req.N-1)
	case "m":
		m.req.M = clamp(m.req.M+dir, -m.req.L, m.req.L)
	case "quality":
		q := m.req.Quality
		if q == 0 {
			q = engine.DefaultQuality
		}
		m.req.Quality = clamp(q+dir, 1, 5)
	}
	// Changing n can orphan l and m; changing l can orphan m.
	m.req.L = clamp(m.req.L, 0, m.req.N-1)
	m.req.M = clamp(m.req.M, -m.req.L, m.req.L)

	return m, m.recompute()
}

func (m Model) scaleIsolevel(factor float64) (tea.Model, tea.Cmd) {
	pol := m.policy()
	pol.Fraction = clampF(pol.Fraction*factor, 1e-6, 1)
	if factor > 1 {
		pol.Mass = clampF(pol.Mass+0.02, 0.5, 0.999)
	} else {
		pol.Mass = clampF(pol.Mass-0.02, 0.5, 0.999)
	}
	m.req.Iso = pol
	return m, m.recompute()
}

func (m *Model) saveRun() {
	if m.res == nil || m.store == nil {
		return
	}
	id, err := m.store.Save(m.res)
	if err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	m.status = "saved " + id
}

func (m Model) View() string {
	m.canvas.Clear()
	if m.res != nil {
		viz.RenderAxes(m.canvas, m.camera)
		if m.res.Rep == engine.TriangleMesh && m.res.Mesh != nil {
			viz.RenderMesh(m.canvas, m.res.Mesh, m.camera, m.res.Extent)
		} else if m.res.Cloud != nil {
			viz.RenderCloud(m.canvas, m.res.Cloud, m.camera, m.res.Extent)
		}
	}
	canvasView := canvasStyle.Render(m.canvas.Styled(viz.PositiveStyle(), viz.NegativeStyle()))

	var s strings.Builder
	title := "ORBITAL VIEWER"
	if m.res != nil {
		title = strings.ToUpper(m.res.Label)
	}
	s.WriteString(headerStyle.Render(title) + "\n")

	if m.computing {
		s.WriteString(spinnerFrames[m.frame%len(spinnerFrames)] + " computing...\n\n")
	} else if m.err != nil {
		s.WriteString(errorStyle.Render(truncate(m.err.Error(), 40)) + "\n\n")
	} else {
		s.WriteString("ready\n\n")
	}

	s.WriteString("STATE\n")
	quality := m.req.Quality
	if quality == 0 {
		quality = engine.DefaultQuality
	}
	vals := []int{m.req.N, m.req.L, m.req.M, quality}
	for i, f := range fields {
		line := fmt.Sprintf("%-8s %d", f, vals[i])
		if i == m.selected {
			s.WriteString(activeStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	if m.res != nil {
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Grid") + valueStyle.Render(fmt.Sprintf("%d^3", m.res.K)) + "\n")
		s.WriteString(labelStyle.Render("Extent") + valueStyle.Render(fmt.Sprintf("%.1f a0", m.res.Extent)) + "\n")
		s.WriteString(labelStyle.Render("Isolevel") + valueStyle.Render(fmt.Sprintf("%.3e", m.res.Isolevel)) + "\n")
		s.WriteString(labelStyle.Render("Surface pts") + valueStyle.Render(fmt.Sprintf("%d", m.res.Stats.SurfacePoints)) + "\n")
		s.WriteString(labelStyle.Render("Mass in box") + valueStyle.Render(fmt.Sprintf("%.4f", m.res.Stats.SampledMass)) + "\n")
		s.WriteString(labelStyle.Render("Compute") + valueStyle.Render(m.res.Elapsed.Round(time.Millisecond).String()) + "\n")
	}

	if len(m.radial) > 1 {
		chart := asciigraph.Plot(m.radial, asciigraph.Height(5), asciigraph.Width(32), asciigraph.Caption("P(r)"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	if m.status != "" {
		s.WriteString("\n" + valueStyle.Render(m.status) + "\n")
	}

	s.WriteString(helpStyle.Render("─────────────────────\nTab:Field ↑↓:Adjust P:Rep I:Iso\n[ ]:Level W:Save T:Theme Q:Quit"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔═══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS           ║
╠═══════════════════════════════════════╣
║  Tab      - Cycle n / l / m / quality ║
║  Up/K     - Increase selected field   ║
║  Down/J   - Decrease selected field   ║
║  P        - Toggle points / mesh      ║
║  I        - Toggle isolevel mode      ║
║  [ ]      - Lower / raise isolevel    ║
║  X Y Z    - Rotate (shift reverses)   ║
║  + -      - Zoom in / out             ║
║  A        - Toggle auto-rotate        ║
║  W        - Save run to data dir      ║
║  T        - Cycle themes              ║
║  ?        - Toggle this help          ║
╚═══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
