package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/poetics22/glowjack-receiver/internal/canvas"
	"github.com/poetics22/glowjack-receiver/internal/protocol"
	"github.com/poetics22/glowjack-receiver/internal/scheduler"
	"github.com/poetics22/glowjack-receiver/internal/source"
)

// shared holds state shared between Bubble Tea model copies. Because the
// framework uses value receivers, pointer fields keep every copy looking at
// the same canvas, scheduler, and router.
type shared struct {
	canvas *canvas.Canvas
	sched  *scheduler.Scheduler
	router *protocol.Router
}

// Model is the root Bubble Tea model: it drives the scheduler at the frame
// cadence, feeds inbound lines to the router, and composes the frame plus a
// status line.
type Model struct {
	shared *shared

	width  int
	height int
	fps    int

	frame    string
	quitting bool
	keys     keyMap
}

// New wires the host model. fps is the tick cadence; the render clock still
// advances by its own fixed step per tick.
func New(cv *canvas.Canvas, sched *scheduler.Scheduler, router *protocol.Router, fps int) Model {
	if fps < 1 {
		fps = 30
	}
	return Model{
		shared: &shared{canvas: cv, sched: sched, router: router},
		fps:    fps,
		keys:   defaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	m.shared.sched.Start()
	return tickCmd(m.fps)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Reserve the bottom row for status; the canvas re-reads its
		// dimensions on the next tick.
		rows := msg.Height - 1
		if rows < 1 {
			rows = 1
		}
		m.shared.canvas.Resize(msg.Width, rows)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case source.MessageMsg:
		m.shared.router.Handle(msg.Raw, time.Now())
		return m, nil

	case tickMsg:
		m.shared.sched.Tick(time.Time(msg))
		m.frame = m.shared.canvas.Render()
		return m, tickCmd(m.fps)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.shared.sched.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		if m.shared.sched.Running() {
			m.shared.sched.Stop()
		} else {
			m.shared.sched.Start()
		}
		return m, nil

	case key.Matches(msg, m.keys.Variant):
		// Keys "1".."4" map to variants 0..3.
		m.shared.sched.SetActive(int(msg.String()[0] - '1'))
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "glowjack: waiting for terminal size..."
	}
	return m.frame + "\n" + m.statusLine()
}
