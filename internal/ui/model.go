package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/clickmate/internal/backend"
	"github.com/bnema/clickmate/internal/engine"
)

// tickMsg drives one engine poll per frame.
type tickMsg time.Time

// Options carries the shell's initial job parameters and poll intervals.
type Options struct {
	Target        backend.Point
	Button        backend.Button
	CaptureButton backend.Button
	Cadence       time.Duration
	Settle        time.Duration
	Count         uint

	// Poll intervals: fast while a capture session is armed so the edge
	// is not missed, relaxed otherwise.
	ActiveInterval time.Duration
	IdleInterval   time.Duration
}

// Model is the bubbletea model for the interactive shell.
type Model struct {
	eng   *engine.Engine
	cap   *engine.Capture
	sched *engine.Scheduler
	opts  Options

	spinner spinner.Model

	pos       backend.Point
	snap      backend.Snapshot
	width     int
	height    int
	message   string
	msgStyle  lipgloss.Style
	showDebug bool
}

// NewModel builds the shell around an already-initialized engine.
func NewModel(eng *engine.Engine, cap *engine.Capture, sched *engine.Scheduler, opts Options) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	if opts.ActiveInterval <= 0 {
		opts.ActiveInterval = 16 * time.Millisecond
	}
	if opts.IdleInterval <= 0 {
		opts.IdleInterval = 100 * time.Millisecond
	}

	return &Model{
		eng:      eng,
		cap:      cap,
		sched:    sched,
		opts:     opts,
		spinner:  s,
		message:  "ready",
		msgStyle: valueStyle,
	}
}

func (m *Model) tick() tea.Cmd {
	interval := m.opts.IdleInterval
	if m.cap.Active() {
		interval = m.opts.ActiveInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the poll loop.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.tick())
}

// Update handles key presses and per-frame polls.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		m.poll()
		return m, m.tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// poll is the per-frame hook: advances the capture machine and refreshes
// the displayed engine state.
func (m *Model) poll() {
	if pos, done, err := m.cap.Tick(); err != nil {
		m.setMessage(errorStyle, fmt.Sprintf("capture failed: %v", err))
	} else if done {
		m.opts.Target = pos
		m.setMessage(activeStyle, fmt.Sprintf("captured %s", pos))
	}

	m.pos = m.eng.Position()
	m.snap = m.eng.ButtonSnapshot()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.sched.Stop()
		m.cap.Cancel()
		return m, tea.Quit

	case "c":
		if m.cap.Start(m.opts.CaptureButton) {
			m.setMessage(warnStyle, fmt.Sprintf(
				"capture armed: click %s anywhere on screen", m.opts.CaptureButton))
		}

	case "esc":
		if m.cap.Active() {
			m.cap.Cancel()
			m.setMessage(valueStyle, "capture cancelled")
		}

	case "s":
		if m.sched.ClickOnce(m.opts.Target, m.opts.Button) {
			m.setMessage(valueStyle, fmt.Sprintf("single %s click at %s", m.opts.Button, m.opts.Target))
		} else {
			m.setMessage(warnStyle, "a job is already running")
		}

	case "a":
		started := m.sched.Start(engine.Job{
			Target:  m.opts.Target,
			Button:  m.opts.Button,
			Cadence: m.opts.Cadence,
			Settle:  m.opts.Settle,
			Count:   m.opts.Count,
		})
		if started {
			m.setMessage(activeStyle, fmt.Sprintf(
				"auto-clicking %s at %s", m.opts.Button, m.opts.Target))
		} else {
			m.setMessage(warnStyle, "a job is already running")
		}

	case "x":
		if m.sched.Counters().Running() {
			m.sched.Stop()
			m.setMessage(valueStyle, "stop requested")
		}

	case "r":
		m.sched.Counters().ResetCompleted()
		m.setMessage(valueStyle, "counter reset")

	case "d":
		m.showDebug = !m.showDebug

	case "p":
		m.opts.Target = m.eng.Position()
		m.setMessage(valueStyle, fmt.Sprintf("target set to %s", m.opts.Target))
	}

	return m, nil
}

func (m *Model) setMessage(style lipgloss.Style, msg string) {
	m.msgStyle = style
	m.message = msg
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

// View renders the current engine state.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("clickmate"))
	b.WriteString("\n")

	b.WriteString(row("target", m.opts.Target.String()))
	b.WriteString("\n")
	b.WriteString(row("button", m.opts.Button.String()))
	b.WriteString("\n")
	b.WriteString(row("cadence", m.opts.Cadence.String()))
	b.WriteString("\n")
	b.WriteString(row("count", fmt.Sprintf("%d", m.opts.Count)))
	b.WriteString("\n\n")

	b.WriteString(row("pointer", m.pos.String()))
	b.WriteString("\n")
	b.WriteString(row("clicks", fmt.Sprintf("%d", m.sched.Counters().Completed())))
	b.WriteString("\n")

	switch {
	case m.sched.Counters().Running():
		b.WriteString(row("state", ""))
		b.WriteString(m.spinner.View())
		b.WriteString(activeStyle.Render(" clicking"))
	case m.cap.Active():
		b.WriteString(row("state", ""))
		b.WriteString(m.spinner.View())
		b.WriteString(warnStyle.Render(fmt.Sprintf(" waiting for %s click", m.cap.Watched())))
	default:
		b.WriteString(row("state", "idle"))
	}
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("status"))
	b.WriteString(m.msgStyle.Render(m.message))
	b.WriteString("\n")

	if m.showDebug {
		b.WriteString("\n")
		b.WriteString(row("snapshot", formatSnapshot(m.snap)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(
		"a start · x stop · s single click · c capture · esc cancel\n" +
			"p target from pointer · r reset counter · d debug · q quit"))

	return b.String()
}

func formatSnapshot(s backend.Snapshot) string {
	parts := make([]string, len(s))
	for i, pressed := range s {
		if pressed {
			parts[i] = "1"
		} else {
			parts[i] = "0"
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
