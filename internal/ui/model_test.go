package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/clickmate/internal/backend"
	"github.com/bnema/clickmate/internal/engine"
)

// stubBackend is a minimal backend for shell tests.
type stubBackend struct {
	pos backend.Point
}

func (s *stubBackend) Position() backend.Point                 { return s.pos }
func (s *stubBackend) ButtonSnapshot() backend.Snapshot        { return backend.Snapshot{} }
func (s *stubBackend) IsPressed(backend.Button) bool           { return false }
func (s *stubBackend) MoveTo(p backend.Point) error            { s.pos = p; return nil }
func (s *stubBackend) Click(backend.Button) error              { return nil }
func (s *stubBackend) ScreenBounds() (int, int, error)         { return 800, 600, nil }
func (s *stubBackend) Close() error                            { return nil }

func newTestModel() *Model {
	eng := engine.New(&stubBackend{pos: backend.Point{X: 5, Y: 6}})
	return NewModel(eng, engine.NewCapture(eng), engine.NewScheduler(eng), Options{
		Target:        backend.Point{X: 100, Y: 100},
		Button:        backend.ButtonPrimary,
		CaptureButton: backend.ButtonTertiary,
		Cadence:       time.Second,
		Count:         10,
	})
}

func TestModelDefaultsPollIntervals(t *testing.T) {
	m := newTestModel()
	assert.Equal(t, 16*time.Millisecond, m.opts.ActiveInterval)
	assert.Equal(t, 100*time.Millisecond, m.opts.IdleInterval)
}

func TestModelCaptureKeyArmsSession(t *testing.T) {
	m := newTestModel()

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	assert.True(t, m.cap.Active())
	assert.Equal(t, backend.ButtonTertiary, m.cap.Watched())

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.cap.Active())
}

func TestModelTargetFromPointer(t *testing.T) {
	m := newTestModel()

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	assert.Equal(t, backend.Point{X: 5, Y: 6}, m.opts.Target)
}

func TestModelQuitStopsJobAndCapture(t *testing.T) {
	m := newTestModel()
	require.True(t, m.cap.Start(backend.ButtonTertiary))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.False(t, m.cap.Active())
	assert.False(t, m.sched.Counters().Running())
}

func TestModelViewShowsState(t *testing.T) {
	m := newTestModel()
	m.poll()

	view := m.View()
	assert.Contains(t, view, "clickmate")
	assert.Contains(t, view, "(100, 100)")
	assert.Contains(t, view, "idle")

	// Debug snapshot line only renders when toggled on.
	assert.NotContains(t, view, "snapshot")
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	assert.Contains(t, m.View(), "snapshot")
}

func TestFormatSnapshot(t *testing.T) {
	var s backend.Snapshot
	s[1] = true
	got := formatSnapshot(s)
	assert.True(t, strings.HasPrefix(got, "[0 1 0"))
}
