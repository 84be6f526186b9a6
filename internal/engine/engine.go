// Package engine owns the mouse automation core: a serialized wrapper over
// the input backend, the coordinate capture state machine, and the
// auto-click scheduler.
package engine

import (
	"errors"
	"sync"
	"time"

	"github.com/bnema/clickmate/internal/backend"
)

// ErrLockContention reports that a non-blocking poll lost the race for the
// backend lock. Transient: the caller skips the tick and tries again on the
// next one.
var ErrLockContention = errors.New("backend busy")

// Engine serializes all access to a single backend handle. It performs no
// retries; a backend failure surfaces to the caller unchanged so the caller
// decides whether to skip, abort, or report.
type Engine struct {
	mu     sync.Mutex
	be     backend.Backend
	closed bool
}

// New wraps a backend. The engine takes ownership; Close releases it.
func New(be backend.Backend) *Engine {
	return &Engine{be: be}
}

// Position returns the current pointer location.
func (e *Engine) Position() backend.Point {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return backend.Point{}
	}
	return e.be.Position()
}

// ButtonSnapshot returns the raw pressed-flag set for this instant.
func (e *Engine) ButtonSnapshot() backend.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return backend.Snapshot{}
	}
	return e.be.ButtonSnapshot()
}

// IsPressed reports whether one button is currently held.
func (e *Engine) IsPressed(b backend.Button) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return false
	}
	return e.be.IsPressed(b)
}

// PollButton samples one button's state and the pointer position under a
// single lock acquisition, so both belong to the same poll instant. It
// never blocks: if a running job holds the backend, it returns
// ErrLockContention and the caller skips this tick.
func (e *Engine) PollButton(b backend.Button) (pressed bool, pos backend.Point, err error) {
	if !e.mu.TryLock() {
		return false, backend.Point{}, ErrLockContention
	}
	defer e.mu.Unlock()
	if e.closed {
		return false, backend.Point{}, backend.ErrUnavailable
	}
	return e.be.IsPressed(b), e.be.Position(), nil
}

// MoveTo warps the pointer to an absolute position.
func (e *Engine) MoveTo(p backend.Point) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return backend.ErrUnavailable
	}
	return e.be.MoveTo(p)
}

// Click issues a press+release pair at the pointer's current location.
func (e *Engine) Click(b backend.Button) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return backend.ErrUnavailable
	}
	return e.be.Click(b)
}

// MoveClick warps to p, waits for the OS to register the warp, then
// clicks. The settle wait happens between two lock acquisitions; some
// backends drop a click issued in the same instant as a warp, and no lock
// may be held across a sleep.
func (e *Engine) MoveClick(p backend.Point, b backend.Button, settle time.Duration) error {
	if err := e.MoveTo(p); err != nil {
		return err
	}
	if settle > 0 {
		time.Sleep(settle)
	}
	return e.Click(b)
}

// ScreenBounds returns the primary display extents.
func (e *Engine) ScreenBounds() (int, int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return 0, 0, backend.ErrUnavailable
	}
	return e.be.ScreenBounds()
}

// Close releases the backend. Queries and commands after Close report
// backend.ErrUnavailable.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	return e.be.Close()
}
