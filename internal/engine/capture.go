package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/clickmate/internal/backend"
	"github.com/bnema/clickmate/internal/logger"
)

// ErrCaptureAborted reports that a capture session could not complete
// because the underlying poll failed. The session has already reset to
// idle when this is returned.
var ErrCaptureAborted = errors.New("capture aborted")

// Capture converts a press-then-release of a watched button into a single
// committed screen coordinate. The shell arms it, then drives it by
// calling Tick once per frame; the machine itself never polls on its own.
//
// Completion is a falling edge (pressed on the previous tick, released on
// the current one) rather than a plain press. A button already held when
// the session starts therefore cannot spuriously complete it, and the
// watched button is kept distinct from the button driving the shell so the
// gesture does not fight ordinary UI clicks.
type Capture struct {
	eng *Engine

	mu      sync.Mutex
	active  bool
	watched backend.Button
	prev    bool
}

// NewCapture creates a capture machine polling through eng.
func NewCapture(eng *Engine) *Capture {
	return &Capture{eng: eng}
}

// Start arms a session watching b. Starting while a session is active is a
// no-op and returns false; the existing session keeps its watched button.
func (c *Capture) Start(b backend.Button) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active {
		logger.Debug("capture already active, start request dropped")
		return false
	}

	c.active = true
	c.watched = b
	// Assume released regardless of the button's true state, so a button
	// held from before the session does not complete it on the first poll.
	c.prev = false

	logger.Info("capture armed", "button", b)
	return true
}

// Cancel disarms the session, discarding any partial edge state.
func (c *Capture) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.active {
		return
	}
	c.active = false
	logger.Info("capture cancelled")
}

// Active reports whether a session is armed.
func (c *Capture) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Watched returns the button the current session watches.
func (c *Capture) Watched() backend.Button {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.watched
}

// Tick advances the machine by one poll. When the falling edge of the
// watched button is observed, the pointer position sampled at this tick is
// committed, the session disarms, and done is true.
//
// Lock contention on the backend is transient: the tick is skipped and the
// edge state left untouched. Any other poll failure aborts the session to
// idle and returns an error wrapping ErrCaptureAborted; a coordinate
// capture cannot be partially successful.
func (c *Capture) Tick() (pos backend.Point, done bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return backend.Point{}, false, nil
	}

	pressed, cur, err := c.eng.PollButton(c.watched)
	if err != nil {
		if errors.Is(err, ErrLockContention) {
			return backend.Point{}, false, nil
		}
		c.active = false
		return backend.Point{}, false, fmt.Errorf("%w: %v", ErrCaptureAborted, err)
	}

	if c.prev && !pressed {
		c.active = false
		logger.Info("capture committed", "pos", cur)
		return cur, true, nil
	}

	c.prev = pressed
	return backend.Point{}, false, nil
}
