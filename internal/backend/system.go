package backend

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

// injector issues pointer warps and clicks. Separated from the query side
// so platforms with a better injection path (uinput on Linux) can swap it
// without touching polling.
type injector interface {
	MoveTo(p Point) error
	Click(b Button) error
	Close() error
}

// system is the concrete Backend: robotgo for position and display
// queries, a platform state source for button polling, and a pluggable
// injector for warps and clicks.
type system struct {
	src stateSource
	inj injector
}

// New constructs the backend for this platform. It fails with
// ErrUnavailable when no display session can be reached; that is the only
// fatal initialization path the engine has.
func New() (Backend, error) {
	w, h := robotgo.GetScreenSize()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: no display session", ErrUnavailable)
	}

	src, err := newStateSource()
	if err != nil {
		return nil, fmt.Errorf("%w: button state source: %v", ErrUnavailable, err)
	}

	return &system{src: src, inj: newInjector()}, nil
}

func (s *system) Position() Point {
	x, y := robotgo.Location()
	return Point{X: x, Y: y}
}

func (s *system) ButtonSnapshot() Snapshot {
	return s.src.Snapshot()
}

func (s *system) IsPressed(b Button) bool {
	return s.src.Snapshot().Pressed(s.src.buttonIndex(b))
}

func (s *system) MoveTo(p Point) error {
	return s.inj.MoveTo(p)
}

func (s *system) Click(b Button) error {
	return s.inj.Click(b)
}

func (s *system) ScreenBounds() (int, int, error) {
	w, h := robotgo.GetScreenSize()
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: screen size query failed", ErrUnavailable)
	}
	return w, h, nil
}

func (s *system) Close() error {
	err := s.inj.Close()
	if e := s.src.Close(); e != nil && err == nil {
		err = e
	}
	return err
}

// robotgoInjector is the portable injection path.
type robotgoInjector struct{}

func (robotgoInjector) MoveTo(p Point) error {
	robotgo.Move(p.X, p.Y)
	return nil
}

func (robotgoInjector) Click(b Button) error {
	robotgo.Click(robotgoButton(b), false)
	return nil
}

func (robotgoInjector) Close() error {
	return nil
}

func robotgoButton(b Button) string {
	switch b {
	case ButtonSecondary:
		return "right"
	case ButtonTertiary:
		return "center"
	default:
		return "left"
	}
}
