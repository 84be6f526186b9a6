//go:build linux

package backend

import (
	"fmt"

	"github.com/ThomasT75/uinput"
	"github.com/go-vgo/robotgo"

	"github.com/bnema/clickmate/internal/logger"
)

// uinputInjector drives a virtual mouse through /dev/uinput. The kernel
// device only supports relative motion, so an absolute warp is issued as a
// delta from the live pointer position.
type uinputInjector struct {
	mouse uinput.Mouse
}

func newUinputInjector() (*uinputInjector, error) {
	mouse, err := uinput.CreateMouse("/dev/uinput", []byte("clickmate virtual mouse"))
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual mouse: %w", err)
	}
	return &uinputInjector{mouse: mouse}, nil
}

func (i *uinputInjector) MoveTo(p Point) error {
	curX, curY := robotgo.Location()
	dx := int32(p.X - curX)
	dy := int32(p.Y - curY)
	if dx == 0 && dy == 0 {
		return nil
	}
	if err := i.mouse.Move(dx, dy); err != nil {
		return fmt.Errorf("%w: pointer warp: %v", ErrUnavailable, err)
	}
	return nil
}

func (i *uinputInjector) Click(b Button) error {
	var err error
	switch b {
	case ButtonSecondary:
		if err = i.mouse.RightPress(); err == nil {
			err = i.mouse.RightRelease()
		}
	case ButtonTertiary:
		if err = i.mouse.MiddlePress(); err == nil {
			err = i.mouse.MiddleRelease()
		}
	default:
		if err = i.mouse.LeftPress(); err == nil {
			err = i.mouse.LeftRelease()
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %s click: %v", ErrUnavailable, b, err)
	}
	return nil
}

func (i *uinputInjector) Close() error {
	return i.mouse.Close()
}

// newInjector prefers the uinput virtual mouse, which works on both X11
// and Wayland sessions, and falls back to robotgo (X11 only) when
// /dev/uinput is not accessible.
func newInjector() injector {
	if inj, err := newUinputInjector(); err == nil {
		logger.Info("using uinput injection backend")
		return inj
	} else {
		logger.Debug("uinput unavailable, falling back to robotgo injection", "err", err)
	}
	return robotgoInjector{}
}
