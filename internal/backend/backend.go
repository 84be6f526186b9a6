// Package backend abstracts the operating system's pointer injection and
// polling facilities behind a single capability surface.
package backend

import (
	"errors"
	"fmt"
)

// ErrUnavailable indicates the OS refused or could not perform a pointer
// operation (missing permissions, no display session). Callers must not
// retry automatically.
var ErrUnavailable = errors.New("input backend unavailable")

// Point is an absolute screen coordinate, origin top-left.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Button identifies one of the three standard pointer buttons.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonTertiary
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonTertiary:
		return "tertiary"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

// ParseButton maps a user-facing button name to a Button.
func ParseButton(name string) (Button, error) {
	switch name {
	case "primary", "left":
		return ButtonPrimary, nil
	case "secondary", "right":
		return ButtonSecondary, nil
	case "tertiary", "middle":
		return ButtonTertiary, nil
	default:
		return 0, fmt.Errorf("unknown button %q", name)
	}
}

// snapshotSize bounds the raw codes any state source reports. Windows
// virtual-key codes for mouse buttons top out at 0x06 (XBUTTON2) and hook
// button numbers at 5, so 8 slots cover every source with room to spare.
const snapshotSize = 8

// Snapshot is the full set of raw pressed flags captured at one poll
// instant. Indexing is source-specific: the raw code a state source reports
// for a button is the index of its flag. Translation to a semantic Button
// goes through that source's constant index table, never through
// positional guessing.
type Snapshot [snapshotSize]bool

// Pressed reports the flag at a raw code, false for out-of-range codes.
func (s Snapshot) Pressed(raw int) bool {
	if raw < 0 || raw >= len(s) {
		return false
	}
	return s[raw]
}

// Backend is the capability surface over the OS pointer facilities.
// Position and ButtonSnapshot never fail once the backend is constructed;
// mutating operations report ErrUnavailable when the OS denies them.
type Backend interface {
	// Position returns the current pointer location.
	Position() Point

	// ButtonSnapshot returns the raw pressed-flag set for this instant.
	ButtonSnapshot() Snapshot

	// IsPressed derives one button's state from the snapshot via the
	// source's index table.
	IsPressed(b Button) bool

	// MoveTo warps the pointer to an absolute position.
	MoveTo(p Point) error

	// Click issues a press+release pair at the pointer's current location.
	Click(b Button) error

	// ScreenBounds returns the primary display extents.
	ScreenBounds() (width, height int, err error)

	Close() error
}
