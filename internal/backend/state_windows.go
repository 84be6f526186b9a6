//go:build windows

package backend

import (
	"golang.org/x/sys/windows"

	"github.com/bnema/clickmate/internal/logger"
)

// Virtual-key codes for the mouse buttons. The snapshot is indexed by VK
// code directly, so the table below is the identity over these constants.
const (
	vkLButton = 0x01
	vkRButton = 0x02
	vkMButton = 0x04
)

var winButtonTable = map[Button]int{
	ButtonPrimary:   vkLButton,
	ButtonSecondary: vkRButton,
	ButtonTertiary:  vkMButton,
}

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
)

// winSource polls button state through GetAsyncKeyState. No hook thread is
// needed on Windows; every Snapshot call reads the live key state.
type winSource struct{}

func newWinSource() (*winSource, error) {
	if err := procGetAsyncKeyState.Find(); err != nil {
		return nil, err
	}
	logger.Debug("button state source started", "source", "winapi")
	return &winSource{}, nil
}

func (s *winSource) Snapshot() Snapshot {
	var snap Snapshot
	for raw := 1; raw < snapshotSize; raw++ {
		state, _, _ := procGetAsyncKeyState.Call(uintptr(raw))
		// High bit set means the key is currently down.
		snap[raw] = state&0x8000 != 0
	}
	return snap
}

func (s *winSource) buttonIndex(b Button) int {
	return winButtonTable[b]
}

func (s *winSource) Close() error {
	return nil
}

// newStateSource selects the button state source for this platform.
func newStateSource() (stateSource, error) {
	return newWinSource()
}
