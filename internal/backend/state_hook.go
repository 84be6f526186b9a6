//go:build !windows

package backend

import (
	"runtime"
	"sync"

	hook "github.com/robotn/gohook"

	"github.com/bnema/clickmate/internal/logger"
)

// Raw hook button numbers differ between window systems. X11 reports
// 1=left, 2=middle, 3=right; macOS reports 1=left, 2=right, 3=middle.
// Both tables were verified against real hardware, do not reorder them.
var hookButtonTable = map[string]map[Button]int{
	"linux": {
		ButtonPrimary:   1,
		ButtonSecondary: 3,
		ButtonTertiary:  2,
	},
	"darwin": {
		ButtonPrimary:   1,
		ButtonSecondary: 2,
		ButtonTertiary:  3,
	},
}

// hookSource tracks button state from the global input hook. The hook
// delivers press/release events on its own goroutine; Snapshot reads the
// accumulated flags under a lock so one poll sees a consistent set.
type hookSource struct {
	mu    sync.Mutex
	snap  Snapshot
	table map[Button]int
	done  chan struct{}
}

func newHookSource() (*hookSource, error) {
	table, ok := hookButtonTable[runtime.GOOS]
	if !ok {
		// Unverified platform: fall back to the macOS ordering, which is
		// also what the hook library emits on the BSDs.
		table = hookButtonTable["darwin"]
		logger.Warnf("no verified button table for %s, using default ordering", runtime.GOOS)
	}

	s := &hookSource{
		table: table,
		done:  make(chan struct{}),
	}

	events := hook.Start()
	go s.consume(events)

	logger.Debug("button state source started", "source", "hook", "os", runtime.GOOS)
	return s, nil
}

func (s *hookSource) consume(events chan hook.Event) {
	for {
		select {
		case <-s.done:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev.Kind {
			case hook.MouseDown, hook.MouseHold:
				s.set(int(ev.Button), true)
			case hook.MouseUp:
				s.set(int(ev.Button), false)
			}
		}
	}
}

func (s *hookSource) set(raw int, pressed bool) {
	if raw < 0 || raw >= snapshotSize {
		return
	}
	s.mu.Lock()
	s.snap[raw] = pressed
	s.mu.Unlock()
}

func (s *hookSource) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

func (s *hookSource) buttonIndex(b Button) int {
	return s.table[b]
}

func (s *hookSource) Close() error {
	close(s.done)
	hook.End()
	return nil
}

// newStateSource selects the button state source for this platform.
func newStateSource() (stateSource, error) {
	return newHookSource()
}
