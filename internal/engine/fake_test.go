package engine

import (
	"sync"

	"github.com/bnema/clickmate/internal/backend"
)

// fakeBackend records injected operations and replays scripted button
// readings, one per IsPressed call. When the script runs out the last
// reading repeats.
type fakeBackend struct {
	mu sync.Mutex

	pos      backend.Point
	posSeq   []backend.Point
	readings []bool
	readIdx  int

	moves  []backend.Point
	clicks []backend.Button

	moveErr  error
	clickErr error

	// block, when set, parks Position callers until it is closed. Used to
	// hold the engine lock from a test goroutine; entered signals that a
	// caller reached the gate.
	block   chan struct{}
	entered chan struct{}
}

func (f *fakeBackend) Position() backend.Point {
	f.mu.Lock()
	block, entered := f.block, f.entered
	f.mu.Unlock()
	if block != nil {
		if entered != nil {
			select {
			case entered <- struct{}{}:
			default:
			}
		}
		<-block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pos
}

func (f *fakeBackend) ButtonSnapshot() backend.Snapshot {
	return backend.Snapshot{}
}

func (f *fakeBackend) IsPressed(backend.Button) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.readings) == 0 {
		return false
	}
	pressed := f.readings[f.readIdx]
	// Pointer position advances in step with the reading script so a test
	// can pin down which tick a coordinate was sampled at.
	if f.readIdx < len(f.posSeq) {
		f.pos = f.posSeq[f.readIdx]
	}
	if f.readIdx < len(f.readings)-1 {
		f.readIdx++
	}
	return pressed
}

func (f *fakeBackend) MoveTo(p backend.Point) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.moveErr != nil {
		return f.moveErr
	}
	f.moves = append(f.moves, p)
	f.pos = p
	return nil
}

func (f *fakeBackend) Click(b backend.Button) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clickErr != nil {
		return f.clickErr
	}
	f.clicks = append(f.clicks, b)
	return nil
}

func (f *fakeBackend) ScreenBounds() (int, int, error) {
	return 1920, 1080, nil
}

func (f *fakeBackend) Close() error { return nil }

func (f *fakeBackend) recorded() (moves []backend.Point, clicks []backend.Button) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]backend.Point(nil), f.moves...), append([]backend.Button(nil), f.clicks...)
}
