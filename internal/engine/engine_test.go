package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/clickmate/internal/backend"
)

func TestEngineMoveClickOrdering(t *testing.T) {
	fake := &fakeBackend{}
	e := New(fake)

	target := backend.Point{X: 300, Y: 400}
	require.NoError(t, e.MoveClick(target, backend.ButtonSecondary, time.Millisecond))

	moves, clicks := fake.recorded()
	require.Len(t, moves, 1)
	require.Len(t, clicks, 1)
	assert.Equal(t, target, moves[0])
	assert.Equal(t, backend.ButtonSecondary, clicks[0])
	assert.Equal(t, target, e.Position(), "click lands at the warped position")
}

func TestEngineMoveClickStopsOnWarpFailure(t *testing.T) {
	fake := &fakeBackend{moveErr: backend.ErrUnavailable}
	e := New(fake)

	err := e.MoveClick(backend.Point{X: 1, Y: 1}, backend.ButtonPrimary, 0)
	require.ErrorIs(t, err, backend.ErrUnavailable, "backend errors surface unchanged")

	_, clicks := fake.recorded()
	assert.Empty(t, clicks)
}

func TestEnginePollButtonContention(t *testing.T) {
	fake := &fakeBackend{
		readings: []bool{true},
		block:    make(chan struct{}),
		entered:  make(chan struct{}, 1),
	}
	e := New(fake)

	held := make(chan struct{})
	go func() {
		e.Position()
		close(held)
	}()
	<-fake.entered

	_, _, err := e.PollButton(backend.ButtonPrimary)
	assert.ErrorIs(t, err, ErrLockContention)

	close(fake.block)
	<-held

	pressed, _, err := e.PollButton(backend.ButtonPrimary)
	require.NoError(t, err)
	assert.True(t, pressed)
}

func TestEngineScreenBounds(t *testing.T) {
	e := New(&fakeBackend{})
	w, h, err := e.ScreenBounds()
	require.NoError(t, err)
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)
}

func TestEngineClosed(t *testing.T) {
	e := New(&fakeBackend{readings: []bool{true}})
	require.NoError(t, e.Close())
	require.NoError(t, e.Close(), "double close is harmless")

	assert.ErrorIs(t, e.MoveTo(backend.Point{X: 1, Y: 1}), backend.ErrUnavailable)
	assert.ErrorIs(t, e.Click(backend.ButtonPrimary), backend.ErrUnavailable)

	_, _, err := e.PollButton(backend.ButtonPrimary)
	assert.ErrorIs(t, err, backend.ErrUnavailable)

	_, _, err = e.ScreenBounds()
	assert.ErrorIs(t, err, backend.ErrUnavailable)

	assert.Equal(t, backend.Point{}, e.Position())
	assert.False(t, e.IsPressed(backend.ButtonPrimary))
}
