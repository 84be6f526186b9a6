//go:build !windows

package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The index tables are vetted constants; these tests pin them down so a
// careless edit cannot silently swap two buttons.
func TestHookButtonTables(t *testing.T) {
	linux := hookButtonTable["linux"]
	require.NotNil(t, linux)
	assert.Equal(t, 1, linux[ButtonPrimary])
	assert.Equal(t, 3, linux[ButtonSecondary], "X11 orders secondary after tertiary")
	assert.Equal(t, 2, linux[ButtonTertiary])

	darwin := hookButtonTable["darwin"]
	require.NotNil(t, darwin)
	assert.Equal(t, 1, darwin[ButtonPrimary])
	assert.Equal(t, 2, darwin[ButtonSecondary])
	assert.Equal(t, 3, darwin[ButtonTertiary])
}

func TestHookSourceTracksState(t *testing.T) {
	s := &hookSource{
		table: hookButtonTable["linux"],
		done:  make(chan struct{}),
	}

	s.set(1, true)
	assert.True(t, s.Snapshot().Pressed(s.buttonIndex(ButtonPrimary)))
	assert.False(t, s.Snapshot().Pressed(s.buttonIndex(ButtonSecondary)))

	s.set(3, true)
	s.set(1, false)
	snap := s.Snapshot()
	assert.False(t, snap.Pressed(s.buttonIndex(ButtonPrimary)))
	assert.True(t, snap.Pressed(s.buttonIndex(ButtonSecondary)))

	// Raw codes outside the snapshot are dropped, not wrapped.
	s.set(snapshotSize, true)
	s.set(-1, true)
	assert.Equal(t, snap, s.Snapshot())
}
