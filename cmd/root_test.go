package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/clickmate/internal/backend"
	"github.com/bnema/clickmate/internal/config"
)

func TestResolveButton(t *testing.T) {
	config.Set(&config.Config{Click: config.ClickConfig{Button: "secondary"}})
	t.Cleanup(func() { config.Set(nil) })

	b, err := resolveButton("")
	require.NoError(t, err)
	assert.Equal(t, backend.ButtonSecondary, b, "empty name falls back to config")

	b, err = resolveButton("middle")
	require.NoError(t, err)
	assert.Equal(t, backend.ButtonTertiary, b)

	_, err = resolveButton("wheel")
	assert.Error(t, err)
}

func TestResolveTarget(t *testing.T) {
	config.Set(&config.Config{Click: config.ClickConfig{X: 10, Y: 20}})
	t.Cleanup(func() { config.Set(nil) })

	var x, y int
	c := &cobra.Command{Use: "test"}
	c.Flags().IntVar(&x, "x", 0, "")
	c.Flags().IntVar(&y, "y", 0, "")

	assert.Equal(t, backend.Point{X: 10, Y: 20}, resolveTarget(c, x, y),
		"unset flags use config defaults")

	require.NoError(t, c.Flags().Set("x", "300"))
	assert.Equal(t, backend.Point{X: 300, Y: 20}, resolveTarget(c, x, 0))
}
