package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsDefaultsWhenUninitialized(t *testing.T) {
	Set(nil)
	cfg := Get()
	require.NotNil(t, cfg)

	assert.Equal(t, "primary", cfg.Click.Button)
	assert.Equal(t, time.Second, cfg.Click.Interval)
	assert.Equal(t, uint(10), cfg.Click.Count)
	assert.Equal(t, 10*time.Millisecond, cfg.Click.SettleDelay)

	// The capture gesture defaults to a button the shell does not use for
	// ordinary interaction.
	assert.Equal(t, "tertiary", cfg.Capture.Button)
	assert.NotEqual(t, cfg.Click.Button, cfg.Capture.Button)

	assert.Equal(t, 16*time.Millisecond, cfg.Tick.ActiveInterval)
	assert.Equal(t, 100*time.Millisecond, cfg.Tick.IdleInterval)
}

func TestSetOverridesConfig(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	custom := &Config{
		Click: ClickConfig{Button: "secondary", Count: 3},
	}
	Set(custom)
	assert.Equal(t, "secondary", Get().Click.Button)
	assert.Equal(t, uint(3), Get().Click.Count)
}
