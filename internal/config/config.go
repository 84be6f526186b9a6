// Package config handles configuration management using Viper
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration. It is read-only input:
// job parameters entered at runtime are never written back to disk.
type Config struct {
	Click   ClickConfig   `mapstructure:"click"`
	Capture CaptureConfig `mapstructure:"capture"`
	Tick    TickConfig    `mapstructure:"tick"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ClickConfig carries the default click job parameters.
type ClickConfig struct {
	Button      string        `mapstructure:"button"`       // "primary", "secondary", "tertiary"
	Interval    time.Duration `mapstructure:"interval"`     // cadence between repeated clicks
	Count       uint          `mapstructure:"count"`        // bounded job budget
	SettleDelay time.Duration `mapstructure:"settle_delay"` // pause between warp and click
	X           int           `mapstructure:"x"`
	Y           int           `mapstructure:"y"`
}

// CaptureConfig selects the coordinate capture gesture.
type CaptureConfig struct {
	// Button watched for the press-release gesture. Tertiary by default so
	// the gesture never fights primary-button interaction with the shell.
	Button string `mapstructure:"button"`
}

// TickConfig bounds the shell's engine polling intervals.
type TickConfig struct {
	ActiveInterval time.Duration `mapstructure:"active_interval"` // while a capture session is armed
	IdleInterval   time.Duration `mapstructure:"idle_interval"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Override LOG_LEVEL env var
}

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Click: ClickConfig{
			Button:      "primary",
			Interval:    time.Second,
			Count:       10,
			SettleDelay: 10 * time.Millisecond,
			X:           100,
			Y:           100,
		},
		Capture: CaptureConfig{
			Button: "tertiary",
		},
		Tick: TickConfig{
			ActiveInterval: 16 * time.Millisecond,
			IdleInterval:   100 * time.Millisecond,
		},
		Logging: LoggingConfig{
			LogLevel: "",
		},
	}

	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName("clickmate")
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "clickmate"))
		}
		viper.AddConfigPath(".")
	}

	// Set defaults - need to set individual fields for proper merging
	viper.SetDefault("click.button", DefaultConfig.Click.Button)
	viper.SetDefault("click.interval", DefaultConfig.Click.Interval)
	viper.SetDefault("click.count", DefaultConfig.Click.Count)
	viper.SetDefault("click.settle_delay", DefaultConfig.Click.SettleDelay)
	viper.SetDefault("click.x", DefaultConfig.Click.X)
	viper.SetDefault("click.y", DefaultConfig.Click.Y)

	viper.SetDefault("capture.button", DefaultConfig.Capture.Button)

	viper.SetDefault("tick.active_interval", DefaultConfig.Tick.ActiveInterval)
	viper.SetDefault("tick.idle_interval", DefaultConfig.Tick.IdleInterval)

	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		// Return defaults if not initialized
		return &DefaultConfig
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}
