package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/clickmate/internal/backend"
	"github.com/bnema/clickmate/internal/config"
	"github.com/bnema/clickmate/internal/engine"
	"github.com/bnema/clickmate/internal/logger"
)

var (
	// Version is set during build
	Version = "0.1.0-dev"

	configPath string

	rootCmd = &cobra.Command{
		Use:   "clickmate",
		Short: "Clickmate - cross-platform mouse automation",
		Long: `Clickmate simulates mouse input and polls live pointer state.
It can issue single clicks, run bounded auto-click jobs at a fixed cadence,
and capture screen coordinates from a press-release gesture anywhere on
screen.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				config.SetConfigPath(configPath)
			}
			if err := config.Init(); err != nil {
				return err
			}
			if level := config.Get().Logging.LogLevel; level != "" {
				logger.SetLevel(level)
			}
			return nil
		},
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")
}

// newEngine initializes the backend and wraps it. A missing backend is the
// one unrecoverable condition, reported before any UI comes up.
func newEngine() (*engine.Engine, error) {
	be, err := backend.New()
	if err != nil {
		return nil, fmt.Errorf("no input backend available: %w", err)
	}
	return engine.New(be), nil
}

// waitForJob blocks until the scheduler clears its running flag.
func waitForJob(sched *engine.Scheduler, poll time.Duration) {
	for sched.Counters().Running() {
		time.Sleep(poll)
	}
}
