package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/clickmate/internal/backend"
	"github.com/bnema/clickmate/internal/config"
	"github.com/bnema/clickmate/internal/engine"
	"github.com/bnema/clickmate/internal/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the interactive control surface",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	button, err := backend.ParseButton(cfg.Click.Button)
	if err != nil {
		return err
	}
	capButton, err := backend.ParseButton(cfg.Capture.Button)
	if err != nil {
		return err
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	model := ui.NewModel(eng, engine.NewCapture(eng), engine.NewScheduler(eng), ui.Options{
		Target:         backend.Point{X: cfg.Click.X, Y: cfg.Click.Y},
		Button:         button,
		CaptureButton:  capButton,
		Cadence:        cfg.Click.Interval,
		Settle:         cfg.Click.SettleDelay,
		Count:          cfg.Click.Count,
		ActiveInterval: cfg.Tick.ActiveInterval,
		IdleInterval:   cfg.Tick.IdleInterval,
	})

	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("shell exited with error: %w", err)
	}
	return nil
}
