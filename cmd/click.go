package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/clickmate/internal/backend"
	"github.com/bnema/clickmate/internal/config"
)

var (
	clickX      int
	clickY      int
	clickButton string
)

var clickCmd = &cobra.Command{
	Use:   "click",
	Short: "Issue a single click at a screen coordinate",
	RunE:  runClick,
}

func init() {
	clickCmd.Flags().IntVarP(&clickX, "x", "x", 0, "X coordinate")
	clickCmd.Flags().IntVarP(&clickY, "y", "y", 0, "Y coordinate")
	clickCmd.Flags().StringVarP(&clickButton, "button", "b", "", "Button to click (primary, secondary, tertiary)")

	rootCmd.AddCommand(clickCmd)
}

// resolveTarget merges explicit flags over configured defaults.
func resolveTarget(cmd *cobra.Command, x, y int) backend.Point {
	cfg := config.Get()
	p := backend.Point{X: cfg.Click.X, Y: cfg.Click.Y}
	if cmd.Flags().Changed("x") {
		p.X = x
	}
	if cmd.Flags().Changed("y") {
		p.Y = y
	}
	return p
}

func resolveButton(name string) (backend.Button, error) {
	if name == "" {
		name = config.Get().Click.Button
	}
	return backend.ParseButton(name)
}

func runClick(cmd *cobra.Command, args []string) error {
	button, err := resolveButton(clickButton)
	if err != nil {
		return err
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	target := resolveTarget(cmd, clickX, clickY)
	if err := eng.MoveClick(target, button, config.Get().Click.SettleDelay); err != nil {
		return fmt.Errorf("click at %s failed: %w", target, err)
	}

	fmt.Printf("clicked %s at %s\n", button, target)
	// Give the OS a moment to deliver the synthetic events before the
	// backend (and any virtual device it created) goes away.
	time.Sleep(50 * time.Millisecond)
	return nil
}
