package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bnema/clickmate/internal/backend"
	"github.com/bnema/clickmate/internal/config"
	"github.com/bnema/clickmate/internal/engine"
)

var captureButton string

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Capture a screen coordinate from a click gesture",
	Long: `Capture a screen coordinate: press and release the watched button
anywhere on screen, and the pointer position at the moment of release is
printed. The watched button defaults to the tertiary (middle) button so
the gesture does not collide with ordinary clicking.`,
	RunE: runCapture,
}

func init() {
	captureCmd.Flags().StringVarP(&captureButton, "button", "b", "", "Button to watch (secondary, tertiary)")
	viper.BindPFlag("capture.button", captureCmd.Flags().Lookup("button"))

	rootCmd.AddCommand(captureCmd)
}

func runCapture(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	name := captureButton
	if name == "" {
		name = cfg.Capture.Button
	}
	button, err := backend.ParseButton(name)
	if err != nil {
		return err
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	cap := engine.NewCapture(eng)
	if !cap.Start(button) {
		return fmt.Errorf("could not arm capture")
	}

	fmt.Printf("click %s anywhere on screen (Ctrl-C cancels)...\n", button)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	ticker := time.NewTicker(cfg.Tick.ActiveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-sigCh:
			cap.Cancel()
			return fmt.Errorf("capture cancelled")
		case <-ticker.C:
			pos, done, err := cap.Tick()
			if err != nil {
				return err
			}
			if done {
				fmt.Printf("%d %d\n", pos.X, pos.Y)
				return nil
			}
		}
	}
}
