package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/bnema/clickmate/internal/backend"
	"github.com/bnema/clickmate/internal/config"
	"github.com/bnema/clickmate/internal/engine"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Build and run a click job through prompts",
	RunE:  runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func validateInt(s string) error {
	_, err := strconv.Atoi(s)
	return err
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	pos := eng.Position()
	xStr := strconv.Itoa(pos.X)
	yStr := strconv.Itoa(pos.Y)
	buttonName := cfg.Click.Button
	intervalStr := cfg.Click.Interval.String()
	countStr := strconv.Itoa(int(cfg.Click.Count))

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("X coordinate").
				Value(&xStr).
				Validate(validateInt),
			huh.NewInput().
				Title("Y coordinate").
				Value(&yStr).
				Validate(validateInt),
			huh.NewSelect[string]().
				Title("Button").
				Options(
					huh.NewOption("primary (left)", "primary"),
					huh.NewOption("secondary (right)", "secondary"),
					huh.NewOption("tertiary (middle)", "tertiary"),
				).
				Value(&buttonName),
			huh.NewInput().
				Title("Interval between clicks").
				Description("Go duration, e.g. 500ms or 2s").
				Value(&intervalStr).
				Validate(func(s string) error {
					_, err := time.ParseDuration(s)
					return err
				}),
			huh.NewInput().
				Title("Click count").
				Value(&countStr).
				Validate(validateInt),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("job setup cancelled: %w", err)
	}

	x, _ := strconv.Atoi(xStr)
	y, _ := strconv.Atoi(yStr)
	count, err := strconv.Atoi(countStr)
	if err != nil || count <= 0 {
		return fmt.Errorf("click count must be a positive number")
	}
	interval, _ := time.ParseDuration(intervalStr)
	button, err := backend.ParseButton(buttonName)
	if err != nil {
		return err
	}

	sched := engine.NewScheduler(eng)
	if !sched.Start(engine.Job{
		Target:  backend.Point{X: x, Y: y},
		Button:  button,
		Cadence: interval,
		Settle:  cfg.Click.SettleDelay,
		Count:   uint(count),
	}) {
		return fmt.Errorf("could not start job")
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	done := make(chan struct{})
	go func() {
		waitForJob(sched, 10*time.Millisecond)
		close(done)
	}()

	select {
	case <-sigCh:
		sched.Stop()
		<-done
	case <-done:
	}

	fmt.Printf("completed %d clicks\n", sched.Counters().Completed())
	return nil
}
