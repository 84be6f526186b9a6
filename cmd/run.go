package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bnema/clickmate/internal/config"
	"github.com/bnema/clickmate/internal/engine"
	"github.com/bnema/clickmate/internal/logger"
)

var (
	runX        int
	runY        int
	runButton   string
	runInterval time.Duration
	runCount    uint
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a bounded auto-click job",
	Long: `Run a bounded auto-click job: move to the target, click, wait the
configured interval, and repeat until the click budget is spent. Ctrl-C
stops the job at the next iteration boundary.`,
	RunE: runJob,
}

func init() {
	runCmd.Flags().IntVarP(&runX, "x", "x", 0, "X coordinate")
	runCmd.Flags().IntVarP(&runY, "y", "y", 0, "Y coordinate")
	runCmd.Flags().StringVarP(&runButton, "button", "b", "", "Button to click (primary, secondary, tertiary)")
	runCmd.Flags().DurationVarP(&runInterval, "interval", "i", 0, "Wait between clicks")
	runCmd.Flags().UintVarP(&runCount, "count", "n", 0, "Number of clicks")

	viper.BindPFlag("click.interval", runCmd.Flags().Lookup("interval"))
	viper.BindPFlag("click.count", runCmd.Flags().Lookup("count"))

	rootCmd.AddCommand(runCmd)
}

func runJob(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	button, err := resolveButton(runButton)
	if err != nil {
		return err
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	sched := engine.NewScheduler(eng)
	job := engine.Job{
		Target:  resolveTarget(cmd, runX, runY),
		Button:  button,
		Cadence: cfg.Click.Interval,
		Settle:  cfg.Click.SettleDelay,
		Count:   cfg.Click.Count,
	}
	if !sched.Start(job) {
		return fmt.Errorf("could not start job")
	}

	// Ctrl-C requests a cooperative stop; the worker finishes its current
	// iteration and clears the running flag itself.
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
		logger.Info("stop requested")
		sched.Stop()
		<-done
	case <-done:
	}

	fmt.Printf("completed %d clicks\n", sched.Counters().Completed())
	return nil
}
