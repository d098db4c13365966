package commands

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	hsm "github.com/devicesmith/jcpm-hsm"
	"github.com/devicesmith/jcpm-hsm/internal/clock"
	"github.com/devicesmith/jcpm-hsm/internal/deviceconfig"
	"github.com/devicesmith/jcpm-hsm/internal/patterndetector"
	"github.com/spf13/cobra"
)

var tickInterval time.Duration

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the demo device until interrupted",
	Long: `run builds the demo door/oven device, drills it down to its
initial leaf state, and drains its event queue on a fixed tick until
SIGINT or SIGTERM.`,
	RunE: runDemo,
}

func init() {
	runCmd.Flags().DurationVar(&tickInterval, "tick", time.Second, "how often to drain the device's event queue")
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := deviceconfig.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("hsmctl: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)
	hsm.EnableTrace(cfg.LogLevel == "DEBUG")

	d := &device{log: logger}
	doorClosed, _, _, _ := d.handlers()

	si := hsm.NewStateInstance(cfg.QueueCapacity)
	machine := hsm.New(si)
	machine.SetInitialState(doorClosed)

	sysClock := clock.NewSystem()
	detector := patterndetector.New(si, sysClock, []bool{false, true, false}, SigBake,
		patterndetector.WithShortPressMaxMs(cfg.ShortPressMaxMs),
		patterndetector.WithPatternTimeoutMs(uint32(cfg.PatternTimeout.Milliseconds())),
	)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	logger.Info("hsmctl demo started", "queue_capacity", cfg.QueueCapacity, "tick", tickInterval)

	var opened, closed bool
	for {
		select {
		case <-ticker.C:
			// A small fixed script on the first two ticks: open the door,
			// then close it and tap out a short-long-short press sequence
			// for the pattern detector to turn into a Bake signal.
			switch {
			case !opened:
				si.Post(SigOpen)
				opened = true
			case !closed:
				si.Post(SigClose)
				closed = true
				// Short, long, short: the pattern passed to the detector above.
				detector.OnButtonDown(0)
				detector.OnButtonUp(0)
				detector.OnButtonDown(0)
				time.Sleep(time.Duration(cfg.ShortPressMaxMs+50) * time.Millisecond)
				detector.OnButtonUp(0)
				detector.OnButtonDown(0)
				detector.OnButtonUp(0)
			}
			machine.Process()
		case <-sig:
			logger.Info("hsmctl shutting down")
			return nil
		}
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
