// Package commands implements the hsmctl CLI: a small demonstration
// harness driving one hsm.HSM instance on a ticker, exercising the engine,
// the pattern detector, and the layered device configuration end to end.
package commands

import "github.com/spf13/cobra"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "hsmctl",
	Short: "hsmctl drives a demo hierarchical state machine device",
	Long: `hsmctl is a demonstration harness for the hsm engine: it builds a
small door/oven device hierarchy, wires a button-press pattern detector to
it, and runs the device on a ticker until interrupted.

This is not part of the engine's public contract; it exists to exercise the
whole stack (core dispatch, pattern detection, layered configuration) end to
end the way the firmware's own main loop exercises the original C++.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called once from main.main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file (defaults to built-in values)")
	rootCmd.AddCommand(runCmd)
}
