// Smartscale runs the kitchen scale controller on a workstation.
//
// The controller is the same code that drives the appliance: it reads the
// load cell, shows live weight against a target on the OLED panel and
// lights an LED bar as the pan fills. Here it runs against a simulated
// board, either interactively in the terminal or headless from a scripted
// bench session.
//
// Usage:
//
//	smartscale [command] [flags]
//
// See 'smartscale --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/smartscale/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "smartscale",
	Short: "Smart Scale controller and bench simulator",
	Long: `Runs the smart kitchen scale controller against a simulated board.

The scale shows the weight on the pan next to a target weight. Clicking the
knob switches to target entry, turning it sets the target, and an LED bar
fills green as the pan approaches the target and turns red past it.

Bench profiles (--profile) override board constants such as the LED count,
calibration factor or target bounds for simulation.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("smartscale %s\n", version.Full())
	},
}
