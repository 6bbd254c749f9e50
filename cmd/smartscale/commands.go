package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/smartscale/internal/config"
	"github.com/muurk/smartscale/internal/hal"
	"github.com/muurk/smartscale/internal/logging"
	"github.com/muurk/smartscale/internal/scale"
	"github.com/muurk/smartscale/internal/scenario"
	"github.com/muurk/smartscale/internal/ui"
)

// Command flags
var (
	profilePath  string
	logLevel     string
	scenarioPath string
	ledWeight    int
	ledTarget    int
)

func init() {
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "Bench profile YAML overriding board constants")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to $"+logging.LogLevelEnvVar)

	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Scenario script to play (required)")
	_ = runCmd.MarkFlagRequired("scenario")

	ledsCmd.Flags().IntVar(&ledWeight, "weight", 0, "Weight on the pan in grams")
	ledsCmd.Flags().IntVar(&ledTarget, "target", 0, "Target weight in grams (defaults to the profile's initial target)")

	rootCmd.PersistentPreRunE = initLogging

	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(ledsCmd)
	rootCmd.AddCommand(configCmd)
}

// initLogging sets up the diagnostic log for every command: --log-level if
// given, otherwise $SMARTSCALE_LOG_LEVEL, otherwise silent. Commands that
// need a different sink reinitialise it.
func initLogging(cmd *cobra.Command, args []string) error {
	if logLevel != "" {
		return logging.Initialize(logLevel)
	}
	return logging.InitializeFromEnv()
}

// loadProfile reads the bench profile named by --profile.
func loadProfile() (*config.Config, error) {
	return config.Load(profilePath)
}

// startupTroubleshooting returns tips for a controller that failed to start.
func startupTroubleshooting(err error) []string {
	var initErr *hal.InitError
	if !errors.As(err, &initErr) {
		return nil
	}
	return []string{
		fmt.Sprintf("The %s did not respond; the controller halts without it", initErr.Device),
		"On hardware, check the I2C wiring and the panel address in the profile",
	}
}

// simCmd implements the 'sim' command
var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the scale interactively in the terminal",
	Long: `Run the controller against a simulated board in the terminal.

The OLED panel, the LED bar and the bench state are drawn live. Keys stand
in for the knob (arrows turn it, space clicks it) and for the pan (+/- add
or take 10 g, ]/[ add or take 1 g, 0 empties it). The startup sequence
plays first and tares whatever is on the pan.`,
	Example: `  # Default board
  smartscale sim

  # Larger LED bar with debug logs in the log pane
  smartscale sim --profile bench.yaml --log-level debug`,
	RunE: runSim,
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := loadProfile()
	if err != nil {
		return err
	}

	logs := ui.NewLogBuffer(ui.LogLines)
	level := logLevel
	if level == "" {
		level = os.Getenv(logging.LogLevelEnvVar)
	}
	logging.InitializeTo(level, logs)
	defer logging.Sync()

	model, err := ui.NewSimulator(cfg, logs)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("simulator error: %w", err)
	}

	if model.Err != nil {
		printer := ui.NewPrinter(os.Stderr)
		printer.PrintResult(ui.NewFailureResult("Controller stopped", model.Err, startupTroubleshooting(model.Err)...))
		return model.Err
	}
	return nil
}

// runCmd implements the 'run' command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play a scenario script headless",
	Long: `Play a scripted bench session against the controller and print the
final state.

The script runs on a simulated clock, so a session of any length finishes
immediately. The diagnostic log goes to stdout at info level unless
--log-level says otherwise.`,
	Example: `  # Play a script
  smartscale run --scenario pour.yaml

  # Show every redraw and target change
  smartscale run --scenario pour.yaml --log-level debug`,
	RunE: runScenario,
}

func runScenario(cmd *cobra.Command, args []string) error {
	level := logLevel
	if level == "" {
		level = "info"
	}
	if err := logging.Initialize(level); err != nil {
		return err
	}
	defer logging.Sync()

	cfg, err := loadProfile()
	if err != nil {
		return err
	}
	script, err := scenario.Load(scenarioPath)
	if err != nil {
		return err
	}

	printer := ui.NewPrinter(os.Stdout)
	printer.PrintHeader("Scenario", "smartscale run",
		ui.Detail{Key: "Script", Value: scenarioPath},
		ui.Detail{Key: "Name", Value: script.Name},
		ui.Detail{Key: "Duration", Value: script.Duration.String()},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := scenario.Play(ctx, cfg, script)
	if err != nil {
		logging.Error("Scenario failed", zap.Error(err))
		printer.PrintResult(ui.NewFailureResult("Scenario failed", err, startupTroubleshooting(err)...))
		return err
	}

	green, red := scale.CountLit(res.LEDs)
	printer.PrintResult(ui.NewSuccessResult("Scenario complete",
		ui.Detail{Key: "Mode", Value: res.State.Mode.String()},
		ui.Detail{Key: "Target", Value: fmt.Sprintf("%dg", res.State.Target)},
		ui.Detail{Key: "Weight", Value: fmt.Sprintf("%.1fg", res.State.Weight)},
		ui.Detail{Key: "LEDs", Value: fmt.Sprintf("%d green, %d red", green, red)},
		ui.Detail{Key: "Ticks", Value: strconv.Itoa(res.Stats.Ticks)},
		ui.Detail{Key: "Redraws", Value: strconv.Itoa(res.Stats.Redraws)},
	))
	printer.PrintScreen("PANEL", ui.RenderScreen(res.Frame, cfg.Display.Width, cfg.Display.Height))
	printer.Println(" " + ui.RenderSegments(res.LEDs))
	return nil
}

// ledsCmd implements the 'leds' command
var ledsCmd = &cobra.Command{
	Use:   "leds",
	Short: "Show the LED bar for a weight and target",
	Long: `Print the LED bar the controller shows for a weight against a target.

Up to the target one segment per 10% lights green. Past the target the whole
bar is green and one segment per 10% of overshoot turns red.`,
	Example: `  # Half way to 200 g
  smartscale leds --weight 100 --target 200

  # 30% over
  smartscale leds --weight 130 --target 100`,
	RunE: runLeds,
}

func runLeds(cmd *cobra.Command, args []string) error {
	cfg, err := loadProfile()
	if err != nil {
		return err
	}

	target := ledTarget
	if !cmd.Flags().Changed("target") {
		target = cfg.Target.Initial
	}

	colours := scale.Segments(ledWeight, target, cfg.LEDs.Count)
	green, red := scale.CountLit(colours)
	fmt.Fprintf(cmd.OutOrStdout(), "%s  %dg of %dg (%.0f%%): %d green, %d red\n",
		ui.RenderSegments(colours), ledWeight, target, scale.Percentage(ledWeight, target), green, red)
	return nil
}

// configCmd implements the 'config' command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective board configuration",
	Long: `Print the board constants in effect as YAML: the compiled-in defaults
with the bench profile, if any, applied on top.`,
	Example: `  # Defaults
  smartscale config

  # Defaults plus a bench profile
  smartscale config --profile bench.yaml`,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadProfile()
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
