// Package logging provides the diagnostic stream of the scale controller.
//
// This package wraps a zap logger with convenience functions for the events
// the controller reports: startup milestones, mode changes and every display
// redraw with the weight and target that were drawn. The stream is purely
// observational; nothing parses it.
//
// # Log Levels
//
//   - Debug: target adjustments while turning the knob, skipped samples
//   - Info: startup milestones, mode changes, redraws
//   - Warn: display or LED pushes that failed and will be retried
//   - Error: fatal initialisation failures
//
// # Configuration
//
// Logging is silent unless a level is passed to Initialize or the
// SMARTSCALE_LOG_LEVEL environment variable is set:
//
//	if err := logging.Initialize("info"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// The smartscale command does this for every subcommand before it runs,
// using --log-level or the environment variable.
//
// The terminal simulator redirects the stream into its log pane with
// InitializeTo.
//
// # Output Format
//
//	2026-10-19T10:30:45.123+0200  INFO  Display updated  {"mode": "measuring", "weight_g": 42, "target_g": 100}
package logging
