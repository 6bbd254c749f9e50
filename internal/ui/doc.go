// Package ui renders the scale in a terminal.
//
// The simulator is a Bubble Tea program that runs the real controller
// against a simulated board and draws what the hardware would show: the
// OLED text, the LED bar and a bench panel with the load on the pan and the
// knob state. Keys stand in for the knob and for putting weight on the pan.
//
// The controller loop runs on its own goroutine with the wall clock. The
// view only reads the simulated drivers, which are safe for concurrent use,
// and refreshes on a timer.
//
// # Components
//
//   - Simulator: the interactive model behind "smartscale sim"
//   - Header and Result: boxed banners for the one-shot commands
//   - Printer: writes those components to a terminal
//   - LogBuffer: keeps the latest log lines for the simulator's log pane
//
// The render helpers (ScreenLines, RenderScreen, RenderSegments) are pure
// and used by both the simulator and the one-shot commands.
package ui
