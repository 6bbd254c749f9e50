package scenario

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/smartscale/internal/config"
	"github.com/muurk/smartscale/internal/hal"
	"github.com/muurk/smartscale/internal/hal/sim"
	"github.com/muurk/smartscale/internal/logging"
	"github.com/muurk/smartscale/internal/scale"
)

// Result is the board state at the end of a session.
type Result struct {
	Name    string
	Elapsed time.Duration
	State   scale.State
	Stats   scale.Stats
	Screen  []string      // text of the last flushed frame
	Frame   []sim.TextRun // last flushed frame
	LEDs    []hal.Color   // colours last shown on the bar
}

// Runner plays a script against a started controller on a simulated rig.
type Runner struct {
	script *Script
	app    *scale.App
	rig    *sim.Rig
	clock  *sim.ManualClock

	next     int
	released bool
}

// NewRunner creates a runner. The rig must run on clock.
func NewRunner(script *Script, app *scale.App, rig *sim.Rig, clock *sim.ManualClock) *Runner {
	return &Runner{script: script, app: app, rig: rig, clock: clock, released: true}
}

// Run plays the whole script and returns the final state.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	logging.Info("Scenario started",
		zap.String("scenario", r.script.Name),
		zap.Duration("duration", r.script.Duration),
		zap.Int("steps", len(r.script.Steps)),
	)

	for elapsed := time.Duration(0); elapsed <= r.script.Duration; elapsed += r.script.Tick {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scenario interrupted at %v: %w", elapsed, err)
		}
		r.step(elapsed)
		r.app.Tick()
		r.clock.Advance(r.script.Tick)
	}

	return &Result{
		Name:    r.script.Name,
		Elapsed: r.script.Duration,
		State:   r.app.State(),
		Stats:   r.app.Stats(),
		Screen:  r.rig.Display.Text(),
		Frame:   r.rig.Display.Frame(),
		LEDs:    r.rig.LEDs.Shown(),
	}, nil
}

// step releases a click held for one tick and applies every step that is
// due.
func (r *Runner) step(elapsed time.Duration) {
	if !r.released {
		r.rig.Button.Release()
		r.released = true
	}

	for r.next < len(r.script.Steps) && r.script.Steps[r.next].At <= elapsed {
		r.apply(r.script.Steps[r.next])
		r.next++
	}
}

func (r *Runner) apply(s Step) {
	fields := []zap.Field{zap.Duration("at", s.At)}

	if s.Weight != nil {
		r.rig.Sensor.Place(*s.Weight)
		fields = append(fields, zap.Float64("weight_g", *s.Weight))
	}
	if s.Ready != nil {
		r.rig.Sensor.SetReady(*s.Ready)
		fields = append(fields, zap.Bool("sensor_ready", *s.Ready))
	}
	if s.Turn != 0 {
		r.rig.Encoder.Turn(s.Turn)
		fields = append(fields, zap.Int("turn", s.Turn))
	}
	if s.Press {
		r.rig.Button.Press()
		r.released = false
		fields = append(fields, zap.Bool("press", true))
	}

	logging.Debug("Scenario step", fields...)
}

// Play builds a simulated board for cfg, runs the startup sequence on a
// manual clock and plays the script against it.
func Play(ctx context.Context, cfg *config.Config, script *Script) (*Result, error) {
	clock := sim.NewManualClock()
	rig := sim.NewRig(cfg, clock)

	app, err := scale.New(cfg, rig.Drivers())
	if err != nil {
		return nil, err
	}
	if err := app.Start(ctx); err != nil {
		return nil, err
	}

	return NewRunner(script, app, rig, clock).Run(ctx)
}
