package scale

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/smartscale/internal/config"
	"github.com/muurk/smartscale/internal/hal"
	"github.com/muurk/smartscale/internal/logging"
)

// State is the user-visible application state.
type State struct {
	Mode   Mode
	Target int     // grams, within the configured bounds
	Weight float64 // grams, last sample taken in measuring mode
}

// Stats counts loop activity.
type Stats struct {
	Ticks       int
	Transitions int
	Samples     int
	Redraws     int
	LEDUpdates  int
}

// App is the scale controller. It is not safe for concurrent use; one
// goroutine owns it and calls Start once and then Tick or Run.
type App struct {
	cfg *config.Config
	drv hal.Drivers

	state    State
	lastMode Mode
	stats    Stats
	pace     time.Duration
	started  bool
	clearLED bool // setting mode entered, bar not yet blanked

	debounce *Debouncer
	sampler  *Sampler
	editor   *Editor
	renderer *Renderer
	leds     *LedFeedback
}

// Option configures an App.
type Option func(*App)

// WithPace makes Run sleep d between ticks. The appliance spins without
// pause; the workstation simulator paces the loop to spare the host CPU.
func WithPace(d time.Duration) Option {
	return func(a *App) {
		a.pace = d
	}
}

// New creates a controller for cfg on the given drivers.
func New(cfg *config.Config, drv hal.Drivers, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if missing := drv.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("missing drivers: %s", strings.Join(missing, ", "))
	}

	a := &App{
		cfg: cfg,
		drv: drv,
		state: State{
			Mode:   ModeMeasuring,
			Target: cfg.Target.Initial,
		},
		lastMode: ModeMeasuring,
		debounce: NewDebouncer(cfg.Input.DebounceWindow),
		sampler:  NewSampler(drv.Sensor, cfg.Sensor.SampleInterval, cfg.Sensor.SampleCount),
		editor:   NewEditor(drv.Encoder, cfg.Target.Min, cfg.Target.Max),
		renderer: NewRenderer(drv.Display),
		leds:     NewLedFeedback(drv.LEDs),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// State returns a copy of the application state.
func (a *App) State() State {
	return a.state
}

// Stats returns loop counters.
func (a *App) Stats() Stats {
	return a.stats
}

// Run ticks until ctx is cancelled and returns ctx.Err().
func (a *App) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		a.Tick()
		if a.pace > 0 {
			a.drv.Clock.Sleep(a.pace)
		}
	}
}

// Tick runs one pass of the control loop.
func (a *App) Tick() {
	now := a.drv.Clock.Now()
	a.stats.Ticks++

	if a.debounce.Edge(a.drv.Button.Level(), now) {
		a.toggleMode()
	}
	entered := a.state.Mode != a.lastMode

	switch a.state.Mode {
	case ModeMeasuring:
		if weight, ok := a.sampler.Sample(now); ok {
			a.state.Weight = weight
			a.stats.Samples++
		}
	case ModeSetting:
		target := a.editor.Read()
		if target != a.state.Target || entered {
			a.state.Target = target
			logging.LogTarget(target)
		}
	}

	a.render()
	a.updateLEDs(entered)

	a.lastMode = a.state.Mode
}

func (a *App) toggleMode() {
	a.state.Mode = a.state.Mode.Next()
	a.stats.Transitions++

	if a.state.Mode == ModeSetting {
		a.editor.Seed(a.state.Target)
	} else {
		// The target may have moved; show it against the current weight.
		a.leds.Invalidate()
	}
	a.renderer.Invalidate()

	logging.LogModeChange(a.state.Mode.String(), a.state.Target)
}

func (a *App) render() {
	weight := Truncate(a.state.Weight)
	drawn, err := a.renderer.Render(a.state.Mode, weight, a.state.Target)
	if err != nil {
		logging.Warn("Redraw failed, retrying next tick", zap.Error(err))
		return
	}
	if drawn {
		a.stats.Redraws++
		logging.LogRedraw(a.state.Mode.String(), weight, a.state.Target)
	}
}

func (a *App) updateLEDs(entered bool) {
	switch a.state.Mode {
	case ModeMeasuring:
		updated, err := a.leds.Update(Truncate(a.state.Weight), a.state.Target)
		if err != nil {
			logging.Warn("LED update failed, retrying next tick", zap.Error(err))
			return
		}
		if updated {
			a.stats.LEDUpdates++
		}
	case ModeSetting:
		if entered {
			a.clearLED = true
		}
		if !a.clearLED {
			return
		}
		if err := a.leds.Off(); err != nil {
			logging.Warn("LED clear failed, retrying next tick", zap.Error(err))
			return
		}
		a.clearLED = false
		a.stats.LEDUpdates++
	}
}
