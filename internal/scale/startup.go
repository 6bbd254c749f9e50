package scale

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/smartscale/internal/hal"
	"github.com/muurk/smartscale/internal/logging"
)

// waitStep bounds how long a startup wait blocks before checking ctx.
const waitStep = 10 * time.Millisecond

// ErrAlreadyStarted is returned by a second call to Start.
var ErrAlreadyStarted = errors.New("scale already started")

// Start runs the blocking startup sequence: bring up the display and LED
// bar, ask for an empty pan while the intro animation plays, tare the load
// cell, then hold a ready screen. A display that fails to initialise is
// returned as a *hal.InitError and the device must not continue.
func (a *App) Start(ctx context.Context) error {
	if a.started {
		return ErrAlreadyStarted
	}
	a.started = true

	logging.LogMilestone("Smart scale starting")

	if err := a.drv.Display.Begin(); err != nil {
		logging.Error("Display not found", zap.Error(err))
		return &hal.InitError{Device: "display", Err: err}
	}

	a.editor.Seed(a.state.Target)

	strip := a.drv.LEDs
	strip.SetBrightness(a.cfg.LEDs.Brightness)
	strip.Clear()
	a.showStartupLEDs()

	a.showScreen(
		textLine{size: 1, x: 0, y: 10, text: "Smart Scale"},
		textLine{size: 2, x: 0, y: 26, text: "Empty"},
		textLine{size: 2, x: 0, y: 42, text: "the pan!"},
	)
	logging.LogMilestone("Waiting for empty pan before tare",
		zap.Duration("delay", a.cfg.Startup.IntroDuration))

	if err := a.playIntro(ctx); err != nil {
		return err
	}

	a.showScreen(textLine{size: 1, x: 0, y: 20, text: "Taring..."})
	a.drv.Sensor.Tare(a.cfg.Sensor.TareSamples)
	a.drv.Sensor.SetScale(a.cfg.Sensor.CalibrationFactor)
	logging.LogMilestone("Tare complete",
		zap.Float64("calibration_factor", a.cfg.Sensor.CalibrationFactor))

	a.showScreen(textLine{size: 1, x: 0, y: 20, text: "Ready!"})
	if err := a.wait(ctx, a.cfg.Startup.ReadyHold); err != nil {
		return err
	}

	logging.LogMilestone("System ready")
	logging.LogMilestone("Click the knob to switch mode")
	logging.LogMilestone("Turn the knob to set the target weight")
	return nil
}

type textLine struct {
	size int
	x, y int
	text string
}

func (a *App) showScreen(lines ...textLine) {
	d := a.drv.Display
	d.Clear()
	for _, l := range lines {
		d.SetTextSize(l.size)
		d.SetCursor(l.x, l.y)
		d.Print(l.text)
	}
	if err := d.Flush(); err != nil {
		logging.Warn("Startup screen flush failed", zap.Error(err))
	}
}

func (a *App) showStartupLEDs() {
	if err := a.drv.LEDs.Show(); err != nil {
		logging.Warn("Startup LED show failed", zap.Error(err))
	}
}

// playIntro sweeps the whole bar through the hue circle over the intro
// duration.
func (a *App) playIntro(ctx context.Context) error {
	duration := a.cfg.Startup.IntroDuration
	if duration <= 0 {
		return nil
	}

	clock := a.drv.Clock
	strip := a.drv.LEDs
	start := clock.Now()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		elapsed := clock.Now().Sub(start)
		if elapsed >= duration {
			return nil
		}

		c := hal.HSV(uint8(elapsed*255/duration), 255, 255)
		for i := 0; i < strip.Len(); i++ {
			strip.Set(i, c)
		}
		a.showStartupLEDs()
		clock.Sleep(a.cfg.Startup.IntroFrame)
	}
}

func (a *App) wait(ctx context.Context, d time.Duration) error {
	clock := a.drv.Clock
	deadline := clock.Now().Add(d)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		remaining := deadline.Sub(clock.Now())
		if remaining <= 0 {
			return nil
		}
		clock.Sleep(min(waitStep, remaining))
	}
}
