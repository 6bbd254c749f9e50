package sim

import (
	"github.com/muurk/smartscale/internal/config"
	"github.com/muurk/smartscale/internal/hal"
)

var (
	_ hal.Sensor   = (*Sensor)(nil)
	_ hal.Display  = (*Display)(nil)
	_ hal.Encoder  = (*Encoder)(nil)
	_ hal.Button   = (*Button)(nil)
	_ hal.LEDStrip = (*LEDStrip)(nil)
	_ hal.Clock    = (*ManualClock)(nil)
)

// RawZero is the raw amplifier reading with an empty pan.
const RawZero = 8400

// Rig is a complete simulated board.
type Rig struct {
	Sensor  *Sensor
	Display *Display
	Encoder *Encoder
	Button  *Button
	LEDs    *LEDStrip
	Clock   hal.Clock
}

// NewRig builds a board matching cfg. The load cell is calibrated so that
// cfg.Sensor.CalibrationFactor reads true grams.
func NewRig(cfg *config.Config, clock hal.Clock) *Rig {
	return &Rig{
		Sensor:  NewSensor(cfg.Sensor.CalibrationFactor, RawZero),
		Display: NewDisplay(cfg.Display.Width, cfg.Display.Height),
		Encoder: &Encoder{},
		Button:  &Button{},
		LEDs:    NewLEDStrip(cfg.LEDs.Count),
		Clock:   clock,
	}
}

// Drivers returns the rig as driver contracts.
func (r *Rig) Drivers() hal.Drivers {
	return hal.Drivers{
		Sensor:  r.Sensor,
		Display: r.Display,
		Encoder: r.Encoder,
		Button:  r.Button,
		LEDs:    r.LEDs,
		Clock:   r.Clock,
	}
}
