package scale

import (
	"fmt"
	"time"

	"github.com/muurk/smartscale/internal/hal"
)

// Mode is the application mode.
type Mode int

const (
	// ModeMeasuring samples the load cell and shows live weight and progress.
	ModeMeasuring Mode = iota
	// ModeSetting lets the knob adjust the target weight.
	ModeSetting
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeMeasuring:
		return "measuring"
	case ModeSetting:
		return "setting"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Next returns the mode a button press switches to.
func (m Mode) Next() Mode {
	if m == ModeMeasuring {
		return ModeSetting
	}
	return ModeMeasuring
}

// Debouncer turns raw button levels into press edges. A press is a
// high-to-low transition; it counts only if the window has passed since
// the last counted press. Presses inside the window are dropped.
type Debouncer struct {
	window    time.Duration
	lastLevel hal.Level
	lastEdge  time.Time
	seen      bool
}

// NewDebouncer creates a debouncer for a released, active-low button.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window, lastLevel: hal.High}
}

// Edge feeds the current level and reports whether it is a counted press.
func (d *Debouncer) Edge(level hal.Level, now time.Time) bool {
	falling := level == hal.Low && d.lastLevel == hal.High
	d.lastLevel = level
	if !falling {
		return false
	}
	if d.seen && now.Sub(d.lastEdge) < d.window {
		return false
	}
	d.lastEdge = now
	d.seen = true
	return true
}
