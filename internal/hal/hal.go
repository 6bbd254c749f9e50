package hal

import "time"

// Level is the logic level read from a digital input.
type Level bool

const (
	// Low is a pin pulled to ground; a pressed active-low switch reads Low.
	Low Level = false
	// High is a pin at supply voltage; a released switch reads High.
	High Level = true
)

// String returns "high" or "low".
func (l Level) String() string {
	if l {
		return "high"
	}
	return "low"
}

// Sensor is the load-cell amplifier.
type Sensor interface {
	// IsReady reports whether a conversion is available.
	IsReady() bool
	// ReadUnits returns the average of samples conversions, tared and
	// divided by the scale factor.
	ReadUnits(samples int) float64
	// Tare records the current raw reading as zero.
	Tare(samples int)
	// SetScale sets the raw-counts-per-unit factor.
	SetScale(factor float64)
}

// Display is a pixel display with text drawing primitives. Drawing calls
// only touch the off-screen buffer; Flush pushes it to the panel.
type Display interface {
	// Begin initialises the panel. An error means the display was not
	// detected and the device is unusable.
	Begin() error
	Clear()
	SetTextSize(size int)
	SetCursor(x, y int)
	Print(s string)
	Flush() error
}

// Encoder is the rotary encoder counter.
type Encoder interface {
	Count() int
	SetCount(n int)
}

// Button is the encoder push switch. It is wired active low with a pull-up,
// so a pressed switch reads Low.
type Button interface {
	Level() Level
}

// LEDStrip is an addressable LED bar.
type LEDStrip interface {
	Len() int
	SetBrightness(b uint8)
	Set(i int, c Color)
	Clear()
	Show() error
}

// Clock is a monotonic time source.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock reads the process clock.
type SystemClock struct{}

// Now returns the wall clock time.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep blocks for d.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Drivers bundles the hardware the controller needs.
type Drivers struct {
	Sensor  Sensor
	Display Display
	Encoder Encoder
	Button  Button
	LEDs    LEDStrip
	Clock   Clock
}

// Missing returns the names of unset drivers.
func (d Drivers) Missing() []string {
	var missing []string
	if d.Sensor == nil {
		missing = append(missing, "sensor")
	}
	if d.Display == nil {
		missing = append(missing, "display")
	}
	if d.Encoder == nil {
		missing = append(missing, "encoder")
	}
	if d.Button == nil {
		missing = append(missing, "button")
	}
	if d.LEDs == nil {
		missing = append(missing, "leds")
	}
	if d.Clock == nil {
		missing = append(missing, "clock")
	}
	return missing
}
