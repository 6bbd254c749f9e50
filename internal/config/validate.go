package config

import (
	"fmt"
	"strings"
)

// ValidationError lists every problem found in a configuration.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", strings.Join(e.Problems, "; "))
}

// Validate checks the configuration for values the controller cannot run with.
func (c *Config) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		add("display size %dx%d must be positive", c.Display.Width, c.Display.Height)
	}
	if c.LEDs.Count < 1 || c.LEDs.Count > 64 {
		add("leds.count %d out of range 1-64", c.LEDs.Count)
	}
	if c.Sensor.CalibrationFactor == 0 {
		add("sensor.calibration_factor must not be zero")
	}
	if c.Sensor.SampleInterval <= 0 {
		add("sensor.sample_interval must be positive")
	}
	if c.Sensor.SampleCount < 1 {
		add("sensor.sample_count must be at least 1")
	}
	if c.Sensor.TareSamples < 1 {
		add("sensor.tare_samples must be at least 1")
	}
	if c.Input.DebounceWindow < 0 {
		add("input.debounce_window must not be negative")
	}
	if c.Target.Min < 1 {
		add("target.min %d must be at least 1", c.Target.Min)
	}
	if c.Target.Max < c.Target.Min {
		add("target.max %d below target.min %d", c.Target.Max, c.Target.Min)
	}
	if c.Target.Initial < c.Target.Min || c.Target.Initial > c.Target.Max {
		add("target.initial %d outside [%d, %d]", c.Target.Initial, c.Target.Min, c.Target.Max)
	}
	if c.Startup.IntroDuration < 0 || c.Startup.ReadyHold < 0 {
		add("startup durations must not be negative")
	}
	if c.Startup.IntroDuration > 0 && c.Startup.IntroFrame <= 0 {
		add("startup.intro_frame must be positive when the intro runs")
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
