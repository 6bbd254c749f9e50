package scale

import (
	"fmt"

	"github.com/muurk/smartscale/internal/hal"
)

// Segments maps weight against target onto n LED colours.
//
// Up to the target, one segment per 10% is green. Past the target all n
// segments are green and then one per 10% of overshoot is turned red,
// starting from segment 0. Both counts saturate at n. A target of zero or
// less lights nothing.
func Segments(weight, target, n int) []hal.Color {
	out := make([]hal.Color, n)
	for i := range out {
		out[i] = hal.Off
	}

	percentage := Percentage(weight, target)
	if percentage <= 100 {
		for i := 0; i < Clamp(int(percentage/10), 0, n); i++ {
			out[i] = hal.Green
		}
		return out
	}

	for i := range out {
		out[i] = hal.Green
	}
	for i := 0; i < Clamp(int((percentage-100)/10), 0, n); i++ {
		out[i] = hal.Red
	}
	return out
}

// Percentage returns weight as a percentage of target, or 0 for a
// non-positive target.
func Percentage(weight, target int) float64 {
	if target <= 0 {
		return 0
	}
	// Multiplying first keeps exact multiples of 10% exact.
	return float64(weight) * 100 / float64(target)
}

// CountLit returns the number of green and red segments in colours.
func CountLit(colours []hal.Color) (green, red int) {
	for _, c := range colours {
		switch c {
		case hal.Green:
			green++
		case hal.Red:
			red++
		}
	}
	return green, red
}

// LedCache remembers the weight the LED bar was last computed for.
type LedCache struct {
	Weight int
	Valid  bool
}

// LedFeedback drives the LED bar.
type LedFeedback struct {
	strip hal.LEDStrip
	cache LedCache
}

// NewLedFeedback creates LED feedback for strip with an empty cache.
func NewLedFeedback(strip hal.LEDStrip) *LedFeedback {
	return &LedFeedback{strip: strip}
}

// Invalidate forces the next Update to recompute.
func (l *LedFeedback) Invalidate() {
	l.cache.Valid = false
}

// Cache returns the weight last shown.
func (l *LedFeedback) Cache() LedCache {
	return l.cache
}

// Update recomputes and shows the bar if weight changed since the last
// successful update. It reports whether the strip was pushed.
func (l *LedFeedback) Update(weight, target int) (bool, error) {
	if l.cache.Valid && l.cache.Weight == weight {
		return false, nil
	}

	for i, c := range Segments(weight, target, l.strip.Len()) {
		l.strip.Set(i, c)
	}
	if err := l.strip.Show(); err != nil {
		return false, fmt.Errorf("led show: %w", err)
	}

	l.cache = LedCache{Weight: weight, Valid: true}
	return true, nil
}

// Off turns every segment off and invalidates the cache.
func (l *LedFeedback) Off() error {
	l.cache.Valid = false
	l.strip.Clear()
	if err := l.strip.Show(); err != nil {
		return fmt.Errorf("led show: %w", err)
	}
	return nil
}
