package sim

import (
	"errors"
	"sync"

	"github.com/muurk/smartscale/internal/hal"
)

// ErrStripFault is returned by Show when a fault has been injected.
var ErrStripFault = errors.New("led strip: data line fault")

// LEDStrip buffers segment colours and latches them on Show.
type LEDStrip struct {
	mu         sync.Mutex
	pending    []hal.Color
	shown      []hal.Color
	brightness uint8
	shows      int
	fault      bool
}

// NewLEDStrip creates a strip of n segments, all off.
func NewLEDStrip(n int) *LEDStrip {
	s := &LEDStrip{
		pending: make([]hal.Color, n),
		shown:   make([]hal.Color, n),
	}
	for i := range s.pending {
		s.pending[i] = hal.Off
		s.shown[i] = hal.Off
	}
	return s
}

// Len returns the number of segments.
func (s *LEDStrip) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// SetBrightness records the global brightness.
func (s *LEDStrip) SetBrightness(b uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brightness = b
}

// Set colours segment i in the pending buffer. Out-of-range indexes are ignored.
func (s *LEDStrip) Set(i int, c hal.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.pending) {
		return
	}
	s.pending[i] = c
}

// Clear turns every pending segment off.
func (s *LEDStrip) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.pending {
		s.pending[i] = hal.Off
	}
}

// Show latches the pending buffer, or fails with ErrStripFault.
func (s *LEDStrip) Show() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fault {
		return ErrStripFault
	}
	copy(s.shown, s.pending)
	s.shows++
	return nil
}

// Shown returns a copy of the colours latched by the last Show.
func (s *LEDStrip) Shown() []hal.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]hal.Color, len(s.shown))
	copy(out, s.shown)
	return out
}

// Shows returns the number of successful Show calls.
func (s *LEDStrip) Shows() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shows
}

// Brightness returns the configured brightness.
func (s *LEDStrip) Brightness() uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.brightness
}

// SetFault makes Show fail until cleared.
func (s *LEDStrip) SetFault(fault bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fault = fault
}
