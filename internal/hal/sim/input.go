package sim

import (
	"sync"

	"github.com/muurk/smartscale/internal/hal"
)

// Encoder is a rotary encoder counter.
type Encoder struct {
	mu    sync.Mutex
	count int
}

// Count returns the detent counter.
func (e *Encoder) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.count
}

// SetCount overwrites the detent counter.
func (e *Encoder) SetCount(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.count = n
}

// Turn moves the knob by delta detents.
func (e *Encoder) Turn(delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.count += delta
}

// Button is an active-low push switch. The zero value is released.
type Button struct {
	mu      sync.Mutex
	pressed bool
}

// Level reads Low while the button is held.
func (b *Button) Level() hal.Level {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pressed {
		return hal.Low
	}
	return hal.High
}

// Press holds the switch down.
func (b *Button) Press() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pressed = true
}

// Release lets the switch go.
func (b *Button) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pressed = false
}

// Pressed reports whether the switch is held.
func (b *Button) Pressed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pressed
}
