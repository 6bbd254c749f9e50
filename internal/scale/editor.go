package scale

import "github.com/muurk/smartscale/internal/hal"

// Editor maps the encoder count onto the target weight.
type Editor struct {
	encoder hal.Encoder
	lo, hi  int
}

// NewEditor creates an editor bounded to [lo, hi].
func NewEditor(encoder hal.Encoder, lo, hi int) *Editor {
	return &Editor{encoder: encoder, lo: lo, hi: hi}
}

// Seed positions the encoder at target so turning adjusts from there.
func (e *Editor) Seed(target int) {
	e.encoder.SetCount(target)
}

// Read returns the clamped encoder count. An out-of-range count is written
// back clamped so turning further the same way does not build up overshoot.
func (e *Editor) Read() int {
	count := e.encoder.Count()
	clamped := Clamp(count, e.lo, e.hi)
	if clamped != count {
		e.encoder.SetCount(clamped)
	}
	return clamped
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
