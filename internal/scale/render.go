package scale

import (
	"fmt"
	"strconv"

	"github.com/muurk/smartscale/internal/hal"
)

// Display layout. Coordinates are pixels on the 128x64 panel.
const (
	unitSuffix   = "g"
	unitLabel    = "gram"
	settingLabel = "SET TARGET"
)

// Truncate converts a weight to whole grams, rounding toward zero.
func Truncate(weight float64) int {
	return int(weight)
}

// RenderCache remembers what the display currently shows.
type RenderCache struct {
	Weight int
	Target int
	Mode   Mode
	Valid  bool
}

// Invalidate forces the next Render to draw.
func (c *RenderCache) Invalidate() {
	c.Valid = false
}

// Matches reports whether the display already shows these values. The
// weight is not shown in setting mode and is ignored there.
func (c RenderCache) Matches(mode Mode, weight, target int) bool {
	if !c.Valid || c.Mode != mode || c.Target != target {
		return false
	}
	return mode == ModeSetting || c.Weight == weight
}

// Renderer draws the two screen layouts, skipping frames that would not
// change the panel.
type Renderer struct {
	display hal.Display
	cache   RenderCache
}

// NewRenderer creates a renderer with an empty cache.
func NewRenderer(display hal.Display) *Renderer {
	return &Renderer{display: display}
}

// Invalidate forces the next Render to draw.
func (r *Renderer) Invalidate() {
	r.cache.Invalidate()
}

// Cache returns the values last drawn.
func (r *Renderer) Cache() RenderCache {
	return r.cache
}

// Render draws the screen for mode if it differs from the cached frame.
// It reports whether a frame was flushed. The cache is only updated after
// a successful flush, so a failed flush is retried on the next call.
func (r *Renderer) Render(mode Mode, weight, target int) (bool, error) {
	if r.cache.Matches(mode, weight, target) {
		return false, nil
	}

	r.display.Clear()
	switch mode {
	case ModeSetting:
		r.drawSetting(target)
	default:
		r.drawMeasuring(weight, target)
	}

	if err := r.display.Flush(); err != nil {
		return false, fmt.Errorf("display flush: %w", err)
	}

	r.cache = RenderCache{Weight: weight, Target: target, Mode: mode, Valid: true}
	return true, nil
}

func (r *Renderer) drawMeasuring(weight, target int) {
	d := r.display

	d.SetTextSize(3)
	d.SetCursor(0, 0)
	d.Print(strconv.Itoa(weight) + unitSuffix)

	d.SetTextSize(2)
	d.SetCursor(0, 48)
	d.Print(">" + strconv.Itoa(target) + unitSuffix)
}

func (r *Renderer) drawSetting(target int) {
	d := r.display

	d.SetTextSize(1)
	d.SetCursor(0, 0)
	d.Print(settingLabel)

	d.SetTextSize(3)
	d.SetCursor(15, 20)
	d.Print(strconv.Itoa(target))

	d.SetTextSize(2)
	d.SetCursor(15, 45)
	d.Print(unitLabel)
}
