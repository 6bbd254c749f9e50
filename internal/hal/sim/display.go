package sim

import (
	"errors"
	"strings"
	"sync"

	"github.com/muurk/smartscale/internal/hal"
)

// Glyph cell of the built-in 5x7 font at text size 1, including spacing.
const (
	CharWidth  = 6
	CharHeight = 8
)

// ErrPanelFault is returned by Flush when a fault has been injected.
var ErrPanelFault = errors.New("display: bus write failed")

// TextRun is one Print call placed on the panel.
type TextRun struct {
	X, Y int
	Size int
	Text string
}

// Display records text drawn into an off-screen buffer and latches it on
// Flush. It keeps text rather than pixels; the front panel lays the runs out.
type Display struct {
	mu      sync.Mutex
	width   int
	height  int
	missing bool
	fault   bool
	began   bool
	x, y    int
	size    int
	buffer  []TextRun
	frame   []TextRun
	flushes int
}

// NewDisplay creates a panel of the given pixel size.
func NewDisplay(width, height int) *Display {
	return &Display{width: width, height: height, size: 1}
}

// Begin fails with hal.ErrDisplayNotFound when the panel is marked missing.
func (d *Display) Begin() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.missing {
		return hal.ErrDisplayNotFound
	}
	d.began = true
	return nil
}

// Clear empties the off-screen buffer.
func (d *Display) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.buffer = nil
}

// SetTextSize sets the glyph scale for following prints. Sizes below 1 become 1.
func (d *Display) SetTextSize(size int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if size < 1 {
		size = 1
	}
	d.size = size
}

// SetCursor moves the text cursor to pixel (x, y).
func (d *Display) SetCursor(x, y int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.x, d.y = x, y
}

// Print buffers s at the cursor and advances it. A newline returns to
// column 0 on the next text line.
func (d *Display) Print(s string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if i > 0 {
			d.x = 0
			d.y += CharHeight * d.size
		}
		if line == "" {
			continue
		}
		d.buffer = append(d.buffer, TextRun{X: d.x, Y: d.y, Size: d.size, Text: line})
		d.x += len(line) * CharWidth * d.size
	}
}

// Flush latches the buffer as the visible frame, or fails with ErrPanelFault.
func (d *Display) Flush() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fault {
		return ErrPanelFault
	}
	d.frame = append(d.frame[:0:0], d.buffer...)
	d.flushes++
	return nil
}

// Size returns the panel size in pixels.
func (d *Display) Size() (width, height int) {
	return d.width, d.height
}

// Frame returns the runs latched by the last Flush.
func (d *Display) Frame() []TextRun {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]TextRun, len(d.frame))
	copy(out, d.frame)
	return out
}

// Text returns the text of the last flushed frame, one entry per run.
func (d *Display) Text() []string {
	frame := d.Frame()
	out := make([]string, len(frame))
	for i, run := range frame {
		out[i] = run.Text
	}
	return out
}

// Flushes returns the number of successful Flush calls.
func (d *Display) Flushes() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.flushes
}

// Began reports whether Begin succeeded.
func (d *Display) Began() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.began
}

// SetMissing makes Begin fail as if no panel were attached.
func (d *Display) SetMissing(missing bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.missing = missing
}

// SetFault makes Flush fail until cleared.
func (d *Display) SetFault(fault bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fault = fault
}
