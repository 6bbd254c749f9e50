package ui

import (
	"strings"
	"sync"
)

// LogBuffer is an io.Writer that keeps the last lines written to it. The
// logger writes from the controller goroutine while the view reads.
type LogBuffer struct {
	mu      sync.Mutex
	max     int
	lines   []string
	partial string
}

// NewLogBuffer keeps up to max lines.
func NewLogBuffer(max int) *LogBuffer {
	if max < 1 {
		max = 1
	}
	return &LogBuffer{max: max}
}

// Write implements io.Writer. Text after the last newline is held until the
// line completes.
func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	text := b.partial + string(p)
	parts := strings.Split(text, "\n")
	b.partial = parts[len(parts)-1]
	for _, line := range parts[:len(parts)-1] {
		b.lines = append(b.lines, strings.TrimRight(line, "\r"))
	}
	if over := len(b.lines) - b.max; over > 0 {
		b.lines = append([]string(nil), b.lines[over:]...)
	}
	return len(p), nil
}

// Lines returns the kept lines, oldest first.
func (b *LogBuffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}
