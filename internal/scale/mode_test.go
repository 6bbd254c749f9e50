package scale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/muurk/smartscale/internal/hal"
	"github.com/muurk/smartscale/internal/hal/sim"
)

func TestMode_String(t *testing.T) {
	assert.Equal(t, "measuring", ModeMeasuring.String())
	assert.Equal(t, "setting", ModeSetting.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}

func TestMode_Next(t *testing.T) {
	assert.Equal(t, ModeSetting, ModeMeasuring.Next())
	assert.Equal(t, ModeMeasuring, ModeSetting.Next())
}

func TestDebouncer_FirstPressCounts(t *testing.T) {
	d := NewDebouncer(200 * time.Millisecond)
	assert.True(t, d.Edge(hal.Low, sim.Epoch))
}

func TestDebouncer_HeldButtonIsOneEdge(t *testing.T) {
	d := NewDebouncer(200 * time.Millisecond)
	now := sim.Epoch

	edges := 0
	for i := 0; i < 1000; i++ {
		if d.Edge(hal.Low, now) {
			edges++
		}
		now = now.Add(time.Millisecond)
	}
	assert.Equal(t, 1, edges)
}

func TestDebouncer_Window(t *testing.T) {
	tests := []struct {
		name   string
		second time.Duration
		want   bool
	}{
		{"inside window", 199 * time.Millisecond, false},
		{"at window", 200 * time.Millisecond, true},
		{"after window", 350 * time.Millisecond, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDebouncer(200 * time.Millisecond)
			assert.True(t, d.Edge(hal.Low, sim.Epoch))
			assert.False(t, d.Edge(hal.High, sim.Epoch.Add(time.Millisecond)))
			assert.Equal(t, tt.want, d.Edge(hal.Low, sim.Epoch.Add(tt.second)))
		})
	}
}

func TestDebouncer_RejectedPressIsNotQueued(t *testing.T) {
	d := NewDebouncer(200 * time.Millisecond)
	now := sim.Epoch

	assert.True(t, d.Edge(hal.Low, now))
	assert.False(t, d.Edge(hal.High, now.Add(10*time.Millisecond)))
	assert.False(t, d.Edge(hal.Low, now.Add(20*time.Millisecond)))

	// Holding past the window does not replay the dropped press.
	assert.False(t, d.Edge(hal.Low, now.Add(500*time.Millisecond)))
}

func TestApp_FlickerWithinWindowTogglesOnce(t *testing.T) {
	b := newBench(t)
	b.tick(time.Second)
	before := b.app.Stats().Transitions

	// 40 level flips, 4ms apart: 160ms, all inside the 200ms window.
	for i := 0; i < 40; i++ {
		if i%2 == 0 {
			b.rig.Button.Press()
		} else {
			b.rig.Button.Release()
		}
		b.tick(4 * time.Millisecond)
	}

	assert.Equal(t, 1, b.app.Stats().Transitions-before)
	assert.Equal(t, ModeSetting, b.app.State().Mode)
}
