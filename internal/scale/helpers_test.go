package scale

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/muurk/smartscale/internal/config"
	"github.com/muurk/smartscale/internal/hal/sim"
)

// bench is a controller on a simulated board with a manual clock.
type bench struct {
	t     *testing.T
	app   *App
	rig   *sim.Rig
	clock *sim.ManualClock
}

// newBench builds a started controller. The startup waits are shortened so
// tests only pay for the sequence when they ask for it.
func newBench(t *testing.T, mutate ...func(*config.Config)) *bench {
	t.Helper()

	cfg := config.Default()
	cfg.Startup.IntroDuration = 0
	cfg.Startup.ReadyHold = 0
	for _, m := range mutate {
		m(cfg)
	}

	clock := sim.NewManualClock()
	rig := sim.NewRig(cfg, clock)
	app, err := New(cfg, rig.Drivers())
	require.NoError(t, err)
	require.NoError(t, app.Start(context.Background()))

	return &bench{t: t, app: app, rig: rig, clock: clock}
}

// tick advances the clock by d and runs one tick.
func (b *bench) tick(d time.Duration) {
	b.clock.Advance(d)
	b.app.Tick()
}

// ticks runs n ticks, each d apart.
func (b *bench) ticks(n int, d time.Duration) {
	for i := 0; i < n; i++ {
		b.tick(d)
	}
}

// press clicks the button well clear of the debounce window.
func (b *bench) press() {
	b.clock.Advance(time.Second)
	b.rig.Button.Press()
	b.app.Tick()
	b.rig.Button.Release()
	b.tick(time.Millisecond)
}

// settle lets a sample interval pass so the latest load is read.
func (b *bench) settle() {
	b.tick(time.Second)
}
