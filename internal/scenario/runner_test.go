package scenario

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/smartscale/internal/config"
	"github.com/muurk/smartscale/internal/hal"
	"github.com/muurk/smartscale/internal/scale"
)

func quickConfig() *config.Config {
	cfg := config.Default()
	cfg.Startup.IntroDuration = 0
	cfg.Startup.ReadyHold = 0
	return cfg
}

func TestPlay_PourToTarget(t *testing.T) {
	script, err := Parse([]byte(`
name: pour-to-target
duration: 2s
steps:
  - at: 500ms
    press: true
  - at: 800ms
    turn: 40
  - at: 1100ms
    press: true
  - at: 1300ms
    weight: 25.4
`))
	require.NoError(t, err)

	res, err := Play(context.Background(), quickConfig(), script)
	require.NoError(t, err)

	assert.Equal(t, "pour-to-target", res.Name)
	assert.Equal(t, scale.ModeMeasuring, res.State.Mode)
	assert.Equal(t, 50, res.State.Target)
	assert.InDelta(t, 25.4, res.State.Weight, 1e-9)
	assert.Equal(t, 2, res.Stats.Transitions)
	assert.Equal(t, []string{"25g", ">50g"}, res.Screen)

	green, red := scale.CountLit(res.LEDs)
	assert.Equal(t, 5, green)
	assert.Equal(t, 0, red)
}

func TestPlay_StaysInSettingMode(t *testing.T) {
	script, err := Parse([]byte(`
name: adjust
duration: 1s
steps:
  - at: 100ms
    press: true
  - at: 200ms
    turn: -100
`))
	require.NoError(t, err)

	res, err := Play(context.Background(), quickConfig(), script)
	require.NoError(t, err)

	assert.Equal(t, scale.ModeSetting, res.State.Mode)
	assert.Equal(t, 1, res.State.Target)
	assert.Equal(t, []string{"SET TARGET", "1", "gram"}, res.Screen)
	for _, c := range res.LEDs {
		assert.Equal(t, hal.Off, c)
	}
}

func TestPlay_SensorDropout(t *testing.T) {
	script, err := Parse([]byte(`
name: dropout
duration: 1s
steps:
  - at: 0s
    weight: 7
  - at: 300ms
    ready: false
  - at: 310ms
    weight: 90
`))
	require.NoError(t, err)

	res, err := Play(context.Background(), quickConfig(), script)
	require.NoError(t, err)

	assert.Equal(t, 7.0, res.State.Weight)
}

func TestPlay_Cancelled(t *testing.T) {
	script := &Script{Name: "c", Duration: 1, Tick: 1}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Play(ctx, quickConfig(), script)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlay_Testdata(t *testing.T) {
	script, err := Load("testdata/pour-to-target.yaml")
	require.NoError(t, err)

	res, err := Play(context.Background(), quickConfig(), script)
	require.NoError(t, err)

	assert.Equal(t, 250, res.State.Target)
	assert.Equal(t, 300.0, res.State.Weight)

	// 120% of target: a full bar with two segments over.
	green, red := scale.CountLit(res.LEDs)
	assert.Equal(t, 8, green)
	assert.Equal(t, 2, red)
}
