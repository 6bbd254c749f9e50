package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/smartscale/internal/config"
	"github.com/muurk/smartscale/internal/hal"
)

func newTestSimulator(t *testing.T) *Simulator {
	t.Helper()
	m, err := NewSimulator(config.Default(), NewLogBuffer(LogLines))
	require.NoError(t, err)
	t.Cleanup(m.cancel)
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSimulator_BenchKeys(t *testing.T) {
	m := newTestSimulator(t)

	m.Update(keyRunes("+"))
	m.Update(keyRunes("+"))
	m.Update(keyRunes("]"))
	assert.Equal(t, 21.0, m.Rig().Sensor.Load())

	m.Update(keyRunes("-"))
	assert.Equal(t, 11.0, m.Rig().Sensor.Load())

	m.Update(keyRunes("0"))
	assert.Equal(t, 0.0, m.Rig().Sensor.Load())

	m.Update(keyRunes("r"))
	assert.False(t, m.Rig().Sensor.IsReady())
}

func TestSimulator_KnobKeys(t *testing.T) {
	m := newTestSimulator(t)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 10, m.Rig().Encoder.Count())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.NotNil(t, cmd)
	assert.Equal(t, hal.Low, m.Rig().Button.Level())

	m.Update(releaseMsg{})
	assert.Equal(t, hal.High, m.Rig().Button.Level())
}

func TestSimulator_QuitCancelsController(t *testing.T) {
	m := newTestSimulator(t)

	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.ErrorIs(t, m.ctx.Err(), context.Canceled)
	assert.Empty(t, m.View())
}

func TestSimulator_ControllerExit(t *testing.T) {
	m := newTestSimulator(t)

	m.Update(appDoneMsg{err: context.Canceled})
	assert.NoError(t, m.Err)

	m = newTestSimulator(t)
	initErr := &hal.InitError{Device: "display", Err: hal.ErrDisplayNotFound}
	m.Update(appDoneMsg{err: initErr})
	assert.True(t, errors.Is(m.Err, hal.ErrDisplayNotFound))
}

func TestSimulator_View(t *testing.T) {
	m := newTestSimulator(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	out := m.View()
	assert.Contains(t, out, "SMART SCALE")
	assert.Contains(t, out, "BENCH")
	assert.Contains(t, out, "quit")
}
