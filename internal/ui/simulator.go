package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/smartscale/internal/config"
	"github.com/muurk/smartscale/internal/hal"
	"github.com/muurk/smartscale/internal/hal/sim"
	"github.com/muurk/smartscale/internal/scale"
)

// Simulator timing
const (
	RefreshInterval = 50 * time.Millisecond // view redraw period
	ClickDuration   = 50 * time.Millisecond // how long a key press holds the knob down
	LoopPace        = time.Millisecond      // sleep between controller ticks
)

// Messages
type refreshMsg struct{}
type releaseMsg struct{}
type appDoneMsg struct{ err error }

// simKeyMap defines key bindings for the simulator
type simKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Click    key.Binding
	AddTen   key.Binding
	SubTen   key.Binding
	AddOne   key.Binding
	SubOne   key.Binding
	Clear    key.Binding
	Ready    key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k simKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Click, k.AddTen, k.SubTen, k.Clear, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k simKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Click},
		{k.AddTen, k.SubTen, k.AddOne, k.SubOne, k.Clear, k.Ready},
		{k.Quit},
	}
}

func newSimKeyMap() simKeyMap {
	return simKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "knob +1"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "knob -1"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "knob +10"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "knob -10"),
		),
		Click: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "click"),
		),
		AddTen: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "add 10g"),
		),
		SubTen: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "take 10g"),
		),
		AddOne: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "add 1g"),
		),
		SubOne: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "take 1g"),
		),
		Clear: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "empty pan"),
		),
		Ready: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "toggle load cell"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Simulator is the Bubble Tea model for the interactive scale.
type Simulator struct {
	cfg  *config.Config
	rig  *sim.Rig
	app  *scale.App
	logs *LogBuffer

	ctx    context.Context
	cancel context.CancelFunc

	keys simKeyMap
	help help.Model
	bar  progress.Model

	Width  int
	Height int

	// Err is the controller's exit error, if it stopped on its own.
	Err      error
	quitting bool
}

// NewSimulator builds a controller for cfg on a simulated board running on
// the wall clock. logs receives the log output shown in the log pane and
// may be nil.
func NewSimulator(cfg *config.Config, logs *LogBuffer) (*Simulator, error) {
	rig := sim.NewRig(cfg, hal.SystemClock{})
	app, err := scale.New(cfg, rig.Drivers(), scale.WithPace(LoopPace))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	width, height := GetTerminalSize()
	return &Simulator{
		cfg:    cfg,
		rig:    rig,
		app:    app,
		logs:   logs,
		ctx:    ctx,
		cancel: cancel,
		keys:   newSimKeyMap(),
		help:   help.New(),
		bar: progress.New(
			progress.WithSolidFill(string(SuccessColor)),
			progress.WithoutPercentage(),
			progress.WithWidth(30),
		),
		Width:  width,
		Height: height,
	}, nil
}

// Rig exposes the simulated board.
func (m *Simulator) Rig() *sim.Rig {
	return m.rig
}

// Init starts the controller and the refresh timer.
func (m *Simulator) Init() tea.Cmd {
	return tea.Batch(m.runApp(), refresh())
}

// runApp runs startup and then the control loop until the context ends.
func (m *Simulator) runApp() tea.Cmd {
	return func() tea.Msg {
		if err := m.app.Start(m.ctx); err != nil {
			return appDoneMsg{err: err}
		}
		return appDoneMsg{err: m.app.Run(m.ctx)}
	}
}

func refresh() tea.Cmd {
	return tea.Tick(RefreshInterval, func(time.Time) tea.Msg {
		return refreshMsg{}
	})
}

// Update handles key presses, timers and controller exit.
func (m *Simulator) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case refreshMsg:
		if m.quitting {
			return m, nil
		}
		return m, refresh()

	case releaseMsg:
		m.rig.Button.Release()
		return m, nil

	case appDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.Err = msg.err
		}
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Simulator) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.rig.Encoder.Turn(1)
	case key.Matches(msg, m.keys.Down):
		m.rig.Encoder.Turn(-1)
	case key.Matches(msg, m.keys.PageUp):
		m.rig.Encoder.Turn(10)
	case key.Matches(msg, m.keys.PageDown):
		m.rig.Encoder.Turn(-10)
	case key.Matches(msg, m.keys.Click):
		m.rig.Button.Press()
		return m, tea.Tick(ClickDuration, func(time.Time) tea.Msg {
			return releaseMsg{}
		})
	case key.Matches(msg, m.keys.AddTen):
		m.rig.Sensor.Add(10)
	case key.Matches(msg, m.keys.SubTen):
		m.rig.Sensor.Add(-10)
	case key.Matches(msg, m.keys.AddOne):
		m.rig.Sensor.Add(1)
	case key.Matches(msg, m.keys.SubOne):
		m.rig.Sensor.Add(-1)
	case key.Matches(msg, m.keys.Clear):
		m.rig.Sensor.Place(0)
	case key.Matches(msg, m.keys.Ready):
		m.rig.Sensor.SetReady(!m.rig.Sensor.IsReady())
	}
	return m, nil
}

// View renders the panel, LED bar, bench and log pane.
func (m *Simulator) View() string {
	if m.quitting {
		return ""
	}

	width, height := m.rig.Display.Size()
	screen := RenderScreen(m.rig.Display.Frame(), width, height)
	bench := RenderBench(BenchOf(m.rig))
	top := lipgloss.JoinHorizontal(lipgloss.Top, screen, " ", bench)

	leds := m.rig.LEDs.Shown()
	var b strings.Builder
	b.WriteString(HeaderTitleStyle.Render("SMART SCALE"))
	b.WriteString(HeaderCommandStyle.Render(fmt.Sprintf("%dx%d panel, %d LEDs", width, height, len(leds))))
	b.WriteString("\n\n")
	b.WriteString(top)
	b.WriteString("\n\n")
	b.WriteString(" " + RenderSegments(leds))
	b.WriteString("\n ")
	b.WriteString(RenderFill(m.bar, leds))
	b.WriteString("\n\n")
	if m.logs != nil {
		b.WriteString(PanelTitleStyle.Render("LOG"))
		b.WriteString("\n")
		b.WriteString(RenderLogs(m.logs.Lines(), m.Width))
		b.WriteString("\n\n")
	}
	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}
