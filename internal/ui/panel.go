package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/smartscale/internal/hal"
	"github.com/muurk/smartscale/internal/hal/sim"
	"github.com/muurk/smartscale/internal/scale"
)

// ScreenLines lays a flushed frame onto a character grid of the panel's
// size. A run lands at the cell holding its pixel cursor; later runs
// overwrite earlier ones and text past the right edge is dropped. Lines are
// padded to the grid width.
func ScreenLines(frame []sim.TextRun, width, height int) []string {
	grid := layout(frame, width, height)
	lines := make([]string, len(grid.cells))
	for r := range lines {
		lines[r] = string(grid.cells[r])
	}
	return lines
}

// RenderScreen draws the frame inside the panel bezel, laid out as
// ScreenLines does. Text drawn at size 2 or larger is bold.
func RenderScreen(frame []sim.TextRun, width, height int) string {
	grid := layout(frame, width, height)
	lines := make([]string, len(grid.cells))
	for r, row := range grid.cells {
		var b strings.Builder
		start := 0
		for c := 1; c <= len(row); c++ {
			if c < len(row) && grid.large[r][c] == grid.large[r][start] {
				continue
			}
			span := string(row[start:c])
			if grid.large[r][start] {
				b.WriteString(OLEDLargeStyle.Render(span))
			} else {
				b.WriteString(OLEDTextStyle.Render(span))
			}
			start = c
		}
		lines[r] = b.String()
	}
	return OLEDBoxStyle().Render(strings.Join(lines, "\n"))
}

// layout places every run of frame on a grid of glyph cells.
func layout(frame []sim.TextRun, width, height int) *grid {
	g := newGrid(width/sim.CharWidth, height/sim.CharHeight)
	for _, run := range frame {
		g.put(run)
	}
	return g
}

type grid struct {
	cells [][]rune
	large [][]bool
}

func newGrid(cols, rows int) *grid {
	g := &grid{
		cells: make([][]rune, rows),
		large: make([][]bool, rows),
	}
	for r := 0; r < rows; r++ {
		g.cells[r] = []rune(strings.Repeat(" ", cols))
		g.large[r] = make([]bool, cols)
	}
	return g
}

func (g *grid) put(run sim.TextRun) {
	row, col := run.Y/sim.CharHeight, run.X/sim.CharWidth
	if row < 0 || row >= len(g.cells) {
		return
	}
	for _, ch := range run.Text {
		if col >= len(g.cells[row]) {
			return
		}
		if col >= 0 {
			g.cells[row][col] = ch
			g.large[row][col] = run.Size >= 2
		}
		col++
	}
}

// RenderSegments draws the LED bar, one glyph per segment in its colour.
func RenderSegments(colours []hal.Color) string {
	var b strings.Builder
	for i, c := range colours {
		if i > 0 {
			b.WriteString(" ")
		}
		if hal.IsOff(c) {
			b.WriteString(LEDOffStyle.Render(LEDOff))
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(HexColor(c)).Render(LEDLit))
	}
	return b.String()
}

// HexColor converts an LED colour to a terminal colour.
func HexColor(c hal.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}

// Bench is what the simulator knows about the physical setup.
type Bench struct {
	Load       float64 // grams on the pan
	Ready      bool    // load cell answering
	Encoder    int     // raw knob count
	Pressed    bool    // knob held down
	Brightness uint8
}

// BenchOf reads the bench state from a rig.
func BenchOf(rig *sim.Rig) Bench {
	return Bench{
		Load:       rig.Sensor.Load(),
		Ready:      rig.Sensor.IsReady(),
		Encoder:    rig.Encoder.Count(),
		Pressed:    rig.Button.Pressed(),
		Brightness: rig.LEDs.Brightness(),
	}
}

// RenderBench draws the bench panel.
func RenderBench(b Bench) string {
	ready := "yes"
	if !b.Ready {
		ready = "no"
	}
	button := "released"
	if b.Pressed {
		button = "pressed"
	}

	lines := []string{
		PanelTitleStyle.Render("BENCH"),
		detailLine("Pan", fmt.Sprintf("%.1f g", b.Load)),
		detailLine("Load cell", ready),
		detailLine("Knob", fmt.Sprintf("%d", b.Encoder)),
		detailLine("Button", button),
		detailLine("LED level", fmt.Sprintf("%d", b.Brightness)),
	}
	return PanelBoxStyle().Render(strings.Join(lines, "\n"))
}

// RenderFill draws how full the LED bar is as a gauge.
func RenderFill(bar progress.Model, colours []hal.Color) string {
	green, red := scale.CountLit(colours)
	percent := 0.0
	if n := len(colours); n > 0 {
		percent = float64(green) / float64(n)
	}
	label := fmt.Sprintf("%3.0f%%", percent*100)
	if red > 0 {
		label = ErrorMessageStyle.Render(fmt.Sprintf("+%d over", red))
	}
	return bar.ViewAs(percent) + "  " + label
}

// RenderLogs draws the newest lines of the log pane.
func RenderLogs(lines []string, width int) string {
	if len(lines) > LogLines {
		lines = lines[len(lines)-LogLines:]
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if width > 0 && len([]rune(line)) > width {
			line = string([]rune(line)[:width])
		}
		out[i] = LogLineStyle.Render(line)
	}
	return strings.Join(out, "\n")
}

func detailLine(key, value string) string {
	return lipgloss.NewStyle().Width(12).Render(key+":") + " " + ParamValueStyle.Render(value)
}
