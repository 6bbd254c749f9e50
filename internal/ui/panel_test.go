package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/smartscale/internal/hal"
	"github.com/muurk/smartscale/internal/hal/sim"
	"github.com/muurk/smartscale/internal/scale"
)

func trimmed(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimRight(l, " ")
	}
	return out
}

func TestScreenLines_MeasuringLayout(t *testing.T) {
	frame := []sim.TextRun{
		{X: 0, Y: 0, Size: 3, Text: "12g"},
		{X: 0, Y: 48, Size: 2, Text: ">10g"},
	}

	lines := ScreenLines(frame, 128, 64)
	require.Len(t, lines, 8)
	for _, l := range lines {
		assert.Len(t, []rune(l), 21)
	}
	assert.Equal(t, []string{"12g", "", "", "", "", "", ">10g", ""}, trimmed(lines))
}

func TestScreenLines_ClipsAndOverwrites(t *testing.T) {
	frame := []sim.TextRun{
		{X: 0, Y: 0, Size: 1, Text: "aaaa"},
		{X: 12, Y: 0, Size: 1, Text: "XY"},
		{X: 120, Y: 8, Size: 1, Text: "edge"},
		{X: 0, Y: 200, Size: 1, Text: "gone"},
	}

	lines := trimmed(ScreenLines(frame, 128, 64))
	assert.Equal(t, "aaXY", lines[0])
	assert.Equal(t, strings.Repeat(" ", 20)+"e", lines[1])
	for _, l := range lines {
		assert.NotContains(t, l, "gone")
	}
}

func TestRenderScreen_ContainsText(t *testing.T) {
	out := RenderScreen([]sim.TextRun{
		{X: 0, Y: 0, Size: 1, Text: "SET TARGET"},
		{X: 15, Y: 20, Size: 3, Text: "250"},
	}, 128, 64)

	assert.Contains(t, out, "SET TARGET")
	assert.Contains(t, out, "250")
}

func TestRenderSegments(t *testing.T) {
	out := RenderSegments(scale.Segments(130, 100, 10))

	assert.Equal(t, 10, strings.Count(out, LEDLit))
	assert.Equal(t, 0, strings.Count(out, LEDOff))

	out = RenderSegments(scale.Segments(40, 100, 10))
	assert.Equal(t, 4, strings.Count(out, LEDLit))
	assert.Equal(t, 6, strings.Count(out, LEDOff))
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "#00FF00", string(HexColor(hal.Green)))
	assert.Equal(t, "#FF0000", string(HexColor(hal.Red)))
}

func TestRenderFill(t *testing.T) {
	bar := progress.New(progress.WithWidth(10), progress.WithoutPercentage())

	assert.Contains(t, RenderFill(bar, scale.Segments(50, 100, 10)), "50%")
	assert.Contains(t, RenderFill(bar, scale.Segments(120, 100, 10)), "+2 over")
}

func TestRenderBench(t *testing.T) {
	out := RenderBench(Bench{Load: 12.5, Ready: false, Encoder: 42, Pressed: true, Brightness: 50})

	assert.Contains(t, out, "12.5 g")
	assert.Contains(t, out, "no")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "pressed")
}

func TestRenderLogs_KeepsNewest(t *testing.T) {
	var lines []string
	for i := 0; i < LogLines+3; i++ {
		lines = append(lines, strings.Repeat("x", i+1))
	}

	out := RenderLogs(lines, 0)
	assert.Len(t, strings.Split(out, "\n"), LogLines)
	assert.NotContains(t, out, "\nxxx\n")

	out = RenderLogs([]string{"abcdefgh"}, 4)
	assert.Contains(t, out, "abcd")
	assert.NotContains(t, out, "abcde")
}

func TestRenderScreen_MatchesScreenLines(t *testing.T) {
	frame := []sim.TextRun{
		{X: 0, Y: 0, Size: 1, Text: "SET TARGET"},
		{X: 15, Y: 20, Size: 3, Text: "250"},
		{X: 15, Y: 45, Size: 2, Text: "gram"},
	}

	out := RenderScreen(frame, 128, 64)
	for _, line := range trimmed(ScreenLines(frame, 128, 64)) {
		if line = strings.TrimSpace(line); line != "" {
			assert.Contains(t, out, line)
		}
	}
}
