package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
	OLEDColor    = lipgloss.Color("#8BE9FD") // Cyan - panel pixels
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
	LogLines         = 8   // Log lines shown by the simulator
)

// LED glyphs
const (
	LEDLit = "●"
	LEDOff = "○"
)

// Result markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
)

var (
	// HeaderTitleStyle is for the banner title (e.g., "SCENARIO")
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(2)

	// HeaderCommandStyle is for the command path (e.g., "smartscale run")
	HeaderCommandStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// ParamKeyStyle is for parameter and detail keys
	ParamKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(2)

	// ParamValueStyle is for parameter and detail values
	ParamValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// OLEDTextStyle is for size 1 panel text
	OLEDTextStyle = lipgloss.NewStyle().
			Foreground(OLEDColor)

	// OLEDLargeStyle is for panel text drawn at size 2 and up
	OLEDLargeStyle = lipgloss.NewStyle().
			Foreground(OLEDColor).
			Bold(true)

	// LEDOffStyle is for dark LED segments
	LEDOffStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// PanelTitleStyle is for the small titles above simulator panels
	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Bold(true)

	// LogLineStyle is for lines in the log pane
	LogLineStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// HelpStyle pads the key help line
	HelpStyle = lipgloss.NewStyle().
			PaddingLeft(1)
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _ := GetTerminalSize()
	return width
}

// GetTerminalSize returns the current terminal width and height
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, 24 // Default fallback
	}
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if width > MaxContentWidth {
		width = MaxContentWidth
	}
	return width, height
}

// OLEDBoxStyle returns the bezel drawn around the panel
func OLEDBoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(0, 1)
}

// PanelBoxStyle returns the border for side panels
func PanelBoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Padding(0, 1)
}

// HeaderBorderStyle returns the border style for command headers
func HeaderBorderStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2) // Account for border characters
}

// ResultBoxStyle returns the border style for result boxes
func ResultBoxStyle(width int, border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(border).
		Width(width - 2).
		Padding(1, 2)
}
