package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Horizontal is the rule character used under headers
const Horizontal = "─"

// Color palette
const (
	ColorHeader  = "252"
	ColorAWS     = "214"
	ColorRunning = "82"
	ColorStopped = "245"
	ColorMuted   = "240"
)

// Shared styles
var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHeader))
	AWSStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAWS))
	RunningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRunning))
	StoppedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorStopped))
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
)

// labelWidth is the column width of field labels in status output
const labelWidth = 10

// Rule returns a muted horizontal rule of the given width
func Rule(width int) string {
	return MutedStyle.Render(strings.Repeat(Horizontal, width))
}

// Field renders an aligned "Label: value" line
func Field(label, value string) string {
	return padRight(label+":", labelWidth) + value
}

// padRight pads a string to the specified display width using runewidth
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return runewidth.Truncate(s, width, "...")
	}
	return s + strings.Repeat(" ", width-sw)
}
