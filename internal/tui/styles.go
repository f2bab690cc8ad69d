package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	colorPrimary = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")

	// Title
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Section label
	styleLabel = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Input box
	styleInput = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	// Preview box
	stylePreview = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Error text
	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	// Status bar
	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// clipLines keeps at most max lines of s, replacing the cut content
// with an ellipsis line.
func clipLines(s string, max int) string {
	if max <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= max {
		return s
	}
	return strings.Join(lines[:max-1], "\n") + "\n..."
}
