package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ahorro/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar with key hints on the left
// and an optional note (e.g. the last save result) on the right.
func RenderStatusBar(width int, note string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [a]dd  [g]oal  [c]lear  [q]uit"
	right := ""
	if note != "" {
		right = note + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
