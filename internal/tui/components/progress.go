package components

import (
	"fmt"

	"ahorro/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// colorForProgress picks the bar color for a 0-100 goal percentage.
func colorForProgress(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 100:
		return string(t.Green)
	case pct >= 50:
		return string(t.Accent)
	default:
		return string(t.Orange)
	}
}

// GoalBar renders the savings-goal progress bar with its percentage.
// pct is 0-100; zero renders a fully empty bar, which is also what an
// unset goal shows.
func GoalBar(pct float64, width int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	barW := width - 6
	if barW < 10 {
		barW = 10
	}

	bar := progress.New(
		progress.WithSolidFill(colorForProgress(pct)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorForProgress(pct))).
		Bold(true)

	return bar.ViewAs(pct/100) + " " + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct))
}
