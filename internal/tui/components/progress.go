package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/goalsheet/internal/tui/theme"
)

// GoalBar renders a gradient progress bar toward the goal followed by its
// percentage. pct is clamped to [0, 1].
func GoalBar(pct float64, width int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	barW := width - 6
	if barW < 4 {
		barW = 4
	}

	bar := progress.New(
		progress.WithGradient(string(t.ProgressFrom), string(t.ProgressTo)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctColor := t.Accent
	if pct >= 1 {
		pctColor = t.Positive
	}
	pctStyle := lipgloss.NewStyle().Foreground(pctColor).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return bar.ViewAs(pct) + spaceStyle.Render(" ") + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
