package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/goalsheet/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar with hints on the left
// and info on the right.
func RenderStatusBar(width int, hints, info string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " " + hints
	right := info + " "

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		return style.Render(left)
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
