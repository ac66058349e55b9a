// Package components provides reusable TUI widgets for the goalsheet editor.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/goalsheet/internal/tui/theme"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// Metric is one labeled figure in a MetricCardRow.
type Metric struct {
	Label string
	Value string
	Color lipgloss.Color // empty uses the primary text color
}

// MetricCard renders a small card with a label over a bold value.
// outerWidth is the total rendered width including border.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	color := m.Color
	if color == "" {
		color = t.TextPrimary
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(contentWidth).
		Padding(0, 1)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)

	return cardStyle.Render(labelStyle.Render(m.Label) + "\n" + valueStyle.Render(m.Value))
}

// MetricCardRow renders metric cards side by side, summing to totalWidth.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}
	widths := LayoutRow(totalWidth, len(metrics))
	rendered := make([]string, len(metrics))
	for i, m := range metrics {
		rendered[i] = MetricCard(m, widths[i])
	}
	return CardRow(rendered)
}

// ContentCard renders a bordered content card with an optional title.
// outerWidth controls the total rendered width including border.
func ContentCard(title, body string, outerWidth int) string {
	return card(title, body, outerWidth, theme.Active.Border)
}

// FocusCard is a ContentCard with the focus border color.
func FocusCard(title, body string, outerWidth int) string {
	return card(title, body, outerWidth, theme.Active.BorderFocus)
}

// NoticeCard renders a warning card with a dismiss hint.
func NoticeCard(msg string, outerWidth int) string {
	t := theme.Active
	msgStyle := lipgloss.NewStyle().Foreground(t.Warning).Background(t.Surface).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	body := msgStyle.Render(msg) + "\n\n" + hintStyle.Render("Press any key to dismiss")
	return card("Notice", body, outerWidth, t.Warning)
}

func card(title, body string, outerWidth int, border lipgloss.Color) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(contentWidth).
		Padding(0, 1)
	titleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Bold(true)

	content := ""
	if title != "" {
		content = titleStyle.Render(title) + "\n"
	}
	content += body

	return cardStyle.Render(content)
}

// CardRow joins pre-rendered cards horizontally, padding shorter cards
// with the background color so the row stays a solid block.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	bg := theme.Active.Background

	maxH := 0
	for _, c := range cards {
		if h := lipgloss.Height(c); h > maxH {
			maxH = h
		}
	}
	padded := make([]string, len(cards))
	for i, c := range cards {
		padded[i] = lipgloss.PlaceVertical(maxH, lipgloss.Top, c,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, padded...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4
	if w < 10 {
		w = 10
	}
	return w
}
