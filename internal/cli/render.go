package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	positiveStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	negativeStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
// Every column after the first is right-aligned.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers(t.Headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := valueStyle
			if row == table.HeaderRow {
				style = headerStyle
			}
			style = style.Padding(0, 1)
			if col > 0 {
				style = style.Align(lipgloss.Right)
			}
			if col < len(t.Widths) && t.Widths[col] > 0 {
				style = style.Width(t.Widths[col] + 2)
			}
			return style
		})
	for _, row := range t.Rows {
		tbl.Row(row...)
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}
	b.WriteString(tbl.Render())
	b.WriteString("\n")
	return b.String()
}

// RenderProgressBar renders a simple text progress bar for a 0-1 fraction.
func RenderProgressBar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s", mutedStyle.Render(bar), FormatPercent(pct))
}

// RenderSigned renders value green when non-negative and red otherwise.
func RenderSigned(value string, negative bool) string {
	if negative {
		return negativeStyle.Render(value)
	}
	return positiveStyle.Render(value)
}

// RenderSuccess renders a success line.
func RenderSuccess(msg string) string { return positiveStyle.Render(msg) }

// RenderWarning renders a warning line.
func RenderWarning(msg string) string { return warnStyle.Render(msg) }

// RenderMuted renders secondary text.
func RenderMuted(msg string) string { return mutedStyle.Render(msg) }
