package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/goalsheet/internal/tui/theme"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  string
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Sheet", Key: "1"},
	{Name: "Saved", Key: "2"},
}

func tabLabel(tab Tab, active bool) []string {
	if active {
		return []string{" " + tab.Name + " "}
	}
	return []string{" " + tab.Name, "[" + tab.Key + "]", " "}
}

// TabVisualWidth returns the rendered width of a tab, matching RenderTabBar.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(strings.Join(tabLabel(tab, active), ""))
}

// RenderTabBar renders a one-line tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Selected).
		Bold(true)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)
	keyStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)
	sepStyle := lipgloss.NewStyle().
		Foreground(t.Border).
		Background(t.Surface)

	var b strings.Builder
	for i, tab := range Tabs {
		parts := tabLabel(tab, i == activeIdx)
		if i == activeIdx {
			b.WriteString(activeStyle.Render(parts[0]))
		} else {
			b.WriteString(inactiveStyle.Render(parts[0]))
			b.WriteString(keyStyle.Render(parts[1]))
			b.WriteString(inactiveStyle.Render(parts[2]))
		}
		if i < len(Tabs)-1 {
			b.WriteString(sepStyle.Render("│"))
		}
	}

	return lipgloss.NewStyle().
		Background(t.Surface).
		Width(width).
		Render(b.String())
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key string) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
