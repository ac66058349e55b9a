package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/goalsheet/internal/cli"
	"github.com/theirongolddev/goalsheet/internal/log"
	"github.com/theirongolddev/goalsheet/internal/sheet"
	"github.com/theirongolddev/goalsheet/internal/tui/components"
	"github.com/theirongolddev/goalsheet/internal/tui/theme"
)

// newSheetEntry is the first Saved entry; opening it starts a blank sheet.
const newSheetEntry = "-- new sheet --"

type savedState struct {
	cursor int
}

// savedEntries returns the picker entries: the blank-sheet entry followed
// by saved names in insertion order.
func (a App) savedEntries() []string {
	return append([]string{newSheetEntry}, a.reg.Names()...)
}

func (a App) updateSavedKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		return a.moveCursor(1), nil
	case "k", "up":
		return a.moveCursor(-1), nil
	case "enter":
		a.openEntry(a.saved.cursor)
		return a, nil
	}
	return a, nil
}

// openEntry loads the entry at i into the editor and switches to it.
func (a *App) openEntry(i int) {
	entries := a.savedEntries()
	if i < 0 || i >= len(entries) {
		return
	}
	name := ""
	if i > 0 {
		name = entries[i]
	}
	if a.reg.Open(name, a.sheet) {
		a.flash = "Opened " + name
		a.logger.Debug("sheet opened", log.FieldSheet, name)
	} else {
		a.flash = "New sheet"
	}
	a.editor = editorState{}
	a.activeTab = tabSheet
}

func (a App) renderSavedTab(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Selected).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Selected)
	currentStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)

	nameW := innerW - 30
	if nameW < 12 {
		nameW = 12
	}

	var b strings.Builder
	for i, name := range a.savedEntries() {
		detail := ""
		if i > 0 {
			if snap, ok := a.reg.Get(name); ok {
				detail = savedDetail(name, snap)
			}
			if name == a.reg.Current() {
				detail += currentStyle.Render("  ●")
			}
		}
		line := fmt.Sprintf("%-*s ", nameW, truncStr(name, nameW))

		if i == a.saved.cursor {
			b.WriteString(markerStyle.Render("▸ "))
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render("  "))
			if i == 0 {
				b.WriteString(dimStyle.Render(line))
			} else {
				b.WriteString(rowStyle.Render(line))
			}
		}
		b.WriteString(dimStyle.Render(detail))
		b.WriteString("\n")
	}
	if a.reg.Len() == 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("No saved sheets yet. Press S on the Sheet tab to save one."))
	}

	return components.ContentCard(fmt.Sprintf("Saved sheets (%d)", a.reg.Len()),
		strings.TrimSuffix(b.String(), "\n"), cw)
}

// savedDetail summarizes a snapshot as goal and monthly difference.
func savedDetail(name string, snap sheet.Snapshot) string {
	s := sheet.New()
	s.LoadFrom(name, snap)
	p := s.Projection()
	return fmt.Sprintf("goal %s  %s/mo", cli.FormatMoney(p.Goal), cli.FormatMoney(p.Difference))
}
