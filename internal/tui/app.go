// Package tui provides the interactive Bubble Tea sheet editor for goalsheet.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/goalsheet/internal/log"
	"github.com/theirongolddev/goalsheet/internal/sheet"
	"github.com/theirongolddev/goalsheet/internal/tui/components"
	"github.com/theirongolddev/goalsheet/internal/tui/theme"
)

const (
	tabSheet = iota
	tabSaved
)

const (
	minTerminalWidth = 60
	compactWidth     = 100
	maxContentWidth  = 140
	minContentHeight = 5
)

// Options configures a new App.
type Options struct {
	// DefaultSheet is opened at start when it exists in the registry.
	DefaultSheet string
	// FirstRun shows the setup form before the editor.
	FirstRun bool
	Logger   *log.Logger
}

// App is the root Bubble Tea model.
type App struct {
	reg    *sheet.Registry
	sheet  *sheet.Sheet
	logger *log.Logger

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// notice is a guard message shown until the next key press.
	notice string
	// flash is a one-line confirmation in the status bar.
	flash string

	// Per-tab state
	editor editorState
	saved  savedState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

// NewApp creates a new TUI app model editing sheets from reg.
func NewApp(reg *sheet.Registry, opts Options) App {
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}

	a := App{
		reg:       reg,
		sheet:     sheet.New(),
		logger:    logger,
		needSetup: opts.FirstRun,
	}
	if opts.DefaultSheet != "" && !reg.Open(opts.DefaultSheet, a.sheet) {
		logger.Warn("default sheet not found", log.FieldSheet, opts.DefaultSheet)
	}
	if a.needSetup {
		a.setupVals = setupValues{theme: theme.Active.Name}
		a.setupForm = newSetupForm(&a.setupVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.notice != "" || a.editor.editing || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Any key dismisses a notice
		if a.notice != "" {
			a.notice = ""
			return a, nil
		}

		// The field editor owns the keyboard while active
		if a.activeTab == tabSheet && a.editor.editing {
			return a.updateEditorInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		a.flash = ""

		switch key {
		case "q":
			return a, tea.Quit
		case "tab", "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "shift+tab", "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		}
		if idx := components.TabIdxByKey(key); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}

		switch a.activeTab {
		case tabSheet:
			return a.updateSheetKeys(key)
		case tabSaved:
			return a.updateSavedKeys(key)
		}
		return a, nil
	}

	// Forward unhandled messages (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.editor.editing {
		var cmd tea.Cmd
		a.editor.input, cmd = a.editor.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return a.moveCursor(-1), nil
	case tea.MouseButtonWheelDown:
		return a.moveCursor(1), nil
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}
		// Tab bar is the first line
		if msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

// moveCursor moves the active tab's cursor by delta within bounds.
func (a App) moveCursor(delta int) App {
	switch a.activeTab {
	case tabSheet:
		a.editor.cursor = clamp(a.editor.cursor+delta, 0, len(a.editorFields())-1)
	case tabSaved:
		a.saved.cursor = clamp(a.saved.cursor+delta, 0, len(a.savedEntries())-1)
	}
	return a
}

// showNotice displays err as a notice card and logs it.
func (a *App) showNotice(err error) {
	a.notice = err.Error()
	a.logger.Debug("guard refused action", log.FieldError, err)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  goalsheet needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"1 2", "Jump to tab"},
			{"Tab ← →", "Previous / Next tab"},
			{"j k", "Move cursor"},
		}},
		{"Sheet", []struct{ key, desc string }{
			{"Enter", "Edit field / Confirm"},
			{"Esc", "Cancel edit"},
			{"a", "Add row to section"},
			{"d", "Delete row"},
			{"S", "Save sheet"},
			{"N", "New blank sheet"},
		}},
		{"Saved", []struct{ key, desc string }{
			{"Enter", "Open sheet"},
		}},
		{"", []struct{ key, desc string }{
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		if sec.title != "" {
			b.WriteString(sectionStyle.Render(sec.title))
			b.WriteString("\n")
		}
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.statusHints(), a.statusInfo())

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabSheet:
		content = a.renderSheetTab(cw)
	case tabSaved:
		content = a.renderSavedTab(cw)
	}
	if a.notice != "" {
		noticeW := cw
		if noticeW > 60 {
			noticeW = 60
		}
		content = components.NoticeCard(a.notice, noticeW) + "\n" + content
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) statusHints() string {
	if a.editor.editing {
		return "[Enter]confirm  [Esc]cancel"
	}
	if a.activeTab == tabSaved {
		return "[Enter]open  [?]help  [q]uit"
	}
	return "[Enter]edit  [a]dd  [d]elete  [S]ave  [N]ew  [?]help  [q]uit"
}

func (a App) statusInfo() string {
	if a.flash != "" {
		return a.flash
	}
	if cur := a.reg.Current(); cur != "" {
		return "Sheet: " + cur
	}
	return "Unsaved sheet"
}

// ─── Helpers ────────────────────────────────────────────────────

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
