package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/goalsheet/internal/cli"
	"github.com/theirongolddev/goalsheet/internal/log"
	"github.com/theirongolddev/goalsheet/internal/sheet"
	"github.com/theirongolddev/goalsheet/internal/tui/components"
	"github.com/theirongolddev/goalsheet/internal/tui/theme"
)

type fieldKind int

const (
	fieldName fieldKind = iota
	fieldGoal
	fieldBalance
	fieldIncomeLabel
	fieldIncomeAmount
	fieldOutgoingLabel
	fieldOutgoingAmount
)

// editorField addresses one editable cell; row is only used by item fields.
type editorField struct {
	kind fieldKind
	row  int
}

func (f editorField) isAmount() bool {
	switch f.kind {
	case fieldGoal, fieldBalance, fieldIncomeAmount, fieldOutgoingAmount:
		return true
	}
	return false
}

func (f editorField) isOutgoing() bool {
	return f.kind == fieldOutgoingLabel || f.kind == fieldOutgoingAmount
}

func (f editorField) isItem() bool {
	return f.kind >= fieldIncomeLabel
}

// editorState tracks the sheet tab cursor and the active field input.
type editorState struct {
	cursor  int
	editing bool
	input   textinput.Model
	orig    string // value restored on Esc
}

// editorFields lists every editable cell in display order.
func (a App) editorFields() []editorField {
	fields := []editorField{{kind: fieldName}, {kind: fieldGoal}, {kind: fieldBalance}}
	for i := 0; i < a.sheet.Incomes.Len(); i++ {
		fields = append(fields, editorField{fieldIncomeLabel, i}, editorField{fieldIncomeAmount, i})
	}
	for i := 0; i < a.sheet.Outgoings.Len(); i++ {
		fields = append(fields, editorField{fieldOutgoingLabel, i}, editorField{fieldOutgoingAmount, i})
	}
	return fields
}

func (a App) focusedField() editorField {
	fields := a.editorFields()
	return fields[clamp(a.editor.cursor, 0, len(fields)-1)]
}

// indexOf returns the cursor position of f, or -1.
func (a App) indexOf(f editorField) int {
	for i, g := range a.editorFields() {
		if g == f {
			return i
		}
	}
	return -1
}

func (a App) fieldValue(f editorField) string {
	switch f.kind {
	case fieldName:
		return a.sheet.Name
	case fieldGoal:
		return a.sheet.Goal
	case fieldBalance:
		return a.sheet.CurrentBalance
	}
	list := a.sheet.Incomes
	if f.isOutgoing() {
		list = a.sheet.Outgoings
	}
	it, err := list.At(f.row)
	if err != nil {
		return ""
	}
	if f.kind == fieldIncomeAmount || f.kind == fieldOutgoingAmount {
		return it.Amount
	}
	return it.Label
}

// setFieldValue writes v into the sheet; amounts are normalized on the way in.
func (a *App) setFieldValue(f editorField, v string) error {
	switch f.kind {
	case fieldName:
		a.sheet.SetName(v)
	case fieldGoal:
		a.sheet.SetGoal(v)
	case fieldBalance:
		a.sheet.SetCurrentBalance(v)
	case fieldIncomeLabel:
		return a.sheet.Incomes.UpdateLabel(f.row, v)
	case fieldIncomeAmount:
		return a.sheet.Incomes.UpdateAmount(f.row, v)
	case fieldOutgoingLabel:
		return a.sheet.Outgoings.UpdateLabel(f.row, v)
	case fieldOutgoingAmount:
		return a.sheet.Outgoings.UpdateAmount(f.row, v)
	}
	return nil
}

func (a App) updateSheetKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		return a.moveCursor(1), nil
	case "k", "up":
		return a.moveCursor(-1), nil
	case "g":
		a.editor.cursor = 0
		return a, nil
	case "G":
		a.editor.cursor = len(a.editorFields()) - 1
		return a, nil
	case "enter":
		return a.startEdit()
	case "a":
		a.appendRow()
		return a, nil
	case "d":
		a.removeRow()
		return a, nil
	case "S":
		a.saveSheet()
		return a, nil
	case "N":
		a.reg.Open("", a.sheet)
		a.editor.cursor = 0
		a.flash = "New sheet"
		return a, nil
	}
	return a, nil
}

func (a App) startEdit() (tea.Model, tea.Cmd) {
	f := a.focusedField()

	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 24
	ti.Prompt = ""
	switch f.kind {
	case fieldName:
		ti.Placeholder = "Sheet name"
	case fieldIncomeLabel, fieldOutgoingLabel:
		ti.Placeholder = "Label"
	default:
		ti.Placeholder = "0.00"
	}
	ti.SetValue(a.fieldValue(f))
	ti.CursorEnd()
	ti.Focus()

	a.editor.editing = true
	a.editor.input = ti
	a.editor.orig = a.fieldValue(f)
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateEditorInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := a.focusedField()

	switch msg.String() {
	case "enter":
		_ = a.setFieldValue(f, a.editor.input.Value())
		a.editor.editing = false
		return a, nil
	case "esc":
		_ = a.setFieldValue(f, a.editor.orig)
		a.editor.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.editor.input, cmd = a.editor.input.Update(msg)

	// Keep the visible text and the sheet in step on every keystroke.
	if f.isAmount() {
		if v := sheet.Normalize(a.editor.input.Value()); v != a.editor.input.Value() {
			a.editor.input.SetValue(v)
			a.editor.input.CursorEnd()
		}
	}
	_ = a.setFieldValue(f, a.editor.input.Value())
	return a, cmd
}

// appendRow adds a row to the focused section; header fields target incomes.
func (a *App) appendRow() {
	f := a.focusedField()
	list, labelKind := a.sheet.Incomes, fieldIncomeLabel
	if f.isOutgoing() {
		list, labelKind = a.sheet.Outgoings, fieldOutgoingLabel
	}
	if err := list.Append(); err != nil {
		a.showNotice(err)
		return
	}
	if i := a.indexOf(editorField{labelKind, list.Len() - 1}); i >= 0 {
		a.editor.cursor = i
	}
}

func (a *App) removeRow() {
	f := a.focusedField()
	if !f.isItem() {
		return
	}
	list := a.sheet.Incomes
	if f.isOutgoing() {
		list = a.sheet.Outgoings
	}
	if err := list.RemoveAt(f.row); err != nil {
		a.showNotice(err)
		return
	}
	a.editor.cursor = clamp(a.editor.cursor, 0, len(a.editorFields())-1)
}

func (a *App) saveSheet() {
	if err := a.reg.SaveSheet(a.sheet); err != nil {
		a.showNotice(err)
		return
	}
	a.flash = "Saved!"
	a.logger.Info("sheet saved", log.FieldSheet, a.sheet.Name)
}

func (a App) renderSheetTab(cw int) string {
	if a.isCompactLayout() {
		return a.renderEditorCard(cw) + "\n" + a.renderSummaryCard(cw)
	}
	widths := components.LayoutRow(cw, 2)
	return components.CardRow([]string{
		a.renderEditorCard(widths[0]),
		a.renderSummaryCard(widths[1]),
	})
}

func (a App) renderEditorCard(w int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(w)

	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)

	amountW := 14
	labelW := innerW - amountW - 4
	if labelW < 8 {
		labelW = 8
	}

	cursor := a.editor.cursor
	fields := a.editorFields()
	focused := fields[clamp(cursor, 0, len(fields)-1)]

	marker := func(on bool) string {
		if on {
			return markerStyle.Render("▸ ")
		}
		return spaceStyle.Render("  ")
	}

	var b strings.Builder
	for _, f := range []struct {
		label string
		field editorField
	}{
		{"Name", editorField{kind: fieldName}},
		{"Goal", editorField{kind: fieldGoal}},
		{"Balance", editorField{kind: fieldBalance}},
	} {
		b.WriteString(marker(f.field == focused))
		b.WriteString(renderCaption(f.label, labelW))
		b.WriteString(spaceStyle.Render("  "))
		b.WriteString(a.renderValueCell(f.field, focused, amountW))
		b.WriteString("\n")
	}

	for _, sec := range []struct {
		title      string
		list       *sheet.LineItemList
		labelKind  fieldKind
		amountKind fieldKind
	}{
		{"Income", a.sheet.Incomes, fieldIncomeLabel, fieldIncomeAmount},
		{"Outgoings", a.sheet.Outgoings, fieldOutgoingLabel, fieldOutgoingAmount},
	} {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for i := 0; i < sec.list.Len(); i++ {
			lf := editorField{sec.labelKind, i}
			af := editorField{sec.amountKind, i}
			b.WriteString(marker(lf == focused || af == focused))
			b.WriteString(a.renderValueCell(lf, focused, labelW))
			b.WriteString(spaceStyle.Render("  "))
			b.WriteString(a.renderValueCell(af, focused, amountW))
			b.WriteString("\n")
		}
	}

	title := "Sheet"
	if cur := a.reg.Current(); cur != "" {
		title = "Sheet · " + cur
	}
	return components.FocusCard(title, strings.TrimSuffix(b.String(), "\n"), w)
}

func renderCaption(caption string, width int) string {
	t := theme.Active
	return lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Width(width).Render(caption)
}

// renderValueCell renders the value of f, the live input when f is being
// edited, or a dim placeholder when empty.
func (a App) renderValueCell(f, focused editorField, width int) string {
	t := theme.Active
	bg := t.Surface
	if f == focused {
		bg = t.Selected
	}
	style := lipgloss.NewStyle().Background(bg).Width(width)

	if f == focused && a.editor.editing {
		return style.Render(a.editor.input.View())
	}

	raw := a.fieldValue(f)
	text := raw
	fg := t.TextPrimary
	if f.isAmount() {
		text = cli.FormatAmount(raw)
		if text == "" && raw != "" {
			text, fg = raw+" ?", t.Warning
		}
	}
	if text == "" {
		switch {
		case f.kind == fieldName:
			text = "(unnamed)"
		case f.isAmount():
			text = "-"
		default:
			text = "(label)"
		}
		fg = t.TextDim
	}
	if f.isAmount() {
		style = style.Align(lipgloss.Right)
	}
	return style.Foreground(fg).Render(truncStr(text, width))
}

func (a App) renderSummaryCard(w int) string {
	t := theme.Active
	p := a.sheet.Projection()
	innerW := components.CardInnerWidth(w)

	diffColor := t.Positive
	if p.Difference.IsNegative() {
		diffColor = t.Negative
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Income", Value: cli.FormatMoney(p.TotalIncome)},
		{Label: "Outgoings", Value: cli.FormatMoney(p.TotalOutgoings)},
		{Label: "Difference", Value: cli.FormatMoney(p.Difference), Color: diffColor},
	}, innerW))
	b.WriteString("\n")

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	fmt.Fprintf(&b, "%s%s\n",
		labelStyle.Render(fmt.Sprintf("%-18s", "Goal:")), valueStyle.Render(cli.FormatMoney(p.Goal)))
	fmt.Fprintf(&b, "%s%s\n",
		labelStyle.Render(fmt.Sprintf("%-18s", "Current balance:")), valueStyle.Render(cli.FormatMoney(p.CurrentBalance)))

	msgStyle := valueStyle
	switch p.Status {
	case sheet.GoalReached:
		msgStyle = lipgloss.NewStyle().Foreground(t.Positive).Background(t.Surface).Bold(true)
	case sheet.GoalUnreachable:
		msgStyle = lipgloss.NewStyle().Foreground(t.Negative).Background(t.Surface)
	}
	msgs := cli.GoalMessages(p)
	if len(msgs) > 0 {
		b.WriteString("\n")
	}
	for _, msg := range msgs {
		b.WriteString(msgStyle.Width(innerW).Render(msg))
		b.WriteString("\n")
	}

	if p.Goal.IsPositive() {
		b.WriteString("\n")
		b.WriteString(components.GoalBar(p.Progress, innerW))
	}

	return components.ContentCard("Summary", strings.TrimSuffix(b.String(), "\n"), w)
}
