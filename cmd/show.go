package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/goalsheet/internal/cli"
	"github.com/theirongolddev/goalsheet/internal/config"
	"github.com/theirongolddev/goalsheet/internal/log"
	"github.com/theirongolddev/goalsheet/internal/sheet"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a saved sheet with its projection",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	return withRegistry(func(_ config.Config, reg *sheet.Registry, _ *log.Logger) error {
		s := sheet.New()
		if !reg.Open(args[0], s) {
			return fmt.Errorf("no saved sheet named %q", args[0])
		}
		fmt.Print(renderSheet(s))
		return nil
	})
}

// renderSheet renders a sheet's rows, totals and goal status for the terminal.
func renderSheet(s *sheet.Sheet) string {
	p := s.Projection()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(cli.RenderTitle(strings.ToUpper(s.Name)))
	b.WriteString("\n\n")

	b.WriteString(cli.RenderTable(cli.Table{
		Headers: []string{"Goal", "Current balance"},
		Rows:    [][]string{{cli.FormatMoney(p.Goal), cli.FormatMoney(p.CurrentBalance)}},
	}))
	b.WriteString("\n")
	b.WriteString(cli.RenderTable(itemTable("Income", s.Incomes)))
	b.WriteString("\n")
	b.WriteString(cli.RenderTable(itemTable("Outgoings", s.Outgoings)))
	b.WriteString("\n")

	rows := cli.SummaryRows(p)
	rows[2][1] = cli.RenderSigned(rows[2][1], p.Difference.IsNegative())
	b.WriteString(cli.RenderTable(cli.Table{
		Title:   "Summary",
		Headers: []string{"", "Monthly"},
		Rows:    rows,
	}))
	b.WriteString("\n")

	for _, msg := range cli.GoalMessages(p) {
		switch p.Status {
		case sheet.GoalReached:
			msg = cli.RenderSuccess(msg)
		case sheet.GoalUnreachable:
			msg = cli.RenderWarning(msg)
		}
		fmt.Fprintf(&b, "  %s\n", msg)
	}
	if p.Goal.IsPositive() {
		fmt.Fprintf(&b, "  %s\n", cli.RenderProgressBar(p.Progress, 30))
	}
	return b.String()
}

func itemTable(title string, items *sheet.LineItemList) cli.Table {
	bad := make(map[int]bool)
	for _, i := range items.Unparsed() {
		bad[i] = true
	}

	rows := make([][]string, 0, items.Len())
	for i, it := range items.Items() {
		label := it.Label
		if label == "" {
			label = cli.RenderMuted("(no label)")
		}
		amount := cli.FormatAmount(it.Amount)
		if bad[i] {
			amount = cli.RenderWarning(it.Amount + " (ignored)")
		}
		rows = append(rows, []string{label, amount})
	}
	rows = append(rows, []string{"Total", cli.FormatMoney(items.Total())})

	return cli.Table{
		Title:   title,
		Headers: []string{"Label", "Amount"},
		Rows:    rows,
	}
}
