package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/goalsheet/internal/cli"
	"github.com/theirongolddev/goalsheet/internal/config"
	"github.com/theirongolddev/goalsheet/internal/log"
	"github.com/theirongolddev/goalsheet/internal/sheet"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved sheets",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	return withRegistry(func(_ config.Config, reg *sheet.Registry, _ *log.Logger) error {
		names := reg.Names()
		if len(names) == 0 {
			fmt.Println("\n  No saved sheets.")
			fmt.Println("  Run `goalsheet new` or `goalsheet tui` to create one.")
			return nil
		}

		rows := make([][]string, 0, len(names))
		for _, name := range names {
			snap, _ := reg.Get(name)
			s := sheet.New()
			s.LoadFrom(name, snap)
			p := s.Projection()
			rows = append(rows, []string{
				name,
				cli.FormatAmount(snap.Goal),
				cli.FormatMoney(p.Difference),
				goalStatusLabel(p),
			})
		}

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   fmt.Sprintf("Saved sheets (%d)", len(names)),
			Headers: []string{"Name", "Goal", "Monthly", "Status"},
			Rows:    rows,
		}))
		return nil
	})
}

func goalStatusLabel(p sheet.Projection) string {
	switch p.Status {
	case sheet.GoalReached:
		return "reached"
	case sheet.GoalInProgress:
		return cli.FormatMonths(p.Months)
	case sheet.GoalUnreachable:
		return "unreachable"
	}
	return "-"
}
