package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/goalsheet/internal/config"
	"github.com/theirongolddev/goalsheet/internal/log"
	"github.com/theirongolddev/goalsheet/internal/sheet"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create and save a sheet interactively",
	Args:  cobra.NoArgs,
	RunE:  runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
}

type newSheetValues struct {
	name      string
	goal      string
	balance   string
	incomes   string
	outgoings string
	overwrite bool
}

func runNew(_ *cobra.Command, _ []string) error {
	return withRegistry(func(_ config.Config, reg *sheet.Registry, logger *log.Logger) error {
		var vals newSheetValues
		if err := newSheetForm(&vals).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		if _, exists := reg.Get(vals.name); exists {
			confirm := huh.NewConfirm().
				Title(fmt.Sprintf("A sheet named %q exists. Overwrite it?", vals.name)).
				Value(&vals.overwrite)
			if err := confirm.Run(); err != nil || !vals.overwrite {
				fmt.Println("  Not saved.")
				return nil
			}
		}

		s := buildSheet(vals)
		if err := reg.SaveSheet(s); err != nil {
			return err
		}
		logger.Info("sheet saved", log.FieldSheet, s.Name)

		fmt.Print(renderSheet(s))
		return nil
	})
}

func newSheetForm(vals *newSheetValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Sheet name").
				Value(&vals.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return sheet.ErrEmptyName
					}
					return nil
				}),
			huh.NewInput().
				Title("Savings goal").
				Placeholder("5000").
				Value(&vals.goal),
			huh.NewInput().
				Title("Current balance").
				Placeholder("0").
				Value(&vals.balance),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Monthly income").
				Description("One per line, as label: amount").
				Value(&vals.incomes),
			huh.NewText().
				Title("Monthly outgoings").
				Description("One per line, as label: amount").
				Value(&vals.outgoings),
		),
	)
}

func buildSheet(vals newSheetValues) *sheet.Sheet {
	s := sheet.New()
	s.SetName(strings.TrimSpace(vals.name))
	s.SetGoal(vals.goal)
	s.SetCurrentBalance(vals.balance)
	s.Incomes = sheet.NewLineItemListFrom(parseItems(vals.incomes))
	s.Outgoings = sheet.NewLineItemListFrom(parseItems(vals.outgoings))
	return s
}

// parseItems reads "label: amount" lines. A line without a colon is an
// amount if it holds a digit, and a label otherwise. A bare label waits for
// the next bare amount and is dropped if a labelled row comes first, so only
// the final row may be left without an amount.
func parseItems(text string) []sheet.LineItem {
	var (
		items   []sheet.LineItem
		pending string
	)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		label, amount := line, ""
		if i := strings.LastIndex(line, ":"); i >= 0 {
			label, amount = strings.TrimSpace(line[:i]), sheet.Normalize(line[i+1:])
		} else if strings.ContainsAny(line, "0123456789") {
			label, amount = pending, sheet.Normalize(line)
		}
		if amount == "" {
			pending = label
			continue
		}
		items = append(items, sheet.LineItem{Label: label, Amount: amount})
		pending = ""
	}
	if pending != "" {
		items = append(items, sheet.LineItem{Label: pending})
	}
	return items
}
