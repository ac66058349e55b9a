package cli

import (
	"fmt"

	"github.com/theirongolddev/goalsheet/internal/sheet"
)

// GoalMessages returns the status lines shown under a sheet's totals.
// Nothing is returned while no goal is set.
func GoalMessages(p sheet.Projection) []string {
	switch p.Status {
	case sheet.GoalReached:
		return []string{"🎉 You have reached your goal!"}
	case sheet.GoalInProgress:
		return []string{
			fmt.Sprintf("You need %s more to reach your goal.", FormatMoney(p.Needed)),
			fmt.Sprintf("Estimated months to reach goal: %d", p.Months),
		}
	case sheet.GoalUnreachable:
		return []string{"Your monthly surplus is zero or negative, so the goal cannot be reached at this rate."}
	}
	return nil
}

// SummaryRows returns label/value rows for a projection's totals.
func SummaryRows(p sheet.Projection) [][]string {
	return [][]string{
		{"Total income", FormatMoney(p.TotalIncome)},
		{"Total outgoings", FormatMoney(p.TotalOutgoings)},
		{"Difference", FormatMoney(p.Difference)},
	}
}
