package cmd

import (
	"strings"
	"testing"

	"github.com/theirongolddev/goalsheet/internal/sheet"
)

func TestRenderSheet(t *testing.T) {
	s := sheet.New()
	s.LoadFrom("holiday", sheet.Snapshot{
		Goal:           "5000",
		CurrentBalance: "1000",
		Incomes:        *sheet.NewLineItemListFrom([]sheet.LineItem{{Label: "Salary", Amount: "2000"}}),
		Outgoings:      *sheet.NewLineItemListFrom([]sheet.LineItem{{Label: "Rent", Amount: "1000"}, {Label: "Typo", Amount: "."}}),
	})

	out := renderSheet(s)
	for _, want := range []string{
		"HOLIDAY",
		"£5,000.00",
		"Salary",
		". (ignored)",
		"You need £4,000.00 more to reach your goal.",
		"Estimated months to reach goal: 4",
		"20.0%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("renderSheet output missing %q:\n%s", want, out)
		}
	}
}

func TestGoalStatusLabel(t *testing.T) {
	cases := []struct {
		goal, balance, income string
		want                  string
	}{
		{"", "", "100", "-"},
		{"100", "100", "", "reached"},
		{"100", "0", "", "unreachable"},
		{"300", "0", "100", "3 months"},
	}
	for _, c := range cases {
		s := sheet.New()
		s.SetGoal(c.goal)
		s.SetCurrentBalance(c.balance)
		if err := s.Incomes.UpdateAmount(0, c.income); err != nil {
			t.Fatal(err)
		}
		if got := goalStatusLabel(s.Projection()); got != c.want {
			t.Errorf("goalStatusLabel(goal=%q balance=%q income=%q) = %q, want %q",
				c.goal, c.balance, c.income, got, c.want)
		}
	}
}
