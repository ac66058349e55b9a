package cli

import (
	"testing"

	"github.com/theirongolddev/goalsheet/internal/sheet"
)

func sheetWith(goal, balance, income, outgoing string) *sheet.Sheet {
	s := sheet.New()
	s.SetGoal(goal)
	s.SetCurrentBalance(balance)
	_ = s.Incomes.UpdateAmount(0, income)
	_ = s.Outgoings.UpdateAmount(0, outgoing)
	return s
}

func TestGoalMessagesInProgress(t *testing.T) {
	msgs := GoalMessages(sheetWith("1000", "100", "500", "300").Projection())
	want := []string{
		"You need £900.00 more to reach your goal.",
		"Estimated months to reach goal: 5",
	}
	if len(msgs) != len(want) {
		t.Fatalf("GoalMessages = %q, want %q", msgs, want)
	}
	for i := range want {
		if msgs[i] != want[i] {
			t.Errorf("msg[%d] = %q, want %q", i, msgs[i], want[i])
		}
	}
}

func TestGoalMessagesReached(t *testing.T) {
	msgs := GoalMessages(sheetWith("100", "150", "", "").Projection())
	if len(msgs) != 1 || msgs[0] != "🎉 You have reached your goal!" {
		t.Fatalf("GoalMessages = %q", msgs)
	}
}

func TestGoalMessagesUnreachable(t *testing.T) {
	msgs := GoalMessages(sheetWith("1000", "0", "100", "200").Projection())
	if len(msgs) != 1 || msgs[0] != "Your monthly surplus is zero or negative, so the goal cannot be reached at this rate." {
		t.Fatalf("GoalMessages = %q", msgs)
	}
}

func TestGoalMessagesUnset(t *testing.T) {
	if msgs := GoalMessages(sheetWith("", "500", "100", "0").Projection()); msgs != nil {
		t.Fatalf("GoalMessages without goal = %q, want none", msgs)
	}
}

func TestSummaryRowsNegativeDifference(t *testing.T) {
	rows := SummaryRows(sheetWith("", "", "100", "200").Projection())
	if rows[2][1] != "-£100.00" {
		t.Fatalf("difference = %q, want -£100.00", rows[2][1])
	}
}
