package sheet

import (
	"testing"

	"github.com/shopspring/decimal"
)

func newTestSheet(t *testing.T, goal, balance string, incomes, outgoings []string) *Sheet {
	t.Helper()
	s := New()
	s.SetGoal(goal)
	s.SetCurrentBalance(balance)
	for i, amt := range incomes {
		if i > 0 {
			if err := s.Incomes.Append(); err != nil {
				t.Fatalf("append income: %v", err)
			}
		}
		if err := s.Incomes.UpdateAmount(i, amt); err != nil {
			t.Fatalf("income amount: %v", err)
		}
	}
	for i, amt := range outgoings {
		if i > 0 {
			if err := s.Outgoings.Append(); err != nil {
				t.Fatalf("append outgoing: %v", err)
			}
		}
		if err := s.Outgoings.UpdateAmount(i, amt); err != nil {
			t.Fatalf("outgoing amount: %v", err)
		}
	}
	return s
}

func TestNewSheetIsBlank(t *testing.T) {
	s := New()
	if s.Name != "" || s.Goal != "" || s.CurrentBalance != "" {
		t.Fatalf("blank sheet has values: %+v", s)
	}
	if s.Incomes.Len() != 1 || s.Outgoings.Len() != 1 {
		t.Fatalf("blank sheet rows = %d/%d, want 1/1", s.Incomes.Len(), s.Outgoings.Len())
	}
	p := s.Projection()
	if p.Status != GoalUnset {
		t.Fatalf("blank sheet status = %v, want unset", p.Status)
	}
}

func TestProjectionInProgress(t *testing.T) {
	s := newTestSheet(t, "1000", "100", []string{"500"}, []string{"300"})
	p := s.Projection()

	if !p.Difference.Equal(decimal.NewFromInt(200)) {
		t.Errorf("Difference = %s, want 200", p.Difference)
	}
	if !p.Needed.Equal(decimal.NewFromInt(900)) {
		t.Errorf("Needed = %s, want 900", p.Needed)
	}
	if p.Reached {
		t.Error("Reached = true, want false")
	}
	months, ok := p.MonthsToGoal()
	if !ok || months != 5 {
		t.Errorf("MonthsToGoal() = %d, %v, want 5, true", months, ok)
	}
	if p.Status != GoalInProgress {
		t.Errorf("Status = %v, want in-progress", p.Status)
	}
	if p.Progress != 0.1 {
		t.Errorf("Progress = %v, want 0.1", p.Progress)
	}
}

func TestProjectionUnreachable(t *testing.T) {
	s := newTestSheet(t, "1000", "100", []string{"500"}, []string{"600"})
	p := s.Projection()

	if !p.Difference.Equal(decimal.NewFromInt(-100)) {
		t.Errorf("Difference = %s, want -100", p.Difference)
	}
	if _, ok := p.MonthsToGoal(); ok {
		t.Error("MonthsToGoal() finite for negative surplus")
	}
	if p.Status != GoalUnreachable {
		t.Errorf("Status = %v, want unreachable", p.Status)
	}
}

func TestProjectionZeroSurplusIsUnreachable(t *testing.T) {
	s := newTestSheet(t, "1000", "0", []string{"300"}, []string{"300"})
	p := s.Projection()
	if _, ok := p.MonthsToGoal(); ok {
		t.Error("MonthsToGoal() finite for zero surplus")
	}
	if p.Status != GoalUnreachable {
		t.Errorf("Status = %v, want unreachable", p.Status)
	}
}

func TestProjectionGoalUnsetNeverReached(t *testing.T) {
	for _, balance := range []string{"", "0", "100", "99999"} {
		s := newTestSheet(t, "", balance, []string{"10"}, nil)
		p := s.Projection()
		if p.Reached {
			t.Errorf("balance %q: Reached = true with no goal", balance)
		}
		if p.Status != GoalUnset {
			t.Errorf("balance %q: Status = %v, want unset", balance, p.Status)
		}

		s.SetGoal("0")
		if s.Projection().Reached {
			t.Errorf("balance %q: Reached = true with zero goal", balance)
		}
	}
}

func TestProjectionReached(t *testing.T) {
	s := newTestSheet(t, "500", "750", []string{"10"}, []string{"50"})
	p := s.Projection()
	if !p.Reached || p.Status != GoalReached {
		t.Fatalf("Reached=%v Status=%v, want reached", p.Reached, p.Status)
	}
	if !p.Needed.IsZero() {
		t.Errorf("Needed = %s, want 0 (floored)", p.Needed)
	}
	if p.Progress != 1 {
		t.Errorf("Progress = %v, want clamped to 1", p.Progress)
	}
}

func TestProjectionExactDivision(t *testing.T) {
	s := newTestSheet(t, "1000", "0", []string{"250"}, nil)
	months, ok := s.Projection().MonthsToGoal()
	if !ok || months != 4 {
		t.Fatalf("MonthsToGoal() = %d, %v, want 4, true", months, ok)
	}
}

func TestDerivedValuesFollowEdits(t *testing.T) {
	s := newTestSheet(t, "1000", "100", []string{"500"}, []string{"300"})
	if got := s.Difference(); !got.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("Difference() = %s, want 200", got)
	}
	_ = s.Outgoings.UpdateAmount(0, "450")
	if got := s.Difference(); !got.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("Difference() after edit = %s, want 50", got)
	}
	months, _ := s.Projection().MonthsToGoal()
	if months != 18 {
		t.Fatalf("MonthsToGoal() after edit = %d, want 18", months)
	}
}

func TestResetRestoresBlank(t *testing.T) {
	s := newTestSheet(t, "1000", "100", []string{"500", "20"}, []string{"300"})
	s.SetName("Holiday")
	s.Reset()
	if s.Name != "" || s.Goal != "" || s.CurrentBalance != "" || s.Incomes.Len() != 1 || s.Outgoings.Len() != 1 {
		t.Fatalf("Reset left state behind: %+v", s)
	}
	if it, _ := s.Incomes.At(0); it != (LineItem{}) {
		t.Fatalf("income row after reset = %+v, want blank", it)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := newTestSheet(t, "10", "1", []string{"5"}, []string{"2"})
	snap := s.Snapshot()
	_ = s.Incomes.UpdateAmount(0, "999")
	if it, _ := snap.Incomes.At(0); it.Amount != "5" {
		t.Fatalf("snapshot changed with sheet: %q", it.Amount)
	}

	other := New()
	other.LoadFrom("copy", snap)
	_ = other.Incomes.UpdateAmount(0, "1")
	if it, _ := snap.Incomes.At(0); it.Amount != "5" {
		t.Fatalf("snapshot changed with loaded sheet: %q", it.Amount)
	}
	if other.Name != "copy" {
		t.Fatalf("Name = %q, want copy", other.Name)
	}
}

func TestSetGoalNormalizes(t *testing.T) {
	s := New()
	s.SetGoal("£2,500.005")
	s.SetCurrentBalance("-40")
	if s.Goal != "2500.00" {
		t.Errorf("Goal = %q, want 2500.00", s.Goal)
	}
	if s.CurrentBalance != "40" {
		t.Errorf("CurrentBalance = %q, want 40", s.CurrentBalance)
	}
}
