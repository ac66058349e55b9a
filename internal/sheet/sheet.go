package sheet

import (
	"github.com/shopspring/decimal"
)

// Snapshot is the persisted form of a sheet. The name is the registry key
// and is not stored inside the snapshot.
type Snapshot struct {
	Goal           string       `json:"goal"`
	CurrentBalance string       `json:"currentBalance"`
	Incomes        LineItemList `json:"incomes"`
	Outgoings      LineItemList `json:"outgoings"`
}

func (s Snapshot) clone() Snapshot {
	return Snapshot{
		Goal:           s.Goal,
		CurrentBalance: s.CurrentBalance,
		Incomes:        *s.Incomes.Clone(),
		Outgoings:      *s.Outgoings.Clone(),
	}
}

// canonical returns a copy with goal, balance and every amount passed
// through Normalize. Labels are kept verbatim.
func (s Snapshot) canonical() Snapshot {
	return Snapshot{
		Goal:           Normalize(s.Goal),
		CurrentBalance: Normalize(s.CurrentBalance),
		Incomes:        *s.Incomes.normalized(),
		Outgoings:      *s.Outgoings.normalized(),
	}
}

// Sheet is the working savings model: a goal, a balance, and the income and
// outgoing lists. Derived figures are computed from current state on demand.
type Sheet struct {
	Name           string
	Goal           string
	CurrentBalance string
	Incomes        *LineItemList
	Outgoings      *LineItemList
}

// New returns a blank sheet.
func New() *Sheet {
	s := &Sheet{}
	s.Reset()
	return s
}

// Reset returns the sheet to its blank state.
func (s *Sheet) Reset() {
	s.Name = ""
	s.Goal = ""
	s.CurrentBalance = ""
	s.Incomes = NewLineItemList()
	s.Outgoings = NewLineItemList()
}

// SetName sets the display name verbatim.
func (s *Sheet) SetName(text string) { s.Name = text }

// SetGoal stores the normalized goal amount.
func (s *Sheet) SetGoal(raw string) { s.Goal = Normalize(raw) }

// SetCurrentBalance stores the normalized balance.
func (s *Sheet) SetCurrentBalance(raw string) { s.CurrentBalance = Normalize(raw) }

// LoadFrom replaces the sheet contents with snap and names it name.
func (s *Sheet) LoadFrom(name string, snap Snapshot) {
	c := snap.clone()
	s.Name = name
	s.Goal = c.Goal
	s.CurrentBalance = c.CurrentBalance
	s.Incomes = &c.Incomes
	s.Outgoings = &c.Outgoings
}

// Snapshot returns a deep copy of the persisted fields.
func (s *Sheet) Snapshot() Snapshot {
	return Snapshot{
		Goal:           s.Goal,
		CurrentBalance: s.CurrentBalance,
		Incomes:        *s.incomes().Clone(),
		Outgoings:      *s.outgoings().Clone(),
	}
}

func (s *Sheet) incomes() *LineItemList {
	if s.Incomes == nil {
		s.Incomes = NewLineItemList()
	}
	return s.Incomes
}

func (s *Sheet) outgoings() *LineItemList {
	if s.Outgoings == nil {
		s.Outgoings = NewLineItemList()
	}
	return s.Outgoings
}

// GoalStatus classifies where a sheet stands against its goal.
type GoalStatus int

const (
	// GoalUnset means no positive goal has been entered.
	GoalUnset GoalStatus = iota
	// GoalReached means the balance already covers the goal.
	GoalReached
	// GoalInProgress means a positive monthly surplus will reach the goal.
	GoalInProgress
	// GoalUnreachable means the surplus is zero or negative.
	GoalUnreachable
)

func (g GoalStatus) String() string {
	switch g {
	case GoalReached:
		return "reached"
	case GoalInProgress:
		return "in-progress"
	case GoalUnreachable:
		return "unreachable"
	default:
		return "unset"
	}
}

// Projection holds every derived figure of a sheet at one point in time.
type Projection struct {
	TotalIncome    decimal.Decimal
	TotalOutgoings decimal.Decimal
	Difference     decimal.Decimal
	Goal           decimal.Decimal
	CurrentBalance decimal.Decimal
	Needed         decimal.Decimal
	Reached        bool
	Status         GoalStatus

	// Months is valid only when HasMonths is true (positive surplus).
	Months    int64
	HasMonths bool

	// Progress is CurrentBalance/Goal clamped to [0, 1]; zero without a goal.
	Progress float64
}

// MonthsToGoal returns the month estimate and whether it is finite.
func (p Projection) MonthsToGoal() (int64, bool) {
	return p.Months, p.HasMonths
}

// TotalIncome sums the income rows.
func (s *Sheet) TotalIncome() decimal.Decimal { return s.incomes().Total() }

// TotalOutgoings sums the outgoing rows.
func (s *Sheet) TotalOutgoings() decimal.Decimal { return s.outgoings().Total() }

// Difference is income minus outgoings, possibly negative.
func (s *Sheet) Difference() decimal.Decimal {
	return s.TotalIncome().Sub(s.TotalOutgoings())
}

// Projection computes every derived figure from the current state.
func (s *Sheet) Projection() Projection {
	p := Projection{
		TotalIncome:    s.TotalIncome(),
		TotalOutgoings: s.TotalOutgoings(),
		Goal:           ParseAmount(s.Goal),
		CurrentBalance: ParseAmount(s.CurrentBalance),
	}
	p.Difference = p.TotalIncome.Sub(p.TotalOutgoings)

	p.Needed = p.Goal.Sub(p.CurrentBalance)
	if p.Needed.IsNegative() {
		p.Needed = decimal.Zero
	}

	goalSet := p.Goal.IsPositive()
	p.Reached = goalSet && p.CurrentBalance.GreaterThanOrEqual(p.Goal)

	if p.Difference.IsPositive() {
		p.Months = p.Needed.Div(p.Difference).Ceil().IntPart()
		p.HasMonths = true
	}

	switch {
	case p.Reached:
		p.Status = GoalReached
	case !goalSet:
		p.Status = GoalUnset
	case p.HasMonths:
		p.Status = GoalInProgress
	default:
		p.Status = GoalUnreachable
	}

	if goalSet {
		p.Progress = p.CurrentBalance.Div(p.Goal).InexactFloat64()
		if p.Progress < 0 {
			p.Progress = 0
		}
		if p.Progress > 1 {
			p.Progress = 1
		}
	}
	return p
}
