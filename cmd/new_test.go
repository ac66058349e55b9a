package cmd

import (
	"testing"

	"github.com/theirongolddev/goalsheet/internal/sheet"
)

func TestParseItems(t *testing.T) {
	got := parseItems("Salary: £2,000\n\n  Side gig:150.505 \nRent\n42\nTime: 10:30")
	want := []sheet.LineItem{
		{Label: "Salary", Amount: "2000"},
		{Label: "Side gig", Amount: "150.50"},
		{Label: "Rent", Amount: "42"},
		{Label: "Time: 10", Amount: "30"},
	}
	if len(got) != len(want) {
		t.Fatalf("parseItems = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseItemsKeepsAmountsContiguous(t *testing.T) {
	got := parseItems("Dropped\nPay: 100\n7\nNote: none\nGym:\nTail")
	want := []sheet.LineItem{
		{Label: "Pay", Amount: "100"},
		{Amount: "7"},
		{Label: "Tail"},
	}
	if len(got) != len(want) {
		t.Fatalf("parseItems = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	for i, it := range got[:len(got)-1] {
		if it.Amount == "" {
			t.Errorf("row %d has no amount but is not last", i)
		}
	}
}

func TestBuildSheet(t *testing.T) {
	s := buildSheet(newSheetValues{
		name:      "  Car  ",
		goal:      "3,000",
		balance:   "500",
		incomes:   "Pay: 1500",
		outgoings: "",
	})
	if s.Name != "Car" || s.Goal != "3000" || s.CurrentBalance != "500" {
		t.Fatalf("sheet = %+v", s)
	}
	if s.Outgoings.Len() != 1 {
		t.Errorf("empty outgoings should hold one blank row, got %d", s.Outgoings.Len())
	}
	p := s.Projection()
	if p.Months != 2 {
		t.Errorf("Months = %d, want 2", p.Months)
	}
}
