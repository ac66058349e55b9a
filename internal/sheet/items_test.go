package sheet

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLineItemListTotal(t *testing.T) {
	l := NewLineItemListFrom([]LineItem{
		{Amount: "100"},
		{Amount: ""},
		{Amount: "50.5"},
	})
	want := decimal.RequireFromString("150.5")
	if got := l.Total(); !got.Equal(want) {
		t.Fatalf("Total() = %s, want %s", got, want)
	}
}

func TestLineItemListTotalIgnoresGarbage(t *testing.T) {
	l := NewLineItemListFrom([]LineItem{
		{Amount: "abc"},
		{Amount: "10"},
		{Amount: "NaN"},
	})
	if got := l.Total(); !got.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("Total() = %s, want 10", got)
	}
	unparsed := l.Unparsed()
	if len(unparsed) != 2 || unparsed[0] != 0 || unparsed[1] != 2 {
		t.Fatalf("Unparsed() = %v, want [0 2]", unparsed)
	}
}

func TestAppendGuard(t *testing.T) {
	l := NewLineItemList()
	if err := l.Append(); !errors.Is(err, ErrAmountRequired) {
		t.Fatalf("Append() on blank row err = %v, want ErrAmountRequired", err)
	}
	if l.Len() != 1 {
		t.Fatalf("Len() = %d after refused append, want 1", l.Len())
	}

	if err := l.UpdateAmount(0, "10"); err != nil {
		t.Fatalf("UpdateAmount: %v", err)
	}
	if err := l.Append(); err != nil {
		t.Fatalf("Append() after amount set: %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	last, _ := l.At(1)
	if last != (LineItem{}) {
		t.Fatalf("new row = %+v, want blank", last)
	}
}

func TestAppendGuardLabelOnly(t *testing.T) {
	l := NewLineItemList()
	_ = l.UpdateLabel(0, "Salary")
	if err := l.Append(); !errors.Is(err, ErrAmountRequired) {
		t.Fatalf("Append() with label only err = %v, want ErrAmountRequired", err)
	}
}

func TestRemoveAt(t *testing.T) {
	l := NewLineItemListFrom([]LineItem{
		{Label: "a", Amount: "1"},
		{Label: "b", Amount: "2"},
		{Label: "c", Amount: "3"},
	})
	if err := l.RemoveAt(1); err != nil {
		t.Fatalf("RemoveAt(1): %v", err)
	}
	items := l.Items()
	if len(items) != 2 || items[0].Label != "a" || items[1].Label != "c" {
		t.Fatalf("items after RemoveAt(1) = %+v", items)
	}

	if err := l.RemoveAt(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("RemoveAt(5) err = %v, want ErrIndexOutOfRange", err)
	}
	if err := l.RemoveAt(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("RemoveAt(-1) err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestRemoveAtKeepsLastRow(t *testing.T) {
	l := NewLineItemListFrom([]LineItem{{Label: "only", Amount: "5"}})
	if err := l.RemoveAt(0); !errors.Is(err, ErrLastItem) {
		t.Fatalf("RemoveAt(0) on single row err = %v, want ErrLastItem", err)
	}
	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
}

func TestUpdateLabelAndAmount(t *testing.T) {
	l := NewLineItemList()
	if err := l.UpdateLabel(0, "  Rent £ "); err != nil {
		t.Fatal(err)
	}
	if err := l.UpdateAmount(0, "£1,200.999"); err != nil {
		t.Fatal(err)
	}
	it, _ := l.At(0)
	if it.Label != "  Rent £ " {
		t.Errorf("Label = %q, want verbatim", it.Label)
	}
	if it.Amount != "1200.99" {
		t.Errorf("Amount = %q, want 1200.99", it.Amount)
	}
	if err := l.UpdateAmount(3, "1"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("UpdateAmount(3) err = %v, want ErrIndexOutOfRange", err)
	}
	if err := l.UpdateLabel(3, "x"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("UpdateLabel(3) err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	l := NewLineItemListFrom([]LineItem{{Label: "a", Amount: "1"}})
	items := l.Items()
	items[0].Label = "changed"
	if it, _ := l.At(0); it.Label != "a" {
		t.Fatalf("mutating Items() leaked into list: %q", it.Label)
	}
}

func TestLineItemListJSON(t *testing.T) {
	l := NewLineItemListFrom([]LineItem{{Label: "Pay", Amount: "2000"}, {Label: "", Amount: "15.5"}})
	data, err := json.Marshal(l)
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"label":"Pay","amount":"2000"},{"label":"","amount":"15.5"}]`
	if string(data) != want {
		t.Fatalf("Marshal = %s, want %s", data, want)
	}

	for _, in := range []string{`[]`, `null`} {
		var got LineItemList
		if err := json.Unmarshal([]byte(in), &got); err != nil {
			t.Fatalf("Unmarshal(%s): %v", in, err)
		}
		if got.Len() != 1 {
			t.Fatalf("Unmarshal(%s) Len() = %d, want 1", in, got.Len())
		}
	}
}

func TestZeroValueListHasOneRow(t *testing.T) {
	var l LineItemList
	if l.Len() != 1 {
		t.Fatalf("zero LineItemList Len() = %d, want 1", l.Len())
	}
	if !l.Total().IsZero() {
		t.Fatalf("zero LineItemList Total() = %s, want 0", l.Total())
	}
}
