package sheet

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// LineItem is one labeled amount in an income or outgoing list.
// Amount holds a canonical decimal string and may be empty.
type LineItem struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

// LineItemList is an ordered list of line items that always holds at least
// one row. Insertion order is both display and aggregation order.
type LineItemList struct {
	items []LineItem
}

// NewLineItemList returns a list holding a single blank row.
func NewLineItemList() *LineItemList {
	return &LineItemList{items: []LineItem{{}}}
}

// NewLineItemListFrom copies items into a new list. An empty input yields
// a single blank row.
func NewLineItemListFrom(items []LineItem) *LineItemList {
	l := &LineItemList{}
	l.set(items)
	return l
}

func (l *LineItemList) set(items []LineItem) {
	if len(items) == 0 {
		l.items = []LineItem{{}}
		return
	}
	l.items = append([]LineItem(nil), items...)
}

func (l *LineItemList) ensure() {
	if len(l.items) == 0 {
		l.items = []LineItem{{}}
	}
}

// Len returns the number of rows.
func (l *LineItemList) Len() int {
	l.ensure()
	return len(l.items)
}

// Items returns a copy of the rows.
func (l *LineItemList) Items() []LineItem {
	l.ensure()
	return append([]LineItem(nil), l.items...)
}

// At returns the row at index i.
func (l *LineItemList) At(i int) (LineItem, error) {
	l.ensure()
	if i < 0 || i >= len(l.items) {
		return LineItem{}, ErrIndexOutOfRange
	}
	return l.items[i], nil
}

// Append adds a blank row. It refuses while the last row has no amount.
func (l *LineItemList) Append() error {
	l.ensure()
	if l.items[len(l.items)-1].Amount == "" {
		return ErrAmountRequired
	}
	l.items = append(l.items, LineItem{})
	return nil
}

// RemoveAt deletes the row at index i. Removing the only row is rejected.
func (l *LineItemList) RemoveAt(i int) error {
	l.ensure()
	if i < 0 || i >= len(l.items) {
		return ErrIndexOutOfRange
	}
	if len(l.items) == 1 {
		return ErrLastItem
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

// UpdateLabel replaces the label at index i verbatim.
func (l *LineItemList) UpdateLabel(i int, text string) error {
	l.ensure()
	if i < 0 || i >= len(l.items) {
		return ErrIndexOutOfRange
	}
	l.items[i].Label = text
	return nil
}

// UpdateAmount stores the normalized form of text at index i.
func (l *LineItemList) UpdateAmount(i int, text string) error {
	l.ensure()
	if i < 0 || i >= len(l.items) {
		return ErrIndexOutOfRange
	}
	l.items[i].Amount = Normalize(text)
	return nil
}

// Total sums every amount, counting empty or unparsable ones as zero.
func (l *LineItemList) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range l.items {
		total = total.Add(ParseAmount(it.Amount))
	}
	return total
}

// Unparsed returns the indices of non-empty amounts that are not numbers.
// Totals already treat them as zero; this only lets a UI point them out.
func (l *LineItemList) Unparsed() []int {
	var idx []int
	for i, it := range l.items {
		if it.Amount == "" {
			continue
		}
		if _, ok := ParseNumber(it.Amount); !ok {
			idx = append(idx, i)
		}
	}
	return idx
}

func (l *LineItemList) normalized() *LineItemList {
	out := l.Clone()
	for i := range out.items {
		out.items[i].Amount = Normalize(out.items[i].Amount)
	}
	return out
}

// Clone returns an independent copy of the list.
func (l *LineItemList) Clone() *LineItemList {
	return NewLineItemListFrom(l.items)
}

// MarshalJSON encodes the list as an array of line items.
func (l LineItemList) MarshalJSON() ([]byte, error) {
	items := l.items
	if len(items) == 0 {
		items = []LineItem{{}}
	}
	return json.Marshal(items)
}

// UnmarshalJSON decodes an array of line items; null or [] become one blank row.
func (l *LineItemList) UnmarshalJSON(data []byte) error {
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	l.set(items)
	return nil
}
