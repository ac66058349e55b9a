// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/goalsheet/internal/sheet"
)

// DisplayCurrency is the single currency amounts are rendered in.
const DisplayCurrency = money.GBP

// FormatMoney renders d as en-GB pounds, e.g. 1234.5 -> "£1,234.50".
func FormatMoney(d decimal.Decimal) string {
	pence := d.Shift(2).Round(0)
	if pence.Abs().GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return formatLargePence(pence)
	}
	return money.New(pence.IntPart(), DisplayCurrency).Display()
}

// formatLargePence renders a pence count too big for int64 in the same
// layout go-money's GBP Display uses.
func formatLargePence(pence decimal.Decimal) string {
	digits := pence.Abs().String()
	units, frac := digits[:len(digits)-2], digits[len(digits)-2:]

	sign := ""
	if pence.IsNegative() {
		sign = "-"
	}
	return sign + money.GetCurrency(DisplayCurrency).Grapheme + groupDigits(units) + "." + frac
}

// FormatCurrency renders a float amount. NaN and infinities render empty.
func FormatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return FormatMoney(decimal.NewFromFloat(v))
}

// FormatAmount renders a textual amount, parsed leniently. Text without a
// leading number renders empty rather than as £0.00.
func FormatAmount(s string) string {
	d, ok := sheet.ParseNumber(s)
	if !ok {
		return ""
	}
	return FormatMoney(d)
}

// FormatMonths renders a month count, e.g. 1 -> "1 month", 5 -> "5 months".
func FormatMonths(n int64) string {
	if n == 1 {
		return "1 month"
	}
	return FormatNumber(n) + " months"
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	return groupDigits(strconv.FormatInt(n, 10))
}

// groupDigits inserts a comma every three digits from the right.
func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}
