package cli

import (
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1234.5, "£1,234.50"},
		{0, "£0.00"},
		{0.005, "£0.01"},
		{999999.999, "£1,000,000.00"},
		{-100, "-£100.00"},
		{12, "£12.00"},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.in); got != c.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatCurrencyNotFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := FormatCurrency(v); got != "" {
			t.Errorf("FormatCurrency(%v) = %q, want empty", v, got)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"1234.5":       "£1,234.50",
		"not a number": "",
		"":             "",
		".":            "",
		"12.":          "£12.00",
		"50.5abc":      "£50.50",
	}
	for in, want := range cases {
		if got := FormatAmount(in); got != want {
			t.Errorf("FormatAmount(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(decimal.RequireFromString("150.5")); got != "£150.50" {
		t.Fatalf("FormatMoney(150.5) = %q", got)
	}
	if got := FormatMoney(decimal.RequireFromString("-0.004")); got != "£0.00" {
		t.Fatalf("FormatMoney(-0.004) = %q, want £0.00", got)
	}
}

func TestFormatMoneyBeyondInt64Pence(t *testing.T) {
	cases := map[string]string{
		"92233720368547758.08":  "£92,233,720,368,547,758.08",
		"123456789012345678901": "£123,456,789,012,345,678,901.00",
		"-100000000000000000.5": "-£100,000,000,000,000,000.50",
	}
	for in, want := range cases {
		if got := FormatMoney(decimal.RequireFromString(in)); got != want {
			t.Errorf("FormatMoney(%s) = %q, want %q", in, got, want)
		}
	}
	if got := FormatAmount("99999999999999999999"); got != "£99,999,999,999,999,999,999.00" {
		t.Errorf("FormatAmount(20 nines) = %q", got)
	}
}

func TestFormatMonths(t *testing.T) {
	if got := FormatMonths(1); got != "1 month" {
		t.Errorf("FormatMonths(1) = %q", got)
	}
	if got := FormatMonths(1500); got != "1,500 months" {
		t.Errorf("FormatMonths(1500) = %q", got)
	}
}

func TestRenderTableIncludesCells(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Income",
		Headers: []string{"Label", "Amount"},
		Rows:    [][]string{{"Salary", "£2,000.00"}},
	})
	for _, want := range []string{"Income", "Label", "Salary", "£2,000.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if RenderTable(Table{}) != "" {
		t.Error("empty table should render empty")
	}
}
