package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/goalsheet/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Errorf("joined height = %d, want %d", len(lines), tallLines)
	}

	for i, line := range lines {
		if i >= shortLines && !strings.Contains(line, "\x1b[") {
			t.Errorf("line %d has no ANSI codes; padding would be unstyled", i)
		}
	}
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, total := range []int{10, 31, 100} {
		for n := 1; n <= 4; n++ {
			sum := 0
			for _, w := range LayoutRow(total, n) {
				sum += w
			}
			if sum != total {
				t.Errorf("LayoutRow(%d, %d) sums to %d", total, n, sum)
			}
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow with n=0 should be nil")
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	row := MetricCardRow([]Metric{
		{Label: "Income", Value: "£1,000.00"},
		{Label: "Outgoings", Value: "£400.00"},
		{Label: "Difference", Value: "£600.00", Color: theme.Active.Positive},
	}, 90)
	if got := lipgloss.Width(row); got != 90 {
		t.Errorf("row width = %d, want 90", got)
	}
	if !strings.Contains(row, "£600.00") {
		t.Error("row missing difference value")
	}
}

func TestNoticeCardShowsMessage(t *testing.T) {
	out := NoticeCard("Please enter an amount first", 50)
	if !strings.Contains(out, "Please enter an amount first") {
		t.Errorf("notice missing message:\n%s", out)
	}
	if !strings.Contains(out, "dismiss") {
		t.Error("notice missing dismiss hint")
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey("2"); got != 1 {
		t.Errorf("TabIdxByKey(2) = %d, want 1", got)
	}
	if got := TabIdxByKey("x"); got != -1 {
		t.Errorf("TabIdxByKey(x) = %d, want -1", got)
	}
}
