package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/allocation"
	"github.com/etnz/allocation/date"
)

func TestTableMarkdown(t *testing.T) {
	aug1 := date.New(2022, time.August, 1)
	aug2 := date.New(2022, time.August, 2)

	table := allocation.Table{
		aug1: {"a": allocation.W(0.2), "b": allocation.W(0.8)},
		aug2: {"b": allocation.W(1)},
	}

	got := TableMarkdown("Static", table)
	want := `# Static

| Date | a | b |
|:---|---:|---:|
| 2022-08-01 | 0.2 | 0.8 |
| 2022-08-02 | - | 1 |
`
	if got != want {
		t.Errorf("TableMarkdown() mismatch:\n--- want\n%s\n+++ got\n%s", want, got)
	}
}

func TestTableMarkdown_empty(t *testing.T) {
	got := TableMarkdown("Static", allocation.Table{})
	if !strings.Contains(got, "No day requested.") {
		t.Errorf("TableMarkdown() on empty table = %q, want the empty note", got)
	}
}

func TestInvestmentMarkdown(t *testing.T) {
	on := date.New(2022, time.August, 1)
	row := allocation.Row{"a": allocation.W(0.2), "b": allocation.W(0.8)}
	amount := allocation.M(100, "EUR")

	split, err := allocation.Invest(row, amount)
	if err != nil {
		t.Fatalf("Invest() error = %v", err)
	}

	got := InvestmentMarkdown(NewInvestment(on, amount, row, split))

	if !strings.Contains(got, "# Investment on 2022-08-01") {
		t.Errorf("InvestmentMarkdown() missing title:\n%s", got)
	}
	for _, line := range []InvestmentLine{
		{Asset: "a", Weight: allocation.W(0.2), Amount: split["a"]},
		{Asset: "b", Weight: allocation.W(0.8), Amount: split["b"]},
	} {
		wantLine := "| " + line.Asset + " | " + line.Weight.String() + " | " + line.Amount.String() + " |"
		if !strings.Contains(got, wantLine) {
			t.Errorf("InvestmentMarkdown() missing line %q:\n%s", wantLine, got)
		}
	}
}
