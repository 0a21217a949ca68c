package renderer

import (
	"github.com/etnz/allocation"
	"github.com/etnz/allocation/date"
)

// Investment is the display model of an amount split across one day's
// allocation.
type Investment struct {
	Date   date.Date
	Amount allocation.Money
	Lines  []InvestmentLine
}

// InvestmentLine is one asset of an investment split.
type InvestmentLine struct {
	Asset  string
	Weight allocation.Weight
	Amount allocation.Money
}

// NewInvestment pairs an allocation row with its money split, sorted by asset.
func NewInvestment(on date.Date, amount allocation.Money, row allocation.Row, split map[string]allocation.Money) *Investment {
	inv := &Investment{Date: on, Amount: amount}
	for _, asset := range row.Assets() {
		inv.Lines = append(inv.Lines, InvestmentLine{
			Asset:  asset,
			Weight: row[asset],
			Amount: split[asset],
		})
	}
	return inv
}

// InvestmentMarkdown renders the investment split to a markdown string.
func InvestmentMarkdown(inv *Investment) string {
	return renderTemplate("investment", "investment.md", inv)
}
