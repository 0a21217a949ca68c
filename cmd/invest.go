package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/allocation"
	"github.com/etnz/allocation/date"
	"github.com/etnz/allocation/renderer"
	"github.com/google/subcommands"
)

// investCmd holds the flags for the 'invest' subcommand.
type investCmd struct {
	weights     string
	date        string
	amount      float64
	currency    string
	equalWeight bool
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "split an amount following an allocation" }
func (*investCmd) Usage() string {
	return `palloc invest -w <weights> [-ew] [-d <date>] -a <amount> [-c <currency>]

  Computes the allocation for one day and splits the given amount across its
  assets, proportionally to the weights. The split always sums back to the
  amount, leftover minor units included.

Usage Examples:
$ palloc invest -w "a=0.2,b=0.8" -d 2022-08-01 -a 1000 -c EUR

`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.weights, "w", "", "Fixed weights, as a comma separated list of asset=weight pairs.")
	f.StringVar(&c.date, "d", date.Today().String(), "Day of the investment.")
	f.Float64Var(&c.amount, "a", 0, "Amount to invest, in major units of the currency.")
	f.StringVar(&c.currency, "c", "EUR", "Currency of the amount.")
	f.BoolVar(&c.equalWeight, "ew", false, "Rewrite the allocation to equal weights first.")
}

func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	row, err := parseWeights(c.weights)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing weights: %v\n", err)
		return subcommands.ExitUsageError
	}

	stage := allocation.Static(row)
	if c.equalWeight {
		stage = allocation.NewEqualWeight(stage)
	}

	table, err := allocation.Allocation(stage, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing allocation: %v\n", err)
		return subcommands.ExitFailure
	}

	amount := allocation.M(c.amount, c.currency)
	split, err := allocation.Invest(table[on], amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error splitting amount: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.InvestmentMarkdown(renderer.NewInvestment(on, amount, table[on], split)))
	return subcommands.ExitSuccess
}
