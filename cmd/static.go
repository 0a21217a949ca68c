package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/allocation"
	"github.com/etnz/allocation/renderer"
	"github.com/google/subcommands"
)

// staticCmd holds the flags for the 'static' subcommand.
type staticCmd struct {
	weights     string
	equalWeight bool
}

func (*staticCmd) Name() string     { return "static" }
func (*staticCmd) Synopsis() string { return "compute a fixed allocation for the given days" }
func (*staticCmd) Usage() string {
	return `palloc static -w <weights> [-ew] <date>...

  Computes the allocation table of a static stage over the given days.
  With -ew, the table is first piped through the equal-weight transform.

Usage Examples:
$ palloc static -w "a=0.2,b=0.8" 2022-08-01 2022-08-02
$ palloc static -ew -w "a=0.2,b=0.8" 2022-08-01 2022-08-02

`
}

func (c *staticCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.weights, "w", "", "Fixed weights, as a comma separated list of asset=weight pairs.")
	f.BoolVar(&c.equalWeight, "ew", false, "Rewrite the allocation to equal weights per day.")
}

func (c *staticCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	row, err := parseWeights(c.weights)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing weights: %v\n", err)
		return subcommands.ExitUsageError
	}

	stage := allocation.Static(row)
	title := "Static allocation"
	if c.equalWeight {
		stage = allocation.NewEqualWeight(stage)
		title = "Equal weight"
	}

	table, err := allocation.AllocationStrings(stage, f.Args()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing allocation: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TableMarkdown(title, table))
	return subcommands.ExitSuccess
}
