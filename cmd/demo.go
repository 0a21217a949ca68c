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

type demoCmd struct{}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "run the demonstration pipeline" }
func (*demoCmd) Usage() string {
	return `palloc demo

  Runs a static allocation (a=0.2, b=0.8) over two example days, then pipes
  it through the equal-weight transform, and prints both tables.
`
}

func (*demoCmd) SetFlags(f *flag.FlagSet) {}

func (c *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	static := allocation.Static(allocation.Row{"a": allocation.W(0.2), "b": allocation.W(0.8)})
	days := []string{"2022-08-01", "2022-08-02"}

	table, err := allocation.AllocationStrings(static, days...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing static allocation: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TableMarkdown("Static allocation", table))

	equal, err := allocation.AllocationStrings(allocation.NewEqualWeight(static), days...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing equal-weight allocation: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TableMarkdown("Equal weight", equal))

	return subcommands.ExitSuccess
}
