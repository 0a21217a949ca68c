// Package cmd implements the CLI verbs of the palloc tool.
package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/allocation"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&demoCmd{}, "allocations")
	c.Register(&staticCmd{}, "allocations")
	c.Register(&investCmd{}, "allocations")

	c.Register(&topicCmd{}, "documentation")
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// parseWeights parses a weight specification like "a=0.2,b=0.8" into a Row.
func parseWeights(spec string) (allocation.Row, error) {
	row := allocation.Row{}
	if strings.TrimSpace(spec) == "" {
		return row, nil
	}
	for _, field := range strings.Split(spec, ",") {
		asset, value, ok := strings.Cut(strings.TrimSpace(field), "=")
		if !ok {
			return nil, fmt.Errorf("invalid weight %q, want \"asset=weight\"", field)
		}
		asset = strings.TrimSpace(asset)
		if asset == "" {
			return nil, fmt.Errorf("invalid weight %q: empty asset", field)
		}
		if _, dup := row[asset]; dup {
			return nil, fmt.Errorf("duplicate asset %q", asset)
		}
		w, err := allocation.ParseWeight(strings.TrimSpace(value))
		if err != nil {
			return nil, err
		}
		row[asset] = w
	}
	return row, nil
}
