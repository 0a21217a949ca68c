package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/allocation/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	// Shell completion: a no-op unless invoked by the completion machinery.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"demo":   {},
			"static": {},
			"invest": {},
			"topic":  {},
			"help":   {},
		},
	}
	completion.Complete("palloc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
