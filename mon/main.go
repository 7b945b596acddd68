package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/chweilin/moneta/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion. It exits
// the process when invoked in completion mode (COMP_LINE set).
func completion() {
	files := map[string]complete.Predictor{
		"ledger-file":  predict.Files("*.jsonl"),
		"profile-file": predict.Files("*.json"),
	}
	none := map[string]*complete.Command{
		"accounts":       {},
		"add-account":    {},
		"edit-account":   {},
		"delete-account": {},
		"income":         {},
		"expense":        {},
		"tx":             {},
		"add-holding":    {},
		"delete-holding": {},
		"portfolio":      {},
		"refresh":        {},
		"dashboard":      {},
		"login":          {},
		"logout":         {},
		"whoami":         {},
		"advise":         {},
		"analyze":        {},
		"topic":          {},
	}
	(&complete.Command{Sub: none, Flags: files}).Complete("mon")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
