package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/chweilin/moneta/renderer"
	"github.com/google/subcommands"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list bank accounts and their balances" }
func (*accountsCmd) Usage() string {
	return `mon accounts

  Lists every bank account with its balance and id.
`
}

func (*accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AccountsMarkdown(ledger))
	return subcommands.ExitSuccess
}
