package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/chweilin/moneta/advisor"
	"github.com/google/subcommands"
)

type adviseCmd struct{}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "get financial advice on the current state" }
func (*adviseCmd) Usage() string {
	return `mon advise

  Sends a snapshot of the ledger (accounts, holdings and the most recent
  transactions) to the advisor and prints its guidance. Requires
  GEMINI_API_KEY; without it a fixed notice is printed instead.
`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	a := advisor.New(ctx)
	printMarkdown(a.FinancialAdvice(ctx, ledger.Snapshot()))
	return subcommands.ExitSuccess
}
