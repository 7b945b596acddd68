package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/chweilin/moneta"
	"github.com/chweilin/moneta/renderer"
	"github.com/google/subcommands"
)

type refreshCmd struct {
	live bool
}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "refresh current prices for all holdings" }
func (*refreshCmd) Usage() string {
	return `mon refresh [-live]

  Updates the current price of every holding. By default prices take a
  simulated random walk within ±2%; with -live, quotes are fetched from
  the TWSE intraday API instead.

  A failing quote leaves that holding's previous price in place; the
  others are still updated.
`
}

func (c *refreshCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.live, "live", false, "Fetch real quotes from TWSE instead of simulating.")
}

func (c *refreshCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	var provider moneta.QuoteProvider = moneta.RandomWalk{MaxDrift: 0.02}
	if c.live {
		provider = moneta.NewTWSEQuotes()
	}

	if err := ledger.RefreshPrices(provider); err != nil {
		// Partial failures are reported but the refreshed prices are kept.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PortfolioMarkdown(ledger))
	return subcommands.ExitSuccess
}
