package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/chweilin/moneta"
	"github.com/google/subcommands"
)

type addHoldingCmd struct {
	symbol   string
	name     string
	shares   float64
	avgCost  float64
	currency string
}

func (*addHoldingCmd) Name() string     { return "add-holding" }
func (*addHoldingCmd) Synopsis() string { return "add a position to the investment portfolio" }
func (*addHoldingCmd) Usage() string {
	return `mon add-holding -symbol <ticker> -name <name> -shares <shares> -cost <average cost> [-c <currency>]

  Adds a holding. The current price starts at the average cost; run
  'mon refresh' to pull quotes.

Usage Examples:
$ mon add-holding -symbol 2330 -name "台積電" -shares 1000 -cost 600
$ mon add-holding -symbol AAPL -name "Apple Inc." -shares 50 -cost 150 -c USD
`
}

func (c *addHoldingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Ticker symbol of the holding.")
	f.StringVar(&c.name, "name", "", "Display name of the holding.")
	f.Float64Var(&c.shares, "shares", 0, "Number of shares held.")
	f.Float64Var(&c.avgCost, "cost", 0, "Average cost per share.")
	f.StringVar(&c.currency, "c", "TWD", "Currency of the average cost.")
}

func (c *addHoldingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	h := moneta.NewHolding(c.symbol, c.name, moneta.Q(c.shares), moneta.M(c.avgCost, c.currency))
	if err := ledger.AddHolding(h); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added holding %s (%s): %s shares at %s\n", h.Symbol, h.Name, h.Shares, h.AverageCost)
	return subcommands.ExitSuccess
}
