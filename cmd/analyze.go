package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/chweilin/moneta/advisor"
	"github.com/google/subcommands"
)

type analyzeCmd struct {
	symbol string
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "get an analysis of one holding" }
func (*analyzeCmd) Usage() string {
	return `mon analyze -symbol <ticker>

  Asks the advisor for a short analysis of one stock in the portfolio.
  Requires GEMINI_API_KEY; without it a fixed notice is printed instead.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Symbol of the holding to analyze.")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	h := ledger.HoldingBySymbol(c.symbol)
	if h == nil {
		fmt.Fprintf(os.Stderr, "Error: no holding with symbol %q\n", c.symbol)
		return subcommands.ExitUsageError
	}

	a := advisor.New(ctx)
	printMarkdown(a.StockAnalysis(ctx, h.Symbol, h.Name))
	return subcommands.ExitSuccess
}
