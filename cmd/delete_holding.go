package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteHoldingCmd struct {
	id     string
	symbol string
}

func (*deleteHoldingCmd) Name() string     { return "delete-holding" }
func (*deleteHoldingCmd) Synopsis() string { return "remove a position from the portfolio" }
func (*deleteHoldingCmd) Usage() string {
	return `mon delete-holding [-id <id> | -symbol <ticker>]

  Removes a holding, identified either by its id or by its symbol.
`
}

func (c *deleteHoldingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the holding to delete.")
	f.StringVar(&c.symbol, "symbol", "", "Symbol of the holding to delete.")
}

func (c *deleteHoldingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	id := c.id
	if id == "" && c.symbol != "" {
		h := ledger.HoldingBySymbol(c.symbol)
		if h == nil {
			fmt.Fprintf(os.Stderr, "Error: no holding with symbol %q\n", c.symbol)
			return subcommands.ExitUsageError
		}
		id = h.ID
	}

	if err := ledger.DeleteHolding(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted holding %s\n", id)
	return subcommands.ExitSuccess
}
