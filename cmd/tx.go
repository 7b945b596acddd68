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

type txCmd struct {
	account   string
	direction string
	category  string
	head      int
	tail      int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, most recent first" }
func (*txCmd) Usage() string {
	return `mon tx [-account <id>] [-direction <income|expense>] [-category <category>] [-head <n>] [-tail <n>]

  Lists the transaction history in display order (most recent first).
  Flags narrow the listing; with none, everything is listed.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Only transactions of this account id.")
	f.StringVar(&c.direction, "direction", "", "Only income or only expense transactions.")
	f.StringVar(&c.category, "category", "", "Only transactions in this category.")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	// The ledger ORs its predicates, but combined flags must narrow: fold
	// them into a single conjunctive filter.
	var conds []func(moneta.Transaction) bool
	if c.account != "" {
		conds = append(conds, moneta.ByAccount(c.account))
	}
	if c.direction != "" {
		dir, err := moneta.ParseDirection(c.direction)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		conds = append(conds, moneta.ByDirection(dir))
	}
	if c.category != "" {
		conds = append(conds, moneta.ByCategory(moneta.ParseCategory(c.category)))
	}

	var filters []func(moneta.Transaction) bool
	if len(conds) > 0 {
		filters = append(filters, matchAll(conds))
	}

	printMarkdown(renderer.TransactionsMarkdown(ledger, c.head, c.tail, filters...))
	return subcommands.ExitSuccess
}

// matchAll accepts a transaction only when every condition does.
func matchAll(conds []func(moneta.Transaction) bool) func(moneta.Transaction) bool {
	return func(tx moneta.Transaction) bool {
		for _, cond := range conds {
			if !cond(tx) {
				return false
			}
		}
		return true
	}
}
