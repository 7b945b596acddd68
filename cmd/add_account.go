package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/chweilin/moneta"
	"github.com/google/subcommands"
)

type addAccountCmd struct {
	name     string
	bank     string
	number   string
	balance  float64
	currency string
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "add a bank account to the ledger" }
func (*addAccountCmd) Usage() string {
	return `mon add-account -name <name> [-bank <bank>] [-number <number>] [-balance <amount>] [-currency <code>]

  Adds a bank account with an opening balance.

Usage Examples:
$ mon add-account -name "主要薪轉戶" -bank "中國信託" -number 822-1234567890 -balance 150000
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name for the account.")
	f.StringVar(&c.bank, "bank", "", "Institution name.")
	f.StringVar(&c.number, "number", "", "External account number.")
	f.Float64Var(&c.balance, "balance", 0, "Opening balance.")
	f.StringVar(&c.currency, "currency", "TWD", "Currency code of the account.")
}

func (c *addAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	account := moneta.NewAccount(c.name, c.bank, c.number, moneta.M(c.balance, c.currency))
	if err := ledger.AddAccount(account); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added account %q (%s)\n", account.Name, account.ID)
	return subcommands.ExitSuccess
}
