package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/chweilin/moneta"
	"github.com/google/subcommands"
)

type editAccountCmd struct {
	id      string
	name    string
	bank    string
	number  string
	balance string
}

func (*editAccountCmd) Name() string     { return "edit-account" }
func (*editAccountCmd) Synopsis() string { return "edit an existing bank account" }
func (*editAccountCmd) Usage() string {
	return `mon edit-account -id <id> [-name <name>] [-bank <bank>] [-number <number>] [-balance <amount>]

  Edits the given fields of an account. Omitted flags keep their current
  value; the whole update is applied atomically or not at all.
`
}

func (c *editAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the account to edit.")
	f.StringVar(&c.name, "name", "", "New display name.")
	f.StringVar(&c.bank, "bank", "", "New institution name.")
	f.StringVar(&c.number, "number", "", "New external account number.")
	f.StringVar(&c.balance, "balance", "", "New balance, in the account's currency.")
}

func (c *editAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	current := ledger.Account(c.id)
	if current == nil {
		fmt.Fprintf(os.Stderr, "Error: no account with id %q\n", c.id)
		return subcommands.ExitUsageError
	}

	// Build the full replacement before touching the ledger.
	edited := *current
	if c.name != "" {
		edited.Name = c.name
	}
	if c.bank != "" {
		edited.Bank = c.bank
	}
	if c.number != "" {
		edited.Number = c.number
	}
	if c.balance != "" {
		amount, err := strconv.ParseFloat(c.balance, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid balance %q\n", c.balance)
			return subcommands.ExitUsageError
		}
		edited.Balance = moneta.M(amount, current.Balance.Currency())
	}

	if err := ledger.UpdateAccount(edited); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated account %q\n", edited.Name)
	return subcommands.ExitSuccess
}
