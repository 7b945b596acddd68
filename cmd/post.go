package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/chweilin/moneta"
	"github.com/google/subcommands"
)

// postCmd implements both the income and expense subcommands: they share
// every flag and differ only in posting direction.
type postCmd struct {
	dir         moneta.Direction
	accountID   string
	amount      float64
	category    string
	date        string
	description string
}

func newIncomeCmd() *postCmd  { return &postCmd{dir: moneta.Income} }
func newExpenseCmd() *postCmd { return &postCmd{dir: moneta.Expense} }

func (c *postCmd) Name() string {
	if c.dir == moneta.Income {
		return "income"
	}
	return "expense"
}

func (c *postCmd) Synopsis() string {
	if c.dir == moneta.Income {
		return "record an income transaction on an account"
	}
	return "record an expense transaction on an account"
}

func (c *postCmd) Usage() string {
	return fmt.Sprintf(`mon %s -account <id> -amount <amount> [-category <category>] [-d <date>] [-m <description>]

  Posts a transaction and applies it to the account balance. The amount
  is always given positive; the command decides the direction.

Usage Examples:
$ mon expense -account acc_2 -amount 120 -category food -m "便利商店午餐"
`, c.Name())
}

func (c *postCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.accountID, "account", "", "Id of the account to post against.")
	f.Float64Var(&c.amount, "amount", 0, "Positive amount, in the account's currency.")
	f.StringVar(&c.category, "category", "other", "Category: one of the known labels, or any free text.")
	f.StringVar(&c.date, "d", "", "Date of record (defaults to today).")
	f.StringVar(&c.description, "m", "", "Free-text description.")
}

func (c *postCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var day moneta.Date
	if c.date != "" {
		var err error
		day, err = moneta.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	account := ledger.Account(c.accountID)
	if account == nil {
		fmt.Fprintf(os.Stderr, "Error: no account selected (unknown id %q)\n", c.accountID)
		return subcommands.ExitUsageError
	}
	amount := moneta.M(c.amount, account.Balance.Currency())

	tx, err := ledger.Post(c.accountID, amount, c.dir, moneta.ParseCategory(c.category), day, c.description)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Posted %s %s on %q, balance is now %s\n",
		c.Name(), tx.Amount, ledger.AccountName(c.accountID), ledger.Account(c.accountID).Balance)
	return subcommands.ExitSuccess
}
