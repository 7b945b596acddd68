// Package cmd implements the CLI application to manage the finance tracker.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/chweilin/moneta"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&accountsCmd{}, "accounts")
	c.Register(&addAccountCmd{}, "accounts")
	c.Register(&editAccountCmd{}, "accounts")
	c.Register(&deleteAccountCmd{}, "accounts")

	c.Register(newIncomeCmd(), "transactions")
	c.Register(newExpenseCmd(), "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&addHoldingCmd{}, "investments")
	c.Register(&deleteHoldingCmd{}, "investments")
	c.Register(&portfolioCmd{}, "investments")
	c.Register(&refreshCmd{}, "investments")

	c.Register(&dashboardCmd{}, "reports")

	c.Register(&loginCmd{}, "session")
	c.Register(&logoutCmd{}, "session")
	c.Register(&whoamiCmd{}, "session")

	c.Register(&adviseCmd{}, "advisor")
	c.Register(&analyzeCmd{}, "advisor")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "ledger.jsonl", "Path to the ledger file containing accounts, transactions and holdings (JSONL format)")
var profileFile = flag.String("profile-file", "profile.json", "Path to the persisted session profile")

// LoadLedger reads the app ledger file. A missing file is a fresh state,
// not an error: it yields an empty ledger.
func LoadLedger() (*moneta.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting from an empty ledger")
		return moneta.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return moneta.DecodeLedger(f)
}

// SaveLedger writes the whole ledger back to the app ledger file.
func SaveLedger(l *moneta.Ledger) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return fmt.Errorf("could not create ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return moneta.EncodeLedger(f, l)
}

// LoadProfile reads the persisted session record. Absent file and resumed
// session are handled identically by callers; absence simply yields the
// zero (unauthenticated) profile.
func LoadProfile() (moneta.Profile, error) {
	f, err := os.Open(*profileFile)
	if errors.Is(err, fs.ErrNotExist) {
		return moneta.Profile{}, nil
	}
	if err != nil {
		return moneta.Profile{}, fmt.Errorf("could not open profile file %q: %w", *profileFile, err)
	}
	defer f.Close()
	return moneta.DecodeProfile(f)
}

// SaveProfile writes the session record under the fixed profile path.
func SaveProfile(p moneta.Profile) error {
	f, err := os.Create(*profileFile)
	if err != nil {
		return fmt.Errorf("could not create profile file %q: %w", *profileFile, err)
	}
	defer f.Close()
	return moneta.EncodeProfile(f, p)
}
