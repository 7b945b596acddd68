package moneta

import (
	"errors"

	"github.com/google/uuid"
)

// Account is a bank account tracked by the ledger. Its balance is signed
// and expressed in the account's own currency; it is mutated only by
// posting transactions or by a direct edit.
type Account struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Bank    string `json:"bank"`    // institution name
	Number  string `json:"number"`  // external account number
	Balance Money  `json:"balance"` // may be negative, no overdraft check
}

// NewAccount creates an account with a fresh id and an opening balance.
func NewAccount(name, bank, number string, balance Money) Account {
	return Account{
		ID:      uuid.NewString(),
		Name:    name,
		Bank:    bank,
		Number:  number,
		Balance: balance,
	}
}

// Validate checks the account for correctness before it enters the ledger.
func (a Account) Validate() error {
	if a.ID == "" {
		return errors.New("account id is missing")
	}
	if a.Name == "" {
		return errors.New("account name is missing")
	}
	if a.Balance.Currency() == "" {
		return errors.New("account currency is missing")
	}
	return nil
}

// MarshalJSON writes the account as an ordered object with its record
// discriminator first, for the JSONL ledger file.
func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", recordAccount)
	w.Append("id", a.ID)
	w.Append("name", a.Name)
	w.Optional("bank", a.Bank)
	w.Optional("number", a.Number)
	w.EmbedFrom(a.Balance)
	return w.MarshalJSON()
}
