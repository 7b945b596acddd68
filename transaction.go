package moneta

import (
	"errors"

	"github.com/google/uuid"
)

// Transaction is a single posted movement on an account. Transactions are
// append-only: once posted they are never edited or deleted, a correction
// is a new offsetting transaction. The amount is always positive, the
// direction tells whether it credits or debits the account.
type Transaction struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"accountId"`
	Amount      Money     `json:"amount"`
	Direction   Direction `json:"direction"`
	Category    Category  `json:"category"`
	Date        Date      `json:"date"`
	Description string    `json:"description"`
}

// NewTransaction creates a transaction record with a fresh id. A zero
// date resolves to today.
func NewTransaction(accountID string, amount Money, dir Direction, cat Category, day Date, description string) Transaction {
	if day.IsZero() {
		day = Today()
	}
	return Transaction{
		ID:          uuid.NewString(),
		AccountID:   accountID,
		Amount:      amount,
		Direction:   dir,
		Category:    cat,
		Date:        day,
		Description: description,
	}
}

// Validate checks the transaction invariants: a positive amount, a known
// direction and an owning account id. Whether that id still resolves is
// the ledger's business, not the record's.
func (t Transaction) Validate() error {
	if t.AccountID == "" {
		return errors.New("transaction has no account")
	}
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if t.Direction != Income && t.Direction != Expense {
		return errors.New("transaction direction is missing")
	}
	return nil
}

// Signed returns the amount with the sign implied by the direction:
// positive for income, negative for expense.
func (t Transaction) Signed() Money {
	if t.Direction == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// MarshalJSON writes the transaction as an ordered object with its record
// discriminator first, for the JSONL ledger file.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", recordTransaction)
	w.Append("id", t.ID)
	w.Append("accountId", t.AccountID)
	w.Append("direction", t.Direction)
	w.Append("category", t.Category)
	w.Append("date", t.Date)
	w.Optional("description", t.Description)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}
