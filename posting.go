package moneta

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by mutation entry points. They are all
// validation failures: the attempted action is abandoned before any state
// changes, so callers never have to roll anything back.
var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrHoldingNotFound  = errors.New("holding not found")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrCurrencyMismatch = errors.New("amount currency differs from the account's")
)

// Post records a transaction against an account and applies its effect to
// the account's balance: income credits, expense debits. The balance may
// go negative, there is no overdraft check.
//
// Every precondition is checked before either collection is touched; on
// error no transaction is created and no balance moves. The new
// transaction is inserted at the head of the history (most recent first).
func (l *Ledger) Post(accountID string, amount Money, dir Direction, cat Category, day Date, description string) (Transaction, error) {
	tx := NewTransaction(accountID, amount, dir, cat, day, description)
	if err := tx.Validate(); err != nil {
		return Transaction{}, fmt.Errorf("cannot post transaction: %w", err)
	}

	account := l.Account(accountID)
	if account == nil {
		return Transaction{}, fmt.Errorf("cannot post transaction to %q: %w", accountID, ErrAccountNotFound)
	}
	if amount.Currency() != account.Balance.Currency() {
		return Transaction{}, fmt.Errorf("cannot post %s to %q: %w", amount.Currency(), accountID, ErrCurrencyMismatch)
	}

	// Both mutations derive from the same validated action: from the
	// caller's perspective they happen as a pair.
	account.Balance = account.Balance.Add(tx.Signed())
	l.transactions = append([]Transaction{tx}, l.transactions...)
	return tx, nil
}
