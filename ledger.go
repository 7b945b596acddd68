package moneta

import (
	"fmt"
	"iter"
	"slices"
)

// OrphanAccountLabel is displayed in place of the name of an account that
// no longer exists. Deleting an account does not cascade to its
// transactions, so the history can legitimately reference dead ids.
const OrphanAccountLabel = "(deleted account)"

// Ledger is the canonical state container for one session: it exclusively
// owns the accounts, transactions and holdings collections. It holds no
// derived state; valuations and dashboard figures are recomputed from it
// on demand.
//
// Transactions are kept most-recent-first: display order is insertion
// order, never a re-sort by date.
type Ledger struct {
	accounts     []Account
	transactions []Transaction
	holdings     []Holding
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		accounts:     make([]Account, 0),
		transactions: make([]Transaction, 0),
		holdings:     make([]Holding, 0),
	}
}

// Account returns the account with this id, or nil if unknown.
func (l *Ledger) Account(id string) *Account {
	for i := range l.accounts {
		if l.accounts[i].ID == id {
			return &l.accounts[i]
		}
	}
	return nil
}

// AccountName resolves an account id for display. Unresolvable ids get a
// sentinel label instead of failing: orphaned transactions remain visible.
func (l *Ledger) AccountName(id string) string {
	if a := l.Account(id); a != nil {
		return a.Name
	}
	return OrphanAccountLabel
}

// AddAccount validates the account and adds it to the ledger.
func (l *Ledger) AddAccount(a Account) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("invalid account: %w", err)
	}
	if l.Account(a.ID) != nil {
		return fmt.Errorf("account %q already exists", a.ID)
	}
	l.accounts = append(l.accounts, a)
	return nil
}

// UpdateAccount replaces an existing account wholesale. A failure leaves
// the stored account unchanged, there is no partial field update.
func (l *Ledger) UpdateAccount(a Account) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("invalid account: %w", err)
	}
	for i := range l.accounts {
		if l.accounts[i].ID == a.ID {
			l.accounts[i] = a
			return nil
		}
	}
	return fmt.Errorf("account %q: %w", a.ID, ErrAccountNotFound)
}

// DeleteAccount removes an account. It does not cascade: transactions
// referencing the account stay in the history and are displayed with
// [OrphanAccountLabel].
func (l *Ledger) DeleteAccount(id string) error {
	for i := range l.accounts {
		if l.accounts[i].ID == id {
			l.accounts = slices.Delete(l.accounts, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("account %q: %w", id, ErrAccountNotFound)
}

// Accounts returns an iterator over the accounts in insertion order.
func (l *Ledger) Accounts() iter.Seq2[int, Account] {
	return func(yield func(int, Account) bool) {
		for i, a := range l.accounts {
			if !yield(i, a) {
				return
			}
		}
	}
}

// NumAccounts returns the number of accounts in the ledger.
func (l *Ledger) NumAccounts() int { return len(l.accounts) }

// Transactions returns an iterator over transactions, most recent first.
// With no filters every transaction is yielded; otherwise a transaction is
// yielded when any filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// NumTransactions returns the number of recorded transactions.
func (l *Ledger) NumTransactions() int { return len(l.transactions) }

// ByDirection returns a predicate that filters transactions by direction.
func ByDirection(d Direction) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Direction == d }
}

// ByAccount returns a predicate that filters transactions by owning account.
func ByAccount(id string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.AccountID == id }
}

// ByCategory returns a predicate that filters transactions by category.
func ByCategory(c Category) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Category.String() == c.String() }
}

// Holding returns the holding with this id, or nil if unknown.
func (l *Ledger) Holding(id string) *Holding {
	for i := range l.holdings {
		if l.holdings[i].ID == id {
			return &l.holdings[i]
		}
	}
	return nil
}

// HoldingBySymbol returns the first holding with this ticker symbol, or
// nil if none is held.
func (l *Ledger) HoldingBySymbol(symbol string) *Holding {
	for i := range l.holdings {
		if l.holdings[i].Symbol == symbol {
			return &l.holdings[i]
		}
	}
	return nil
}

// AddHolding validates the holding and adds it to the ledger.
func (l *Ledger) AddHolding(h Holding) error {
	if err := h.Validate(); err != nil {
		return fmt.Errorf("invalid holding: %w", err)
	}
	if l.Holding(h.ID) != nil {
		return fmt.Errorf("holding %q already exists", h.ID)
	}
	l.holdings = append(l.holdings, h)
	return nil
}

// UpdateHolding replaces an existing holding wholesale.
func (l *Ledger) UpdateHolding(h Holding) error {
	if err := h.Validate(); err != nil {
		return fmt.Errorf("invalid holding: %w", err)
	}
	for i := range l.holdings {
		if l.holdings[i].ID == h.ID {
			l.holdings[i] = h
			return nil
		}
	}
	return fmt.Errorf("holding %q: %w", h.ID, ErrHoldingNotFound)
}

// DeleteHolding removes a holding from the ledger.
func (l *Ledger) DeleteHolding(id string) error {
	for i := range l.holdings {
		if l.holdings[i].ID == id {
			l.holdings = slices.Delete(l.holdings, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("holding %q: %w", id, ErrHoldingNotFound)
}

// Holdings returns an iterator over the holdings in insertion order.
func (l *Ledger) Holdings() iter.Seq2[int, Holding] {
	return func(yield func(int, Holding) bool) {
		for i, h := range l.holdings {
			if !yield(i, h) {
				return
			}
		}
	}
}

// NumHoldings returns the number of holdings in the ledger.
func (l *Ledger) NumHoldings() int { return len(l.holdings) }
