package moneta

import "slices"

// snapshotTransactionLimit caps how much history leaves the ledger in a
// snapshot: only the most recent transactions are worth submitting to an
// external advisor.
const snapshotTransactionLimit = 20

// Snapshot is a read-only copy of the ledger handed to external
// collaborators (the advisory gateway). It shares no storage with the
// ledger, so an in-flight advisory call can never observe or cause a
// mutation.
type Snapshot struct {
	Accounts     []Account
	Transactions []Transaction // most recent first, capped
	Holdings     []Holding
	TotalBalance Money
}

// Snapshot captures the current ledger contents. Transactions keep their
// display order (most recent first) and are capped to the most recent
// twenty.
func (l *Ledger) Snapshot() *Snapshot {
	txs := l.transactions
	if len(txs) > snapshotTransactionLimit {
		txs = txs[:snapshotTransactionLimit]
	}
	return &Snapshot{
		Accounts:     slices.Clone(l.accounts),
		Transactions: slices.Clone(txs),
		Holdings:     slices.Clone(l.holdings),
		TotalBalance: Summarize(l).TotalBalance,
	}
}
