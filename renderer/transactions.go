package renderer

import (
	"fmt"
	"strings"

	"github.com/chweilin/moneta"
)

// TransactionsMarkdown renders the transaction history in display order
// (most recent first). Accounts are resolved through the ledger so that
// orphaned transactions show the sentinel label rather than an id.
// A positive head keeps only the first rows, a positive tail only the
// last ones; zero means no limit.
func TransactionsMarkdown(l *moneta.Ledger, head, tail int, filters ...func(moneta.Transaction) bool) string {
	var rows []moneta.Transaction
	for _, tx := range l.Transactions(filters...) {
		rows = append(rows, tx)
	}
	if head > 0 && head < len(rows) {
		rows = rows[:head]
	}
	if tail > 0 && tail < len(rows) {
		rows = rows[len(rows)-tail:]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions\n\n")
	fmt.Fprintln(&b, "| Date | Account | Category | Description | Amount |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|---:|")

	for _, tx := range rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			tx.Date,
			l.AccountName(tx.AccountID),
			tx.Category,
			tx.Description,
			tx.Signed().SignedString(),
		)
	}
	return b.String()
}

// AccountsMarkdown renders the account list with balances.
func AccountsMarkdown(l *moneta.Ledger) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Accounts\n\n")
	fmt.Fprintln(&b, "| Name | Bank | Number | Balance | Id |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|:---|")

	for _, a := range l.Accounts() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			a.Name, a.Bank, a.Number, a.Balance, a.ID)
	}
	return b.String()
}
