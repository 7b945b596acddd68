package moneta

import "github.com/shopspring/decimal"

// CategoryAmount is one slice of the expense distribution.
type CategoryAmount struct {
	Category Category
	Amount   Money
}

// Summary is the dashboard view of the ledger: total balances, all-time
// income and expense, and the expense distribution by category.
//
// The income and expense totals cover the entire recorded history; there
// is no period boundary.
type Summary struct {
	TotalBalance         Money
	TotalInvestmentValue Money
	TotalAssets          Money
	TotalIncome          Money
	TotalExpense         Money
	// ExpenseByCategory preserves first-seen category order: the consuming
	// chart reads it as a sequence, not a sorted structure.
	ExpenseByCategory []CategoryAmount
}

// Summarize derives the dashboard figures from the current ledger
// contents. It is a pure function: nothing is cached, every call
// recomputes from scratch.
func Summarize(l *Ledger) *Summary {
	s := &Summary{
		TotalInvestmentValue: l.TotalInvestmentValue(),
	}

	// Account balances are summed as raw amounts, without currency
	// normalization. A known limitation of the dashboard.
	balance := decimal.Zero
	for _, a := range l.accounts {
		balance = balance.Add(a.Balance.Amount())
	}
	s.TotalBalance = M(balance, ReportingCurrency)
	s.TotalAssets = s.TotalBalance.Add(s.TotalInvestmentValue)

	income := decimal.Zero
	expense := decimal.Zero
	seen := make(map[string]int)

	// Fold in posting order (the history is stored most recent first) so
	// the category sequence follows the order expenses were recorded.
	for i := len(l.transactions) - 1; i >= 0; i-- {
		tx := l.transactions[i]
		switch tx.Direction {
		case Income:
			income = income.Add(tx.Amount.Amount())
		case Expense:
			expense = expense.Add(tx.Amount.Amount())
			key := tx.Category.String()
			// Like the totals, category amounts are raw sums in the
			// reporting currency.
			amount := M(tx.Amount.Amount(), ReportingCurrency)
			if at, ok := seen[key]; ok {
				s.ExpenseByCategory[at].Amount = s.ExpenseByCategory[at].Amount.Add(amount)
			} else {
				seen[key] = len(s.ExpenseByCategory)
				s.ExpenseByCategory = append(s.ExpenseByCategory, CategoryAmount{
					Category: tx.Category,
					Amount:   amount,
				})
			}
		}
	}
	s.TotalIncome = M(income, ReportingCurrency)
	s.TotalExpense = M(expense, ReportingCurrency)
	return s
}
