package renderer

import (
	"fmt"
	"strings"

	"github.com/chweilin/moneta"
)

// SummaryMarkdown renders the dashboard: totals first, then the expense
// distribution in its first-seen category order.
func SummaryMarkdown(s *moneta.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Dashboard\n\n")
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total assets | %s |\n", s.TotalAssets)
	fmt.Fprintf(&b, "| Bank balance | %s |\n", s.TotalBalance)
	fmt.Fprintf(&b, "| Investments | %s |\n", s.TotalInvestmentValue)
	fmt.Fprintf(&b, "| Income (all time) | %s |\n", s.TotalIncome)
	fmt.Fprintf(&b, "| Expense (all time) | %s |\n", s.TotalExpense)

	if len(s.ExpenseByCategory) == 0 {
		return b.String()
	}

	fmt.Fprintf(&b, "\n## Expenses by category\n\n")
	fmt.Fprintln(&b, "| Category | Amount |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, ca := range s.ExpenseByCategory {
		fmt.Fprintf(&b, "| %s | %s |\n", ca.Category, ca.Amount)
	}
	return b.String()
}
