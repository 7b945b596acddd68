package renderer

import (
	"fmt"
	"strings"

	"github.com/chweilin/moneta"
)

// PortfolioMarkdown renders every holding with its valuation, and the
// currency-normalized portfolio total.
func PortfolioMarkdown(l *moneta.Ledger) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Portfolio\n\n")
	fmt.Fprintln(&b, "| Symbol | Name | Shares | Avg cost | Price | Market value | Profit | Profit % |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|---:|")

	for _, h := range l.Holdings() {
		v := moneta.ValueHolding(h)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			h.Symbol,
			h.Name,
			h.Shares,
			h.AverageCost,
			h.CurrentPrice,
			v.MarketValue,
			v.Profit.SignedString(),
			profitPercent(v),
		)
	}

	fmt.Fprintf(&b, "\nTotal investment value: %s\n", l.TotalInvestmentValue())
	return b.String()
}
