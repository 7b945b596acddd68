// Package renderer turns ledger views into markdown documents for
// terminal display.
package renderer

import (
	"github.com/chweilin/moneta"
)

// notApplicable is displayed where a profit percent has no meaning
// (zero cost basis).
const notApplicable = "n/a"

// profitPercent renders a valuation's percent, or the not-applicable
// marker. A degenerate percent is never shown as a number.
func profitPercent(v moneta.Valuation) string {
	if !v.Applicable {
		return notApplicable
	}
	return v.ProfitPercent.SignedString()
}
