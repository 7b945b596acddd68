package moneta

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ReportingCurrency is the currency used for aggregate totals.
const ReportingCurrency = "TWD"

// usdToReporting is the fixed USD to TWD conversion used for aggregate
// totals. This is a deliberate simplification, not a live exchange-rate
// feed; every other currency is treated as already being in the reporting
// currency.
var usdToReporting = decimal.NewFromInt(32)

// fxToReporting returns the conversion factor applied to this currency
// when it contributes to an aggregate total.
func fxToReporting(currency string) decimal.Decimal {
	if currency == "USD" {
		return usdToReporting
	}
	// Unknown currencies are not converted, a known approximation.
	return decimal.NewFromInt(1)
}

// Valuation is the market view of a single holding.
type Valuation struct {
	MarketValue Money
	CostBasis   Money
	Profit      Money
	// ProfitPercent is meaningless on a zero cost basis (no shares, or a
	// free acquisition). Applicable is false in that case and the percent
	// must not be displayed; the value is never Inf or NaN.
	ProfitPercent Percent
	Applicable    bool
}

// ValueHolding computes the market value, cost basis and profit of a
// holding. It is a pure function of the holding's current fields.
func ValueHolding(h Holding) Valuation {
	v := Valuation{
		MarketValue: h.CurrentPrice.Mul(h.Shares),
		CostBasis:   h.AverageCost.Mul(h.Shares),
	}
	v.Profit = v.MarketValue.Sub(v.CostBasis)
	if v.CostBasis.IsZero() {
		return v
	}
	ratio := v.Profit.Amount().Div(v.CostBasis.Amount()).Mul(decimal.NewFromInt(100))
	v.ProfitPercent = Percent(ratio.Round(2).InexactFloat64())
	v.Applicable = true
	return v
}

// TotalInvestmentValue sums the market value of every holding, normalized
// to the reporting currency with the fixed conversion factors.
func (l *Ledger) TotalInvestmentValue() Money {
	total := M(0, ReportingCurrency)
	for _, h := range l.holdings {
		value := ValueHolding(h).MarketValue.Scale(fxToReporting(h.Currency()))
		total = total.Add(M(value.Amount(), ReportingCurrency))
	}
	return total
}

// QuoteProvider supplies an updated price per holding. A real market-data
// feed plugs in here; failures are reported per holding so the others can
// still be refreshed.
type QuoteProvider interface {
	Quote(h Holding) (Money, error)
}

// RefreshPrices replaces the current price of each holding with the one
// supplied by the provider, rounded to two decimal places. Per-holding
// failures are joined and returned after every holding has been tried;
// a failed holding keeps its previous price.
func (l *Ledger) RefreshPrices(qp QuoteProvider) error {
	var errs error
	for i := range l.holdings {
		price, err := qp.Quote(l.holdings[i])
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("could not quote %s: %w", l.holdings[i].Symbol, err))
			continue
		}
		l.holdings[i].CurrentPrice = price.Round(2)
	}
	return errs
}
