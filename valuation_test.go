package moneta

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestValueHolding(t *testing.T) {
	testCases := []struct {
		name            string
		holding         Holding
		wantMarketValue Money
		wantCostBasis   Money
		wantProfit      Money
		wantPercent     Percent
		wantApplicable  bool
	}{
		{
			name:            "profitable position",
			holding:         Holding{Shares: Q(1000), AverageCost: M(600, "TWD"), CurrentPrice: M(1080, "TWD")},
			wantMarketValue: M(1080000, "TWD"),
			wantCostBasis:   M(600000, "TWD"),
			wantProfit:      M(480000, "TWD"),
			wantPercent:     Percent(80.00),
			wantApplicable:  true,
		},
		{
			name:            "losing position",
			holding:         Holding{Shares: Q(50), AverageCost: M(150, "USD"), CurrentPrice: M(120, "USD")},
			wantMarketValue: M(6000, "USD"),
			wantCostBasis:   M(7500, "USD"),
			wantProfit:      M(-1500, "USD"),
			wantPercent:     Percent(-20.00),
			wantApplicable:  true,
		},
		{
			name:            "fractional shares",
			holding:         Holding{Shares: Q(2.5), AverageCost: M(100, "USD"), CurrentPrice: M(110, "USD")},
			wantMarketValue: M(275, "USD"),
			wantCostBasis:   M(250, "USD"),
			wantProfit:      M(25, "USD"),
			wantPercent:     Percent(10.00),
			wantApplicable:  true,
		},
		{
			name:            "zero average cost is not applicable",
			holding:         Holding{Shares: Q(10), AverageCost: M(0, "TWD"), CurrentPrice: M(45, "TWD")},
			wantMarketValue: M(450, "TWD"),
			wantCostBasis:   M(0, "TWD"),
			wantProfit:      M(450, "TWD"),
			wantApplicable:  false,
		},
		{
			name:            "zero shares is not applicable",
			holding:         Holding{Shares: Q(0), AverageCost: M(600, "TWD"), CurrentPrice: M(1080, "TWD")},
			wantMarketValue: M(0, "TWD"),
			wantCostBasis:   M(0, "TWD"),
			wantProfit:      M(0, "TWD"),
			wantApplicable:  false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValueHolding(tc.holding)
			if !got.MarketValue.Equal(tc.wantMarketValue) {
				t.Errorf("MarketValue = %v, want %v", got.MarketValue, tc.wantMarketValue)
			}
			if !got.CostBasis.Equal(tc.wantCostBasis) {
				t.Errorf("CostBasis = %v, want %v", got.CostBasis, tc.wantCostBasis)
			}
			if !got.Profit.Equal(tc.wantProfit) {
				t.Errorf("Profit = %v, want %v", got.Profit, tc.wantProfit)
			}
			if got.Applicable != tc.wantApplicable {
				t.Errorf("Applicable = %v, want %v", got.Applicable, tc.wantApplicable)
			}
			if tc.wantApplicable && !got.ProfitPercent.Equal(tc.wantPercent) {
				t.Errorf("ProfitPercent = %v, want %v", got.ProfitPercent, tc.wantPercent)
			}
			// A degenerate percent must never leak as Inf or NaN.
			if f := float64(got.ProfitPercent); math.IsInf(f, 0) || math.IsNaN(f) {
				t.Errorf("ProfitPercent = %v, must be a finite number", f)
			}
		})
	}
}

func TestValueHolding_Idempotent(t *testing.T) {
	h := Holding{Shares: Q(1000), AverageCost: M(600, "TWD"), CurrentPrice: M(1080, "TWD")}
	first := ValueHolding(h)
	second := ValueHolding(h)

	if !first.MarketValue.Equal(second.MarketValue) ||
		!first.CostBasis.Equal(second.CostBasis) ||
		!first.Profit.Equal(second.Profit) ||
		!first.ProfitPercent.Equal(second.ProfitPercent) ||
		first.Applicable != second.Applicable {
		t.Errorf("ValueHolding is not idempotent: %+v then %+v", first, second)
	}
}

func TestLedger_TotalInvestmentValue(t *testing.T) {
	l := seedLedger(t)

	// 1000*1080 + 2000*185 + 50*225*32 (USD at the fixed rate)
	want := M(1080000+370000+360000, "TWD")
	if got := l.TotalInvestmentValue(); !got.Equal(want) {
		t.Errorf("TotalInvestmentValue() = %v, want %v", got, want)
	}
}

func TestLedger_RefreshPrices_RandomWalk(t *testing.T) {
	l := seedLedger(t)
	walk := RandomWalk{MaxDrift: 0.02, Rand: rand.New(rand.NewPCG(7, 11))}

	before := make(map[string]Money)
	for _, h := range l.Holdings() {
		before[h.Symbol] = h.CurrentPrice
	}

	if err := l.RefreshPrices(walk); err != nil {
		t.Fatalf("RefreshPrices() failed: %v", err)
	}

	for _, h := range l.Holdings() {
		old := before[h.Symbol]
		low := old.Scale(newDecimal(0.98)).Sub(M(0.01, h.Currency()))
		high := old.Scale(newDecimal(1.02)).Add(M(0.01, h.Currency()))
		if h.CurrentPrice.Amount().LessThan(low.Amount()) || high.Amount().LessThan(h.CurrentPrice.Amount()) {
			t.Errorf("%s price %v drifted outside ±2%% of %v", h.Symbol, h.CurrentPrice, old)
		}
		if h.CurrentPrice.Amount().Exponent() < -2 {
			t.Errorf("%s price %v not rounded to two decimal places", h.Symbol, h.CurrentPrice)
		}
	}
}

// failingQuotes fails for a chosen symbol and drifts nothing otherwise.
type failingQuotes struct{ fail string }

func (f failingQuotes) Quote(h Holding) (Money, error) {
	if h.Symbol == f.fail {
		return Money{}, errors.New("feed unavailable")
	}
	return h.CurrentPrice, nil
}

func TestLedger_RefreshPrices_PartialFailure(t *testing.T) {
	l := seedLedger(t)

	err := l.RefreshPrices(failingQuotes{fail: "0050"})
	if err == nil {
		t.Fatal("RefreshPrices() expected a joined error, got nil")
	}

	// The failed holding keeps its previous price, the others are updated.
	if got := l.HoldingBySymbol("0050").CurrentPrice; !got.Equal(M(185, "TWD")) {
		t.Errorf("0050 price = %v, want unchanged 185 TWD", got)
	}
	if got := l.HoldingBySymbol("2330").CurrentPrice; !got.Equal(M(1080, "TWD")) {
		t.Errorf("2330 price = %v, want 1080 TWD", got)
	}
}
