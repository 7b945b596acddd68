package moneta

import (
	"errors"

	"github.com/google/uuid"
)

// Holding is a stock position: a share count with the average price paid
// per share and the last known market price. Holdings are independent of
// accounts and transactions.
type Holding struct {
	ID           string   `json:"id"`
	Symbol       string   `json:"symbol"` // e.g. 2330.TW, AAPL
	Name         string   `json:"name"`
	Shares       Quantity `json:"shares"` // may be fractional
	AverageCost  Money    `json:"averageCost"`
	CurrentPrice Money    `json:"currentPrice"`
}

// NewHolding creates a holding with a fresh id. The current price starts
// equal to the cost basis until a price refresh updates it.
func NewHolding(symbol, name string, shares Quantity, averageCost Money) Holding {
	return Holding{
		ID:           uuid.NewString(),
		Symbol:       symbol,
		Name:         name,
		Shares:       shares,
		AverageCost:  averageCost,
		CurrentPrice: averageCost,
	}
}

// Validate checks the holding for correctness before it enters the ledger.
func (h Holding) Validate() error {
	if h.ID == "" {
		return errors.New("holding id is missing")
	}
	if h.Symbol == "" {
		return errors.New("holding symbol is missing")
	}
	if h.Shares.IsNegative() {
		return errors.New("holding share count is negative")
	}
	if h.AverageCost.Currency() == "" {
		return errors.New("holding currency is missing")
	}
	return nil
}

// Currency returns the currency the holding is quoted in.
func (h Holding) Currency() string { return h.AverageCost.Currency() }

// MarshalJSON writes the holding as an ordered object with its record
// discriminator first, for the JSONL ledger file.
func (h Holding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", recordHolding)
	w.Append("id", h.ID)
	w.Append("symbol", h.Symbol)
	w.Optional("name", h.Name)
	w.Append("shares", h.Shares)
	w.Append("averageCost", h.AverageCost.Amount())
	w.Append("currentPrice", h.CurrentPrice.Amount())
	w.Append("currency", h.Currency())
	return w.MarshalJSON()
}
