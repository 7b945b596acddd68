package moneta

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// recordType discriminates the lines of the ledger file.
type recordType string

const (
	recordAccount     recordType = "account"
	recordTransaction recordType = "transaction"
	recordHolding     recordType = "holding"
)

// amountRec is a specialized struct to read a monetary amount stored in
// two fields.
type amountRec struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountRec) Money() Money {
	return M(a.Amount, a.Currency)
}

// EncodeLedger writes the whole ledger as a stream of JSONL records:
// accounts first, then holdings, then the transaction history in its
// display order (most recent first).
func EncodeLedger(w io.Writer, l *Ledger) error {
	enc := json.NewEncoder(w)
	for _, a := range l.accounts {
		if err := enc.Encode(a); err != nil {
			return fmt.Errorf("could not encode account %q: %w", a.ID, err)
		}
	}
	for _, h := range l.holdings {
		if err := enc.Encode(h); err != nil {
			return fmt.Errorf("could not encode holding %q: %w", h.ID, err)
		}
	}
	for _, tx := range l.transactions {
		if err := enc.Encode(tx); err != nil {
			return fmt.Errorf("could not encode transaction %q: %w", tx.ID, err)
		}
	}
	return nil
}

// DecodeLedger reads a stream of JSONL records and rebuilds the ledger.
// Record order in the file is preserved, so the transaction history comes
// back in its display order.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record recordType `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}

		switch identifier.Record {
		case recordAccount:
			var temp struct {
				ID     string `json:"id"`
				Name   string `json:"name"`
				Bank   string `json:"bank"`
				Number string `json:"number"`
				amountRec
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("could not decode account: %w", err)
			}
			account := Account{
				ID:      temp.ID,
				Name:    temp.Name,
				Bank:    temp.Bank,
				Number:  temp.Number,
				Balance: temp.Money(),
			}
			if err := ledger.AddAccount(account); err != nil {
				return nil, err
			}

		case recordHolding:
			var temp struct {
				ID           string          `json:"id"`
				Symbol       string          `json:"symbol"`
				Name         string          `json:"name"`
				Shares       Quantity        `json:"shares"`
				AverageCost  decimal.Decimal `json:"averageCost"`
				CurrentPrice decimal.Decimal `json:"currentPrice"`
				Currency     string          `json:"currency"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("could not decode holding: %w", err)
			}
			holding := Holding{
				ID:           temp.ID,
				Symbol:       temp.Symbol,
				Name:         temp.Name,
				Shares:       temp.Shares,
				AverageCost:  M(temp.AverageCost, temp.Currency),
				CurrentPrice: M(temp.CurrentPrice, temp.Currency),
			}
			if err := ledger.AddHolding(holding); err != nil {
				return nil, err
			}

		case recordTransaction:
			var temp struct {
				ID          string    `json:"id"`
				AccountID   string    `json:"accountId"`
				Direction   Direction `json:"direction"`
				Category    Category  `json:"category"`
				Date        Date      `json:"date"`
				Description string    `json:"description"`
				amountRec
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("could not decode transaction: %w", err)
			}
			tx := Transaction{
				ID:          temp.ID,
				AccountID:   temp.AccountID,
				Amount:      temp.Money(),
				Direction:   temp.Direction,
				Category:    temp.Category,
				Date:        temp.Date,
				Description: temp.Description,
			}
			if err := tx.Validate(); err != nil {
				return nil, fmt.Errorf("invalid transaction %q: %w", tx.ID, err)
			}
			// The history is persisted most recent first; keep file order.
			ledger.transactions = append(ledger.transactions, tx)

		default:
			return nil, fmt.Errorf("unknown record type %q in line %q", identifier.Record, string(lineBytes))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}
	return ledger, nil
}
