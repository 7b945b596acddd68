package moneta

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// RandomWalk is the simulation stub behind price refresh: each quote is
// the holding's current price drifted by a uniform δ in ±MaxDrift.
// A production deployment swaps it for a real feed like [TWSEQuotes];
// both sides honor the same [QuoteProvider] contract.
type RandomWalk struct {
	MaxDrift float64    // e.g. 0.02 for ±2%
	Rand     *rand.Rand // optional deterministic source, for tests
}

func (w RandomWalk) float64() float64 {
	if w.Rand != nil {
		return w.Rand.Float64()
	}
	return rand.Float64()
}

// Quote drifts the current price by a uniform factor in [1-MaxDrift, 1+MaxDrift].
func (w RandomWalk) Quote(h Holding) (Money, error) {
	delta := (2*w.float64() - 1) * w.MaxDrift
	return h.CurrentPrice.Scale(newDecimal(1 + delta)), nil
}

/*
	TWSE intraday quotes, e.g.
	https://mis.twse.com.tw/stock/api/getStockInfo.jsp?ex_ch=tse_2330.tw&json=1&delay=0

	{
	    "msgArray": [
	        {
	            "c": "2330",
	            "n": "台積電",
	            "z": "1080.0000",
	            "y": "1075.0000",
	            ...
	        }
	    ]
	}
*/

// TWSEQuotes fetches the latest traded price from the Taiwan Stock
// Exchange intraday API. Only TWD-quoted holdings can be resolved there;
// quotes for other currencies fail per holding and leave the previous
// price in place.
type TWSEQuotes struct {
	client *http.Client
}

// NewTWSEQuotes creates a provider with a daily-expiring response cache.
func NewTWSEQuotes() *TWSEQuotes {
	return &TWSEQuotes{client: daily()}
}

// Quote implements [QuoteProvider] against the TWSE intraday API.
func (t *TWSEQuotes) Quote(h Holding) (Money, error) {
	if h.Currency() != "TWD" {
		return Money{}, fmt.Errorf("symbol %s is not listed on TWSE", h.Symbol)
	}
	symbol := strings.TrimSuffix(h.Symbol, ".TW")
	addr := "https://mis.twse.com.tw/stock/api/getStockInfo.jsp?ex_ch=tse_" + symbol + ".tw&json=1&delay=0"

	var jobj any
	if err := jwget(t.client, addr, &jobj); err != nil {
		return Money{}, fmt.Errorf("error in wget %q: %w", h.Symbol, err)
	}

	val, err := twseField(jobj, h.Symbol, "$.msgArray[0].z")
	// "z" is the last trade; off-session it is empty, fall back to the
	// previous close.
	if err != nil {
		val, err = twseField(jobj, h.Symbol, "$.msgArray[0].y")
	}
	if err != nil {
		return Money{}, err
	}
	return M(val, "TWD"), nil
}

// twseField extracts one numeric field from the quote response. The API
// returns every number as a string, sometimes "-" when there is no value.
func twseField(jobj any, symbol, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %q %w", symbol, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	sval, ok := jval.(string)
	if !ok || sval == "-" || sval == "" {
		return 0, fmt.Errorf("cannot read value from %q: %q has no price", symbol, path)
	}
	sval = strings.ReplaceAll(sval, ",", "")
	val, err := strconv.ParseFloat(sval, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot read value from %q: %q %w", symbol, path, err)
	}
	return val, nil
}
