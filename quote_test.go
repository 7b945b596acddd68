package moneta

import (
	"encoding/json"
	"testing"
)

func TestTWSEField(t *testing.T) {
	const body = `{
		"msgArray": [
			{"c": "2330", "n": "台積電", "z": "1,080.0000", "y": "1075.0000"},
			{"c": "0050", "n": "元大台灣50", "z": "-", "y": "185.0000"}
		]
	}`
	var jobj any
	if err := json.Unmarshal([]byte(body), &jobj); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name    string
		path    string
		want    float64
		wantErr bool
	}{
		{name: "last trade with thousands separator", path: "$.msgArray[0].z", want: 1080},
		{name: "previous close", path: "$.msgArray[0].y", want: 1075},
		{name: "dash means no value", path: "$.msgArray[1].z", wantErr: true},
		{name: "fallback after dash", path: "$.msgArray[1].y", want: 185},
		{name: "non-string field", path: "$.msgArray[0]", wantErr: true},
		{name: "missing path", path: "$.msgArray[9].z", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := twseField(jobj, "2330", tc.path)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("twseField(%q) expected an error, got %v", tc.path, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("twseField(%q) failed: %v", tc.path, err)
			}
			if got != tc.want {
				t.Errorf("twseField(%q) = %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}

func TestTWSEQuotes_RejectsForeignCurrency(t *testing.T) {
	q := NewTWSEQuotes()
	h := NewHolding("AAPL", "Apple Inc.", Q(50), M(150, "USD"))
	if _, err := q.Quote(h); err == nil {
		t.Error("Quote() of a USD holding must fail without touching the network")
	}
}

func TestRandomWalk_ZeroDriftIsIdentity(t *testing.T) {
	h := NewHolding("2330", "台積電", Q(1000), M(600, "TWD"))
	price, err := RandomWalk{}.Quote(h)
	if err != nil {
		t.Fatalf("Quote() failed: %v", err)
	}
	if !price.Equal(h.CurrentPrice) {
		t.Errorf("zero-drift walk moved the price: %v -> %v", h.CurrentPrice, price)
	}
}
