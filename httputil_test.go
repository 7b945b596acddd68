package moneta

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJwget(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"msgArray":[{"c":"2330","z":"1080.0000"}]}`))
	}))
	defer server.Close()

	// Distinct paths keep the two tests on distinct daily-cache keys.
	var jobj any
	if err := jwget(daily(), server.URL+"/quote", &jobj); err != nil {
		t.Fatalf("jwget() failed: %v", err)
	}

	val, err := twseField(jobj, "2330", "$.msgArray[0].z")
	if err != nil {
		t.Fatalf("twseField() failed: %v", err)
	}
	if val != 1080 {
		t.Errorf("quote = %v, want 1080", val)
	}
}

func TestJwget_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	var jobj any
	if err := jwget(daily(), server.URL+"/limited", &jobj); err == nil {
		t.Error("jwget() expected an error on a non-200 response")
	}
}
