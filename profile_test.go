package moneta

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeDecodeProfile(t *testing.T) {
	p := Profile{
		ID:         "user_1",
		Name:       "王小明",
		Email:      "ming@example.com",
		IsLoggedIn: true,
	}

	var buf bytes.Buffer
	if err := EncodeProfile(&buf, p); err != nil {
		t.Fatalf("EncodeProfile() failed: %v", err)
	}
	got, err := DecodeProfile(&buf)
	if err != nil {
		t.Fatalf("DecodeProfile() failed: %v", err)
	}
	if got != p {
		t.Errorf("round trip = %+v, want %+v", got, p)
	}
}

func TestDecodeProfile_Garbage(t *testing.T) {
	if _, err := DecodeProfile(strings.NewReader("not json")); err == nil {
		t.Error("DecodeProfile() expected an error on garbage input")
	}
}
