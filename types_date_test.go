package moneta

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-10-05", want: NewDate(2025, time.October, 5)},
		{in: "2025-1-2", want: NewDate(2025, time.January, 2)},
		{in: "not-a-date", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseDate(%q) expected an error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDateNormalization(t *testing.T) {
	// Out-of-range day fields normalize like time.Date does.
	got := NewDate(2025, time.January, 32)
	if got != NewDate(2025, time.February, 1) {
		t.Errorf("NewDate(2025, 1, 32) = %v, want 2025-02-01", got)
	}
	if got := NewDate(2025, time.March, 1).Add(-1); got != NewDate(2025, time.February, 28) {
		t.Errorf("Add(-1) = %v, want 2025-02-28", got)
	}
}

func TestDateOrdering(t *testing.T) {
	a := MustParseDate("2025-10-05")
	b := MustParseDate("2025-10-06")
	if !a.Before(b) || b.Before(a) || !b.After(a) {
		t.Errorf("ordering broken between %v and %v", a, b)
	}
	if a.IsZero() || !(Date{}).IsZero() {
		t.Error("IsZero misreports")
	}
}
