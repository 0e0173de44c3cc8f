package utils

import (
	"testing"
	"time"
)

func TestParseBookingDate(t *testing.T) {
	d, err := ParseBookingDate("2099-01-01")
	if err != nil {
		t.Fatalf("ParseBookingDate: %v", err)
	}
	want := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
	if !d.Equal(want) {
		t.Errorf("got %v, want %v", d, want)
	}

	for _, bad := range []string{"", "01/01/2099", "2099-13-01", "tomorrow"} {
		if _, err := ParseBookingDate(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestBeginningOfDay(t *testing.T) {
	in := time.Date(2099, 6, 15, 17, 42, 3, 99, time.UTC)
	got := BeginningOfDay(in)
	want := time.Date(2099, 6, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNormalizeLicense(t *testing.T) {
	if got := NormalizeLicense("  bp-1234 "); got != "BP-1234" {
		t.Errorf("got %q", got)
	}
}
