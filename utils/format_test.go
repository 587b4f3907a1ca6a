package utils

import (
	"testing"
	"time"
)

func TestRound2HalfUp(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.234, 1.23},
		{1.236, 1.24},
		{0.125, 0.13},
		{0, 0},
		{-0.125, -0.13},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Fatalf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCurrencySymbolFallback(t *testing.T) {
	if got := CurrencySymbol("EUR"); got != "€" {
		t.Fatalf("expected €, got %q", got)
	}
	if got := CurrencySymbol("XOF"); got != "XOF" {
		t.Fatalf("unmapped code must fall back to itself, got %q", got)
	}
}

func TestFormatAmountLocales(t *testing.T) {
	if got := FormatAmount(12500.5, "EUR", "fr"); got != "12 500,50 €" {
		t.Fatalf("unexpected fr amount %q", got)
	}
	if got := FormatAmount(12500.5, "USD", "en"); got != "12,500.50 $" {
		t.Fatalf("unexpected en amount %q", got)
	}
}

func TestFormatMonthLabel(t *testing.T) {
	june := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	if got := FormatMonthLabel(june, "fr"); got != "juin 2024" {
		t.Fatalf("unexpected fr label %q", got)
	}
	if got := FormatMonthLabel(june, "en"); got != "June 2024" {
		t.Fatalf("unexpected en label %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d, "fr"); got != "01/06/2024" {
		t.Fatalf("unexpected fr date %q", got)
	}
	if got := FormatDate(d, "en"); got != "06/01/2024" {
		t.Fatalf("unexpected en date %q", got)
	}
	if got := FormatDate(time.Time{}, "fr"); got != "" {
		t.Fatalf("zero time must format empty, got %q", got)
	}
}
