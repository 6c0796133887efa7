package format

import (
	"strings"
	"testing"
)

func TestPriceCarriesCurrencySuffix(t *testing.T) {
	got := Price(25000)
	if !strings.Contains(got, "د.ع") {
		t.Fatalf("want dinar suffix, got %q", got)
	}
	if strings.Contains(got, ".5") || strings.Contains(got, "٫") {
		t.Fatalf("amounts are whole dinars, got %q", got)
	}
}

func TestPriceZero(t *testing.T) {
	if got := Price(0); got == "" || !strings.Contains(got, "د.ع") {
		t.Fatalf("zero must still render, got %q", got)
	}
}
