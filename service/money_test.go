package service

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		price string
		want  int64
	}{
		{"49.99", 4999},
		{"19.50", 1950},
		{"0.01", 1},
		{"100", 10000},
	}
	for _, c := range cases {
		if got := MinorUnits(decimal.RequireFromString(c.price)); got != c.want {
			t.Errorf("MinorUnits(%s) = %d, want %d", c.price, got, c.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(decimal.RequireFromString("49.9")); got != "ZAR 49.90" {
		t.Fatalf("unexpected formatting: %q", got)
	}
}
