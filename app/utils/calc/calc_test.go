package calc

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type namedPrice float64

type namedCents int64

type namedQty uint16

type namedLabel string

func TestParsePrice(t *testing.T) {
	big := uint64(math.MaxUint64)
	d := decimal.RequireFromString("9.99")
	var nilDec *decimal.Decimal

	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"float64", 1.5, "1.5"},
		{"float32", float32(0.5), "0.5"},
		{"int", 1000, "1000"},
		{"negative int", -4, "-4"},
		{"uint64 max", big, "18446744073709551615"},
		{"decimal", d, "9.99"},
		{"decimal pointer", &d, "9.99"},
		{"nil decimal pointer", nilDec, "0"},
		{"named float", namedPrice(5), "5"},
		{"named float fraction", namedPrice(2.25), "2.25"},
		{"named int", namedCents(-7), "-7"},
		{"named uint", namedQty(3), "3"},
		{"named float nan", namedPrice(math.NaN()), "0"},
		{"named float infinity", namedPrice(math.Inf(1)), "0"},
		{"named string", namedLabel("5"), "0"},
		{"numeric string", "1.5", "0"},
		{"nil", nil, "0"},
		{"bool", true, "0"},
		{"nan", math.NaN(), "0"},
		{"negative infinity", math.Inf(-1), "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePrice(tt.input)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestRateHelpers(t *testing.T) {
	base := decimal.RequireFromString("1017.5")

	assert.Equal(t, "50.875", CalculateDiscount(base, decimal.NewFromFloat(0.05)).String())
	assert.Equal(t, "81.4", CalculateTax(base, decimal.NewFromFloat(0.08)).String())
	assert.Equal(t, "1088.9", CalculateGrandTotal(base, decimal.NewFromInt(81), decimal.NewFromFloat(9.6)).String())
}
