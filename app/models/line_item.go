package models

import (
	"github.com/Rakhulsr/go-cart/app/utils/calc"
	"github.com/shopspring/decimal"
)

const DefaultCategory = "general"

// EstimateFactor is the share of the full line price kept by GetDiscountedEstimate.
var EstimateFactor = decimal.NewFromFloat(0.6)

// LineItem is one purchasable entry of a cart. Category and EnvironmentalFee
// are labels only; no pricing rule reads them.
type LineItem struct {
	Name             string
	UnitPrice        decimal.Decimal
	Quantity         int
	Category         string
	EnvironmentalFee decimal.Decimal
}

// NewLineItem builds an item from a loosely typed price. A price that is not
// a number becomes zero, quantity is kept as given.
func NewLineItem(name string, price interface{}, qty int) *LineItem {
	return &LineItem{
		Name:             name,
		UnitPrice:        calc.ParsePrice(price),
		Quantity:         qty,
		Category:         DefaultCategory,
		EnvironmentalFee: decimal.Zero,
	}
}

func (i *LineItem) GetTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// GetDiscountedEstimate returns 60% of the full line price. The cart never
// calls it.
func (i *LineItem) GetDiscountedEstimate() decimal.Decimal {
	return i.GetTotal().Mul(EstimateFactor)
}
