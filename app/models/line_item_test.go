package models

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewLineItemDefaults(t *testing.T) {
	item := NewLineItem("Apple", 1.5, 10)

	assert.Equal(t, "Apple", item.Name)
	assert.True(t, dec("1.5").Equal(item.UnitPrice))
	assert.Equal(t, 10, item.Quantity)
	assert.Equal(t, DefaultCategory, item.Category)
	assert.True(t, item.EnvironmentalFee.IsZero())
}

func TestNewLineItemCoercesNonNumericPrice(t *testing.T) {
	for _, price := range []interface{}{"12.50", nil, true, struct{}{}, []int{1}, math.NaN(), math.Inf(1)} {
		item := NewLineItem("Odd", price, 7)
		assert.True(t, item.UnitPrice.IsZero(), "price %#v", price)
		assert.True(t, item.GetTotal().IsZero(), "price %#v", price)
	}
}

type unitPrice float64

type wholePrice int32

func TestNewLineItemAcceptsNumericKinds(t *testing.T) {
	for _, price := range []interface{}{3, int8(3), int16(3), int32(3), int64(3), uint(3), uint8(3), uint16(3), uint32(3), uint64(3), float32(3), 3.0, dec("3"), unitPrice(3), wholePrice(3)} {
		item := NewLineItem("Three", price, 1)
		assert.True(t, dec("3").Equal(item.UnitPrice), "price %#v", price)
	}
}

func TestNewLineItemNamedPriceType(t *testing.T) {
	item := NewLineItem("x", unitPrice(5), 2)

	assert.True(t, dec("5").Equal(item.UnitPrice), "got %s", item.UnitPrice)
	assert.True(t, dec("10").Equal(item.GetTotal()), "got %s", item.GetTotal())
}

func TestNewLineItemKeepsQuantityAsGiven(t *testing.T) {
	item := NewLineItem("Return", 4, -2)

	assert.Equal(t, -2, item.Quantity)
	assert.True(t, dec("-8").Equal(item.GetTotal()))
}

func TestGetTotal(t *testing.T) {
	assert.True(t, dec("15").Equal(NewLineItem("Apple", 1.5, 10).GetTotal()))
	assert.True(t, dec("2.5").Equal(NewLineItem("Banana", 0.5, 5).GetTotal()))
	assert.True(t, NewLineItem("None", 99, 0).GetTotal().IsZero())
}

func TestGetDiscountedEstimate(t *testing.T) {
	item := NewLineItem("Ten", 10, 2)

	assert.True(t, dec("12").Equal(item.GetDiscountedEstimate()))
	assert.True(t, dec("20").Equal(item.GetTotal()))
}

func TestCategoryChangeDoesNotAffectTotals(t *testing.T) {
	item := NewLineItem("Laptop", 1000, 1)
	before := item.GetTotal()

	item.Category = "electronics"

	assert.Equal(t, "electronics", item.Category)
	assert.True(t, before.Equal(item.GetTotal()))
}
