package models

import "github.com/shopspring/decimal"

// PricingPolicy holds the discount and tax settings a cart is priced with.
// It is copied into the cart on construction and never changed afterwards.
type PricingPolicy struct {
	TaxRate                decimal.Decimal
	MemberDiscountRate     decimal.Decimal
	BigSpenderThreshold    decimal.Decimal
	BigSpenderFlatDiscount decimal.Decimal
	CouponDiscountRate     decimal.Decimal
	Currency               string
}

func DefaultPolicy() PricingPolicy {
	return PricingPolicy{
		TaxRate:                decimal.NewFromFloat(0.08),
		MemberDiscountRate:     decimal.NewFromFloat(0.05),
		BigSpenderThreshold:    decimal.NewFromInt(100),
		BigSpenderFlatDiscount: decimal.NewFromInt(10),
		CouponDiscountRate:     decimal.NewFromFloat(0.15),
		Currency:               "USD",
	}
}
