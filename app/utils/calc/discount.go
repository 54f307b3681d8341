package calc

import "github.com/shopspring/decimal"

// CalculateDiscount returns the amount taken off baseTotal at the given rate.
func CalculateDiscount(baseTotal, rate decimal.Decimal) decimal.Decimal {
	return baseTotal.Mul(rate)
}
