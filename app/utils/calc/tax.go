package calc

import "github.com/shopspring/decimal"

func CalculateTax(baseTotal, taxRate decimal.Decimal) decimal.Decimal {
	return baseTotal.Mul(taxRate)
}

func CalculateGrandTotal(baseTotal, taxAmount, discountAmount decimal.Decimal) decimal.Decimal {
	return baseTotal.Add(taxAmount).Sub(discountAmount)
}
