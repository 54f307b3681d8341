package models

import "github.com/shopspring/decimal"

// Quote is the breakdown of one CalculateTotal run. Amounts are unrounded.
type Quote struct {
	CartID             string          `json:"cart_id"`
	ItemCount          int             `json:"item_count"`
	Currency           string          `json:"currency"`
	IsMember           bool            `json:"is_member"`
	HasCoupon          bool            `json:"has_coupon"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	MemberDiscount     decimal.Decimal `json:"member_discount"`
	BigSpenderDiscount decimal.Decimal `json:"big_spender_discount"`
	TaxableAmount      decimal.Decimal `json:"taxable_amount"`
	Tax                decimal.Decimal `json:"tax"`
	CouponDiscount     decimal.Decimal `json:"coupon_discount"`
	Total              decimal.Decimal `json:"total"`
}

func (q Quote) IsNegative() bool {
	return q.Total.IsNegative()
}
