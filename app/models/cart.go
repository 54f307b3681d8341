package models

import (
	"github.com/Rakhulsr/go-cart/app/utils/calc"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart aggregates line items in insertion order and prices them with a fixed
// policy. It is not safe for concurrent use.
type Cart struct {
	ID     string
	Items  []*LineItem
	policy PricingPolicy
}

func NewCart() *Cart {
	return NewCartWithPolicy(DefaultPolicy())
}

func NewCartWithPolicy(policy PricingPolicy) *Cart {
	return &Cart{
		ID:     uuid.New().String(),
		policy: policy,
	}
}

func (c *Cart) Currency() string {
	return c.policy.Currency
}

// AddItem appends item without any checks; duplicates are kept as separate
// entries.
func (c *Cart) AddItem(item *LineItem) {
	c.Items = append(c.Items, item)
}

func (c *Cart) CalculateSubtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.Items {
		if item == nil {
			continue
		}
		subtotal = subtotal.Add(item.GetTotal())
	}
	return subtotal
}

// ApplyDiscounts takes the member discount off subtotal first and then the
// flat big spender discount when what is left is strictly above the
// threshold. hasCoupon is accepted but the coupon is applied by
// CalculateTotal, after tax.
func (c *Cart) ApplyDiscounts(subtotal decimal.Decimal, isMember, hasCoupon bool) decimal.Decimal {
	return c.discount(subtotal, isMember).TaxableAmount
}

func (c *Cart) CalculateTotal(isMember, hasCoupon bool) decimal.Decimal {
	return c.Quote(isMember, hasCoupon).Total
}

// Quote runs the whole pricing pipeline and keeps every intermediate amount.
func (c *Cart) Quote(isMember, hasCoupon bool) Quote {
	q := c.discount(c.CalculateSubtotal(), isMember)
	q.CartID = c.ID
	q.ItemCount = len(c.Items)
	q.Currency = c.policy.Currency
	q.IsMember = isMember
	q.HasCoupon = hasCoupon

	q.Tax = calc.CalculateTax(q.TaxableAmount, c.policy.TaxRate)
	q.CouponDiscount = decimal.Zero
	if hasCoupon {
		q.CouponDiscount = calc.CalculateDiscount(q.TaxableAmount.Add(q.Tax), c.policy.CouponDiscountRate)
	}
	q.Total = calc.CalculateGrandTotal(q.TaxableAmount, q.Tax, q.CouponDiscount)
	return q
}

func (c *Cart) discount(subtotal decimal.Decimal, isMember bool) Quote {
	q := Quote{
		Subtotal:           subtotal,
		MemberDiscount:     decimal.Zero,
		BigSpenderDiscount: decimal.Zero,
	}

	amount := subtotal
	if isMember {
		q.MemberDiscount = calc.CalculateDiscount(amount, c.policy.MemberDiscountRate)
		amount = amount.Sub(q.MemberDiscount)
	}
	if amount.GreaterThan(c.policy.BigSpenderThreshold) {
		q.BigSpenderDiscount = c.policy.BigSpenderFlatDiscount
		amount = amount.Sub(q.BigSpenderDiscount)
	}
	q.TaxableAmount = amount
	return q
}
