package configs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rakhulsr/go-cart/app/helpers"
	"github.com/Rakhulsr/go-cart/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var ErrInvalidPolicy = errors.New("invalid pricing policy")

// PricingConfig is the env form of models.PricingPolicy. The defaults are
// the reference policy.
type PricingConfig struct {
	TaxRate                float64 `envconfig:"CART_TAX_RATE" default:"0.08" validate:"gte=0,lte=1"`
	MemberDiscountRate     float64 `envconfig:"CART_MEMBER_DISCOUNT_RATE" default:"0.05" validate:"gte=0,lte=1"`
	BigSpenderThreshold    float64 `envconfig:"CART_BIG_SPENDER_THRESHOLD" default:"100" validate:"gte=0"`
	BigSpenderFlatDiscount float64 `envconfig:"CART_BIG_SPENDER_DISCOUNT" default:"10" validate:"gte=0"`
	CouponDiscountRate     float64 `envconfig:"CART_COUPON_DISCOUNT_RATE" default:"0.15" validate:"gte=0,lte=1"`
	Currency               string  `envconfig:"CART_CURRENCY" default:"USD" validate:"required,len=3,alpha"`
}

func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		TaxRate:                0.08,
		MemberDiscountRate:     0.05,
		BigSpenderThreshold:    100,
		BigSpenderFlatDiscount: 10,
		CouponDiscountRate:     0.15,
		Currency:               "USD",
	}
}

func (c PricingConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
		}
		msgs := helpers.FormatValidationErrors(verrs)
		parts := make([]string, 0, len(msgs))
		for field, msg := range msgs {
			parts = append(parts, field+": "+msg)
		}
		return fmt.Errorf("%w: %s", ErrInvalidPolicy, strings.Join(parts, "; "))
	}
	return nil
}

// Policy validates the config and converts it to the immutable policy carts
// are built with.
func (c PricingConfig) Policy() (models.PricingPolicy, error) {
	if err := c.Validate(); err != nil {
		return models.PricingPolicy{}, err
	}
	return models.PricingPolicy{
		TaxRate:                decimal.NewFromFloat(c.TaxRate),
		MemberDiscountRate:     decimal.NewFromFloat(c.MemberDiscountRate),
		BigSpenderThreshold:    decimal.NewFromFloat(c.BigSpenderThreshold),
		BigSpenderFlatDiscount: decimal.NewFromFloat(c.BigSpenderFlatDiscount),
		CouponDiscountRate:     decimal.NewFromFloat(c.CouponDiscountRate),
		Currency:               strings.ToUpper(c.Currency),
	}, nil
}
