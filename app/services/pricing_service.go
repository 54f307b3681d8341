package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rakhulsr/go-cart/app/models"
	"github.com/Rakhulsr/go-cart/app/utils/logger"
	"github.com/Rakhulsr/go-cart/app/utils/metrics"
)

// ErrNegativeTotal marks a quote whose total came out below zero. The cart
// itself never rejects it; callers decide how to report it.
var ErrNegativeTotal = errors.New("error in calculation: negative total")

// ItemInput is a line item as received from a caller. Price is left untyped
// so non-numeric values reach the cart's own coercion.
type ItemInput struct {
	Name     string
	Price    interface{}
	Quantity int
	Category string
}

type PricingService struct {
	policy  models.PricingPolicy
	log     *logger.Logger
	metrics *metrics.QuoteMetrics
}

func NewPricingService(policy models.PricingPolicy, log *logger.Logger, m *metrics.QuoteMetrics) *PricingService {
	if log == nil {
		log = logger.Nop()
	}
	return &PricingService{
		policy:  policy,
		log:     log,
		metrics: m,
	}
}

func (s *PricingService) Policy() models.PricingPolicy {
	return s.policy
}

// BuildCart returns a fresh cart holding inputs in order. An empty category
// keeps the item default.
func (s *PricingService) BuildCart(inputs []ItemInput) *models.Cart {
	cart := models.NewCartWithPolicy(s.policy)
	for _, in := range inputs {
		item := models.NewLineItem(in.Name, in.Price, in.Quantity)
		if category := strings.TrimSpace(in.Category); category != "" {
			item.Category = category
		}
		cart.AddItem(item)
	}
	return cart
}

// Price quotes cart and reports a negative total as ErrNegativeTotal. The
// quote is returned in both cases.
func (s *PricingService) Price(ctx context.Context, source string, cart *models.Cart, isMember, hasCoupon bool) (models.Quote, error) {
	ctx = s.log.WithCartID(ctx, cart.ID)

	quote := cart.Quote(isMember, hasCoupon)
	s.metrics.ObserveQuote(source, isMember, hasCoupon, quote.ItemCount)
	s.log.Debug(ctx, "cart priced", map[string]any{
		"source":     source,
		"currency":   cart.Currency(),
		"items":      quote.ItemCount,
		"is_member":  isMember,
		"has_coupon": hasCoupon,
		"subtotal":   quote.Subtotal.String(),
		"total":      quote.Total.String(),
	})

	if quote.IsNegative() {
		s.metrics.IncAnomaly(source)
		err := fmt.Errorf("%w (%s %s)", ErrNegativeTotal, quote.Total.StringFixed(2), quote.Currency)
		s.log.Warn(ctx, err.Error())
		return quote, err
	}
	return quote, nil
}

// Quote builds a cart from inputs and prices it.
func (s *PricingService) Quote(ctx context.Context, source string, inputs []ItemInput, isMember, hasCoupon bool) (models.Quote, error) {
	return s.Price(ctx, source, s.BuildCart(inputs), isMember, hasCoupon)
}
