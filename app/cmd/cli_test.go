package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/Rakhulsr/go-cart/app/configs"
	"github.com/Rakhulsr/go-cart/app/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, pricing configs.PricingConfig) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	app, err := NewApp(configs.ENV{Port: ":0", LogLevel: "error", Pricing: pricing}, out)
	require.NoError(t, err)
	return app, out
}

func TestDemoPrintsReferenceTotal(t *testing.T) {
	for _, args := range [][]string{{"cart"}, {"cart", "demo"}} {
		app, out := newTestApp(t, configs.DefaultPricingConfig())

		require.NoError(t, NewCommand(app).Run(context.Background(), args))
		assert.Equal(t, "The total price is: $878.18\n", out.String())
	}
}

func TestQuoteCommand(t *testing.T) {
	app, out := newTestApp(t, configs.DefaultPricingConfig())

	err := NewCommand(app).Run(context.Background(), []string{
		"cart", "quote",
		"--item", "Apple:1.50:10",
		"--item", "Banana:0.50:5",
		"--item", "Laptop:1000:1:electronics",
	})
	require.NoError(t, err)
	// (1017.5 - 10) * 1.08 = 1088.1
	assert.Equal(t, "The total price is: $1,088.10\n", out.String())
}

func TestQuoteCommandAllowsCommasInNames(t *testing.T) {
	app, out := newTestApp(t, configs.DefaultPricingConfig())

	err := NewCommand(app).Run(context.Background(), []string{
		"cart", "quote", "--item", "Nuts, salted:2:3", "--item", "Tea:5:2", "--breakdown",
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Items: 2")
	// (6 + 10) * 1.08 = 17.28
	assert.Contains(t, out.String(), "The total price is: $17.28")
}

func TestQuoteCommandBreakdown(t *testing.T) {
	app, out := newTestApp(t, configs.DefaultPricingConfig())

	err := NewCommand(app).Run(context.Background(), []string{
		"cart", "quote", "--item", "Tea:5:2", "--coupon", "--breakdown",
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Items: 1")
	assert.Contains(t, out.String(), "Subtotal:              $10.00")
	assert.Contains(t, out.String(), "Tax:                   $0.80")
	assert.Contains(t, out.String(), "Coupon discount:       -$1.62")
	// 10.8 * 0.85 = 9.18
	assert.Contains(t, out.String(), "The total price is: $9.18")
}

func TestQuoteCommandNegativeTotal(t *testing.T) {
	app, out := newTestApp(t, configs.DefaultPricingConfig())

	err := NewCommand(app).Run(context.Background(), []string{"cart", "quote", "--item", "Refund:20:-1"})
	require.ErrorIs(t, err, services.ErrNegativeTotal)
	assert.Equal(t, "Error in calculation!\n", out.String())
}

func TestQuoteCommandRejectsBadItem(t *testing.T) {
	app, _ := newTestApp(t, configs.DefaultPricingConfig())

	err := NewCommand(app).Run(context.Background(), []string{"cart", "quote", "--item", "Apple:1.5"})
	assert.ErrorContains(t, err, "want name:price:qty")
}

func TestDemoUsesConfiguredPolicy(t *testing.T) {
	pricing := configs.DefaultPricingConfig()
	pricing.CouponDiscountRate = 0
	app, out := newTestApp(t, pricing)

	require.NoError(t, NewCommand(app).Run(context.Background(), []string{"cart", "demo"}))
	assert.Equal(t, "The total price is: $1,033.16\n", out.String())
}

func TestNewAppRejectsInvalidPolicy(t *testing.T) {
	pricing := configs.DefaultPricingConfig()
	pricing.TaxRate = 3

	_, err := NewApp(configs.ENV{Pricing: pricing}, &bytes.Buffer{})
	assert.ErrorIs(t, err, configs.ErrInvalidPolicy)
}

func TestParseItemSpec(t *testing.T) {
	in, err := ParseItemSpec("Laptop:1000.00:1:electronics")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", in.Name)
	assert.Equal(t, 1, in.Quantity)
	assert.Equal(t, "electronics", in.Category)
	price, ok := in.Price.(decimal.Decimal)
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(1000).Equal(price))

	in, err = ParseItemSpec("Gift:free:2")
	require.NoError(t, err)
	assert.Equal(t, "free", in.Price)

	for _, bad := range []string{"", "a:b", ":1:1", "Apple:1:x", "a:1:1:c:d"} {
		_, err := ParseItemSpec(bad)
		assert.Error(t, err, bad)
	}
}
