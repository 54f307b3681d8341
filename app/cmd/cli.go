package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/Rakhulsr/go-cart/app/configs"
	"github.com/Rakhulsr/go-cart/app/models"
	"github.com/Rakhulsr/go-cart/app/routes"
	"github.com/Rakhulsr/go-cart/app/services"
	"github.com/Rakhulsr/go-cart/app/utils/format"
	"github.com/Rakhulsr/go-cart/app/utils/logger"
	"github.com/Rakhulsr/go-cart/app/utils/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
)

// App carries what the commands share.
type App struct {
	Env      configs.ENV
	Log      *logger.Logger
	Pricing  *services.PricingService
	Registry *prometheus.Registry
	Out      io.Writer
}

func NewApp(env configs.ENV, out io.Writer) (*App, error) {
	policy, err := env.Pricing.Policy()
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Options{
		ServiceName: "cart",
		Level:       logger.ParseLevel(env.LogLevel),
		Format:      env.LogOutputFormat(),
		Output:      os.Stderr,
	})
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return &App{
		Env:      env,
		Log:      log,
		Pricing:  services.NewPricingService(policy, log, metrics.NewQuoteMetrics(reg)),
		Registry: reg,
		Out:      out,
	}, nil
}

func NewCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:                      "cart",
		Usage:                     "Price shopping carts with member, big spender and coupon discounts",
		Writer:                    app.Out,
		DisableSliceFlagSeparator: true,
		Action: func(ctx context.Context, c *cli.Command) error {
			return runDemo(ctx, app)
		},
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "Price the sample cart (member with coupon)",
				Action: func(ctx context.Context, c *cli.Command) error {
					return runDemo(ctx, app)
				},
			},
			{
				Name:      "quote",
				Usage:     "Price a cart given on the command line",
				ArgsUsage: "--item name:price:qty[:category] ...",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "item", Aliases: []string{"i"}, Usage: "line item as name:price:qty[:category]"},
					&cli.BoolFlag{Name: "member", Usage: "apply the member discount"},
					&cli.BoolFlag{Name: "coupon", Usage: "apply the coupon discount"},
					&cli.BoolFlag{Name: "breakdown", Usage: "print every pricing step"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					inputs := make([]services.ItemInput, 0, len(c.StringSlice("item")))
					for _, raw := range c.StringSlice("item") {
						in, err := ParseItemSpec(raw)
						if err != nil {
							return err
						}
						inputs = append(inputs, in)
					}
					quote, err := app.Pricing.Quote(ctx, "cli", inputs, c.Bool("member"), c.Bool("coupon"))
					if c.Bool("breakdown") {
						printBreakdown(app.Out, quote)
					}
					return printTotal(app.Out, quote, err)
				},
			},
			{
				Name:  "serve",
				Usage: "Serve the quote API over HTTP",
				Action: func(ctx context.Context, c *cli.Command) error {
					return serve(ctx, app)
				},
			},
		},
	}
}

func runDemo(ctx context.Context, app *App) error {
	cart := models.NewCartWithPolicy(app.Pricing.Policy())
	cart.AddItem(models.NewLineItem("Apple", 1.5, 10))
	cart.AddItem(models.NewLineItem("Banana", 0.5, 5))
	laptop := models.NewLineItem("Laptop", 1000, 1)
	laptop.Category = "electronics"
	cart.AddItem(laptop)

	quote, err := app.Pricing.Price(ctx, "demo", cart, true, true)
	return printTotal(app.Out, quote, err)
}

func printTotal(out io.Writer, quote models.Quote, err error) error {
	if err != nil {
		if errors.Is(err, services.ErrNegativeTotal) {
			fmt.Fprintln(out, "Error in calculation!")
		}
		return err
	}
	fmt.Fprintf(out, "The total price is: %s\n", format.Money(quote.Total, quote.Currency))
	return nil
}

func printBreakdown(out io.Writer, q models.Quote) {
	rows := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Subtotal", q.Subtotal},
		{"Member discount", q.MemberDiscount.Neg()},
		{"Big spender discount", q.BigSpenderDiscount.Neg()},
		{"Taxable amount", q.TaxableAmount},
		{"Tax", q.Tax},
		{"Coupon discount", q.CouponDiscount.Neg()},
	}
	fmt.Fprintf(out, "Items: %d\n", q.ItemCount)
	for _, row := range rows {
		fmt.Fprintf(out, "%-22s %s\n", row.label+":", format.Money(row.amount, q.Currency))
	}
}

// ParseItemSpec reads "name:price:qty[:category]". A price that is not a
// number is passed through untouched and ends up as a zero price.
func ParseItemSpec(raw string) (services.ItemInput, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return services.ItemInput{}, fmt.Errorf("invalid item %q: want name:price:qty[:category]", raw)
	}
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return services.ItemInput{}, fmt.Errorf("invalid item %q: empty name", raw)
	}
	qty, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return services.ItemInput{}, fmt.Errorf("invalid item %q: quantity: %w", raw, err)
	}

	var price interface{} = parts[1]
	if d, err := decimal.NewFromString(strings.TrimSpace(parts[1])); err == nil {
		price = d
	}

	in := services.ItemInput{Name: name, Price: price, Quantity: qty}
	if len(parts) == 4 {
		in.Category = parts[3]
	}
	return in, nil
}

func serve(ctx context.Context, app *App) error {
	server := &http.Server{
		Addr:              app.Env.Port,
		Handler:           routes.NewRouter(app.Pricing, app.Log, app.Registry),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.Log.Info(ctx, "server starting on "+server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		app.Log.Info(ctx, "server shutting down")
		return server.Shutdown(shutdownCtx)
	}
}

func RunCli() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env, err := configs.LoadEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	app, err := NewApp(env, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := NewCommand(app).Run(ctx, os.Args); err != nil {
		if !errors.Is(err, services.ErrNegativeTotal) {
			app.Log.Error(ctx, "command failed", err)
		}
		stop()
		os.Exit(1)
	}
}
