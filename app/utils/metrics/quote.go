package metrics

import "github.com/prometheus/client_golang/prometheus"

// QuoteMetrics counts priced carts by source.
type QuoteMetrics struct {
	quotes    *prometheus.CounterVec
	anomalies *prometheus.CounterVec
	items     prometheus.Histogram
}

// NewQuoteMetrics registers the quote metrics on reg. A nil registerer
// yields a no-op recorder.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		return &QuoteMetrics{}
	}
	quotes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_quotes_total",
		Help: "Carts priced, by source and applied discounts.",
	}, []string{"source", "member", "coupon"})
	anomalies := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_quote_anomalies_total",
		Help: "Quotes rejected because the total came out negative.",
	}, []string{"source"})
	items := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cart_quote_items",
		Help:    "Line items per priced cart.",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
	})
	reg.MustRegister(quotes, anomalies, items)
	return &QuoteMetrics{
		quotes:    quotes,
		anomalies: anomalies,
		items:     items,
	}
}

func (m *QuoteMetrics) ObserveQuote(source string, isMember, hasCoupon bool, itemCount int) {
	if m == nil || m.quotes == nil {
		return
	}
	m.quotes.WithLabelValues(normalizeLabel(source), boolLabel(isMember), boolLabel(hasCoupon)).Inc()
	m.items.Observe(float64(itemCount))
}

func (m *QuoteMetrics) IncAnomaly(source string) {
	if m == nil || m.anomalies == nil {
		return
	}
	m.anomalies.WithLabelValues(normalizeLabel(source)).Inc()
}

func normalizeLabel(source string) string {
	if source == "" {
		return "unknown"
	}
	return source
}

func boolLabel(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
