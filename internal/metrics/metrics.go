package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ScrapeLatency tracks time spent fetching market data from the exchange.
	ScrapeLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "collector_scrape_latency_seconds",
		Help: "Time spent fetching market data from exchanges",
	}, []string{"exchange"})

	// DBWriteLatency tracks time spent writing ticks to PostgreSQL.
	DBWriteLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "collector_db_write_latency_seconds",
		Help: "Time spent writing data to PostgreSQL",
	})

	// APIErrors counts failed fetches by error type.
	APIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "collector_api_errors_total",
		Help: "Total number of API errors",
	}, []string{"exchange", "symbol", "error_type"})

	// DBErrors counts failed store writes by error type.
	DBErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "collector_db_errors_total",
		Help: "Total number of DB errors",
	}, []string{"error_type"})

	// LastSuccessTS is the Unix timestamp of the last fully successful cycle.
	LastSuccessTS = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "collector_last_success_timestamp",
		Help: "Unix timestamp of last successful collection cycle",
	})

	// LastSymbolTS is the Unix timestamp a symbol was last updated.
	LastSymbolTS = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "collector_last_symbol_timestamp",
		Help: "Unix timestamp when symbol was last updated",
	}, []string{"exchange", "symbol"})

	// PriceLast is the last traded price.
	PriceLast = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "crypto_price_last",
		Help: "Last traded price",
	}, []string{"exchange", "symbol"})

	// PriceBid is the best bid price.
	PriceBid = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "crypto_price_bid",
		Help: "Best bid price",
	}, []string{"exchange", "symbol"})

	// PriceAsk is the best ask price.
	PriceAsk = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "crypto_price_ask",
		Help: "Best ask price",
	}, []string{"exchange", "symbol"})

	// SpreadAbs is the absolute spread (ask-bid).
	SpreadAbs = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "crypto_spread_abs",
		Help: "Absolute spread (ask-bid)",
	}, []string{"exchange", "symbol"})

	// SpreadPct is the spread as a fraction of the mid price.
	SpreadPct = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "crypto_spread_pct",
		Help: "Spread percentage (ask-bid)/mid",
	}, []string{"exchange", "symbol"})
)

// ObserveScrape records one fetch attempt's latency.
func ObserveScrape(exchange string, d time.Duration) {
	ScrapeLatency.WithLabelValues(exchange).Observe(d.Seconds())
}

// ObserveDBWrite records one store write's latency.
func ObserveDBWrite(d time.Duration) {
	DBWriteLatency.Observe(d.Seconds())
}

// IncAPIError counts a failed fetch.
func IncAPIError(exchange, symbol, errorType string) {
	APIErrors.WithLabelValues(exchange, symbol, errorType).Inc()
}

// IncDBError counts a failed store write.
func IncDBError(errorType string) {
	DBErrors.WithLabelValues(errorType).Inc()
}

// SetPrices updates the per-symbol price gauges. Nil quote or spread fields
// leave their gauges untouched, so they hold the last known value.
func SetPrices(exchange, symbol string, last float64, bid, ask, spreadAbs, spreadPct *float64) {
	PriceLast.WithLabelValues(exchange, symbol).Set(last)
	if bid != nil {
		PriceBid.WithLabelValues(exchange, symbol).Set(*bid)
	}
	if ask != nil {
		PriceAsk.WithLabelValues(exchange, symbol).Set(*ask)
	}
	if spreadAbs != nil {
		SpreadAbs.WithLabelValues(exchange, symbol).Set(*spreadAbs)
	}
	if spreadPct != nil {
		SpreadPct.WithLabelValues(exchange, symbol).Set(*spreadPct)
	}
}

// MarkSuccess stamps the success gauges after a fully persisted cycle.
func MarkSuccess(exchange, symbol string, ts time.Time) {
	unix := float64(ts.Unix())
	LastSymbolTS.WithLabelValues(exchange, symbol).Set(unix)
	LastSuccessTS.Set(unix)
}

// Handler returns the HTTP handler that serves the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
