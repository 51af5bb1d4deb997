package collector

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"crypto-collector/internal/exchange"
	"crypto-collector/internal/metrics"
	"crypto-collector/internal/model"
	"crypto-collector/internal/window"
)

// Delta lookback horizons. A reading must be at least this old to serve as
// the reference price.
const (
	shortLookback = 10 * time.Second
	longLookback  = time.Minute
)

// TickHandler receives fully derived ticks for persistence.
type TickHandler interface {
	HandleTick(ctx context.Context, t model.Tick) error
}

// TickHandlerFunc is a function adapter for TickHandler.
type TickHandlerFunc func(ctx context.Context, t model.Tick) error

func (f TickHandlerFunc) HandleTick(ctx context.Context, t model.Tick) error {
	return f(ctx, t)
}

// Config holds collector loop configuration.
type Config struct {
	Symbol       string        // Canonical trading pair (e.g., "BTC/USDT")
	Interval     time.Duration // Poll cadence (default: 15s)
	FetchTimeout time.Duration // Per-request timeout (default: 10s)
	WindowMaxAge time.Duration // Rolling window retention (default: 2m)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Symbol:       "BTC/USDT",
		Interval:     15 * time.Second,
		FetchTimeout: 10 * time.Second,
		WindowMaxAge: 2 * time.Minute,
	}
}

// Collector periodically fetches one ticker and hands it to the handler.
type Collector struct {
	cfg     Config
	client  *exchange.Client
	handler TickHandler
	logger  *slog.Logger
	window  *window.Window

	now func() time.Time // injectable clock for tests

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new Collector. The rolling window is owned by this instance;
// there is no shared state between collectors.
func New(cfg Config, client *exchange.Client, handler TickHandler, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		cfg:     cfg,
		client:  client,
		handler: handler,
		logger:  logger,
		window:  window.New(cfg.WindowMaxAge),
		now:     time.Now,
	}
}

// Start begins the polling loop.
func (c *Collector) Start(ctx context.Context) error {
	c.ctx, c.cancel = context.WithCancel(ctx)

	c.wg.Add(1)
	go c.run()

	c.logger.Info("collector started",
		"exchange", c.client.Name(),
		"symbol", c.cfg.Symbol,
		"interval", c.cfg.Interval,
	)

	return nil
}

// Stop gracefully shuts down the collector.
func (c *Collector) Stop(ctx context.Context) error {
	if c.cancel != nil {
		c.cancel()
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		c.logger.Info("collector stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the main polling loop.
func (c *Collector) run() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.cfg.Interval)
	defer ticker.Stop()

	// Poll immediately on start.
	c.pollOnce()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			c.pollOnce()
		}
	}
}

// pollOnce runs a single fetch-derive-persist-expose cycle. Every failure
// path returns without writing a row; the next cycle starts fresh.
func (c *Collector) pollOnce() {
	fetchCtx, cancel := context.WithTimeout(c.ctx, c.cfg.FetchTimeout)
	start := time.Now()
	quote, err := c.client.GetTicker(fetchCtx, c.cfg.Symbol)
	cancel()

	if err != nil {
		errType := classifyFetchError(err)
		metrics.IncAPIError(c.client.Name(), c.cfg.Symbol, errType)
		c.logger.Warn("fetch failed",
			"exchange", c.client.Name(),
			"symbol", c.cfg.Symbol,
			"error_type", errType,
			"err", err,
		)
		return
	}

	metrics.ObserveScrape(c.client.Name(), time.Since(start))

	tick := c.derive(c.now().UTC(), quote)

	writeCtx, cancel := context.WithTimeout(c.ctx, c.cfg.FetchTimeout)
	err = c.handler.HandleTick(writeCtx, tick)
	cancel()

	if err != nil {
		metrics.IncDBError("write")
		c.logger.Warn("store write failed",
			"exchange", tick.Exchange,
			"symbol", tick.Symbol,
			"err", err,
		)
		return
	}

	metrics.SetPrices(tick.Exchange, tick.Symbol, tick.Last, tick.Bid, tick.Ask, tick.SpreadAbs, tick.SpreadPct)
	metrics.MarkSuccess(tick.Exchange, tick.Symbol, tick.TS)

	c.logger.Debug("tick stored",
		"symbol", tick.Symbol,
		"last", tick.Last,
	)
}

// derive builds the full Tick: spread from the quotes, deltas from the
// rolling window. The new reading joins the window after the lookups, so a
// reference price is always a strictly earlier observation.
func (c *Collector) derive(now time.Time, quote *exchange.Ticker) model.Tick {
	tick := model.Tick{
		Exchange: quote.Exchange,
		Symbol:   quote.Symbol,
		TS:       now,
		Last:     quote.Last,
		Bid:      quote.Bid,
		Ask:      quote.Ask,
		Raw:      quote.Raw,
	}

	tick.ComputeSpread()

	if ago, ok := c.window.PriceAt(now, shortLookback); ok {
		tick.Delta10s, tick.Pct10s = model.ComputeDelta(quote.Last, ago)
	}
	if ago, ok := c.window.PriceAt(now, longLookback); ok {
		tick.Delta1m, tick.Pct1m = model.ComputeDelta(quote.Last, ago)
	}

	c.window.Add(now, quote.Last)

	return tick
}
