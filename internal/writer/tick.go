package writer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"crypto-collector/internal/metrics"
	"crypto-collector/internal/model"
)

// Stats holds write counters. The writer is owned by a single sequential
// loop, so plain fields are safe.
type Stats struct {
	Inserts   int64
	Conflicts int64
	Errors    int64
}

// TickWriter writes Tick rows to the market_ticks table.
type TickWriter struct {
	db     *pgxpool.Pool
	logger *slog.Logger

	stats Stats
}

// NewTickWriter creates a TickWriter on the given pool.
func NewTickWriter(db *pgxpool.Pool, logger *slog.Logger) *TickWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &TickWriter{
		db:     db,
		logger: logger,
	}
}

// tickRow is the flattened database representation of a Tick.
type tickRow struct {
	Exchange  string
	Symbol    string
	TS        time.Time
	Last      float64
	Bid       *float64
	Ask       *float64
	SpreadAbs *float64
	SpreadPct *float64
	Delta10s  *float64
	Pct10s    *float64
	Delta1m   *float64
	Pct1m     *float64
	Raw       []byte
}

// transform converts a Tick to a tickRow.
func (w *TickWriter) transform(t model.Tick) tickRow {
	return tickRow{
		Exchange:  t.Exchange,
		Symbol:    t.Symbol,
		TS:        t.TS.UTC(),
		Last:      t.Last,
		Bid:       t.Bid,
		Ask:       t.Ask,
		SpreadAbs: t.SpreadAbs,
		SpreadPct: t.SpreadPct,
		Delta10s:  t.Delta10s,
		Pct10s:    t.Pct10s,
		Delta1m:   t.Delta1m,
		Pct1m:     t.Pct1m,
		Raw:       t.Raw,
	}
}

const insertTick = `
	INSERT INTO market_ticks
		(exchange, symbol, ts, last, bid, ask, spread_abs, spread_pct, delta_10s, pct_10s, delta_1m, pct_1m, raw_json)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (exchange, symbol, ts) DO NOTHING
`

// HandleTick appends one row for the tick. A conflict (identical
// exchange/symbol/ts already stored) is not an error: the row count just
// stays where it was.
func (w *TickWriter) HandleTick(ctx context.Context, t model.Tick) error {
	row := w.transform(t)

	start := time.Now()
	ct, err := w.db.Exec(ctx, insertTick,
		row.Exchange, row.Symbol, row.TS, row.Last,
		row.Bid, row.Ask, row.SpreadAbs, row.SpreadPct,
		row.Delta10s, row.Pct10s, row.Delta1m, row.Pct1m,
		row.Raw,
	)
	if err != nil {
		w.stats.Errors++
		return fmt.Errorf("insert tick: %w", err)
	}

	metrics.ObserveDBWrite(time.Since(start))

	if ct.RowsAffected() == 0 {
		w.stats.Conflicts++
		w.logger.Debug("tick already stored",
			"exchange", row.Exchange,
			"symbol", row.Symbol,
			"ts", row.TS,
		)
		return nil
	}

	w.stats.Inserts++
	return nil
}

// Stats returns current write counters.
func (w *TickWriter) Stats() Stats {
	return w.stats
}
