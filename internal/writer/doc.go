// Package writer persists ticks to the market_ticks table.
//
// Writes are append-only: one INSERT per collection cycle with
// ON CONFLICT DO NOTHING on (exchange, symbol, ts), so re-running a
// collector against the same store can only add new rows, never duplicate
// or mutate history.
package writer
