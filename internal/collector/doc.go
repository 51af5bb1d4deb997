// Package collector implements the poll-fetch-store-expose loop.
//
// One Collector owns one (exchange, symbol) pair. Every cycle it fetches
// the latest ticker, derives spread and short-horizon delta fields from its
// rolling window, hands the tick to a handler for persistence, and updates
// the Prometheus gauges. Any failure in a cycle is logged, counted, and
// swallowed; the loop only stops when its context is cancelled.
package collector
