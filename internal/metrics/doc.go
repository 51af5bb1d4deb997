// Package metrics provides Prometheus metrics for monitoring the collector.
//
// Key metrics:
//   - Latest price, bid, ask, and spread gauges per (exchange, symbol)
//   - Scrape and DB write latency histograms
//   - API and DB error counters, labeled by error type
//   - Last-success timestamps for staleness alerting
//
// Metric names match the original collector deployment so existing Grafana
// dashboards keep working unchanged.
package metrics
