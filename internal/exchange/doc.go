// Package exchange provides a REST client for exchange ticker endpoints.
//
// The client targets the Binance-style /api/v3/ticker/24hr endpoint, which
// carries last, bid, and ask in a single response. Requests are bounded by a
// per-call timeout and are never retried: a failed fetch is simply reported
// to the caller, and the collector tries again on the next scheduled cycle.
package exchange
