package model

import "time"

// Tick is one price observation for an (exchange, symbol) pair.
//
// Last is always present on a successful fetch; a response without a last
// price is treated as malformed upstream. All other price fields are nil
// when the exchange omitted the quote or when not enough history exists to
// derive them.
type Tick struct {
	Exchange string    // Exchange identifier (e.g., "binance")
	Symbol   string    // Canonical trading pair (e.g., "BTC/USDT")
	TS       time.Time // Observation time (UTC)
	Last     float64   // Last traded price

	// Quotes (nil when the exchange response omitted them)
	Bid *float64 // Best bid price
	Ask *float64 // Best ask price

	// Spread, derived from Bid/Ask (nil unless both are quoted)
	SpreadAbs *float64 // Ask - Bid
	SpreadPct *float64 // (Ask - Bid) / mid, mid = (Ask + Bid) / 2

	// Short-horizon deltas, derived from the rolling window
	// (nil until a reading at the required lookback exists)
	Delta10s *float64 // Last - price 10s ago
	Pct10s   *float64 // Delta10s / price 10s ago
	Delta1m  *float64 // Last - price 60s ago
	Pct1m    *float64 // Delta1m / price 60s ago

	// Raw exchange response, kept for forward compatibility
	Raw []byte
}

// ComputeSpread derives SpreadAbs and SpreadPct from Bid and Ask.
//
// SpreadPct uses the mid-price convention: spread / ((ask + bid) / 2).
// For bid=100 ask=101 that yields 1/100.5 ≈ 0.00995.
// Both fields stay nil when either quote is missing or the mid is zero.
func (t *Tick) ComputeSpread() {
	if t.Bid == nil || t.Ask == nil {
		return
	}

	abs := *t.Ask - *t.Bid
	t.SpreadAbs = &abs

	mid := (*t.Ask + *t.Bid) / 2
	if mid == 0 {
		return
	}
	pct := abs / mid
	t.SpreadPct = &pct
}

// ComputeDelta derives a delta/pct pair against a reference price.
// Returns (nil, nil) when the reference price is zero.
func ComputeDelta(now, ago float64) (delta, pct *float64) {
	if ago == 0 {
		return nil, nil
	}
	d := now - ago
	p := d / ago
	return &d, &p
}

// Float64Ptr returns a pointer to v. Convenience for building optional fields.
func Float64Ptr(v float64) *float64 {
	return &v
}
