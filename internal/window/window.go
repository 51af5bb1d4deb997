package window

import "time"

// Sample is one (timestamp, price) observation.
type Sample struct {
	TS    time.Time
	Price float64
}

// Window holds a time-ordered rolling buffer of price samples.
type Window struct {
	maxAge  time.Duration
	samples []Sample
}

// New creates a window that retains samples for maxAge.
func New(maxAge time.Duration) *Window {
	return &Window{maxAge: maxAge}
}

// Add appends a sample and prunes everything older than maxAge relative to
// the new sample's timestamp. Samples are expected in non-decreasing time
// order (the collector is a single sequential loop).
func (w *Window) Add(ts time.Time, price float64) {
	w.samples = append(w.samples, Sample{TS: ts, Price: price})

	cutoff := ts.Add(-w.maxAge)
	i := 0
	for i < len(w.samples) && w.samples[i].TS.Before(cutoff) {
		i++
	}
	if i > 0 {
		w.samples = append(w.samples[:0], w.samples[i:]...)
	}
}

// PriceAt returns the price of the most recent sample observed at or before
// now-horizon, or false when no sample that old exists yet.
func (w *Window) PriceAt(now time.Time, horizon time.Duration) (float64, bool) {
	target := now.Add(-horizon)
	for i := len(w.samples) - 1; i >= 0; i-- {
		if !w.samples[i].TS.After(target) {
			return w.samples[i].Price, true
		}
	}
	return 0, false
}

// Len returns the number of retained samples.
func (w *Window) Len() int {
	return len(w.samples)
}
