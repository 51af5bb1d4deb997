// Package window implements the in-memory rolling price history used to
// derive short-horizon deltas.
//
// The window is owned exclusively by one collector loop, so it needs no
// locking. Samples older than the configured max age are pruned on every
// insert; lookups return the most recent sample at or before the requested
// point in the past.
package window
