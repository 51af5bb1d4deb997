// Package model defines the core data types shared across the collector.
//
// The central type is Tick, one timestamped price observation for an
// (exchange, symbol) pair. Ticks are append-only: written once per poll
// cycle, never updated or deleted.
package model
