// Package database provides connection pool management for PostgreSQL.
//
// The collector owns a single pgx pool; the market_ticks table is the only
// state it touches, always via append-only inserts.
package database
