package config

import (
	"time"

	"github.com/google/uuid"
)

// Default values for optional configuration fields.
const (
	DefaultExchangeName = "binance"
	DefaultRestURL      = "https://api.binance.com"
	DefaultSymbol       = "BTC/USDT"
	DefaultAPITimeout   = 10 * time.Second
	DefaultPollInterval = 15 * time.Second
	DefaultWindowMaxAge = 2 * time.Minute
	DefaultDBPort       = 5432
	DefaultDBSSLMode    = "prefer"
	DefaultMaxConns     = 4
	DefaultMinConns     = 1
	DefaultMetricsPort  = 9090
	DefaultMetricsPath  = "/metrics"
)

func (c *CollectorConfig) applyDefaults() {
	// Instance defaults
	if c.Instance.ID == "" {
		c.Instance.ID = "collector-" + uuid.NewString()[:8]
	}

	// Exchange defaults
	if c.Exchange.Name == "" {
		c.Exchange.Name = DefaultExchangeName
	}
	if c.Exchange.RestURL == "" {
		c.Exchange.RestURL = DefaultRestURL
	}
	if c.Exchange.Symbol == "" {
		c.Exchange.Symbol = DefaultSymbol
	}
	if c.Exchange.Timeout == 0 {
		c.Exchange.Timeout = Duration(DefaultAPITimeout)
	}

	// Loop defaults
	if c.Collector.PollInterval == 0 {
		c.Collector.PollInterval = Duration(DefaultPollInterval)
	}
	if c.Collector.WindowMaxAge == 0 {
		c.Collector.WindowMaxAge = Duration(DefaultWindowMaxAge)
	}

	// Database defaults
	applyDBDefaults(&c.Database.Postgres)

	// Metrics defaults
	if c.Metrics.Port == 0 {
		c.Metrics.Port = DefaultMetricsPort
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
