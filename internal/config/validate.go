package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validate checks that all required fields are set and values are valid.
func (c *CollectorConfig) Validate() error {
	if c.Instance.ID == "" {
		return errors.New("instance.id is required")
	}

	if c.Exchange.Name == "" {
		return errors.New("exchange.name is required")
	}
	if c.Exchange.Symbol == "" {
		return errors.New("exchange.symbol is required")
	}
	if !strings.Contains(c.Exchange.Symbol, "/") {
		return fmt.Errorf("exchange.symbol must be BASE/QUOTE (e.g. BTC/USDT), got %q", c.Exchange.Symbol)
	}
	if c.Exchange.Timeout <= 0 {
		return errors.New("exchange.timeout must be positive")
	}

	if c.Collector.PollInterval <= 0 {
		return errors.New("collector.poll_interval must be positive")
	}
	if c.Collector.WindowMaxAge.Std() < time.Minute {
		return errors.New("collector.window_max_age must cover the 1m lookback")
	}

	if err := c.Database.Postgres.validate("database.postgres"); err != nil {
		return err
	}

	if c.Metrics.Port < 1 || c.Metrics.Port > 65535 {
		return fmt.Errorf("metrics.port must be between 1 and 65535, got %d", c.Metrics.Port)
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return errors.New(prefix + ".host is required")
	}
	if db.Name == "" {
		return errors.New(prefix + ".name is required")
	}
	if db.User == "" {
		return errors.New(prefix + ".user is required")
	}
	if db.Password == "" {
		return errors.New(prefix + ".password is required")
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
