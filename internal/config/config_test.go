package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	yaml := `
instance:
  id: test-collector
exchange:
  name: binance
  rest_url: https://api.binance.com
  symbol: BTC/USDT
  timeout: 5s
collector:
  poll_interval: 15s
database:
  postgres:
    host: localhost
    port: 5432
    name: test_db
    user: testuser
    password: testpass
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Instance.ID != "test-collector" {
		t.Errorf("Instance.ID = %q, want %q", cfg.Instance.ID, "test-collector")
	}
	if cfg.Exchange.Symbol != "BTC/USDT" {
		t.Errorf("Exchange.Symbol = %q, want %q", cfg.Exchange.Symbol, "BTC/USDT")
	}
	if cfg.Exchange.Timeout.Std() != 5*time.Second {
		t.Errorf("Exchange.Timeout = %v, want 5s", cfg.Exchange.Timeout)
	}
	if cfg.Collector.PollInterval.Std() != 15*time.Second {
		t.Errorf("Collector.PollInterval = %v, want 15s", cfg.Collector.PollInterval)
	}
	if cfg.Database.Postgres.Host != "localhost" {
		t.Errorf("Database.Postgres.Host = %q, want %q", cfg.Database.Postgres.Host, "localhost")
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "secret123")

	yaml := `
instance:
  id: test-collector
database:
  postgres:
    host: localhost
    name: test_db
    user: testuser
    password: ${TEST_DB_PASSWORD}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Postgres.Password != "secret123" {
		t.Errorf("Database.Postgres.Password = %q, want %q", cfg.Database.Postgres.Password, "secret123")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	yaml := `
database:
  postgres:
    host: localhost
    name: test_db
    user: testuser
    password: testpass
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	// Check defaults were applied
	if cfg.Exchange.Name != DefaultExchangeName {
		t.Errorf("Exchange.Name = %q, want default %q", cfg.Exchange.Name, DefaultExchangeName)
	}
	if cfg.Exchange.RestURL != DefaultRestURL {
		t.Errorf("Exchange.RestURL = %q, want default %q", cfg.Exchange.RestURL, DefaultRestURL)
	}
	if cfg.Exchange.Symbol != DefaultSymbol {
		t.Errorf("Exchange.Symbol = %q, want default %q", cfg.Exchange.Symbol, DefaultSymbol)
	}
	if cfg.Exchange.Timeout.Std() != DefaultAPITimeout {
		t.Errorf("Exchange.Timeout = %v, want default %v", cfg.Exchange.Timeout, DefaultAPITimeout)
	}
	if cfg.Collector.PollInterval.Std() != DefaultPollInterval {
		t.Errorf("Collector.PollInterval = %v, want default %v", cfg.Collector.PollInterval, DefaultPollInterval)
	}
	if cfg.Database.Postgres.Port != DefaultDBPort {
		t.Errorf("Database.Postgres.Port = %d, want default %d", cfg.Database.Postgres.Port, DefaultDBPort)
	}
	if cfg.Database.Postgres.MaxConns != DefaultMaxConns {
		t.Errorf("Database.Postgres.MaxConns = %d, want default %d", cfg.Database.Postgres.MaxConns, DefaultMaxConns)
	}
	if cfg.Metrics.Port != DefaultMetricsPort {
		t.Errorf("Metrics.Port = %d, want default %d", cfg.Metrics.Port, DefaultMetricsPort)
	}

	// Generated instance ID
	if !strings.HasPrefix(cfg.Instance.ID, "collector-") {
		t.Errorf("Instance.ID = %q, want generated collector-<id>", cfg.Instance.ID)
	}
}

func TestValidate(t *testing.T) {
	valid := CollectorConfig{
		Instance: InstanceConfig{ID: "test"},
		Exchange: ExchangeConfig{
			Name:    "binance",
			RestURL: "https://api.binance.com",
			Symbol:  "BTC/USDT",
			Timeout: Duration(10 * time.Second),
		},
		Collector: LoopConfig{
			PollInterval: Duration(15 * time.Second),
			WindowMaxAge: Duration(2 * time.Minute),
		},
		Database: DatabaseConfig{
			Postgres: DBConfig{Host: "localhost", Name: "db", User: "user", Password: "pass", MaxConns: 4, MinConns: 1},
		},
		Metrics: MetricsConfig{Port: 9090},
	}

	tests := []struct {
		name    string
		mutate  func(*CollectorConfig)
		wantErr string
	}{
		{
			name:    "valid config",
			mutate:  func(c *CollectorConfig) {},
			wantErr: "",
		},
		{
			name:    "missing instance id",
			mutate:  func(c *CollectorConfig) { c.Instance.ID = "" },
			wantErr: "instance.id is required",
		},
		{
			name:    "missing symbol",
			mutate:  func(c *CollectorConfig) { c.Exchange.Symbol = "" },
			wantErr: "exchange.symbol is required",
		},
		{
			name:    "symbol without separator",
			mutate:  func(c *CollectorConfig) { c.Exchange.Symbol = "BTCUSDT" },
			wantErr: `exchange.symbol must be BASE/QUOTE (e.g. BTC/USDT), got "BTCUSDT"`,
		},
		{
			name:    "zero poll interval",
			mutate:  func(c *CollectorConfig) { c.Collector.PollInterval = 0 },
			wantErr: "collector.poll_interval must be positive",
		},
		{
			name:    "window shorter than lookback",
			mutate:  func(c *CollectorConfig) { c.Collector.WindowMaxAge = Duration(30 * time.Second) },
			wantErr: "collector.window_max_age must cover the 1m lookback",
		},
		{
			name:    "missing postgres host",
			mutate:  func(c *CollectorConfig) { c.Database.Postgres.Host = "" },
			wantErr: "database.postgres.host is required",
		},
		{
			name:    "missing postgres password",
			mutate:  func(c *CollectorConfig) { c.Database.Postgres.Password = "" },
			wantErr: "database.postgres.password is required",
		},
		{
			name:    "min_conns exceeds max_conns",
			mutate:  func(c *CollectorConfig) { c.Database.Postgres.MinConns = 10; c.Database.Postgres.MaxConns = 5 },
			wantErr: "database.postgres.min_conns (10) cannot exceed max_conns (5)",
		},
		{
			name:    "metrics port out of range",
			mutate:  func(c *CollectorConfig) { c.Metrics.Port = 70000 },
			wantErr: "metrics.port must be between 1 and 65535, got 70000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("Validate() expected error %q, got nil", tt.wantErr)
				} else if err.Error() != tt.wantErr {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantErr)
				}
			}
		})
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}
