package config

// CollectorConfig is the root configuration for a collector instance.
type CollectorConfig struct {
	Instance  InstanceConfig `yaml:"instance"`
	Exchange  ExchangeConfig `yaml:"exchange"`
	Collector LoopConfig     `yaml:"collector"`
	Database  DatabaseConfig `yaml:"database"`
	Metrics   MetricsConfig  `yaml:"metrics"`
}

// InstanceConfig identifies this collector.
type InstanceConfig struct {
	ID string `yaml:"id"`
}

// ExchangeConfig holds exchange API settings.
type ExchangeConfig struct {
	Name    string   `yaml:"name"`     // Exchange identifier (e.g., "binance")
	RestURL string   `yaml:"rest_url"` // API base URL
	Symbol  string   `yaml:"symbol"`   // Trading pair (e.g., "BTC/USDT")
	Timeout Duration `yaml:"timeout"`  // Per-request timeout
}

// LoopConfig holds poll loop settings.
type LoopConfig struct {
	PollInterval Duration `yaml:"poll_interval"`  // Cadence between fetches
	WindowMaxAge Duration `yaml:"window_max_age"` // Rolling buffer retention (must cover the 1m lookback)
}

// DatabaseConfig holds the PostgreSQL connection for tick storage.
type DatabaseConfig struct {
	Postgres DBConfig `yaml:"postgres"`
}

// DBConfig holds a single database connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// MetricsConfig holds Prometheus metrics settings.
type MetricsConfig struct {
	Port int    `yaml:"port"`
	Path string `yaml:"path"`
}
