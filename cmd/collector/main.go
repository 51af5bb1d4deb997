package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"crypto-collector/internal/collector"
	"crypto-collector/internal/config"
	"crypto-collector/internal/database"
	"crypto-collector/internal/exchange"
	"crypto-collector/internal/metrics"
	"crypto-collector/internal/version"
	"crypto-collector/internal/writer"
)

func main() {
	configPath := flag.String("config", "configs/collector.local.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting collector",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"instance_id", cfg.Instance.ID,
		"exchange", cfg.Exchange.Name,
		"symbol", cfg.Exchange.Symbol,
		"poll_interval", cfg.Collector.PollInterval,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to database
	logger.Info("connecting to database",
		"host", cfg.Database.Postgres.Host,
		"port", cfg.Database.Postgres.Port,
		"database", cfg.Database.Postgres.Name,
	)

	pool, err := database.Connect(ctx, cfg.Database.Postgres)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create exchange client
	client := exchange.NewClient(
		cfg.Exchange.Name,
		cfg.Exchange.RestURL,
		exchange.WithLogger(logger),
		exchange.WithTimeout(cfg.Exchange.Timeout.Std()),
	)

	// Create the tick writer and the collector loop
	tickWriter := writer.NewTickWriter(pool, logger)

	col := collector.New(collector.Config{
		Symbol:       cfg.Exchange.Symbol,
		Interval:     cfg.Collector.PollInterval.Std(),
		FetchTimeout: cfg.Exchange.Timeout.Std(),
		WindowMaxAge: cfg.Collector.WindowMaxAge.Std(),
	}, client, tickWriter, logger)

	// Metrics and health server
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
		Handler: createHandler(cfg.Metrics.Path, pool, logger),
	}

	go func() {
		logger.Info("starting metrics server", "port", cfg.Metrics.Port, "path", cfg.Metrics.Path)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	// Start collecting
	if err := col.Start(ctx); err != nil {
		logger.Error("failed to start collector", "error", err)
		os.Exit(1)
	}

	// Block until shutdown
	<-ctx.Done()

	logger.Info("shutting down")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()

	if err := col.Stop(stopCtx); err != nil {
		logger.Warn("collector stop timed out", "error", err)
	}
	if err := metricsServer.Shutdown(stopCtx); err != nil {
		logger.Warn("metrics server shutdown failed", "error", err)
	}

	stats := tickWriter.Stats()
	logger.Info("collector exited",
		"inserts", stats.Inserts,
		"conflicts", stats.Conflicts,
		"errors", stats.Errors,
	)
}

// createHandler serves the metrics endpoint plus a health check.
func createHandler(metricsPath string, pool *pgxpool.Pool, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(metricsPath, metrics.Handler())

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := pool.Ping(ctx); err != nil {
			logger.Warn("health check failed", "error", err)
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return mux
}
