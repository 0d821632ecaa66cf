package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vyper/fermybot/internal/config"
	"github.com/vyper/fermybot/internal/handlers"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func runServe(ctx context.Context, opts serveOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := loadEnvFile(opts.envFile); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(os.Getenv)
	if err != nil {
		return err
	}
	logger := cfg.Logger
	defer func() { _ = logger.Sync() }()

	if p, ok := cfg.Counter.(pinger); ok {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := p.Ping(pingCtx); err != nil {
			// The store may come up later; /slack/incr answers 503 until it does.
			logger.Warn("Redis not reachable at startup", zap.Error(err))
		}
		cancel()
	}

	if opts.metricsAddr != "" {
		go serveMetrics(cfg, opts.metricsAddr)
	}

	if err := funcframework.RegisterHTTPFunctionContext(ctx, "/", handlers.NewRouter(cfg).ServeHTTP); err != nil {
		return fmt.Errorf("registering function: %w", err)
	}

	logger.Info("Starting fermybot", zap.String("port", opts.port))
	if err := funcframework.Start(opts.port); err != nil {
		return fmt.Errorf("funcframework.Start: %w", err)
	}
	return nil
}

// loadEnvFile loads path into the environment. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func serveMetrics(cfg *config.Config, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(cfg.Metrics.Registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	cfg.Logger.Info("Serving metrics", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		cfg.Logger.Error("Metrics listener stopped", zap.Error(err))
	}
}
