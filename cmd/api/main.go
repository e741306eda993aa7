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
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/C1200/community-server-railway/internal/appconf"
	"github.com/C1200/community-server-railway/internal/logging"
	"github.com/C1200/community-server-railway/internal/railway"
)

func main() {
	// A missing .env is fine; flags and real environment variables win.
	_ = godotenv.Load()

	var cfg appconf.Config
	var configDir, trackmapURL, envFlag string

	flag.IntVar(&cfg.Port, "port", envIntOrDefault("PORT", 4000), "API server port")
	flag.StringVar(&envFlag, "env", envOrDefault("ENV", "development"), "Environment (development|test|production)")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Enable verbose logging")
	flag.IntVar(&cfg.RateLimit, "rate-limit", envIntOrDefault("RATE_LIMIT", 20), "Requests per second per client IP; <= 0 disables limiting")
	flag.StringVar(&cfg.WebDir, "web-dir", envOrDefault("WEB_DIR", ""), "Directory holding the built map frontend")
	flag.StringVar(&configDir, "config-dir", envOrDefault("CONFIG_DIR", "config"), "Directory holding stations.json, routes.json, and trains.json")
	flag.StringVar(&trackmapURL, "trackmap-url", envOrDefault("TRACKMAP_URL", ""), "Base URL of the Track Map server")
	flag.Parse()

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	railwayConfig, err := buildRailwayConfig(configDir, trackmapURL, cfg.Verbose)
	if err != nil {
		logging.LogError(logger, "invalid configuration", err)
		os.Exit(1)
	}

	application, err := buildApplication(cfg, railwayConfig, logger)
	if err != nil {
		logging.LogError(logger, "failed to start railway manager", err)
		os.Exit(1)
	}
	defer application.Manager.Shutdown()

	handler, stopHandler := newServerHandler(application)
	defer stopHandler()

	server := createServer(cfg, handler, logger)

	if err := run(server, logger); err != nil {
		logging.LogError(logger, "server error", err)
		os.Exit(1)
	}
}

// run serves until SIGINT or SIGTERM, then drains in-flight requests.
func run(server *http.Server, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		logging.LogOperation(logger, "server_listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	logging.LogOperation(logger, "server_shutting_down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// buildRailwayConfig loads the station, route, and livery tables and layers
// the feed settings on top.
func buildRailwayConfig(configDir, trackmapURL string, verbose bool) (railway.Config, error) {
	config := railway.Config{
		TrackmapURL: trackmapURL,
		Verbose:     verbose,
	}

	if err := config.LoadConfigTables(configDir); err != nil {
		return railway.Config{}, err
	}

	if config.TrackmapURL == "" {
		return railway.Config{}, fmt.Errorf("trackmap URL is required (set -trackmap-url or TRACKMAP_URL)")
	}

	config.ApplyDefaults()
	return config, nil
}

func newLogger(cfg appconf.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	options := &slog.HandlerOptions{Level: level}
	if cfg.Env == appconf.Production {
		return slog.New(slog.NewJSONHandler(os.Stdout, options))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, options))
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
