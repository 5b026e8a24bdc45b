/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the leave planner server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration (.env, environment, flags)
  2. Configure structured logging
  3. Open the resignation store (SQLite or PostgreSQL)
  4. Build the holiday provider (remote or US federal, optionally cached)
  5. Start the holiday cache refresh job
  6. Create handler and router
  7. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port            HTTP server port (default: 8080)
  -db              SQLite database path (default: resignations.db)
                   Use ":memory:" for in-memory database
  -db-driver       sqlite | postgres
  -holiday-source  remote | us-federal

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Stop the refresh job
  4. Close database and cache connections
  5. Exit

EXAMPLES:
  # Run with file database
  ./server -db="./data/resignations.db"

  # Run against PostgreSQL with a Redis holiday cache
  DATABASE_URL=postgres://... REDIS_URL=redis://localhost:6379/0 ./server -db-driver=postgres

  # Offline holidays
  ./server -holiday-source=us-federal

SEE ALSO:
  - config/config.go: All environment variables
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/leave-planner/api"
	"github.com/warp/leave-planner/config"
	"github.com/warp/leave-planner/holidays"
	"github.com/warp/leave-planner/resignation"
	"github.com/warp/leave-planner/store/postgres"
	"github.com/warp/leave-planner/store/sqlite"
	"github.com/warp/leave-planner/vacation"
)

// closableStore is a resignation store that owns a connection.
type closableStore interface {
	resignation.Store
	io.Closer
}

func main() {
	if err := run(); err != nil {
		slog.Error("server_exited", "error", err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	// Initialize store
	store, err := openStore(cfg, loc)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer store.Close()

	// Holiday provider
	provider, scheduler, closeCache, err := buildHolidayProvider(cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	if scheduler != nil {
		if err := scheduler.Start(); err != nil {
			return fmt.Errorf("start holiday refresh: %w", err)
		}
		defer scheduler.Stop()
	}

	// Initialize handler
	service := resignation.NewService(store, loc)
	planner := vacation.NewPlanner(store, provider)
	handler := api.NewHandler(service, planner, provider)

	router := api.NewRouter(handler, cfg.CORSOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server_starting",
			"addr", server.Addr,
			"db_driver", cfg.DBDriver,
			"holiday_source", cfg.HolidaySource,
			"timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	logger.Info("server_shutting_down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server_stopped")
	return nil
}

func openStore(cfg *config.Config, loc *time.Location) (closableStore, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DatabaseURL, loc)
	default:
		return sqlite.New(cfg.DBPath, sqlite.WithLocation(loc))
	}
}

// buildHolidayProvider returns the provider, the cache refresh job (nil
// without a cache) and a func releasing the cache connection.
func buildHolidayProvider(cfg *config.Config) (holidays.Provider, *api.HolidayRefreshScheduler, func(), error) {
	var source holidays.Provider
	switch cfg.HolidaySource {
	case config.SourceUSFederal:
		source = holidays.NewUSFederal()
	default:
		source = holidays.NewClient(cfg.HolidaysURL, cfg.HolidaysTimeout)
	}

	if cfg.RedisURL == "" {
		return source, nil, func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := holidays.DialRedis(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect redis: %w", err)
	}

	cached := holidays.NewCachedProvider(source, holidays.NewRedisCache(client), cfg.HolidayCacheTTL)
	scheduler := api.NewHolidayRefreshScheduler(cached, cfg.HolidayRefreshInterval)
	scheduler.Timeout = cfg.HolidaysTimeout

	closeCache := func() {
		if err := client.Close(); err != nil {
			slog.Warn("redis_close_failed", "error", err.Error())
		}
	}
	return cached, scheduler, closeCache, nil
}
