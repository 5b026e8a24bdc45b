/*
Package config loads server settings.

PRECEDENCE (lowest to highest):
  1. Built-in defaults
  2. .env file (optional, path from ENV_FILE, default ".env")
  3. Process environment
  4. Command-line flags (-port, -db, -db-driver, -holiday-source)

  godotenv never overwrites variables that are already set, which gives the
  environment precedence over the file.

VARIABLES:
  PORT                      HTTP port (8080)
  DB_DRIVER                 sqlite | postgres (sqlite)
  DB_PATH                   SQLite path, ":memory:" allowed (resignations.db)
  DATABASE_URL              PostgreSQL DSN, required for DB_DRIVER=postgres
  HOLIDAY_SOURCE            remote | us-federal (remote)
  HOLIDAYS_URL              remote holiday endpoint
  HOLIDAYS_TIMEOUT          per-fetch timeout (10s)
  REDIS_URL                 enables the holiday cache when set
  HOLIDAY_CACHE_TTL         cache entry lifetime (24h)
  HOLIDAY_REFRESH_INTERVAL  cache warm-up period, 0 disables (6h)
  TIMEZONE                  location for timestamps and "today" (Asia/Tokyo)
  CORS_ORIGINS              comma separated (http://localhost:9000)
  LOG_LEVEL                 debug | info | warn | error (info)
*/
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/warp/leave-planner/holidays"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	SourceRemote     = "remote"
	SourceUSFederal  = "us-federal"
	defaultTimezone  = "Asia/Tokyo"
	defaultEnvFile   = ".env"
	jstOffsetSeconds = 9 * 3600
)

// Config holds every server setting.
type Config struct {
	Port                   int
	DBDriver               string
	DBPath                 string
	DatabaseURL            string
	HolidaySource          string
	HolidaysURL            string
	HolidaysTimeout        time.Duration
	RedisURL               string
	HolidayCacheTTL        time.Duration
	HolidayRefreshInterval time.Duration
	Timezone               string
	CORSOrigins            []string
	LogLevel               slog.Level
}

// Load reads the .env file and environment, then applies flags from args
// (without the program name).
func Load(args []string) (*Config, error) {
	envFile := getEnv("ENV_FILE", defaultEnvFile)
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := &Config{
		DBDriver:      getEnv("DB_DRIVER", DriverSQLite),
		DBPath:        getEnv("DB_PATH", "resignations.db"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		HolidaySource: getEnv("HOLIDAY_SOURCE", SourceRemote),
		HolidaysURL:   getEnv("HOLIDAYS_URL", holidays.DefaultURL),
		RedisURL:      getEnv("REDIS_URL", ""),
		Timezone:      getEnv("TIMEZONE", defaultTimezone),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "http://localhost:9000")),
	}

	var err error
	if cfg.Port, err = getInt("PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.HolidaysTimeout, err = getDuration("HOLIDAYS_TIMEOUT", holidays.DefaultTimeout); err != nil {
		return nil, err
	}
	if cfg.HolidayCacheTTL, err = getDuration("HOLIDAY_CACHE_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.HolidayRefreshInterval, err = getDuration("HOLIDAY_REFRESH_INTERVAL", 6*time.Hour); err != nil {
		return nil, err
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	fset := flag.NewFlagSet("server", flag.ContinueOnError)
	fset.IntVar(&cfg.Port, "port", cfg.Port, "HTTP server port")
	fset.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path")
	fset.StringVar(&cfg.DBDriver, "db-driver", cfg.DBDriver, "database driver: sqlite or postgres")
	fset.StringVar(&cfg.HolidaySource, "holiday-source", cfg.HolidaySource, "holiday source: remote or us-federal")
	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverSQLite:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required when DB_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}
	switch c.HolidaySource {
	case SourceRemote, SourceUSFederal:
	default:
		return fmt.Errorf("unknown HOLIDAY_SOURCE %q", c.HolidaySource)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

// Location resolves Timezone. Hosts without tzdata fall back to a fixed
// UTC+9 zone for the default Asia/Tokyo.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err == nil {
		return loc, nil
	}
	if c.Timezone == defaultTimezone {
		return time.FixedZone("JST", jstOffsetSeconds), nil
	}
	return nil, fmt.Errorf("TIMEZONE: %w", err)
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
