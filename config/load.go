package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

func Load() (App, error) {
	var cfg App
	if err := env.Parse(&cfg); err != nil {
		return App{}, fmt.Errorf("parse env: %w", err)
	}

	// PORT is what most PaaS runtimes inject; it wins over APP_PORT.
	if p := os.Getenv("PORT"); p != "" {
		cfg.Port = p
	}

	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	switch cfg.StoreDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return App{}, fmt.Errorf("DATABASE_URL is required for store driver %q", DriverPostgres)
		}
	case DriverSQLite:
		if strings.TrimSpace(cfg.SQLitePath) == "" {
			return App{}, fmt.Errorf("SQLITE_PATH is required for store driver %q", DriverSQLite)
		}
	default:
		return App{}, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
	return cfg, nil
}

// SlogLevel maps LOG_LEVEL onto slog; unknown values fall back to info.
func (a App) SlogLevel() slog.Level {
	switch strings.ToLower(a.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
