package config

import "time"

type App struct {
	Port            string        `env:"APP_PORT" envDefault:"8080"`
	Env             string        `env:"APP_ENV" envDefault:"dev"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	StoreDriver     string        `env:"STORE_DRIVER" envDefault:"postgres"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	SQLitePath      string        `env:"SQLITE_PATH" envDefault:"boardcamp.db"`
	StockRelease    bool          `env:"RENTAL_STOCK_RELEASE" envDefault:"true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)
