// Package config holds the environment-backed runtime configuration.
package config

import "log/slog"

// DB configures the store connection.
type DB struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
}

// Log configures the logger.
type Log struct {
	Level  string
	Format string
	Prefix string
}

// App is the full runtime configuration.
type App struct {
	Env string
	DB  DB
	Log Log
}

// Load reads configuration from the environment, after loading .env if
// present.
func Load(logger *slog.Logger) *App {
	LoadEnv(logger)
	return &App{
		Env: GetEnv("APP_ENV", "development"),
		DB: DB{
			URL:          GetEnv("DATABASE_URL", ""),
			MaxOpenConns: GetEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: GetEnvAsInt("DB_MAX_IDLE_CONNS", 25),
		},
		Log: Log{
			Level:  GetEnv("LOG_LEVEL", "info"),
			Format: GetEnv("LOG_FORMAT", "text"),
			Prefix: GetEnv("LOG_PREFIX", "ledger"),
		},
	}
}
