// Package config loads application configuration from the environment and
// carries the shared dependency bundle that services are wired with.
package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Server holds the HTTP listener settings.
type Server struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"3000"`
}

// DB holds the persistence settings. An empty Url selects the in-memory
// backend, which is what the CLI and tests run against.
type DB struct {
	Url string `envconfig:"URL"`
}

// Log holds the logger settings.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	Prefix     string `envconfig:"PREFIX" default:"ledger"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"15:04:05"`
}

// App is the root configuration.
type App struct {
	Env    string `envconfig:"ENV" default:"development"`
	Server Server `envconfig:"SERVER"`
	DB     DB     `envconfig:"DATABASE"`
	Log    Log    `envconfig:"LOG"`
}

// Load reads configuration from .env (when present) and the process
// environment. A missing .env file is not an error; system environment
// variables still apply.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	if len(envFilePath) == 0 {
		envFilePath = []string{".env"}
	}
	if err := godotenv.Load(envFilePath...); err != nil {
		logger.Warn("No .env file found, using system environment variables")
	} else {
		logger.Info("Environment variables loaded from .env file")
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	logger.Info("App config loaded",
		"env", cfg.Env,
		"server_host", cfg.Server.Host,
		"server_port", cfg.Server.Port,
		"db", maskValue(cfg.DB.Url),
		"log_format", cfg.Log.Format,
	)
	return &cfg, nil
}

func maskValue(v string) string {
	if len(v) <= 6 {
		return "****"
	}
	return v[:2] + "****" + v[len(v)-4:]
}
