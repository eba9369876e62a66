// Package config holds the runtime configuration and the fixed protocol
// limits of the session broker.
package config

import (
	"fmt"
	"time"

	env "github.com/Netflix/go-env"
)

// Config is populated from the environment. Postgres and Redis are optional
// report-sink backends; with neither configured reports still land in the
// append-only log file.
type Config struct {
	Port              int           `env:"PORT,default=3000"`
	ReportsFile       string        `env:"REPORTS_FILE,default=data/reports.log"`
	DatabaseDSN       string        `env:"DATABASE_DSN"`
	RedisAddr         string        `env:"REDIS_ADDR"`
	RedisPassword     string        `env:"REDIS_PASSWORD"`
	JWTSecret         string        `env:"JWT_SECRET,default=corner-dev-secret"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT,default=10s"`
	LogLevel          string        `env:"LOG_LEVEL,default=info"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
