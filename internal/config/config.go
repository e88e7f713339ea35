package config

import (
	"os"
)

type Config struct {
	RedisURL    string
	LogLevel    string
	Port        string
	Environment string
}

func New() *Config {
	cfg := &Config{
		RedisURL:    os.Getenv("REDIS_URL"),
		LogLevel:    os.Getenv("LOGLEVEL"),
		Port:        os.Getenv("PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = "redis://localhost:6379"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}

// ExposeErrorDetails reports whether internal error detail may appear in the
// detalles field of error responses.
func (c *Config) ExposeErrorDetails() bool {
	return c.Environment != "production"
}
