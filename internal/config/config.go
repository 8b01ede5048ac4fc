package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port             string   `env:"PORT" envDefault:"8080"`
	Environment      string   `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string   `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDriver   string   `env:"DATABASE_DRIVER" envDefault:"postgres"`
	DatabaseURL      string   `env:"DATABASE_URL"`
	JWTSecret        string   `env:"JWT_SECRET"`
	JWKSURL          string   `env:"JWKS_URL"`
	CORSOrigins      []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	MaxCommentLength int      `env:"REVIEW_MAX_COMMENT_LENGTH" envDefault:"500"`
	DefaultPageSize  int      `env:"DEFAULT_PAGE_SIZE" envDefault:"20"`
	MaxPageSize      int      `env:"MAX_PAGE_SIZE" envDefault:"100"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	switch c.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("DATABASE_DRIVER must be postgres or sqlite, got %q", c.DatabaseDriver)
	}
	if c.JWTSecret == "" && c.JWKSURL == "" {
		return fmt.Errorf("one of JWT_SECRET or JWKS_URL is required")
	}
	if c.MaxCommentLength != 500 && c.MaxCommentLength != 1000 {
		return fmt.Errorf("REVIEW_MAX_COMMENT_LENGTH must be 500 or 1000, got %d", c.MaxCommentLength)
	}
	if c.DefaultPageSize < 1 || c.MaxPageSize < c.DefaultPageSize {
		return fmt.Errorf("invalid page sizes: default %d, max %d", c.DefaultPageSize, c.MaxPageSize)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// SlogLevel maps LOG_LEVEL onto slog, falling back to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
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
