package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/eventhub")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, 500, cfg.MaxCommentLength)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "file:eventhub.db")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("JWKS_URL", "https://auth.example.com/.well-known/jwks.json")
	t.Setenv("CORS_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("REVIEW_MAX_COMMENT_LENGTH", "1000")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, 1000, cfg.MaxCommentLength)
	assert.Len(t, cfg.CORSOrigins, 2)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfigRequiresDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadConfigRejectsCommentLength(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/eventhub")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("REVIEW_MAX_COMMENT_LENGTH", "750")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigParseError(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/eventhub")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("MAX_PAGE_SIZE", "lots")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestSlogLevel(t *testing.T) {
	cfg := &Config{LogLevel: "DEBUG"}
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	cfg.LogLevel = "nonsense"
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
