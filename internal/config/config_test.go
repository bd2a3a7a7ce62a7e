package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/korpstock/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		type Config struct {
			Log   config.Log
			HTTP  config.HTTP
			Relay config.Relay
		}

		cfg, err := config.New[Config]()
		require.NoError(t, err)

		assert.Equal(t, config.LogFormatJSON, cfg.Log.Format)
		assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
		assert.Equal(t, uint32(8000), cfg.HTTP.Port)
		assert.True(t, cfg.HTTP.Swagger)
		assert.Equal(t, []string{"http://localhost:4200"}, cfg.HTTP.CorsAllowedOrigins)
		assert.Equal(t, time.Second, cfg.Relay.Interval)
		assert.Equal(t, uint32(100), cfg.Relay.BatchSize)
	})

	t.Run("Should read environment", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "text")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("HTTP_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
		t.Setenv("POSTGRES_HOST", "db")
		t.Setenv("POSTGRES_PORT", "5432")
		t.Setenv("POSTGRES_USER", "korp")
		t.Setenv("POSTGRES_PASSWORD", "secret")
		t.Setenv("POSTGRES_DB", "korpstock")

		type Config struct {
			Log      config.Log
			HTTP     config.HTTP
			Postgres config.Postgres
		}

		cfg, err := config.New[Config]()
		require.NoError(t, err)

		assert.Equal(t, config.LogFormatText, cfg.Log.Format)
		assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
		assert.Equal(t, uint32(9090), cfg.HTTP.Port)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CorsAllowedOrigins)
		assert.Equal(t, "db", cfg.Postgres.Host)
		assert.Equal(t, "disable", cfg.Postgres.SSLMode)
		assert.Equal(t, int32(10), cfg.Postgres.MaxConns)
	})

	t.Run("Should fail on missing required variable", func(t *testing.T) {
		type Config struct {
			Kafka config.Kafka
		}

		_, err := config.New[Config]()
		assert.Error(t, err)
	})

	t.Run("Should fail on unknown log format", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "xml")

		type Config struct {
			Log config.Log
		}

		_, err := config.New[Config]()
		assert.Error(t, err)
	})
}
