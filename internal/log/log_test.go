package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/tuanvumaihuynh/korpstock/internal/config"
	"github.com/tuanvumaihuynh/korpstock/internal/log"
	"github.com/tuanvumaihuynh/korpstock/pkg/correlationid"
)

func TestNew(t *testing.T) {
	t.Run("Should enrich json records with correlation and trace ids", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.New(&buf, config.Log{Format: config.LogFormatJSON, Level: slog.LevelInfo})

		traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
		spanID, _ := trace.SpanIDFromHex("0102030405060708")
		spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
			TraceID:    traceID,
			SpanID:     spanID,
			TraceFlags: trace.FlagsSampled,
		})

		ctx := correlationid.NewContext(context.Background(), "corr-1")
		ctx = trace.ContextWithSpanContext(ctx, spanCtx)

		logger.With(slog.String("service", "test")).InfoContext(ctx, "hello")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "hello", rec["msg"])
		assert.Equal(t, "test", rec["service"])
		assert.Equal(t, "corr-1", rec["correlation_id"])
		assert.Equal(t, traceID.String(), rec["trace_id"])
		assert.Equal(t, spanID.String(), rec["span_id"])
	})

	t.Run("Should respect level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.New(&buf, config.Log{Format: config.LogFormatJSON, Level: slog.LevelWarn})

		logger.Info("dropped")
		assert.Zero(t, buf.Len())
	})

	t.Run("Should write text format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.New(&buf, config.Log{Format: config.LogFormatText, Level: slog.LevelInfo})

		logger.Info("hello text")
		assert.Contains(t, buf.String(), "hello text")
	})
}
