package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStructuredLogger(t *testing.T) {
	t.Run("produces JSON output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		logger.Info("test message", slog.String("dataset", "co2"))

		output := buf.String()
		assert.Contains(t, output, `"msg":"test message"`)
		assert.Contains(t, output, `"dataset":"co2"`)
	})

	t.Run("respects log level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelWarn)

		logger.Info("should be suppressed")
		assert.Empty(t, buf.String())

		logger.Warn("should appear")
		assert.Contains(t, buf.String(), `"msg":"should appear"`)
	})
}

func TestLogError(t *testing.T) {
	t.Run("logs error with attributes", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogError(logger, "load failed", assert.AnError,
			slog.String("gas", "co2"),
			slog.String("component", "dataset"))

		output := buf.String()
		assert.Contains(t, output, `"level":"ERROR"`)
		assert.Contains(t, output, `"msg":"load failed"`)
		assert.Contains(t, output, `"gas":"co2"`)
		assert.Contains(t, output, assert.AnError.Error())
	})

	t.Run("nil logger is a no-op", func(t *testing.T) {
		LogError(nil, "load failed", assert.AnError)
	})
}

func TestLogOperation(t *testing.T) {
	t.Run("skips zero-value durations", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogOperation(logger, "dataset_load",
			slog.Duration("duration", 0),
			slog.Int("rows", 42))

		output := buf.String()
		assert.Contains(t, output, `"msg":"dataset_load"`)
		assert.Contains(t, output, `"rows":42`)
		assert.NotContains(t, output, `"duration"`)
	})
}

func TestLogHTTPRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogHTTPRequest(logger, "GET", "/api/dashboard.json", 200, 1.5,
		slog.String("component", "http_server"))

	output := buf.String()
	assert.Contains(t, output, `"msg":"http_request"`)
	assert.Contains(t, output, `"method":"GET"`)
	assert.Contains(t, output, `"path":"/api/dashboard.json"`)
	assert.Contains(t, output, `"status":200`)
	assert.Contains(t, output, `"duration_ms":1.5`)
}

func TestContextLogger(t *testing.T) {
	t.Run("round-trips logger through context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		ctx := WithLogger(context.Background(), logger)
		retrieved := FromContext(ctx)

		retrieved.Info("from context")
		assert.Contains(t, buf.String(), `"msg":"from context"`)
	})

	t.Run("falls back to default logger", func(t *testing.T) {
		logger := FromContext(context.Background())
		assert.NotNil(t, logger)
	})
}
