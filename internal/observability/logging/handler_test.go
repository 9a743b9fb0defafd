package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-calendar-notify/internal/observability/logging"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	return entry
}

func TestNewHandlerAddsContextAttributes(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(logging.NewHandler(&buf, logging.HandlerConfig{
		Level:         slog.LevelDebug,
		Service:       logging.ServiceInfo{Name: "calendar-notify", Version: "1.2.3"},
		Environment:   logging.EnvDev,
		DefaultModule: logging.ModuleChange,
	}))

	ctx := logging.WithRequestID(context.Background(), "req-42")
	logger.InfoContext(ctx, "dispatched", "endpoint_count", 3)

	entry := decodeLine(t, &buf)

	assert.Equal(t, "dispatched", entry["msg"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "change", entry["module"])
	assert.Equal(t, "calendar-notify", entry["service.name"])
	assert.Equal(t, "1.2.3", entry["service.version"])
	assert.Equal(t, "dev", entry["env"])
	assert.EqualValues(t, 3, entry["endpoint_count"])
}

func TestNewHandlerModuleFromContextWins(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(logging.NewHandler(&buf, logging.HandlerConfig{
		Level:         slog.LevelInfo,
		DefaultModule: logging.ModuleChange,
	}))

	logger.InfoContext(logging.WithModule(context.Background(), logging.ModuleAlarm), "alarm scheduled")

	entry := decodeLine(t, &buf)

	assert.Equal(t, "alarm", entry["module"])
	assert.NotContains(t, entry, "request_id")
}

func TestNewHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(logging.NewHandler(&buf, logging.HandlerConfig{Level: slog.LevelWarn}))

	logger.Info("hidden")
	assert.Zero(t, buf.Len())

	logger.Warn("shown")
	assert.NotZero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected slog.Level
	}{
		{in: "debug", expected: slog.LevelDebug},
		{in: "WARN", expected: slog.LevelWarn},
		{in: "error", expected: slog.LevelError},
		{in: "info", expected: slog.LevelInfo},
		{in: "unknown", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, logging.ParseLevel(tt.in))
		})
	}
}
