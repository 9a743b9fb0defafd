package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func captureDefault(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	prev := slog.Default()
	slog.SetDefault(slog.New(NewHandler(&buf, HandlerConfig{Level: slog.LevelDebug})))

	t.Cleanup(func() { slog.SetDefault(prev) })

	return &buf
}

func sqlFunc() (string, int64) {
	return "SELECT * FROM calendars", 1
}

func TestGormLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Info, gormLevel(slog.LevelDebug))
	assert.Equal(t, gormlogger.Warn, gormLevel(slog.LevelInfo))
	assert.Equal(t, gormlogger.Warn, gormLevel(slog.LevelWarn))
	assert.Equal(t, gormlogger.Error, gormLevel(slog.LevelError))
}

func TestGormLoggerTrace(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		begin         time.Time
		expectedEvent string
	}{
		{
			name:          "query failure",
			err:           errors.New("connection reset"),
			begin:         time.Now(),
			expectedEvent: "db.query.fail",
		},
		{
			name:          "slow query",
			begin:         time.Now().Add(-time.Second),
			expectedEvent: "db.query.slow.detect",
		},
		{
			name:          "record not found is a normal query",
			err:           gorm.ErrRecordNotFound,
			begin:         time.Now(),
			expectedEvent: "db.query",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureDefault(t)

			l := NewGormLogger(100*time.Millisecond, slog.LevelDebug)
			l.Trace(context.Background(), tt.begin, sqlFunc, tt.err)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

			assert.Equal(t, tt.expectedEvent, entry["event"])
			assert.Equal(t, string(ModuleDirectory), entry["module"])
			assert.Equal(t, "SELECT * FROM calendars", entry["sql"])
		})
	}
}

func TestGormLoggerSilent(t *testing.T) {
	buf := captureDefault(t)

	l := NewGormLogger(0, slog.LevelDebug).LogMode(gormlogger.Silent)
	l.Trace(context.Background(), time.Now(), sqlFunc, errors.New("ignored"))

	assert.Zero(t, buf.Len())
}
