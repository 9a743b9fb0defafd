package timer

import (
	"log/slog"

	"github.com/robfig/cron/v3"
)

type slogCronLogger struct {
	logger *slog.Logger
}

func newCronLogger(logger *slog.Logger) cron.Logger {
	return &slogCronLogger{logger: logger}
}

func (l *slogCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, append(keysAndValues, "event", "timer.cron")...)
}

func (l *slogCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "event", "timer.cron", "error", err)...)
}
