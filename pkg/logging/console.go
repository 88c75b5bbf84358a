package logging

import (
	"context"
	"io"
	"sort"

	"github.com/charmbracelet/log"
)

// ConsoleLogger writes human-oriented log lines to a terminal stream
type ConsoleLogger struct {
	logger *log.Logger
}

// NewConsoleLogger creates a console logger writing to w at the given level
func NewConsoleLogger(w io.Writer, level Level) *ConsoleLogger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "stemsweep",
		ReportTimestamp: true,
		Level:           toCharmLevel(level),
	})
	return &ConsoleLogger{logger: logger}
}

func (l *ConsoleLogger) Debug(ctx context.Context, msg string, fields Fields) {
	l.logger.Debug(msg, keyvals(fields)...)
}

func (l *ConsoleLogger) Info(ctx context.Context, msg string, fields Fields) {
	l.logger.Info(msg, keyvals(fields)...)
}

func (l *ConsoleLogger) Warn(ctx context.Context, msg string, fields Fields) {
	l.logger.Warn(msg, keyvals(fields)...)
}

func (l *ConsoleLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	kv := keyvals(fields)
	if err != nil {
		kv = append(kv, "error", err)
	}
	l.logger.Error(msg, kv...)
}

// WithFields returns a console logger with fields attached
func (l *ConsoleLogger) WithFields(fields Fields) Logger {
	return &ConsoleLogger{logger: l.logger.With(keyvals(fields)...)}
}

// Close does nothing; the stream belongs to the caller
func (l *ConsoleLogger) Close() error {
	return nil
}

func toCharmLevel(level Level) log.Level {
	switch level {
	case DebugLevel:
		return log.DebugLevel
	case WarnLevel:
		return log.WarnLevel
	case ErrorLevel:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func keyvals(fields Fields) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	kv := make([]interface{}, 0, len(fields)*2)
	for _, k := range keys {
		kv = append(kv, k, fields[k])
	}
	return kv
}
