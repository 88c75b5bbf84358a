package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func newLogPath(t *testing.T) string {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "logging-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })
	return filepath.Join(tempDir, "sweep.log")
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	trimmed := strings.TrimSpace(string(content))
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func TestNewFileLogger_CreatesDirectory(t *testing.T) {
	logPath := filepath.Join(filepath.Dir(newLogPath(t)), "nested", "dir", "sweep.log")

	logger, err := NewFileLogger(FileLoggerConfig{Path: logPath, Format: FormatText, Level: InfoLevel})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("Log file was not created")
	}
}

func TestFileLogger_LevelFilter(t *testing.T) {
	logPath := newLogPath(t)
	logger, err := NewFileLogger(FileLoggerConfig{Path: logPath, Format: FormatText, Level: WarnLevel})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	ctx := context.Background()
	logger.Debug(ctx, "debug message", nil)
	logger.Info(ctx, "info message", nil)
	logger.Warn(ctx, "warn message", nil)
	logger.Error(ctx, "error message", nil, nil)
	logger.Close()

	lines := readLines(t, logPath)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "[WARN] warn message") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "[ERROR] error message") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestFileLogger_TextFormat(t *testing.T) {
	logPath := newLogPath(t)
	logger, err := NewFileLogger(FileLoggerConfig{Path: logPath, Format: FormatText, Level: DebugLevel})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	logger.Error(context.Background(), "delete failed", errors.New("permission denied"), Fields{"path": "a.png", "attempt": 1})
	logger.Close()

	lines := readLines(t, logPath)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	want := `[ERROR] delete failed error="permission denied" attempt=1 path=a.png`
	if !strings.HasSuffix(lines[0], want) {
		t.Errorf("line = %q, want suffix %q", lines[0], want)
	}
}

func TestFileLogger_JSONFormat(t *testing.T) {
	logPath := newLogPath(t)
	logger, err := NewFileLogger(FileLoggerConfig{Path: logPath, Format: FormatJSON, Level: InfoLevel})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	logger.Info(context.Background(), "scan complete", Fields{"files": 3})
	logger.Close()

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(readLines(t, logPath)[0]), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if entry["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", entry["level"])
	}
	if entry["message"] != "scan complete" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["files"] != float64(3) {
		t.Errorf("files = %v, want 3", entry["files"])
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("timestamp missing")
	}
}

func TestFileLogger_WithFields(t *testing.T) {
	logPath := newLogPath(t)
	logger, err := NewFileLogger(FileLoggerConfig{Path: logPath, Format: FormatJSON, Level: InfoLevel})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	ctx := context.Background()
	child := logger.WithFields(Fields{"operation_id": "op-1"})
	child.Info(ctx, "child", Fields{"phase": "scan"})
	logger.Info(ctx, "parent", nil)
	logger.Close()

	lines := readLines(t, logPath)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var first, second map[string]interface{}
	json.Unmarshal([]byte(lines[0]), &first)
	json.Unmarshal([]byte(lines[1]), &second)

	if first["operation_id"] != "op-1" || first["phase"] != "scan" {
		t.Errorf("child entry = %v", first)
	}
	if _, ok := second["operation_id"]; ok {
		t.Error("parent logger should not inherit child fields")
	}
}

func TestFileLogger_Rotation(t *testing.T) {
	logPath := newLogPath(t)
	logger, err := NewFileLogger(FileLoggerConfig{
		Path:       logPath,
		Format:     FormatText,
		Level:      InfoLevel,
		MaxSize:    100,
		MaxBackups: 2,
	})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	ctx := context.Background()
	for i := 0; i < 20; i++ {
		logger.Info(ctx, "a message long enough to push the file past its size limit", nil)
	}
	logger.Close()

	if _, err := os.Stat(logPath + ".1"); os.IsNotExist(err) {
		t.Error("Backup file .1 should exist after rotation")
	}
	if _, err := os.Stat(logPath + ".2"); os.IsNotExist(err) {
		t.Error("Backup file .2 should exist after rotation")
	}
	if _, err := os.Stat(logPath + ".3"); !os.IsNotExist(err) {
		t.Error("Backup file .3 should not exist with MaxBackups = 2")
	}
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("Main log file should still exist")
	}
}

func TestFileLogger_ConcurrentWrites(t *testing.T) {
	logPath := newLogPath(t)
	logger, err := NewFileLogger(FileLoggerConfig{Path: logPath, Format: FormatText, Level: InfoLevel})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			child := logger.WithFields(Fields{"worker": id})
			for j := 0; j < 100; j++ {
				child.Info(ctx, "concurrent message", Fields{"iteration": j})
			}
		}(i)
	}
	wg.Wait()
	logger.Close()

	if lines := readLines(t, logPath); len(lines) != 1000 {
		t.Errorf("Expected 1000 log lines, got %d", len(lines))
	}
}

func TestFileLogger_WriteAfterClose(t *testing.T) {
	logPath := newLogPath(t)
	logger, err := NewFileLogger(FileLoggerConfig{Path: logPath, Format: FormatText, Level: InfoLevel})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	logger.Close()

	// Must not panic
	logger.Info(context.Background(), "dropped", nil)
	if err := logger.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard
	ctx := context.Background()

	logger.Debug(ctx, "debug", nil)
	logger.Info(ctx, "info", nil)
	logger.Warn(ctx, "warn", nil)
	logger.Error(ctx, "error", nil, nil)

	if logger.WithFields(Fields{"key": "value"}) != Discard {
		t.Error("WithFields should return Discard")
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, InfoLevel)
	ctx := context.Background()

	logger.Debug(ctx, "hidden", nil)
	logger.WithFields(Fields{"dir": "/tmp/png"}).Info(ctx, "scanning", Fields{"entries": 4})
	logger.Error(ctx, "delete failed", errors.New("permission denied"), nil)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug entry should be filtered at info level")
	}
	for _, want := range []string{"scanning", "dir=/tmp/png", "entries=4", "delete failed", "permission denied"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMulti(t *testing.T) {
	var a, b bytes.Buffer
	logger := NewMulti(NewConsoleLogger(&a, DebugLevel), nil, NewConsoleLogger(&b, DebugLevel))

	logger.WithFields(Fields{"k": "v"}).Warn(context.Background(), "both", nil)

	if !strings.Contains(a.String(), "both") || !strings.Contains(b.String(), "both") {
		t.Error("every logger should receive the entry")
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	if NewMulti() != Discard {
		t.Error("NewMulti() without loggers should return Discard")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", DebugLevel},
		{"DEBUG", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"WARNING", WarnLevel},
		{"error", ErrorLevel},
		{"unknown", InfoLevel},
		{"", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	if Level(99).String() != "UNKNOWN" {
		t.Errorf("Level(99).String() = %q, want UNKNOWN", Level(99).String())
	}
	if WarnLevel.String() != "WARN" {
		t.Errorf("WarnLevel.String() = %q", WarnLevel.String())
	}
}
