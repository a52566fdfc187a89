package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	if err != nil || lvl != slog.LevelDebug {
		t.Fatalf("expected debug, got %v (%v)", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewWritesPlainToBuffer(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)
	logger.Debug("hidden")
	logger.Warn("failed to save high score", "score", 42)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug message should be filtered: %s", out)
	}
	if !strings.Contains(out, "score=42") || strings.Contains(out, "\x1b[") {
		t.Fatalf("expected uncolored attrs, got %q", out)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sakura.log")
	logger, closeFn, err := OpenFile(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	logger.Info("session started", "id", "abc")
	if err := closeFn(); err != nil {
		t.Fatalf("close log: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "session started") {
		t.Fatalf("expected log line, got %q", data)
	}
}
