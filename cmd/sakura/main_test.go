package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/sakura/internal/config"
	"github.com/verte-zerg/sakura/internal/model"
	"github.com/verte-zerg/sakura/internal/store"
	"github.com/verte-zerg/sakura/internal/textsource"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	var cfg config.FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		t.Fatalf("template does not decode: %v", err)
	}
	if _, err := config.LoadConfig(path); err != nil {
		t.Fatalf("template does not load: %v", err)
	}
}

func TestWriteScore(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	_ = mem.SetHighScore(ctx, 42)

	var buf bytes.Buffer
	if err := writeScore(ctx, &buf, mem, false); err != nil {
		t.Fatalf("write score: %v", err)
	}
	if buf.String() != "High score: 42\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}

	buf.Reset()
	if err := writeScore(ctx, &buf, mem, true); err != nil {
		t.Fatalf("write json: %v", err)
	}
	if strings.TrimSpace(buf.String()) != `{"highScore":42,"theme":"light"}` {
		t.Fatalf("unexpected json %q", buf.String())
	}
}

func TestSetOrShowTheme(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	var buf bytes.Buffer
	if err := setOrShowTheme(ctx, &buf, mem, []string{"dark"}); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "dark" {
		t.Fatalf("unexpected output %q", buf.String())
	}
	if err := setOrShowTheme(ctx, &buf, mem, []string{"neon"}); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}

func TestBuildSource(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	src, err := buildSource(model.Config{Mode: model.ModePassage, Lang: "en"}, quietLogger())
	if err != nil {
		t.Fatalf("passage source: %v", err)
	}
	if _, ok := src.(textsource.Stream); ok {
		t.Fatalf("passage mode must not stream")
	}

	src, err = buildSource(model.Config{Mode: model.ModeWords, Lang: "en", WindowSize: 10}, quietLogger())
	if err != nil {
		t.Fatalf("words source: %v", err)
	}
	stream, ok := src.(textsource.Stream)
	if !ok || stream.WindowSize() != 10 {
		t.Fatalf("expected words stream with window 10")
	}
	if len(strings.Fields(stream.InitialText())) != 10 {
		t.Fatalf("expected 10 initial words")
	}

	if _, err := buildSource(model.Config{Mode: model.ModeWords, Lang: "xx", WindowSize: 10}, quietLogger()); err == nil {
		t.Fatalf("expected error for missing language list")
	}
}

func TestBuildSourceExplicitWordList(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()

	missing := filepath.Join(dir, "typo.txt")
	_, err := buildSource(model.Config{Mode: model.ModeWords, Lang: "en", WindowSize: 5, WordList: missing}, quietLogger())
	if err == nil {
		t.Fatalf("expected error for missing --wordlist file")
	}
	if !strings.Contains(err.Error(), missing) {
		t.Fatalf("error should name the path, got %v", err)
	}

	path := filepath.Join(dir, "mine.txt")
	if err := os.WriteFile(path, []byte("zephyr\nquartz\n"), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	src, err := buildSource(model.Config{Mode: model.ModeWords, Lang: "en", WindowSize: 5, WordList: path}, quietLogger())
	if err != nil {
		t.Fatalf("explicit list: %v", err)
	}
	for _, w := range strings.Fields(src.InitialText()) {
		if w != "zephyr" && w != "quartz" {
			t.Fatalf("unexpected word %q from explicit list", w)
		}
	}
}

func TestOpenSettingsMemoryOnly(t *testing.T) {
	st := openSettings(quietLogger(), true)
	if _, ok := st.(*store.Memory); !ok {
		t.Fatalf("expected memory store")
	}
}
