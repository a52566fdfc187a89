package store

import (
	"context"
	"strconv"

	"github.com/verte-zerg/sakura/internal/model"
)

// Memory is a process-local settings store used when SQLite is unavailable.
type Memory struct {
	values map[string]string
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

// Get returns the value for key and whether it was present.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

// HighScore returns the stored high score, 0 when absent.
func (m *Memory) HighScore(ctx context.Context) (int, error) {
	return highScore(ctx, m)
}

// SetHighScore stores score.
func (m *Memory) SetHighScore(ctx context.Context, score int) error {
	return m.Set(ctx, keyHighScore, strconv.Itoa(score))
}

// ResetHighScore removes the stored high score.
func (m *Memory) ResetHighScore(_ context.Context) error {
	delete(m.values, keyHighScore)
	return nil
}

// Theme returns the stored theme.
func (m *Memory) Theme(ctx context.Context) (model.Theme, error) {
	return theme(ctx, m)
}

// SetTheme stores the theme flag.
func (m *Memory) SetTheme(ctx context.Context, t model.Theme) error {
	return m.Set(ctx, keyTheme, string(t))
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
