// Package store handles SQLite persistence of the high score and settings.
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/verte-zerg/sakura/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

const (
	keyHighScore = "highScore"
	keyTheme     = "theme"
)

// Store wraps SQLite access for the settings table.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the value for key and whether it was present.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	return err
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key)
	return err
}

// HighScore returns the stored high score, 0 when absent or unparsable.
func (s *Store) HighScore(ctx context.Context) (int, error) {
	return highScore(ctx, s)
}

// SetHighScore stores score as a decimal string.
func (s *Store) SetHighScore(ctx context.Context, score int) error {
	return s.Set(ctx, keyHighScore, strconv.Itoa(score))
}

// ResetHighScore removes the stored high score.
func (s *Store) ResetHighScore(ctx context.Context) error {
	return s.Delete(ctx, keyHighScore)
}

// Theme returns the stored theme, light when absent or unknown.
func (s *Store) Theme(ctx context.Context) (model.Theme, error) {
	return theme(ctx, s)
}

// SetTheme stores the theme flag.
func (s *Store) SetTheme(ctx context.Context, t model.Theme) error {
	return s.Set(ctx, keyTheme, string(t))
}

type getter interface {
	Get(ctx context.Context, key string) (string, bool, error)
}

func highScore(ctx context.Context, g getter) (int, error) {
	value, ok, err := g.Get(ctx, keyHighScore)
	if err != nil || !ok {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0, nil
	}
	return n, nil
}

func theme(ctx context.Context, g getter) (model.Theme, error) {
	value, ok, err := g.Get(ctx, keyTheme)
	if err != nil || !ok {
		return model.ThemeLight, err
	}
	if model.Theme(value) == model.ThemeDark {
		return model.ThemeDark, nil
	}
	return model.ThemeLight, nil
}
