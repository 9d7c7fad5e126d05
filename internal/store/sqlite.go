package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	stopwatcherrors "github.com/alexisbeaulieu97/stopwatch/pkg/errors"
)

// SQLiteStore keeps preferences in a single SQLite table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if needed) the SQLite database at path and
// ensures the preferences table exists.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, stopwatcherrors.NewStorageError("open", "", fmt.Errorf("sqlite path is empty"))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, stopwatcherrors.NewStorageError("open", "", fmt.Errorf("create sqlite directory: %w", err))
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, stopwatcherrors.NewStorageError("open", "", fmt.Errorf("open sqlite: %w", err))
	}

	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(pctx, "PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, stopwatcherrors.NewStorageError("open", "", fmt.Errorf("set busy_timeout: %w", err))
	}
	if _, err := db.ExecContext(pctx, `CREATE TABLE IF NOT EXISTS preferences (
  key        TEXT PRIMARY KEY,
  value      TEXT NOT NULL,
  updated_at TEXT NOT NULL
);`); err != nil {
		_ = db.Close()
		return nil, stopwatcherrors.NewStorageError("open", "", fmt.Errorf("create preferences table: %w", err))
	}

	return &SQLiteStore{db: db}, nil
}

// Get reads key from the preferences table.
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM preferences WHERE key = ?;", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, stopwatcherrors.NewStorageError("get", key, err)
	}
	return value, true, nil
}

// Set upserts key and stamps updated_at.
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx, `
INSERT INTO preferences(key, value, updated_at) VALUES(?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`,
		key, value, now)
	if err != nil {
		return stopwatcherrors.NewStorageError("set", key, err)
	}
	return nil
}

// Close closes the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ Store = (*SQLiteStore)(nil)
