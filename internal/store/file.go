package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	stopwatcherrors "github.com/alexisbeaulieu97/stopwatch/pkg/errors"
)

const fileFormatVersion = "1"

// preferencesFile is the on-disk layout of a FileStore.
type preferencesFile struct {
	Version string            `json:"version"`
	Values  map[string]string `json:"values"`
}

// FileStore persists preferences as a JSON document
type FileStore struct {
	path    string
	mu      sync.RWMutex
	values  map[string]string
	loadErr error
}

// NewFileStore creates a FileStore and loads any existing document from disk.
// An unreadable or corrupt document is not fatal: the store starts empty, the
// failure is reported by LoadError, and the next Set rewrites the file.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, stopwatcherrors.NewStorageError("open", "", fmt.Errorf("preferences path is empty"))
	}

	s := &FileStore{
		path:   path,
		values: make(map[string]string),
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, stopwatcherrors.NewStorageError("open", "", fmt.Errorf("create preferences directory: %w", err))
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		s.loadErr = stopwatcherrors.NewStorageError("load", "", err)
		s.values = make(map[string]string)
	}

	return s, nil
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

// LoadError returns the error hit while reading an existing document, if any.
func (s *FileStore) LoadError() error {
	return s.loadErr
}

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file preferencesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse preferences: %w", err)
	}

	s.values = file.Values
	if s.values == nil {
		s.values = make(map[string]string)
	}

	return nil
}

// Get returns the stored value for key.
func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, stopwatcherrors.NewStorageError("get", key, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok, nil
}

// Set updates key and rewrites the file atomically.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return stopwatcherrors.NewStorageError("set", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	s.values[key] = value

	if err := s.save(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return stopwatcherrors.NewStorageError("set", key, err)
	}

	return nil
}

// save writes the document to a temporary file and renames it into place.
// Callers must hold the write lock.
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(preferencesFile{
		Version: fileFormatVersion,
		Values:  s.values,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// Close is a no-op; every Set is already on disk.
func (s *FileStore) Close() error { return nil }

var _ Store = (*FileStore)(nil)
