package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stopwatch/internal/config"
	stopwatcherrors "github.com/alexisbeaulieu97/stopwatch/pkg/errors"
)

func openAll(t *testing.T) map[string]Store {
	t.Helper()

	dir := t.TempDir()
	ctx := context.Background()

	fileStore, err := Open(ctx, config.StorageConfig{Driver: DriverFile, Path: filepath.Join(dir, "prefs.json")})
	require.NoError(t, err)

	sqliteStore, err := Open(ctx, config.StorageConfig{Driver: DriverSQLite, Path: filepath.Join(dir, "prefs.db")})
	require.NoError(t, err)

	memoryStore, err := Open(ctx, config.StorageConfig{Driver: DriverMemory})
	require.NoError(t, err)

	stores := map[string]Store{
		DriverFile:   fileStore,
		DriverSQLite: sqliteStore,
		DriverMemory: memoryStore,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			_ = s.Close()
		}
	})
	return stores
}

func TestStoreGetMissingKey(t *testing.T) {
	for name, s := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			value, ok, err := s.Get(context.Background(), "theme")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Empty(t, value)
		})
	}
}

func TestStoreSetThenGet(t *testing.T) {
	for name, s := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Set(ctx, "theme", "light"))
			require.NoError(t, s.Set(ctx, "theme", "dark"))

			value, ok, err := s.Get(ctx, "theme")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "dark", value)
		})
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.StorageConfig{Driver: "redis"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	ctx := context.Background()

	first, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "theme", "light"))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file should be renamed away")

	second, err := NewFileStore(path)
	require.NoError(t, err)
	value, ok, err := second.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", value)
	assert.Equal(t, path, second.Path())
}

func TestFileStoreStartsEmptyOnCorruptDocument(t *testing.T) {
	for name, contents := range map[string]string{
		"empty":    "",
		"bad json": "{not json",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.json")
			require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

			s, err := NewFileStore(path)
			require.NoError(t, err)

			var storageErr *stopwatcherrors.StorageError
			require.ErrorAs(t, s.LoadError(), &storageErr)
			assert.Equal(t, "load", storageErr.Op)

			ctx := context.Background()
			_, ok, err := s.Get(ctx, "theme")
			require.NoError(t, err)
			assert.False(t, ok)

			// the next write replaces the damaged document
			require.NoError(t, s.Set(ctx, "theme", "light"))
			reopened, err := NewFileStore(path)
			require.NoError(t, err)
			assert.NoError(t, reopened.LoadError())
			value, ok, err := reopened.Get(ctx, "theme")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "light", value)
		})
	}
}

func TestFileStoreLeavesNoTemporaryFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.json")
	ctx := context.Background()

	first, err := NewFileStore(path)
	require.NoError(t, err)
	second, err := NewFileStore(path)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, first.Set(ctx, "theme", "light"))
		require.NoError(t, second.Set(ctx, "theme", "dark"))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "prefs.json", entries[0].Name())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestFileStoreRejectsEmptyPath(t *testing.T) {
	_, err := NewFileStore("")
	require.Error(t, err)
}

func TestFileStoreSetHonoursCancelledContext(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "prefs.json"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = s.Set(ctx, "theme", "light")
	var storageErr *stopwatcherrors.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "theme", storageErr.Key)

	_, ok, err := s.Get(context.Background(), "theme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	ctx := context.Background()

	first, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "theme", "light"))
	require.NoError(t, first.Close())

	second, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	value, ok, err := second.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", value)
}
