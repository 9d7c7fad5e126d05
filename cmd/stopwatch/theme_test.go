package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeCommandDefaultsToDark(t *testing.T) {
	path, _ := writeConfig(t, "file")

	out, err := execute(t, "theme", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)
}

func TestThemeTogglePersists(t *testing.T) {
	for _, driver := range []string{"file", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			path, _ := writeConfig(t, driver)

			out, err := execute(t, "theme", "toggle", "--config", path)
			require.NoError(t, err)
			assert.Equal(t, "light\n", out)

			out, err = execute(t, "theme", "--config", path)
			require.NoError(t, err)
			assert.Equal(t, "light\n", out)

			out, err = execute(t, "theme", "toggle", "--config", path)
			require.NoError(t, err)
			assert.Equal(t, "dark\n", out)
		})
	}
}

func TestThemeSet(t *testing.T) {
	path, _ := writeConfig(t, "file")

	out, err := execute(t, "theme", "set", "light", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	out, err = execute(t, "theme", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)
}

func TestThemeSetRejectsUnknownTheme(t *testing.T) {
	path, _ := writeConfig(t, "file")

	_, err := execute(t, "theme", "set", "sepia", "--config", path)
	require.Error(t, err)
}

func TestThemeEphemeralDoesNotPersist(t *testing.T) {
	path, _ := writeConfig(t, "file")

	out, err := execute(t, "theme", "toggle", "--config", path, "--ephemeral")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	out, err = execute(t, "theme", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)
}

func TestThemeRecoversFromCorruptPreferences(t *testing.T) {
	path, dir := writeConfig(t, "file")
	prefs := filepath.Join(dir, "preferences.db")
	require.NoError(t, os.WriteFile(prefs, nil, 0o600))

	out, err := execute(t, "theme", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	out, err = execute(t, "theme", "toggle", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	out, err = execute(t, "theme", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	logs, err := os.ReadFile(filepath.Join(dir, "stopwatch.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logs), "ignoring unreadable preferences file")
}

func TestThemeFallsBackToMemoryWhenStoreCannotOpen(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o600))

	path := filepath.Join(dir, "config.yaml")
	content := "storage:\n" +
		"  driver: file\n" +
		"  path: " + filepath.Join(blocker, "prefs.json") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, err := execute(t, "theme", "toggle", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	out, err = execute(t, "theme", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)
}
