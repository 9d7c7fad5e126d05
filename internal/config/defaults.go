package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultTickInterval is the fixed step added to the elapsed time on every tick.
	DefaultTickInterval = 10 * time.Millisecond
	// DefaultLapLimit caps the number of recorded laps.
	DefaultLapLimit = 100
	// DefaultResetNotice is how long the reset message stays visible.
	DefaultResetNotice = 1200 * time.Millisecond
	// DefaultThemeKey is the preference key the theme is stored under.
	DefaultThemeKey = "theme"

	appDirName = ".stopwatch"
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Timer: TimerConfig{
			TickInterval: DefaultTickInterval,
			LapLimit:     DefaultLapLimit,
			ResetNotice:  DefaultResetNotice,
		},
		Theme: ThemeConfig{
			Default: "dark",
			Key:     DefaultThemeKey,
		},
		Storage: StorageConfig{
			Driver: "file",
			Path:   DefaultStoragePath("file"),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultStoragePath returns the preference location used when a config
// selects driver without naming a path. The memory driver has none.
func DefaultStoragePath(driver string) string {
	switch driver {
	case "file":
		return filepath.Join("~", appDirName, "preferences.json")
	case "sqlite":
		return filepath.Join("~", appDirName, "preferences.db")
	default:
		return ""
	}
}

// DefaultPath returns the location of the config file in the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, appDirName, "config.yaml"), nil
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
