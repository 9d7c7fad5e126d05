package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	stopwatcherrors "github.com/alexisbeaulieu97/stopwatch/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads the configuration at path, falling back to defaults when the file
// does not exist. An empty path resolves to DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		resolved, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve config path: %w", err)
		}
		path = resolved
	}

	cfg, err := ParseConfig(path)
	if err == nil {
		return cfg, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
		if err := finalize(cfg, path); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return nil, err
}

// ParseConfig loads a configuration file from disk, validates it, and returns the resulting model.
// Fields absent from the file keep their default values.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, stopwatcherrors.NewParseError(path, 0, err)
	}

	return Parse(path, data)
}

// Parse decodes and validates raw YAML. The path is only used for error reporting.
func Parse(path string, data []byte) (*Config, error) {
	cfg := Default()
	// filled per driver once the document is decoded
	cfg.Storage.Path = ""
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, stopwatcherrors.NewParseError(path, extractLine(err), err)
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = DefaultStoragePath(cfg.Storage.Driver)
	}

	if err := finalize(cfg, path); err != nil {
		return nil, err
	}

	return cfg, nil
}

func finalize(cfg *Config, path string) error {
	if err := ValidateConfig(cfg); err != nil {
		return err
	}

	storagePath, err := expandHome(cfg.Storage.Path)
	if err != nil {
		return stopwatcherrors.NewParseError(path, 0, fmt.Errorf("expand storage.path: %w", err))
	}
	cfg.Storage.Path = storagePath

	logPath, err := expandHome(cfg.Log.File)
	if err != nil {
		return stopwatcherrors.NewParseError(path, 0, fmt.Errorf("expand log.file: %w", err))
	}
	cfg.Log.File = logPath

	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
