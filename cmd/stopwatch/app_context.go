package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/stopwatch/internal/config"
	"github.com/alexisbeaulieu97/stopwatch/internal/logger"
	"github.com/alexisbeaulieu97/stopwatch/internal/store"
	"github.com/alexisbeaulieu97/stopwatch/internal/theme"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config *config.Config
	Logger *logger.Logger
	Store  store.Store
	Theme  *theme.Controller

	logFile io.Closer
}

// newAppContext loads configuration and wires the logger, preference store and
// theme controller. The theme is loaded and applied before returning.
func newAppContext(ctx context.Context, flags *rootFlags, command string) (*AppContext, error) {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.ephemeral {
		cfg.Storage.Driver = store.DriverMemory
	}

	app := &AppContext{Config: cfg}

	var writer io.Writer
	if cfg.Log.File != "" {
		file, err := openLogFile(cfg.Log.File)
		if err != nil {
			return nil, err
		}
		app.logFile = file
		writer = file
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.HumanReadable,
		Writer:        writer,
	})
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	app.Logger = log.WithFields(map[string]any{
		"session": uuid.NewString(),
		"command": command,
	})

	app.Store = openStore(ctx, cfg.Storage, app.Logger)

	app.Theme = theme.NewController(app.Store,
		theme.WithKey(cfg.Theme.Key),
		theme.WithFallback(theme.Theme(cfg.Theme.Default)),
		theme.WithLogger(app.Logger),
	)
	loaded := app.Theme.Load(ctx)
	app.Logger.WithFields(map[string]any{
		"theme":  loaded.String(),
		"driver": cfg.Storage.Driver,
	}).Debug("preferences loaded")

	return app, nil
}

// Close releases the store and log file.
func (a *AppContext) Close() error {
	if a == nil {
		return nil
	}
	var errs []error
	if a.Store != nil {
		errs = append(errs, a.Store.Close())
	}
	if a.logFile != nil {
		errs = append(errs, a.logFile.Close())
	}
	return errors.Join(errs...)
}

// openStore opens the configured preference store. Preferences are cosmetic,
// so a store that cannot be opened is replaced by an in-memory one.
func openStore(ctx context.Context, cfg config.StorageConfig, log *logger.Logger) store.Store {
	prefs, err := store.Open(ctx, cfg)
	if err != nil {
		log.With("driver", cfg.Driver).Error(err, "failed to open preference store, preferences will not persist")
		return store.NewMemoryStore()
	}

	if fs, ok := prefs.(*store.FileStore); ok && fs.LoadError() != nil {
		log.With("path", fs.Path()).Error(fs.LoadError(), "ignoring unreadable preferences file")
	}

	return prefs
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.ParseConfig(path)
	}
	return config.Load("")
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}
