package config

import "time"

// Config represents the full stopwatch configuration document.
type Config struct {
	Timer   TimerConfig   `yaml:"timer"`
	Theme   ThemeConfig   `yaml:"theme"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// TimerConfig holds the timing engine parameters.
type TimerConfig struct {
	TickInterval time.Duration `yaml:"tick_interval" validate:"min=1ms,max=1s"`
	LapLimit     int           `yaml:"lap_limit" validate:"min=1,max=10000"`
	ResetNotice  time.Duration `yaml:"reset_notice" validate:"min=1ms,max=1m"`
}

// ThemeConfig controls where the theme preference lives and what it falls back to.
type ThemeConfig struct {
	Default string `yaml:"default" validate:"required,oneof=dark light"`
	Key     string `yaml:"key" validate:"required,pref_key"`
}

// StorageConfig selects the preference store backend.
type StorageConfig struct {
	Driver string `yaml:"driver" validate:"required,oneof=file sqlite memory"`
	Path   string `yaml:"path,omitempty" validate:"required_unless=Driver memory"`
}

// LogConfig configures the structured logger. An empty File disables logging.
type LogConfig struct {
	Level         string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	File          string `yaml:"file,omitempty"`
	HumanReadable bool   `yaml:"human_readable,omitempty"`
}
