package theme

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stopwatch/internal/logger"
	"github.com/alexisbeaulieu97/stopwatch/internal/store"
)

// DefaultKey is the preference key the theme is stored under.
const DefaultKey = "theme"

// ApplyFunc switches the renderer's global visual mode.
type ApplyFunc func(Theme)

// ApplyToRenderer sets lipgloss' default renderer background so adaptive colours
// resolve to the matching variant.
func ApplyToRenderer(t Theme) {
	lipgloss.SetHasDarkBackground(t.IsDark())
}

// Option customises a Controller.
type Option func(*Controller)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(c *Controller) {
		if key != "" {
			c.key = key
		}
	}
}

// WithFallback sets the theme used when nothing valid is stored.
func WithFallback(t Theme) Option {
	return func(c *Controller) {
		if _, err := Parse(string(t)); err == nil {
			c.fallback = t
		}
	}
}

// WithApply replaces the function that applies the theme to the renderer.
func WithApply(fn ApplyFunc) Option {
	return func(c *Controller) {
		if fn != nil {
			c.apply = fn
		}
	}
}

// WithLogger attaches a logger for storage failures.
func WithLogger(log *logger.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// Controller tracks the current theme and keeps the store in sync with it.
// Storage failures are logged and otherwise ignored: the preference is cosmetic.
type Controller struct {
	store    store.Store
	key      string
	fallback Theme
	apply    ApplyFunc
	log      *logger.Logger
	current  Theme
}

// NewController creates a controller. The current theme starts at the fallback
// until Load is called.
func NewController(s store.Store, opts ...Option) *Controller {
	c := &Controller{
		store:    s,
		key:      DefaultKey,
		fallback: Dark,
		apply:    ApplyToRenderer,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.current = c.fallback
	return c
}

// Load reads the stored preference, adopts it when valid, and applies it.
func (c *Controller) Load(ctx context.Context) Theme {
	c.current = c.fallback

	if c.store != nil {
		value, ok, err := c.store.Get(ctx, c.key)
		switch {
		case err != nil:
			c.log.With("key", c.key).Error(err, "failed to read theme preference")
		case ok:
			if parsed, perr := Parse(value); perr == nil {
				c.current = parsed
			} else {
				c.log.With("value", value).Warn("ignoring invalid stored theme")
			}
		}
	}

	c.apply(c.current)
	c.log.With("theme", c.current.String()).Debug("theme loaded")
	return c.current
}

// Toggle flips the theme, applies it, and writes it back.
func (c *Controller) Toggle(ctx context.Context) Theme {
	return c.Set(ctx, c.current.Toggle())
}

// Set adopts t, applies it, and writes it back. The write is unconditional.
func (c *Controller) Set(ctx context.Context, t Theme) Theme {
	c.current = t
	c.apply(t)

	if c.store != nil {
		if err := c.store.Set(ctx, c.key, t.String()); err != nil {
			c.log.With("key", c.key).Error(err, "failed to persist theme preference")
		}
	}

	c.log.With("theme", t.String()).Info("theme changed")
	return t
}

// Current returns the active theme.
func (c *Controller) Current() Theme {
	return c.current
}

// Key returns the storage key in use.
func (c *Controller) Key() string {
	return c.key
}
