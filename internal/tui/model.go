package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/stopwatch/internal/logger"
	"github.com/alexisbeaulieu97/stopwatch/internal/stopwatch"
	"github.com/alexisbeaulieu97/stopwatch/internal/theme"
)

// DefaultResetNotice is how long "Stopwatch reset!" stays on screen.
const DefaultResetNotice = 1200 * time.Millisecond

// TickMsg fires once per tick interval while the stopwatch runs.
type TickMsg struct {
	Handle stopwatch.Handle
}

// NoticeExpiredMsg lowers the reset notice scheduled by a reset.
type NoticeExpiredMsg struct {
	Handle stopwatch.Handle
}

// control is one of the on-screen buttons.
type control int

const (
	controlStart control = iota
	controlStop
	controlReset
	controlLap
	controlTheme
	controlCount
)

// Options configures a Model.
type Options struct {
	Stopwatch   stopwatch.Options
	ResetNotice time.Duration
	Theme       *theme.Controller
	Logger      *logger.Logger
}

// Model is the Bubble Tea model for the stopwatch screen.
type Model struct {
	watch       *stopwatch.Stopwatch
	theme       *theme.Controller
	log         *logger.Logger
	resetNotice time.Duration

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	focus   control

	width    int
	height   int
	quitting bool
}

// NewModel constructs the stopwatch model. A nil theme controller gets an
// in-memory one that applies nothing.
func NewModel(opts Options) Model {
	if opts.ResetNotice < 0 {
		opts.ResetNotice = 0
	}
	if opts.ResetNotice == 0 {
		opts.ResetNotice = DefaultResetNotice
	}
	if opts.Theme == nil {
		opts.Theme = theme.NewController(nil, theme.WithApply(func(theme.Theme) {}))
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = liveStyle

	h := help.New()
	h.ShortSeparator = "  "
	h.Styles = surfaceHelpStyles(h.Styles)

	return Model{
		watch:       stopwatch.New(opts.Stopwatch),
		theme:       opts.Theme,
		log:         opts.Logger,
		resetNotice: opts.ResetNotice,
		keys:        newKeyMap(),
		help:        h,
		spinner:     s,
		focus:       controlStart,
	}
}

// Init starts the Bubble Tea program. Nothing ticks until the user starts the stopwatch.
func (m Model) Init() tea.Cmd {
	return nil
}

// Stopwatch exposes the timing engine, mainly for tests and the CLI summary.
func (m Model) Stopwatch() *stopwatch.Stopwatch {
	return m.watch
}

// Theme returns the active theme.
func (m Model) Theme() theme.Theme {
	return m.theme.Current()
}

// Focused returns the index of the focused button.
func (m Model) Focused() int {
	return int(m.focus)
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) disabled(c control) bool {
	return c == controlStart && m.watch.Running()
}

func (m *Model) moveFocus(delta int) {
	next := (int(m.focus) + delta + int(controlCount)) % int(controlCount)
	m.focus = control(next)
}

func (m *Model) syncKeys() {
	m.keys.Start.SetEnabled(!m.watch.Running())
}
