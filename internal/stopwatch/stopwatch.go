// Package stopwatch implements the timing engine: fixed-step elapsed time
// accumulation, a capped lap list, and the transient reset notice.
//
// The engine never schedules anything itself. Start and Reset hand out a
// Handle; the caller arranges for Tick or ClearNotice to be invoked later with
// that handle. Any call carrying a handle that has since been superseded is
// ignored, which is how stop and reset cancel pending callbacks.
package stopwatch

import (
	"time"
)

const (
	// DefaultStep is added to the elapsed time on every accepted tick.
	DefaultStep = 10 * time.Millisecond
	// DefaultLapLimit caps the lap list.
	DefaultLapLimit = 100
)

// Handle identifies one scheduled callback.
type Handle uint64

// Notice selects the transient status message.
type Notice int

const (
	// NoticeNone shows nothing.
	NoticeNone Notice = iota
	// NoticeReset is raised by Reset until its notice handle is cleared.
	NoticeReset
	// NoticePaused shows while stopped with time on the clock.
	NoticePaused
)

// String returns the text displayed for the notice.
func (n Notice) String() string {
	switch n {
	case NoticeReset:
		return "Stopwatch reset!"
	case NoticePaused:
		return "Stopwatch paused"
	default:
		return ""
	}
}

// Options configures a Stopwatch. Zero values select the defaults.
type Options struct {
	Step     time.Duration
	LapLimit int
}

// Stopwatch holds elapsed time, the running flag, laps and the reset notice.
// It is not safe for concurrent use; the UI event loop serialises access.
type Stopwatch struct {
	step     time.Duration
	lapLimit int

	elapsed   time.Duration
	running   bool
	laps      []time.Duration
	justReset bool

	tick   Handle
	notice Handle
}

// New creates a stopped stopwatch at zero.
func New(opts Options) *Stopwatch {
	if opts.Step <= 0 {
		opts.Step = DefaultStep
	}
	if opts.LapLimit <= 0 {
		opts.LapLimit = DefaultLapLimit
	}
	return &Stopwatch{
		step:     opts.Step,
		lapLimit: opts.LapLimit,
	}
}

// Start begins ticking. It returns the handle the next tick must carry, or
// false when the stopwatch is already running.
func (s *Stopwatch) Start() (Handle, bool) {
	if s.running {
		return 0, false
	}
	s.running = true
	s.tick++
	return s.tick, true
}

// Stop halts ticking and invalidates any pending tick. It reports whether the
// stopwatch was running.
func (s *Stopwatch) Stop() bool {
	if !s.running {
		return false
	}
	s.running = false
	s.tick++
	return true
}

// Tick adds one step when h is the live tick handle.
func (s *Stopwatch) Tick(h Handle) bool {
	if !s.running || h != s.tick {
		return false
	}
	s.elapsed += s.step
	return true
}

// Reset zeroes the elapsed time, stops, clears the laps and raises the reset
// notice. The returned handle must be passed to ClearNotice to lower it.
func (s *Stopwatch) Reset() Handle {
	s.elapsed = 0
	s.running = false
	s.laps = nil
	s.tick++
	s.justReset = true
	s.notice++
	return s.notice
}

// ClearNotice lowers the reset notice if h belongs to the latest reset.
func (s *Stopwatch) ClearNotice(h Handle) bool {
	if h != s.notice || !s.justReset {
		return false
	}
	s.justReset = false
	return true
}

// Lap records the current elapsed time. It does nothing when stopped or full.
func (s *Stopwatch) Lap() bool {
	if !s.running || len(s.laps) >= s.lapLimit {
		return false
	}
	s.laps = append(s.laps, s.elapsed)
	return true
}

// Notice returns the message the UI should show.
func (s *Stopwatch) Notice() Notice {
	switch {
	case s.justReset:
		return NoticeReset
	case !s.running && s.elapsed > 0:
		return NoticePaused
	default:
		return NoticeNone
	}
}

// Elapsed returns the accumulated time.
func (s *Stopwatch) Elapsed() time.Duration { return s.elapsed }

// Running reports whether ticks are being accepted.
func (s *Stopwatch) Running() bool { return s.running }

// JustReset reports whether the reset notice is raised.
func (s *Stopwatch) JustReset() bool { return s.justReset }

// Step returns the amount added per accepted tick.
func (s *Stopwatch) Step() time.Duration { return s.step }

// LapLimit returns the maximum number of laps kept.
func (s *Stopwatch) LapLimit() int { return s.lapLimit }

// LapCount returns the number of recorded laps.
func (s *Stopwatch) LapCount() int { return len(s.laps) }

// Laps returns a copy of the recorded laps in chronological order.
func (s *Stopwatch) Laps() []time.Duration {
	out := make([]time.Duration, len(s.laps))
	copy(out, s.laps)
	return out
}
