package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/stopwatch/internal/stopwatch"
)

// tickCmd schedules the next tick for handle h.
func tickCmd(h stopwatch.Handle, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		return TickMsg{Handle: h}
	})
}

// noticeCmd schedules the reset notice to clear after d.
func noticeCmd(h stopwatch.Handle, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return NoticeExpiredMsg{Handle: h}
	})
}
