package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/stopwatch/internal/stopwatch"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case TickMsg:
		if !m.watch.Tick(msg.Handle) {
			// stale tick from a stopped or reset run
			return m, nil
		}
		return m, tickCmd(msg.Handle, m.watch.Step())

	case NoticeExpiredMsg:
		m.watch.ClearNotice(msg.Handle)
		return m, nil

	case spinner.TickMsg:
		if !m.watch.Running() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.watch.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Start):
		return m.press(controlStart)

	case key.Matches(msg, m.keys.Stop):
		return m.press(controlStop)

	case key.Matches(msg, m.keys.Reset):
		return m.press(controlReset)

	case key.Matches(msg, m.keys.Lap):
		return m.press(controlLap)

	case key.Matches(msg, m.keys.Theme):
		return m.press(controlTheme)

	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Press):
		return m.press(m.focus)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// press performs the action behind a button. Shortcut keys and the focused
// button both end up here.
func (m Model) press(c control) (tea.Model, tea.Cmd) {
	if m.disabled(c) {
		return m, nil
	}

	var cmd tea.Cmd
	switch c {
	case controlStart:
		cmd = m.start()
	case controlStop:
		if m.watch.Stop() {
			m.log.With("elapsed", stopwatch.FormatTime(m.watch.Elapsed())).Debug("stopwatch stopped")
		}
	case controlReset:
		h := m.watch.Reset()
		m.log.Debug("stopwatch reset")
		cmd = noticeCmd(h, m.resetNotice)
	case controlLap:
		if m.watch.Lap() {
			m.log.With("lap", m.watch.LapCount()).Debug("lap recorded")
		}
	case controlTheme:
		m.theme.Toggle(context.Background())
	}

	m.syncKeys()
	return m, cmd
}

func (m Model) start() tea.Cmd {
	h, ok := m.watch.Start()
	if !ok {
		return nil
	}
	m.log.Debug("stopwatch started")
	return tea.Batch(tickCmd(h, m.watch.Step()), m.spinner.Tick)
}
