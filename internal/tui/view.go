package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stopwatch/internal/stopwatch"
)

const (
	maxVisibleLaps = 8
	// rows used by everything except the lap list
	reservedRows = 18
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderReadout())
	if notice := m.renderNotice(); notice != "" {
		sections = append(sections, notice)
	}
	sections = append(sections, "", m.renderButtons())
	if laps := m.renderLaps(); laps != "" {
		sections = append(sections, laps)
	}
	sections = append(sections, "", m.help.View(m.keys))

	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHeader() string {
	return titleStyle.Render("⏱  Stopwatch")
}

func (m Model) renderReadout() string {
	readout := readoutStyle.Render(stopwatch.FormatTime(m.watch.Elapsed()))
	if !m.watch.Running() {
		return readout
	}
	live := liveStyle.Render(fmt.Sprintf(" %s Live", m.spinner.View()))
	return lipgloss.JoinHorizontal(lipgloss.Center, readout, live)
}

func (m Model) renderNotice() string {
	switch notice := m.watch.Notice(); notice {
	case stopwatch.NoticeReset:
		return noticeResetStyle.Render(notice.String())
	case stopwatch.NoticePaused:
		return noticePausedStyle.Render(notice.String())
	default:
		return ""
	}
}

func (m Model) buttonLabel(c control) string {
	switch c {
	case controlStart:
		return "▶ Start"
	case controlStop:
		return "■ Stop"
	case controlReset:
		return "↺ Reset"
	case controlLap:
		return "⚑ Lap"
	case controlTheme:
		return m.theme.Current().Label()
	default:
		return ""
	}
}

func (m Model) renderButtons() string {
	buttons := make([]string, 0, controlCount)
	for c := controlStart; c < controlCount; c++ {
		style := buttonStyle
		if c == m.focus {
			style = focusedButtonStyle
		}
		style = style.Foreground(buttonColors[c])
		if m.disabled(c) {
			style = style.Faint(true).Strikethrough(true)
		}
		buttons = append(buttons, style.Render(m.buttonLabel(c)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

// visibleLaps is how many lap rows fit the current terminal height.
func (m Model) visibleLaps() int {
	if m.height <= 0 {
		return maxVisibleLaps
	}
	rows := m.height - reservedRows
	if rows < 1 {
		rows = 1
	}
	if rows > maxVisibleLaps {
		rows = maxVisibleLaps
	}
	return rows
}

func (m Model) renderLaps() string {
	laps := m.watch.Laps()
	if len(laps) == 0 {
		return ""
	}

	start := len(laps) - m.visibleLaps()
	if start < 0 {
		start = 0
	}

	lines := []string{lapHeaderStyle.Render("Laps:")}
	if start > 0 {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("  … %d earlier", start)))
	}
	for i := start; i < len(laps); i++ {
		lines = append(lines, lapStyle.Render("🏁 "+stopwatch.FormatLap(i, laps[i])))
	}
	if len(laps) >= m.watch.LapLimit() {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("  lap limit of %d reached", m.watch.LapLimit())))
	}

	return strings.Join(lines, "\n")
}
