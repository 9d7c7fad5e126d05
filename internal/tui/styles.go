package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Colours adapt to the renderer's background flag, which the theme controller sets.
var (
	ac = func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	surfaceColor = ac("#f9fafb", "#111827")
	textColor    = ac("#111827", "#f9fafb")
	mutedColor   = ac("#6b7280", "#9ca3af")
	borderColor  = ac("#9ca3af", "#4b5563")
	startColor   = ac("#16a34a", "#22c55e")
	stopColor    = ac("#dc2626", "#ef4444")
	resetColor   = ac("#2563eb", "#3b82f6")
	lapColor     = ac("#ca8a04", "#eab308")
	noticeReset  = ac("#2563eb", "#60a5fa")
	noticePaused = ac("#a16207", "#fde047")

	// every style paints the surface so the chosen mode wins over the terminal's own background
	surface = lipgloss.NewStyle().Background(surfaceColor)

	frameStyle = surface.
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			BorderBackground(surfaceColor).
			Padding(1, 3)

	titleStyle = surface.
			Bold(true).
			Foreground(textColor).
			MarginBottom(1).
			MarginBackground(surfaceColor)

	readoutStyle = surface.
			Bold(true).
			Foreground(textColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(borderColor).
			BorderBackground(surfaceColor).
			Padding(0, 4)

	liveStyle = surface.
			Foreground(mutedColor)

	noticeResetStyle  = surface.Foreground(noticeReset)
	noticePausedStyle = surface.Foreground(noticePaused)

	buttonStyle = surface.
			Bold(true).
			Padding(0, 1).
			MarginRight(1).
			MarginBackground(surfaceColor)

	focusedButtonStyle = buttonStyle.
				Underline(true).
				Reverse(true)

	lapHeaderStyle = surface.
			Bold(true).
			Foreground(mutedColor).
			MarginTop(1).
			MarginBackground(surfaceColor)

	lapStyle = surface.
			Foreground(textColor)

	mutedStyle = surface.
			Foreground(mutedColor)
)

var buttonColors = [controlCount]lipgloss.AdaptiveColor{
	controlStart: startColor,
	controlStop:  stopColor,
	controlReset: resetColor,
	controlLap:   lapColor,
	controlTheme: mutedColor,
}

// surfaceHelpStyles paints the help footer on the same surface as the frame.
func surfaceHelpStyles(s help.Styles) help.Styles {
	s.ShortKey = s.ShortKey.Background(surfaceColor)
	s.ShortDesc = s.ShortDesc.Background(surfaceColor)
	s.ShortSeparator = s.ShortSeparator.Background(surfaceColor)
	s.Ellipsis = s.Ellipsis.Background(surfaceColor)
	s.FullKey = s.FullKey.Background(surfaceColor)
	s.FullDesc = s.FullDesc.Background(surfaceColor)
	s.FullSeparator = s.FullSeparator.Background(surfaceColor)
	return s
}
