// Package theme owns the light/dark preference: loading it at startup,
// flipping it on request, applying it to the renderer, and writing it back.
package theme

import (
	"fmt"
	"strings"
)

// Theme is the visual mode of the stopwatch.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Parse converts a stored or user-supplied value into a Theme.
func Parse(value string) (Theme, error) {
	switch Theme(strings.TrimSpace(value)) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	default:
		return "", fmt.Errorf("unknown theme %q: must be %q or %q", value, Dark, Light)
	}
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t == Dark
}

// String returns the stored form of the theme.
func (t Theme) String() string {
	return string(t)
}

// Label is the text shown on the control that switches away from t.
func (t Theme) Label() string {
	if t == Dark {
		return "🌞 Light"
	}
	return "🌙 Dark"
}
