package models

import "strings"

// Theme is the light/dark flag of the landing screen.
// The zero value is light, which is also the state of every fresh load.
type Theme bool

const (
	ThemeLight Theme = false
	ThemeDark  Theme = true
)

// ParseTheme reads a theme carried in a query or form value.
// Anything that is not recognizably dark falls back to light.
func ParseTheme(s string) Theme {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark", "1", "true", "on":
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	return !t
}

// IsDark reports whether the dark variant is active
func (t Theme) IsDark() bool {
	return bool(t)
}

func (t Theme) String() string {
	if t {
		return "dark"
	}
	return "light"
}

// Pick selects the style variant for the current theme.
// Every themed element goes through here so one flag drives the whole screen.
func (t Theme) Pick(light, dark string) string {
	if t {
		return dark
	}
	return light
}
