package entities

import "strings"

// Theme is the colour scheme preference
type Theme string

// Themes
const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// Themes lists the accepted values
var Themes = []Theme{ThemeSystem, ThemeLight, ThemeDark}

// ParseTheme maps s to a Theme. Unknown values fall back to ThemeSystem.
func ParseTheme(s string) Theme {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight
	case ThemeDark:
		return ThemeDark
	default:
		return ThemeSystem
	}
}

// Valid reports whether t is one of the known themes
func (t Theme) Valid() bool {
	return t == ThemeSystem || t == ThemeLight || t == ThemeDark
}

// Next cycles system, light, dark for the theme toggle
func (t Theme) Next() Theme {
	switch t {
	case ThemeSystem:
		return ThemeLight
	case ThemeLight:
		return ThemeDark
	default:
		return ThemeSystem
	}
}
