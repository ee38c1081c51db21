package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/monster-codex/internal/entities"
)

// Palette is one colour scheme
type Palette struct {
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Highlight  lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color
	IsDark     bool
}

// Light is the parchment scheme
var Light = Palette{
	Foreground: lipgloss.Color("#292524"),
	Muted:      lipgloss.Color("#78716c"),
	Accent:     lipgloss.Color("#854d0e"),
	Highlight:  lipgloss.Color("#b45309"),
	Border:     lipgloss.Color("#a8a29e"),
	Error:      lipgloss.Color("#b91c1c"),
}

// Dark is the leather scheme
var Dark = Palette{
	Foreground: lipgloss.Color("#e7e5e4"),
	Muted:      lipgloss.Color("#a8a29e"),
	Accent:     lipgloss.Color("#ca8a04"),
	Highlight:  lipgloss.Color("#facc15"),
	Border:     lipgloss.Color("#57534e"),
	Error:      lipgloss.Color("#f87171"),
	IsDark:     true,
}

// ResolvePalette picks the palette for theme. System follows the terminal
// background.
func ResolvePalette(theme entities.Theme, darkBackground bool) Palette {
	switch theme {
	case entities.ThemeLight:
		return Light
	case entities.ThemeDark:
		return Dark
	}
	if darkBackground {
		return Dark
	}
	return Light
}

// Styles are the rendered styles for one palette
type Styles struct {
	Palette  Palette
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Row      lipgloss.Style
	Current  lipgloss.Style
	Error    lipgloss.Style
	Modal    lipgloss.Style
	Label    lipgloss.Style
	Stars    lipgloss.Style
}

// NewStyles builds Styles from a palette
func NewStyles(p Palette) Styles {
	return Styles{
		Palette:  p,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Subtitle: lipgloss.NewStyle().Italic(true).Foreground(p.Muted),
		Muted:    lipgloss.NewStyle().Foreground(p.Muted),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(p.Highlight),
		Row:      lipgloss.NewStyle().Foreground(p.Foreground),
		Current:  lipgloss.NewStyle().Bold(true).Reverse(true).Foreground(p.Accent).Padding(0, 1),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(p.Error),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(1, 2),
		Label: lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Stars: lipgloss.NewStyle().Foreground(p.Highlight),
	}
}
