// Package tui provides the Bubble Tea live counting editor.
package tui

import "github.com/charmbracelet/lipgloss"

// Theme names accepted by Options.Theme.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

type palette struct {
	text   lipgloss.Color
	label  lipgloss.Color
	border lipgloss.Color
	accent lipgloss.Color
	warn   lipgloss.Color
	muted  lipgloss.Color
}

var palettes = map[string]palette{
	ThemeDark: {
		text:   lipgloss.Color("#F0F0F0"),
		label:  lipgloss.Color("#8C8C8C"),
		border: lipgloss.Color("#4A4A4A"),
		accent: lipgloss.Color("#C89A3A"),
		warn:   lipgloss.Color("#FF4D4F"),
		muted:  lipgloss.Color("#6E6E6E"),
	},
	ThemeLight: {
		text:   lipgloss.Color("#1F1F1F"),
		label:  lipgloss.Color("#5C5C5C"),
		border: lipgloss.Color("#D0D0D0"),
		accent: lipgloss.Color("#9A6B12"),
		warn:   lipgloss.Color("#C62828"),
		muted:  lipgloss.Color("#8C8C8C"),
	},
}

type styles struct {
	title     lipgloss.Style
	badge     lipgloss.Style
	editor    lipgloss.Style
	card      lipgloss.Style
	cardTitle lipgloss.Style
	cardValue lipgloss.Style
	hint      lipgloss.Style
	hintOver  lipgloss.Style
	footer    lipgloss.Style
}

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	_, ok := palettes[name]
	return ok
}

func newStyles(theme string) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[ThemeDark]
	}
	return styles{
		title: lipgloss.NewStyle().Foreground(p.text).Bold(true),
		badge: lipgloss.NewStyle().
			Foreground(p.accent).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(p.accent),
		editor: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(p.accent),
		card: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(p.border),
		cardTitle: lipgloss.NewStyle().Foreground(p.label),
		cardValue: lipgloss.NewStyle().Foreground(p.text).Bold(true),
		hint:      lipgloss.NewStyle().Foreground(p.muted),
		hintOver:  lipgloss.NewStyle().Foreground(p.warn).Bold(true),
		footer:    lipgloss.NewStyle().Foreground(p.muted),
	}
}

func nextTheme(theme string) string {
	if theme == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
