package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name    string
	Base    lipgloss.Style
	Border  lipgloss.Color
	Banner  lipgloss.Style
	Message lipgloss.Style
	Timer   lipgloss.Style
	Expired lipgloss.Style
	Dim     lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:    "Default",
		Base:    lipgloss.NewStyle().Margin(1, 2),
		Border:  lipgloss.Color("63"),
		Banner:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Message: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Timer:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Expired: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	},
	"dracula": {
		Name:    "Dracula",
		Base:    lipgloss.NewStyle().Margin(1, 2),
		Border:  lipgloss.Color("62"),
		Banner:  lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Message: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Timer:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Expired: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

// SetTheme switches the active theme and reports whether name was known.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if ok {
		CurrentTheme = t
	}
	return ok
}
