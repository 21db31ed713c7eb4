// Package theme defines color themes for the trucost TUI dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // Main app background
	Surface      lipgloss.Color // Card/panel backgrounds
	SurfaceHover lipgloss.Color // Highlighted surface (selected row)
	Border       lipgloss.Color // Subtle borders
	BorderAccent lipgloss.Color // Accent-colored borders for focus states
	TextDim      lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted    lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary  lipgloss.Color // Primary content text
	Accent       lipgloss.Color // Primary accent (active tab, highlights)
	Green        lipgloss.Color
	Orange       lipgloss.Color
	Red          lipgloss.Color
}

// Active is the currently selected theme.
var Active = TruCostDark

// TruCostDark is the default theme, built around the brand palette.
var TruCostDark = Theme{
	Name:         "trucost-dark",
	Background:   lipgloss.Color("#101318"),
	Surface:      lipgloss.Color("#1A1E26"),
	SurfaceHover: lipgloss.Color("#262C38"),
	Border:       lipgloss.Color("#3A4150"),
	BorderAccent: lipgloss.Color("#5D8DFE"),
	TextDim:      lipgloss.Color("#555C6B"),
	TextMuted:    lipgloss.Color("#8890A0"),
	TextPrimary:  lipgloss.Color("#F2F4F8"),
	Accent:       lipgloss.Color("#5D8DFE"),
	Green:        lipgloss.Color("#7CF08D"),
	Orange:       lipgloss.Color("#FDB813"),
	Red:          lipgloss.Color("#E5484D"),
}

// Terminal uses ANSI 16 colors only, for maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("4"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("4"),
	Green:        lipgloss.Color("2"),
	Orange:       lipgloss.Color("3"),
	Red:          lipgloss.Color("1"),
}

// All available themes.
var All = []Theme{TruCostDark, Terminal}

// ByName returns a theme by its name, defaulting to TruCostDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return TruCostDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
