// Package theme defines color themes for the kakei dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // main app background
	Surface      lipgloss.Color // card/panel backgrounds
	SurfaceHover lipgloss.Color // selected row
	Border       lipgloss.Color // subtle borders
	BorderAccent lipgloss.Color // accent-colored borders for focus
	TextDim      lipgloss.Color // lowest contrast text (hints)
	TextMuted    lipgloss.Color // secondary text (labels)
	TextPrimary  lipgloss.Color // primary content text
	Accent       lipgloss.Color // active states
	Green        lipgloss.Color
	Yellow       lipgloss.Color
	Orange       lipgloss.Color
	Red          lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	SurfaceHover: lipgloss.Color("#282726"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	Green:        lipgloss.Color("#879A39"),
	Yellow:       lipgloss.Color("#D0A215"),
	Orange:       lipgloss.Color("#DA702C"),
	Red:          lipgloss.Color("#D14D41"),
}

// Washi is a muted ink-on-paper light theme.
var Washi = Theme{
	Name:         "washi",
	Background:   lipgloss.Color("#F2EFE5"),
	Surface:      lipgloss.Color("#E8E4D5"),
	SurfaceHover: lipgloss.Color("#DAD5C2"),
	Border:       lipgloss.Color("#B7B3A3"),
	BorderAccent: lipgloss.Color("#C73E1D"),
	TextDim:      lipgloss.Color("#9F9B8D"),
	TextMuted:    lipgloss.Color("#6F6B5E"),
	TextPrimary:  lipgloss.Color("#2B2A26"),
	Accent:       lipgloss.Color("#C73E1D"),
	Green:        lipgloss.Color("#5E7B2F"),
	Yellow:       lipgloss.Color("#A87F17"),
	Orange:       lipgloss.Color("#BA5A1E"),
	Red:          lipgloss.Color("#C73E1D"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("6"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	Green:        lipgloss.Color("2"),
	Yellow:       lipgloss.Color("3"),
	Orange:       lipgloss.Color("3"),
	Red:          lipgloss.Color("1"),
}

// All available themes.
var All = []Theme{FlexokiDark, Washi, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
