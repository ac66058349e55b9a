// Package theme defines color themes for the goalsheet TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme maps semantic roles to colors.
type Theme struct {
	Name         string
	Background   lipgloss.Color
	Surface      lipgloss.Color // cards and panels
	Selected     lipgloss.Color // focused row background
	Border       lipgloss.Color
	BorderFocus  lipgloss.Color
	TextDim      lipgloss.Color // hints, disabled
	TextMuted    lipgloss.Color // labels
	TextPrimary  lipgloss.Color
	Accent       lipgloss.Color
	Positive     lipgloss.Color // surplus, goal reached
	Negative     lipgloss.Color // deficit, unreachable
	Warning      lipgloss.Color // notices, unparsed amounts
	ProgressFrom lipgloss.Color
	ProgressTo   lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	Selected:     lipgloss.Color("#282726"),
	Border:       lipgloss.Color("#403E3C"),
	BorderFocus:  lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	Positive:     lipgloss.Color("#879A39"),
	Negative:     lipgloss.Color("#D14D41"),
	Warning:      lipgloss.Color("#D0A215"),
	ProgressFrom: lipgloss.Color("#24837B"),
	ProgressTo:   lipgloss.Color("#A3B859"),
}

// CatppuccinMocha is a soft pastel theme.
var CatppuccinMocha = Theme{
	Name:         "catppuccin-mocha",
	Background:   lipgloss.Color("#1E1E2E"),
	Surface:      lipgloss.Color("#313244"),
	Selected:     lipgloss.Color("#45475A"),
	Border:       lipgloss.Color("#585B70"),
	BorderFocus:  lipgloss.Color("#89B4FA"),
	TextDim:      lipgloss.Color("#6C7086"),
	TextMuted:    lipgloss.Color("#A6ADC8"),
	TextPrimary:  lipgloss.Color("#CDD6F4"),
	Accent:       lipgloss.Color("#89B4FA"),
	Positive:     lipgloss.Color("#A6E3A1"),
	Negative:     lipgloss.Color("#F38BA8"),
	Warning:      lipgloss.Color("#F9E2AF"),
	ProgressFrom: lipgloss.Color("#89B4FA"),
	ProgressTo:   lipgloss.Color("#A6E3A1"),
}

// TokyoNight is a cool blue theme.
var TokyoNight = Theme{
	Name:         "tokyo-night",
	Background:   lipgloss.Color("#1A1B26"),
	Surface:      lipgloss.Color("#24283B"),
	Selected:     lipgloss.Color("#343A52"),
	Border:       lipgloss.Color("#565F89"),
	BorderFocus:  lipgloss.Color("#7AA2F7"),
	TextDim:      lipgloss.Color("#565F89"),
	TextMuted:    lipgloss.Color("#A9B1D6"),
	TextPrimary:  lipgloss.Color("#C0CAF5"),
	Accent:       lipgloss.Color("#7AA2F7"),
	Positive:     lipgloss.Color("#9ECE6A"),
	Negative:     lipgloss.Color("#F7768E"),
	Warning:      lipgloss.Color("#E0AF68"),
	ProgressFrom: lipgloss.Color("#7AA2F7"),
	ProgressTo:   lipgloss.Color("#9ECE6A"),
}

// Terminal uses the 16 ANSI colors so it follows the terminal palette.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	Selected:     lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderFocus:  lipgloss.Color("6"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	Positive:     lipgloss.Color("2"),
	Negative:     lipgloss.Color("1"),
	Warning:      lipgloss.Color("3"),
	ProgressFrom: lipgloss.Color("6"),
	ProgressTo:   lipgloss.Color("2"),
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// Names returns the name of every theme in All.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// Exists reports whether name is a known theme.
func Exists(name string) bool {
	for _, t := range All {
		if t.Name == name {
			return true
		}
	}
	return false
}

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
