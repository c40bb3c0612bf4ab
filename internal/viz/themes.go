package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the TUI. Positive and Negative
// color the two phases of the wavefunction.
type Theme struct {
	Name     string
	Positive lipgloss.Color
	Negative lipgloss.Color
	Accent   lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Warning  lipgloss.Color
}

var (
	ThemeSpectral = Theme{
		Name:     "spectral",
		Positive: lipgloss.Color("#ff5f5f"), // Red lobe
		Negative: lipgloss.Color("#5f87ff"), // Blue lobe
		Accent:   lipgloss.Color("#00ffff"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#666688"),
		Warning:  lipgloss.Color("#ffaa00"),
	}

	ThemeRetroGreen = Theme{
		Name:     "retro",
		Positive: lipgloss.Color("#00ff00"),
		Negative: lipgloss.Color("#005500"),
		Accent:   lipgloss.Color("#88ff88"),
		Text:     lipgloss.Color("#00ff00"),
		Muted:    lipgloss.Color("#005500"),
		Warning:  lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:     "minimal",
		Positive: lipgloss.Color("#ffffff"),
		Negative: lipgloss.Color("#888888"),
		Accent:   lipgloss.Color("#0088ff"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#888888"),
		Warning:  lipgloss.Color("#ffaa00"),
	}

	ThemeSunset = Theme{
		Name:     "sunset",
		Positive: lipgloss.Color("#feca57"),
		Negative: lipgloss.Color("#ff6b6b"),
		Accent:   lipgloss.Color("#ff9ff3"),
		Text:     lipgloss.Color("#fff5f5"),
		Muted:    lipgloss.Color("#8b6b8c"),
		Warning:  lipgloss.Color("#ffc048"),
	}

	CurrentTheme = ThemeSpectral

	Themes = []Theme{
		ThemeSpectral,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeSpectral
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// PositiveStyle and NegativeStyle return the lobe styles for the
// current theme.
func PositiveStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Positive)
}

func NegativeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Negative)
}
