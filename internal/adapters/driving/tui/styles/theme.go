// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/vibepad/internal/core/domain"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Name is the display theme this palette belongs to.
	Name domain.DisplayTheme

	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Background is the background colour.
	Background lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// Bar is the status and tab bar background.
	Bar lipgloss.Color
}

// DarkTheme returns the dark colour theme.
func DarkTheme() *Theme {
	return &Theme{
		Name:       domain.DisplayDark,
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Background: lipgloss.Color("#1E1E2E"), // Dark gray
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Warning:    lipgloss.Color("#F9E2AF"), // Yellow
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
		Bar:        lipgloss.Color("#181825"),
	}
}

// LightTheme returns the light colour theme.
func LightTheme() *Theme {
	return &Theme{
		Name:       domain.DisplayLight,
		Primary:    lipgloss.Color("#0069C2"), // Blue
		Secondary:  lipgloss.Color("#8839EF"), // Violet
		Background: lipgloss.Color("#FFFFFF"),
		Foreground: lipgloss.Color("#1B1B1B"),
		Muted:      lipgloss.Color("#696969"),
		Success:    lipgloss.Color("#007936"),
		Warning:    lipgloss.Color("#8F5E00"),
		Error:      lipgloss.Color("#D30038"),
		Border:     lipgloss.Color("#CDCDCD"),
		Bar:        lipgloss.Color("#F2F1F1"),
	}
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return DarkTheme()
}

// ThemeFor returns the palette for a display theme.
// System follows the terminal background.
func ThemeFor(display domain.DisplayTheme) *Theme {
	switch display {
	case domain.DisplayLight:
		return LightTheme()
	case domain.DisplaySystem:
		if lipgloss.HasDarkBackground() {
			return DarkTheme()
		}
		return LightTheme()
	default:
		return DarkTheme()
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// Tab style for inactive tabs.
	Tab lipgloss.Style

	// ActiveTab style for the selected tab.
	ActiveTab lipgloss.Style

	// TabBar style for the row of tabs.
	TabBar lipgloss.Style

	// Panel style for the unfocused panel.
	Panel lipgloss.Style

	// FocusedPanel style for the panel receiving input.
	FocusedPanel lipgloss.Style

	// PanelTitle style for panel headings.
	PanelTitle lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Tab: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary).
			Padding(0, 2),

		TabBar: lipgloss.NewStyle().
			Background(theme.Bar),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		FocusedPanel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary),

		PanelTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Bar).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
