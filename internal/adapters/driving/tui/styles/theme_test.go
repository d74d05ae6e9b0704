package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vibepad/internal/core/domain"
)

func TestThemes_AllColoursSet(t *testing.T) {
	for _, theme := range []*Theme{DarkTheme(), LightTheme()} {
		t.Run(string(theme.Name), func(t *testing.T) {
			for _, c := range []lipgloss.Color{
				theme.Primary, theme.Secondary, theme.Background, theme.Foreground,
				theme.Muted, theme.Success, theme.Warning, theme.Error, theme.Border, theme.Bar,
			} {
				assert.NotEmpty(t, string(c))
			}
		})
	}
}

func TestThemes_AccentsAreDistinct(t *testing.T) {
	for _, theme := range []*Theme{DarkTheme(), LightTheme()} {
		seen := make(map[lipgloss.Color]bool)
		for _, c := range []lipgloss.Color{theme.Primary, theme.Secondary, theme.Success, theme.Warning, theme.Error} {
			assert.False(t, seen[c], "duplicate colour %s in %s", c, theme.Name)
			seen[c] = true
		}
	}
}

func TestDefaultTheme_IsDark(t *testing.T) {
	assert.Equal(t, domain.DisplayDark, DefaultTheme().Name)
}

func TestThemeFor(t *testing.T) {
	assert.Equal(t, domain.DisplayDark, ThemeFor(domain.DisplayDark).Name)
	assert.Equal(t, domain.DisplayLight, ThemeFor(domain.DisplayLight).Name)
	assert.Equal(t, domain.DisplayDark, ThemeFor("unknown").Name)

	system := ThemeFor(domain.DisplaySystem).Name
	assert.Contains(t, []domain.DisplayTheme{domain.DisplayDark, domain.DisplayLight}, system)
}

func TestNewStyles_WithTheme(t *testing.T) {
	theme := LightTheme()
	styles := NewStyles(theme)

	require.NotNil(t, styles)
	assert.Equal(t, theme, styles.Theme())
}

func TestNewStyles_NilTheme(t *testing.T) {
	styles := NewStyles(nil)

	require.NotNil(t, styles)
	assert.Equal(t, domain.DisplayDark, styles.Theme().Name)
}

func TestStyles_AllStylesInitialised(t *testing.T) {
	styles := DefaultStyles()

	for name, style := range map[string]lipgloss.Style{
		"Title":        styles.Title,
		"Normal":       styles.Normal,
		"Muted":        styles.Muted,
		"Error":        styles.Error,
		"Selected":     styles.Selected,
		"Success":      styles.Success,
		"Tab":          styles.Tab,
		"ActiveTab":    styles.ActiveTab,
		"TabBar":       styles.TabBar,
		"Panel":        styles.Panel,
		"FocusedPanel": styles.FocusedPanel,
		"PanelTitle":   styles.PanelTitle,
		"StatusBar":    styles.StatusBar,
		"Help":         styles.Help,
	} {
		assert.NotEqual(t, lipgloss.Style{}, style, name)
		assert.NotEmpty(t, style.Render("test text"), name)
	}
}
