package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTheme_IsValid tests all valid and invalid themes
func TestTheme_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		theme    Theme
		expected bool
	}{
		{name: "default is valid", theme: ThemeDefault, expected: true},
		{name: "mdn is valid", theme: ThemeMDN, expected: true},
		{name: "system is valid", theme: ThemeSystem, expected: true},
		{name: "empty string is invalid", theme: Theme(""), expected: false},
		{name: "dark is not a stored theme", theme: Theme("dark"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.theme.IsValid())
		})
	}
}

func TestTheme_Display(t *testing.T) {
	tests := []struct {
		theme    Theme
		expected DisplayTheme
	}{
		{theme: ThemeMDN, expected: DisplayLight},
		{theme: ThemeSystem, expected: DisplaySystem},
		{theme: ThemeDefault, expected: DisplayDark},
		{theme: Theme("solarized"), expected: DisplayDark},
		{theme: Theme(""), expected: DisplayDark},
	}

	for _, tt := range tests {
		t.Run(string(tt.theme), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.theme.Display())
		})
	}
}

func TestTheme_Description(t *testing.T) {
	assert.Equal(t, "Default (dark)", ThemeDefault.Description())
	assert.Equal(t, "MDN (light)", ThemeMDN.Description())
	assert.Equal(t, "System", ThemeSystem.Description())
	assert.Equal(t, "Unknown", Theme("other").Description())
}

func TestAllThemes_AreValid(t *testing.T) {
	for _, theme := range AllThemes() {
		assert.True(t, theme.IsValid(), "theme %s should be valid", theme)
	}
}

func TestDefaultViewerOptions(t *testing.T) {
	opts := DefaultViewerOptions()

	assert.Equal(t, ThemeDefault, opts.Theme)
	assert.Empty(t, opts.CSS)
	assert.Equal(t, 0, opts.Collapsed)
	assert.NotNil(t, opts.FilteredURLs)
	assert.Empty(t, opts.FilteredURLs)
	assert.Equal(t, DetectByContentType, opts.JSONDetection.Method)
	assert.Equal(t, []string{
		"application/json",
		"text/json",
		"application/javascript",
	}, opts.JSONDetection.ContentTypes)
}

func TestViewerOptions_IsJSONContentType(t *testing.T) {
	opts := DefaultViewerOptions()

	tests := []struct {
		contentType string
		expected    bool
	}{
		{contentType: "application/json", expected: true},
		{contentType: "application/json; charset=utf-8", expected: true},
		{contentType: "Text/JSON", expected: true},
		{contentType: "application/javascript", expected: true},
		{contentType: "text/html", expected: false},
		{contentType: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.expected, opts.IsJSONContentType(tt.contentType))
		})
	}
}

func TestViewerOptions_IsFilteredURL(t *testing.T) {
	opts := DefaultViewerOptions()
	opts.FilteredURLs = []string{"internal.example.com", "  ", ""}

	assert.True(t, opts.IsFilteredURL("https://internal.example.com/api"))
	assert.False(t, opts.IsFilteredURL("https://example.com/api"))

	opts.FilteredURLs = nil
	assert.False(t, opts.IsFilteredURL("https://internal.example.com/api"))
}

func TestParseEditorKind(t *testing.T) {
	kind, err := ParseEditorKind("JSON")
	require.NoError(t, err)
	assert.Equal(t, EditorJSON, kind)

	kind, err = ParseEditorKind(" markdown ")
	require.NoError(t, err)
	assert.Equal(t, EditorMarkdown, kind)

	_, err = ParseEditorKind("yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestEditorKind_Title(t *testing.T) {
	assert.Equal(t, "JSON Editor", EditorJSON.Title())
	assert.Equal(t, "Markdown Editor", EditorMarkdown.Title())
	assert.Equal(t, "Unknown", EditorKind("x").Title())
}

func TestDefaultUIState(t *testing.T) {
	state := DefaultUIState()
	assert.Equal(t, EditorJSON, state.ActiveTab)
	assert.InDelta(t, 0.5, state.SplitRatio, 0.0001)
}

func TestClampSplitRatio(t *testing.T) {
	assert.InDelta(t, MinSplitRatio, ClampSplitRatio(0), 0.0001)
	assert.InDelta(t, MaxSplitRatio, ClampSplitRatio(1), 0.0001)
	assert.InDelta(t, 0.35, ClampSplitRatio(0.35), 0.0001)
}
