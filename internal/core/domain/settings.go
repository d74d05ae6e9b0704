package domain

import (
	"fmt"
	"strings"
)

const unknownDescription = "Unknown"

// Theme is the stored viewer theme option.
type Theme string

// Available themes. The names match the values the options page stores.
const (
	// ThemeDefault is the dark default theme.
	ThemeDefault Theme = "default"

	// ThemeMDN is the light theme.
	ThemeMDN Theme = "mdn"

	// ThemeSystem follows the terminal background.
	ThemeSystem Theme = "system"
)

// DisplayTheme is the resolved theme applied to the UI.
type DisplayTheme string

// Display themes.
const (
	DisplayDark   DisplayTheme = "dark"
	DisplayLight  DisplayTheme = "light"
	DisplaySystem DisplayTheme = "system"
)

// AllThemes returns all selectable themes.
func AllThemes() []Theme {
	return []Theme{ThemeDefault, ThemeMDN, ThemeSystem}
}

// IsValid returns true if the theme is recognised.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeDefault, ThemeMDN, ThemeSystem:
		return true
	default:
		return false
	}
}

// Display maps the stored theme to the theme applied on screen.
// Unknown values fall back to dark.
func (t Theme) Display() DisplayTheme {
	switch t {
	case ThemeMDN:
		return DisplayLight
	case ThemeSystem:
		return DisplaySystem
	default:
		return DisplayDark
	}
}

// String returns the string representation.
func (t Theme) String() string {
	return string(t)
}

// Description returns a human-readable description of the theme.
func (t Theme) Description() string {
	switch t {
	case ThemeDefault:
		return "Default (dark)"
	case ThemeMDN:
		return "MDN (light)"
	case ThemeSystem:
		return "System"
	default:
		return unknownDescription
	}
}

// DetectionMethod controls how a response is recognised as JSON.
type DetectionMethod string

// Detection methods.
const (
	// DetectByContentType matches the response Content-Type against a list.
	DetectByContentType DetectionMethod = "contentType"

	// DetectByContent sniffs the body for a JSON object or array.
	DetectByContent DetectionMethod = "content"
)

// JSONDetection holds the JSON detection settings of the viewer.
type JSONDetection struct {
	// Method is the detection method.
	Method DetectionMethod `json:"method"`

	// ContentTypes lists accepted content types for DetectByContentType.
	ContentTypes []string `json:"selectedContentTypes"`
}

// ViewerOptions holds the JSON viewer preferences.
// JSON field names match the options blob written by earlier releases.
type ViewerOptions struct {
	// Theme is the colour theme.
	Theme Theme `json:"theme"`

	// CSS is user supplied CSS for the HTML preview.
	CSS string `json:"css"`

	// Collapsed is the depth at which the tree starts collapsed. 0 expands everything.
	Collapsed int `json:"collapsed"`

	// FilteredURLs lists URL substrings the viewer must ignore.
	FilteredURLs []string `json:"filteredURL"`

	// JSONDetection configures how JSON responses are recognised.
	JSONDetection JSONDetection `json:"jsonDetection"`
}

// ValidOptionKeys lists the keys kept when sanitising a stored options blob.
func ValidOptionKeys() []string {
	return []string{"theme", "css", "collapsed", "filteredURL", "jsonDetection"}
}

// DefaultViewerOptions returns the default viewer options.
func DefaultViewerOptions() ViewerOptions {
	return ViewerOptions{
		Theme:        ThemeDefault,
		CSS:          "",
		Collapsed:    0,
		FilteredURLs: []string{},
		JSONDetection: JSONDetection{
			Method: DetectByContentType,
			ContentTypes: []string{
				"application/json",
				"text/json",
				"application/javascript",
			},
		},
	}
}

// IsJSONContentType reports whether a Content-Type header is accepted.
// Parameters such as charset are ignored.
func (o ViewerOptions) IsJSONContentType(contentType string) bool {
	mediaType := strings.TrimSpace(strings.ToLower(strings.SplitN(contentType, ";", 2)[0]))
	if mediaType == "" {
		return false
	}
	for _, ct := range o.JSONDetection.ContentTypes {
		if strings.EqualFold(strings.TrimSpace(ct), mediaType) {
			return true
		}
	}
	return false
}

// IsFilteredURL reports whether the URL contains any filtered URL pattern.
func (o ViewerOptions) IsFilteredURL(url string) bool {
	for _, f := range o.FilteredURLs {
		f = strings.TrimSpace(f)
		if f != "" && strings.Contains(url, f) {
			return true
		}
	}
	return false
}

// EditorKind identifies one of the two editors, and the tab that shows it.
type EditorKind string

// Editor kinds.
const (
	EditorJSON     EditorKind = "json"
	EditorMarkdown EditorKind = "markdown"
)

// AllEditorKinds returns the editor kinds in tab order.
func AllEditorKinds() []EditorKind {
	return []EditorKind{EditorJSON, EditorMarkdown}
}

// IsValid returns true if the editor kind is recognised.
func (k EditorKind) IsValid() bool {
	return k == EditorJSON || k == EditorMarkdown
}

// String returns the string representation.
func (k EditorKind) String() string {
	return string(k)
}

// Title returns the tab title.
func (k EditorKind) Title() string {
	switch k {
	case EditorJSON:
		return "JSON Editor"
	case EditorMarkdown:
		return "Markdown Editor"
	default:
		return unknownDescription
	}
}

// ParseEditorKind parses an editor kind.
func ParseEditorKind(s string) (EditorKind, error) {
	k := EditorKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", fmt.Errorf("%w: editor %q", ErrUnsupportedType, s)
	}
	return k, nil
}

// Split ratio bounds for the dual editor panels.
const (
	MinSplitRatio     = 0.2
	MaxSplitRatio     = 0.8
	DefaultSplitRatio = 0.5
)

// UIState is the persisted state of the dual editor.
type UIState struct {
	// ActiveTab is the editor shown on start.
	ActiveTab EditorKind

	// SplitRatio is the share of the width given to the input panel.
	SplitRatio float64
}

// DefaultUIState returns the initial UI state.
func DefaultUIState() UIState {
	return UIState{
		ActiveTab:  EditorJSON,
		SplitRatio: DefaultSplitRatio,
	}
}

// ClampSplitRatio bounds a split ratio to the allowed range.
func ClampSplitRatio(r float64) float64 {
	if r < MinSplitRatio {
		return MinSplitRatio
	}
	if r > MaxSplitRatio {
		return MaxSplitRatio
	}
	return r
}
