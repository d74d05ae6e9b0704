// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/vibepad/internal/core/domain"
)

// ContentLoaded carries the stored content of an editor.
type ContentLoaded struct {
	Kind    domain.EditorKind
	Content string
	Err     error
}

// ContentSaved signals editor content was persisted. Kind is empty when
// every editor was saved.
type ContentSaved struct {
	Kind domain.EditorKind
	Err  error
}

// FormatCompleted carries the result of an asynchronous Markdown format.
// Generation is the editor generation the request was made for; a result
// for an older generation is discarded. Announce is set when the user asked
// for the format and expects a toast.
type FormatCompleted struct {
	Kind       domain.EditorKind
	Generation uint64
	Result     domain.FormatResult
	Announce   bool
}

// ClipboardRead carries the clipboard text for a paste.
type ClipboardRead struct {
	Kind domain.EditorKind
	Text string
	Err  error
}

// TabChanged is sent when the active editor changes.
type TabChanged struct {
	Kind domain.EditorKind
}

// UIStateSaved signals the editor layout was persisted.
type UIStateSaved struct {
	Err error
}

// SettingsLoaded carries the viewer options and the masked API key for
// the settings view.
type SettingsLoaded struct {
	Options domain.ViewerOptions
	// MaskedKey is the stored API key with its middle hidden, or "".
	MaskedKey string
	Err       error
}

// ThemeChanged signals a theme was stored. On success the app restyles.
type ThemeChanged struct {
	Theme domain.Theme
	Err   error
}

// APIKeySaved signals the result of storing the API key.
type APIKeySaved struct {
	MaskedKey string
	Err       error
}

// APIKeyCleared signals the result of removing the API key.
type APIKeyCleared struct {
	Err error
}

// SettingsClosed asks the app to return to the editors.
type SettingsClosed struct{}

// ToastLevel is the severity of a toast.
type ToastLevel int

const (
	// ToastInfo is a neutral notice.
	ToastInfo ToastLevel = iota
	// ToastSuccess reports a completed action.
	ToastSuccess
	// ToastError reports a failure.
	ToastError
)

// String returns the string representation of the level.
func (l ToastLevel) String() string {
	switch l {
	case ToastInfo:
		return "info"
	case ToastSuccess:
		return "success"
	case ToastError:
		return "error"
	default:
		return "unknown"
	}
}

// ShowToast asks the app to show a transient status message.
type ShowToast struct {
	Text  string
	Level ToastLevel
}

// ToastExpired clears the toast with the given ID if it is still shown.
type ToastExpired struct {
	ID int
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
