package driving

import "github.com/custodia-labs/vibepad/internal/core/domain"

// SettingsService manages viewer options and editor UI state.
type SettingsService interface {
	// Get returns the current viewer options merged over the defaults.
	// Unreadable stored options yield the defaults.
	Get() domain.ViewerOptions

	// Save persists viewer options.
	Save(opts domain.ViewerOptions) error

	// SetTheme updates the theme.
	SetTheme(theme domain.Theme) error

	// SetCollapsed updates the tree collapse depth.
	SetCollapsed(depth int) error

	// Reset removes stored options so defaults apply.
	Reset() error

	// Repair removes a corrupted options blob.
	// Returns true if something was removed.
	Repair() (bool, error)

	// GetDefaults returns the default viewer options.
	GetDefaults() domain.ViewerOptions

	// UIState returns the persisted editor UI state.
	UIState() domain.UIState

	// SaveUIState persists the editor UI state.
	SaveUIState(state domain.UIState) error
}
