// Package tui provides the dual editor terminal user interface.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/vibepad/internal/core/ports/driven"
	"github.com/custodia-labs/vibepad/internal/core/ports/driving"
)

// Resizer changes the wrap width of the terminal Markdown renderer.
type Resizer interface {
	Resize(width int) error
}

// Ports aggregates the services required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Markdown runs the Markdown editor operations.
	Markdown driving.MarkdownService

	// JSON runs the JSON editor operations.
	JSON driving.JSONService

	// Settings provides the theme, collapse depth and layout. Optional.
	Settings driving.SettingsService

	// Credentials stores the API key edited in the settings view. Optional.
	Credentials driving.CredentialsService

	// Workspace persists editor content. Optional.
	Workspace driving.WorkspaceService

	// Clipboard backs paste and copy. Optional.
	Clipboard driven.Clipboard

	// Resizer follows the Markdown preview width. Optional.
	Resizer Resizer
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(markdown driving.MarkdownService, json driving.JSONService) *Ports {
	return &Ports{
		Markdown: markdown,
		JSON:     json,
	}
}

// Validate ensures the required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Markdown == nil {
		return ErrMissingMarkdownService
	}
	if p.JSON == nil {
		return ErrMissingJSONService
	}
	return nil
}
