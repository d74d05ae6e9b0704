package mcp

import (
	"github.com/custodia-labs/vibepad/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Markdown cleans, formats and renders Markdown.
	Markdown driving.MarkdownService

	// JSON formats, minifies and renders JSON.
	JSON driving.JSONService

	// Settings exposes the viewer options. Optional.
	Settings driving.SettingsService

	// Workspace exposes the saved editor documents. Optional.
	Workspace driving.WorkspaceService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Markdown == nil {
		return ErrMissingMarkdownService
	}
	if p.JSON == nil {
		return ErrMissingJSONService
	}
	return nil
}
