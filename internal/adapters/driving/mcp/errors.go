// Package mcp provides an MCP (Model Context Protocol) server adapter for vibepad.
// It lets AI assistants clean, format and render Markdown and format and
// inspect JSON with the same services as the editor.
package mcp

import "errors"

// ErrMissingMarkdownService is returned when the Markdown service is not provided.
var ErrMissingMarkdownService = errors.New("mcp: markdown service is required")

// ErrMissingJSONService is returned when the JSON service is not provided.
var ErrMissingJSONService = errors.New("mcp: json service is required")
