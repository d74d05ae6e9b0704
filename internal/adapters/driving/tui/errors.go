package tui

import "errors"

// ErrMissingMarkdownService is returned when the Markdown service is not provided.
var ErrMissingMarkdownService = errors.New("tui: markdown service is required")

// ErrMissingJSONService is returned when the JSON service is not provided.
var ErrMissingJSONService = errors.New("tui: json service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
