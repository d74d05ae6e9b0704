package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates a required port was not configured.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates an unknown editor kind, theme or parser.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrFormatterUnavailable indicates no Markdown formatter is configured.
	// Formatting degrades to the synchronous cleanup pass.
	ErrFormatterUnavailable = errors.New("formatter unavailable")

	// ErrRendererUnavailable indicates no Markdown renderer is configured.
	ErrRendererUnavailable = errors.New("renderer unavailable")

	// Credential Errors.

	// ErrAPIKeyRequired indicates an empty API key was submitted.
	ErrAPIKeyRequired = errors.New("please enter an API key")

	// ErrAPIKeyFormat indicates the API key does not look like an Anthropic key.
	ErrAPIKeyFormat = errors.New("invalid API key format")

	// JSON Viewer Errors.

	// ErrFilteredURL indicates the URL matches a filtered URL pattern.
	ErrFilteredURL = errors.New("URL is filtered")

	// ErrNotJSONContent indicates a response is not served with a JSON content type.
	ErrNotJSONContent = errors.New("not JSON content")
)
