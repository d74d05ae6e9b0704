// Package clipboard adapts the system clipboard to the driven Clipboard port.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/custodia-labs/vibepad/internal/core/ports/driven"
)

// Ensure System implements the interface.
var _ driven.Clipboard = (*System)(nil)

// System reads and writes the OS clipboard.
// On Linux it needs xclip, xsel or wl-clipboard.
type System struct{}

// New creates a system clipboard adapter.
func New() *System {
	return &System{}
}

// Available reports whether a clipboard utility was found.
func Available() bool {
	return !clipboard.Unsupported
}

// Read returns the clipboard text.
func (s *System) Read() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return text, nil
}

// Write replaces the clipboard text.
func (s *System) Write(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
