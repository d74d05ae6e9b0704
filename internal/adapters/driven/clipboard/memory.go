package clipboard

import (
	"sync"

	"github.com/custodia-labs/vibepad/internal/core/ports/driven"
)

// Ensure Memory implements the interface.
var _ driven.Clipboard = (*Memory)(nil)

// Memory is a process-local clipboard, used when no system clipboard
// utility is installed and in tests.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory creates an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Read returns the clipboard text.
func (m *Memory) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// Write replaces the clipboard text.
func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}
