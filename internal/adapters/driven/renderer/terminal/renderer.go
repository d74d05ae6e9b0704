// Package terminal renders Markdown for display in a terminal using glamour.
package terminal

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/custodia-labs/vibepad/internal/core/domain"
	"github.com/custodia-labs/vibepad/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// DefaultWidth is the word wrap width used when none is given.
const DefaultWidth = 80

// Renderer renders Markdown with ANSI styling.
type Renderer struct {
	mu    sync.Mutex
	theme domain.DisplayTheme
	width int
	tr    *glamour.TermRenderer
}

// New creates a renderer for a display theme and wrap width.
func New(theme domain.DisplayTheme, width int) (*Renderer, error) {
	r := &Renderer{theme: theme}
	if err := r.Resize(width); err != nil {
		return nil, err
	}
	return r, nil
}

// Resize rebuilds the renderer for a new wrap width.
func (r *Renderer) Resize(width int) error {
	if width <= 0 {
		width = DefaultWidth
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tr != nil && width == r.width {
		return nil
	}

	tr, err := glamour.NewTermRenderer(styleOption(r.theme), glamour.WithWordWrap(width))
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	r.tr = tr
	r.width = width
	return nil
}

// Width returns the current wrap width.
func (r *Renderer) Width() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width
}

// Render renders markdown for the terminal.
func (r *Renderer) Render(markdown string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out, err := r.tr.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

// styleOption maps the display theme to a glamour style.
func styleOption(theme domain.DisplayTheme) glamour.TermRendererOption {
	switch theme {
	case domain.DisplayLight:
		return glamour.WithStandardStyle("light")
	case domain.DisplaySystem:
		return glamour.WithAutoStyle()
	default:
		return glamour.WithStandardStyle("dark")
	}
}
