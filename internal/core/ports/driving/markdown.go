package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/vibepad/internal/core/domain"
)

// Preview placeholders shown instead of rendered Markdown.
const (
	// EmptyMarkdownPreview is shown when the editor is empty.
	EmptyMarkdownPreview = "Paste markdown to see preview"

	// RendererUnavailablePreview is shown when no renderer is configured.
	RendererUnavailablePreview = "<p>Markdown renderer not available</p>"

	// RenderErrorPreview is shown when the renderer fails.
	RenderErrorPreview = `<p class="error">Error parsing markdown</p>`
)

// MarkdownService runs the Markdown editor operations.
type MarkdownService interface {
	// Clean runs the synchronous cleanup pass.
	Clean(text string) string

	// Format formats text with the default options.
	// Never fails: on formatter absence or error the cleanup output is returned
	// and the result is marked as a fallback.
	Format(ctx context.Context, text string) domain.FormatResult

	// FormatWith formats text with explicit options.
	FormatWith(ctx context.Context, text string, opts domain.FormatOptions) domain.FormatResult

	// Paste replaces the selection [start, end) of doc with the cleaned
	// pasted text and returns the new text and cursor position.
	Paste(doc string, start, end int, pasted string) domain.PasteResult

	// Render returns the preview of text for the given target.
	Render(text string, target domain.RenderTarget) string

	// Import reads a Markdown file, cleans it and stores it as the
	// Markdown editor document.
	Import(ctx context.Context, name string, r io.Reader) (*domain.Document, error)
}
