package driven

import (
	"context"

	"github.com/custodia-labs/vibepad/internal/core/domain"
)

// Formatter reformats Markdown text.
// It is slower than the Normaliser and may fail; callers fall back to the
// Normaliser output on error.
type Formatter interface {
	// Format returns the formatted text.
	// Returns domain.ErrUnsupportedType if opts.Parser is not supported.
	Format(ctx context.Context, text string, opts domain.FormatOptions) (string, error)
}
