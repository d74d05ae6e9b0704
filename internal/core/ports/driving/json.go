package driving

import (
	"context"

	"github.com/custodia-labs/vibepad/internal/core/domain"
)

// EmptyJSONPreview is shown when the JSON editor is empty.
const EmptyJSONPreview = "Paste JSON to see tree view"

// JSONService runs the JSON viewer operations.
type JSONService interface {
	// View renders src as a tree collapsed at collapseDepth (0 expands all).
	// Returns EmptyJSONPreview for blank input and a "Parse Error:" message
	// for invalid JSON.
	View(src string, collapseDepth int) string

	// Format pretty-prints src with 2-space indentation.
	Format(src string) (string, error)

	// Minify removes insignificant whitespace from src.
	Minify(src string) (string, error)

	// Fetch downloads a JSON document, applying the viewer's URL filter and
	// content type detection.
	Fetch(ctx context.Context, url string, opts domain.ViewerOptions) (string, error)
}
