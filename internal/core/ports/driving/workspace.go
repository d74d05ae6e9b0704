package driving

import (
	"context"

	"github.com/custodia-labs/vibepad/internal/core/domain"
)

// WorkspaceService persists the content of the two editors.
type WorkspaceService interface {
	// Load returns the stored content for an editor, or "" if none.
	Load(ctx context.Context, kind domain.EditorKind) (string, error)

	// Save stores the content of an editor.
	Save(ctx context.Context, kind domain.EditorKind, content string) error

	// Clear removes the stored content of an editor.
	Clear(ctx context.Context, kind domain.EditorKind) error

	// List returns all stored documents.
	List(ctx context.Context) ([]domain.Document, error)
}
