package driven

import (
	"context"

	"github.com/custodia-labs/vibepad/internal/core/domain"
)

// DocumentStore persists editor documents, one per editor kind.
// Backed by SQLite.
type DocumentStore interface {
	// SaveDocument stores or replaces the document for doc.Kind.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves the document for an editor kind.
	// Returns domain.ErrNotFound if none is stored.
	GetDocument(ctx context.Context, kind domain.EditorKind) (*domain.Document, error)

	// DeleteDocument removes the document for an editor kind.
	DeleteDocument(ctx context.Context, kind domain.EditorKind) error

	// ListDocuments returns all stored documents ordered by kind.
	ListDocuments(ctx context.Context) ([]domain.Document, error)
}
