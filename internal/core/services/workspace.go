package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/vibepad/internal/core/domain"
	"github.com/custodia-labs/vibepad/internal/core/ports/driven"
	"github.com/custodia-labs/vibepad/internal/core/ports/driving"
)

// Ensure WorkspaceService implements the interface.
var _ driving.WorkspaceService = (*WorkspaceService)(nil)

// WorkspaceService persists the content of the two editors.
type WorkspaceService struct {
	docStore driven.DocumentStore
	now      func() time.Time
}

// NewWorkspaceService creates a new workspace service.
func NewWorkspaceService(docStore driven.DocumentStore) *WorkspaceService {
	return &WorkspaceService{
		docStore: docStore,
		now:      time.Now,
	}
}

// Load returns the stored content for an editor, or "" if none.
func (s *WorkspaceService) Load(ctx context.Context, kind domain.EditorKind) (string, error) {
	if s.docStore == nil {
		return "", domain.ErrNotImplemented
	}
	if !kind.IsValid() {
		return "", fmt.Errorf("%w: editor %q", domain.ErrUnsupportedType, kind)
	}

	doc, err := s.docStore.GetDocument(ctx, kind)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load %s document: %w", kind, err)
	}
	return doc.Content, nil
}

// Save stores the content of an editor.
// The document keeps its ID, name and creation time across saves.
func (s *WorkspaceService) Save(ctx context.Context, kind domain.EditorKind, content string) error {
	if s.docStore == nil {
		return domain.ErrNotImplemented
	}
	if !kind.IsValid() {
		return fmt.Errorf("%w: editor %q", domain.ErrUnsupportedType, kind)
	}

	now := s.now()
	doc, err := s.docStore.GetDocument(ctx, kind)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		doc = &domain.Document{
			ID:        uuid.New().String(),
			Kind:      kind,
			CreatedAt: now,
		}
	case err != nil:
		return fmt.Errorf("load %s document: %w", kind, err)
	}

	doc.Content = content
	doc.UpdatedAt = now
	if err := s.docStore.SaveDocument(ctx, doc); err != nil {
		return fmt.Errorf("save %s document: %w", kind, err)
	}
	return nil
}

// Clear removes the stored content of an editor.
func (s *WorkspaceService) Clear(ctx context.Context, kind domain.EditorKind) error {
	if s.docStore == nil {
		return domain.ErrNotImplemented
	}
	if !kind.IsValid() {
		return fmt.Errorf("%w: editor %q", domain.ErrUnsupportedType, kind)
	}
	if err := s.docStore.DeleteDocument(ctx, kind); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("clear %s document: %w", kind, err)
	}
	return nil
}

// List returns all stored documents.
func (s *WorkspaceService) List(ctx context.Context) ([]domain.Document, error) {
	if s.docStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.docStore.ListDocuments(ctx)
}
