package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/vibepad/internal/core/domain"
	"github.com/custodia-labs/vibepad/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// It holds one document per editor kind.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[domain.EditorKind]domain.Document
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[domain.EditorKind]domain.Document),
	}
}

// SaveDocument stores or replaces the document for doc.Kind.
func (s *DocumentStore) SaveDocument(_ context.Context, doc *domain.Document) error {
	if doc == nil || !doc.Kind.IsValid() {
		return fmt.Errorf("%w: document kind", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.Kind] = *doc
	return nil
}

// GetDocument retrieves the document for an editor kind.
func (s *DocumentStore) GetDocument(_ context.Context, kind domain.EditorKind) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[kind]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// DeleteDocument removes the document for an editor kind.
func (s *DocumentStore) DeleteDocument(_ context.Context, kind domain.EditorKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, kind)
	return nil
}

// ListDocuments returns all documents ordered by kind.
func (s *DocumentStore) ListDocuments(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Document, 0, len(s.documents))
	for _, doc := range s.documents {
		result = append(result, doc)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})
	return result, nil
}
