package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vibepad/internal/core/domain"
)

// setupTestStore creates a SQLite store in a temporary directory.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, DatabaseFileName), store.Path())
	assert.FileExists(t, store.Path())
}

func TestNewStore_InvalidDir(t *testing.T) {
	store, err := NewStore("/dev/null/cannot/create")
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestStore_MigrationsRecorded(t *testing.T) {
	store := setupTestStore(t)

	version, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestStore_ReopenSkipsAppliedMigrations(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, first.DocumentStore().SaveDocument(ctx, &domain.Document{
		ID: "doc-1", Kind: domain.EditorJSON, Content: `{"a":1}`,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	version, err := second.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	doc, err := second.DocumentStore().GetDocument(ctx, domain.EditorJSON)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, doc.Content)
}

func TestDocumentStore_SaveAndGet(t *testing.T) {
	store := setupTestStore(t).DocumentStore()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	doc := &domain.Document{
		ID:        "doc-1",
		Kind:      domain.EditorMarkdown,
		Name:      "README.md",
		Content:   "# Title\n\nBody with 'quotes' and \"double quotes\".",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, store.SaveDocument(ctx, doc))

	got, err := store.GetDocument(ctx, domain.EditorMarkdown)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
	assert.Equal(t, doc.Kind, got.Kind)
	assert.Equal(t, doc.Name, got.Name)
	assert.Equal(t, doc.Content, got.Content)
	assert.WithinDuration(t, now, got.CreatedAt, time.Second)
	assert.WithinDuration(t, now, got.UpdatedAt, time.Second)
}

func TestDocumentStore_SaveReplacesContentKeepsIdentity(t *testing.T) {
	store := setupTestStore(t).DocumentStore()
	ctx := context.Background()
	created := time.Now().Add(-time.Hour).UTC()
	updated := time.Now().UTC()

	require.NoError(t, store.SaveDocument(ctx, &domain.Document{
		ID: "first", Kind: domain.EditorJSON, Content: "{}", CreatedAt: created, UpdatedAt: created,
	}))
	require.NoError(t, store.SaveDocument(ctx, &domain.Document{
		ID: "second", Kind: domain.EditorJSON, Content: "[]", CreatedAt: updated, UpdatedAt: updated,
	}))

	got, err := store.GetDocument(ctx, domain.EditorJSON)
	require.NoError(t, err)
	assert.Equal(t, "first", got.ID)
	assert.Equal(t, "[]", got.Content)
	assert.WithinDuration(t, created, got.CreatedAt, time.Second)
	assert.WithinDuration(t, updated, got.UpdatedAt, time.Second)
}

func TestDocumentStore_SaveDocument_Invalid(t *testing.T) {
	store := setupTestStore(t).DocumentStore()
	ctx := context.Background()

	assert.ErrorIs(t, store.SaveDocument(ctx, nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.SaveDocument(ctx, &domain.Document{ID: "x", Kind: "yaml"}), domain.ErrInvalidInput)
}

func TestDocumentStore_GetDocument_NotFound(t *testing.T) {
	store := setupTestStore(t).DocumentStore()

	doc, err := store.GetDocument(context.Background(), domain.EditorJSON)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, doc)
}

func TestDocumentStore_DeleteDocument(t *testing.T) {
	store := setupTestStore(t).DocumentStore()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.SaveDocument(ctx, &domain.Document{
		ID: "doc-1", Kind: domain.EditorJSON, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, store.DeleteDocument(ctx, domain.EditorJSON))
	require.NoError(t, store.DeleteDocument(ctx, domain.EditorJSON))

	_, err := store.GetDocument(ctx, domain.EditorJSON)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_ListDocuments(t *testing.T) {
	store := setupTestStore(t).DocumentStore()
	ctx := context.Background()
	now := time.Now()

	docs, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)

	require.NoError(t, store.SaveDocument(ctx, &domain.Document{
		ID: "m", Kind: domain.EditorMarkdown, Content: "md", CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, store.SaveDocument(ctx, &domain.Document{
		ID: "j", Kind: domain.EditorJSON, Content: "{}", CreatedAt: now, UpdatedAt: now,
	}))

	docs, err = store.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, domain.EditorJSON, docs[0].Kind)
	assert.Equal(t, domain.EditorMarkdown, docs[1].Kind)
}

func TestDocumentStore_ContextCancelled(t *testing.T) {
	store := setupTestStore(t).DocumentStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.SaveDocument(ctx, &domain.Document{ID: "x", Kind: domain.EditorJSON})
	assert.Error(t, err)
}
