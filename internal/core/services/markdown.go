package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/vibepad/internal/core/domain"
	"github.com/custodia-labs/vibepad/internal/core/ports/driven"
	"github.com/custodia-labs/vibepad/internal/core/ports/driving"
	"github.com/custodia-labs/vibepad/internal/logger"
)

// Ensure MarkdownService implements the interface.
var _ driving.MarkdownService = (*MarkdownService)(nil)

// MaxImportSize is the largest file Import accepts.
const MaxImportSize = 4 << 20

// MarkdownService runs the Markdown editor operations.
// The formatter, renderers and document store are optional.
type MarkdownService struct {
	normaliser driven.Normaliser
	formatter  driven.Formatter
	renderers  map[domain.RenderTarget]driven.Renderer
	docStore   driven.DocumentStore
	options    domain.FormatOptions
	now        func() time.Time
}

// NewMarkdownService creates a new Markdown service.
func NewMarkdownService(
	normaliser driven.Normaliser,
	formatter driven.Formatter,
	docStore driven.DocumentStore,
) *MarkdownService {
	return &MarkdownService{
		normaliser: normaliser,
		formatter:  formatter,
		renderers:  make(map[domain.RenderTarget]driven.Renderer),
		docStore:   docStore,
		options:    domain.DefaultFormatOptions(),
		now:        time.Now,
	}
}

// SetRenderer registers the renderer for a target. A nil renderer removes it.
func (s *MarkdownService) SetRenderer(target domain.RenderTarget, r driven.Renderer) {
	if r == nil {
		delete(s.renderers, target)
		return
	}
	s.renderers[target] = r
}

// SetFormatOptions replaces the options used by Format.
func (s *MarkdownService) SetFormatOptions(opts domain.FormatOptions) {
	s.options = opts
}

// FormatOptions returns the options used by Format.
func (s *MarkdownService) FormatOptions() domain.FormatOptions {
	return s.options
}

// Clean runs the synchronous cleanup pass.
func (s *MarkdownService) Clean(text string) string {
	if s.normaliser == nil {
		return text
	}
	return s.normaliser.Normalise(text)
}

// Format formats text with the service options.
func (s *MarkdownService) Format(ctx context.Context, text string) domain.FormatResult {
	return s.FormatWith(ctx, text, s.options)
}

// FormatWith formats text with explicit options.
func (s *MarkdownService) FormatWith(ctx context.Context, text string, opts domain.FormatOptions) domain.FormatResult {
	if strings.TrimSpace(text) == "" {
		return domain.FormatResult{}
	}

	if s.formatter == nil {
		logger.Warn("formatter not loaded, using fallback")
		return domain.FormatResult{
			Text:     s.Clean(text),
			Fallback: true,
			Err:      domain.ErrFormatterUnavailable,
		}
	}

	formatted, err := s.formatter.Format(ctx, text, opts)
	if err != nil {
		logger.Warn("formatting error: %v", err)
		return domain.FormatResult{
			Text:     s.Clean(text),
			Fallback: true,
			Err:      err,
		}
	}

	return domain.FormatResult{Text: strings.TrimSpace(formatted)}
}

// Paste replaces the selection [start, end) of doc with the cleaned text.
// Offsets are clamped to the document and swapped if reversed.
func (s *MarkdownService) Paste(doc string, start, end int, pasted string) domain.PasteResult {
	start = clamp(start, 0, len(doc))
	end = clamp(end, 0, len(doc))
	if start > end {
		start, end = end, start
	}

	cleaned := s.Clean(pasted)
	return domain.PasteResult{
		Text:   doc[:start] + cleaned + doc[end:],
		Cursor: start + len(cleaned),
	}
}

// Render returns the preview of text for the given target.
func (s *MarkdownService) Render(text string, target domain.RenderTarget) string {
	if strings.TrimSpace(text) == "" {
		return driving.EmptyMarkdownPreview
	}

	r, ok := s.renderers[target]
	if !ok {
		logger.Debug("no %s renderer configured", target)
		return driving.RendererUnavailablePreview
	}

	out, err := r.Render(text)
	if err != nil {
		logger.Warn("markdown parsing error: %v", err)
		return driving.RenderErrorPreview
	}
	return out
}

// Import reads a Markdown file, cleans it and stores it as the Markdown document.
func (s *MarkdownService) Import(ctx context.Context, name string, r io.Reader) (*domain.Document, error) {
	if s.docStore == nil {
		return nil, domain.ErrNotImplemented
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxImportSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(data) > MaxImportSize {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", domain.ErrInvalidInput, name, MaxImportSize)
	}

	now := s.now()
	doc := &domain.Document{
		ID:        uuid.New().String(),
		Kind:      domain.EditorMarkdown,
		Name:      filepath.Base(name),
		Content:   s.Clean(string(data)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.docStore.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}

	logger.Info("imported %s (%d bytes)", doc.Name, len(doc.Content))
	return doc, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
