package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/custodia-labs/vibepad/internal/core/domain"
	"github.com/custodia-labs/vibepad/internal/core/ports/driving"
	"github.com/custodia-labs/vibepad/internal/logger"
	"github.com/custodia-labs/vibepad/internal/normalisers/jsontree"
)

// Ensure JSONService implements the interface.
var _ driving.JSONService = (*JSONService)(nil)

// Fetch limits.
const (
	MaxFetchSize = 16 << 20
	FetchTimeout = 30 * time.Second
)

// JSONService runs the JSON viewer operations.
type JSONService struct {
	client *http.Client
}

// NewJSONService creates a new JSON service.
// A nil client uses an http.Client with FetchTimeout.
func NewJSONService(client *http.Client) *JSONService {
	if client == nil {
		client = &http.Client{Timeout: FetchTimeout}
	}
	return &JSONService{client: client}
}

// View renders src as a tree.
func (s *JSONService) View(src string, collapseDepth int) string {
	if jsontree.IsBlank(src) {
		return driving.EmptyJSONPreview
	}

	root, err := jsontree.Parse([]byte(src))
	if err != nil {
		return jsontree.Message(jsontree.ParseErrorPrefix, err)
	}
	return root.Render(jsontree.RenderOptions{CollapseDepth: collapseDepth})
}

// Format pretty-prints src with 2-space indentation.
func (s *JSONService) Format(src string) (string, error) {
	if jsontree.IsBlank(src) {
		return "", fmt.Errorf("%w: empty document", domain.ErrInvalidInput)
	}
	out, err := jsontree.Format([]byte(src))
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return out, nil
}

// Minify removes insignificant whitespace from src.
func (s *JSONService) Minify(src string) (string, error) {
	if jsontree.IsBlank(src) {
		return "", fmt.Errorf("%w: empty document", domain.ErrInvalidInput)
	}
	out, err := jsontree.Minify([]byte(src))
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return out, nil
}

// Fetch downloads a JSON document.
// Filtered URLs are refused before any request is made.
func (s *JSONService) Fetch(ctx context.Context, url string, opts domain.ViewerOptions) (string, error) {
	if opts.IsFilteredURL(url) {
		return "", fmt.Errorf("%w: %s", domain.ErrFilteredURL, url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	req.Header.Set("Accept", "application/json")

	logger.Debug("fetching %s", url)
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxFetchSize+1))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	if len(body) > MaxFetchSize {
		return "", fmt.Errorf("%w: response larger than %d bytes", domain.ErrInvalidInput, MaxFetchSize)
	}

	switch opts.JSONDetection.Method {
	case domain.DetectByContent:
		if !jsontree.LooksLikeJSON(body) {
			return "", fmt.Errorf("%w: body is not a JSON object or array", domain.ErrNotJSONContent)
		}
	default:
		ct := resp.Header.Get("Content-Type")
		if !opts.IsJSONContentType(ct) {
			return "", fmt.Errorf("%w: %q", domain.ErrNotJSONContent, ct)
		}
	}

	logger.Debug("fetched %d bytes from %s", len(body), url)
	return string(body), nil
}
