package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/vibepad/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for vibepad resources.
	uriScheme = "vibepad://"

	mimeJSON     = "application/json"
	mimeMarkdown = "text/markdown"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "documents",
		Name:        "documents",
		Description: "Saved editor documents",
		MIMEType:    mimeJSON,
	}, s.handleDocumentsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{kind}",
		Name:        "document-content",
		Description: "Content of the json or markdown editor",
	}, s.handleDocumentContentResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "JSON viewer options",
		MIMEType:    mimeJSON,
	}, s.handleSettingsResource)
}

// handleDocumentsResource lists the saved editor documents.
func (s *Server) handleDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Workspace == nil {
		return textResult(req.Params.URI, mimeJSON, "[]"), nil
	}

	docs, err := s.ports.Workspace.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	type docInfo struct {
		ID        string    `json:"id"`
		Kind      string    `json:"kind"`
		Name      string    `json:"name,omitempty"`
		Bytes     int       `json:"bytes"`
		URI       string    `json:"uri"`
		UpdatedAt time.Time `json:"updatedAt"`
	}

	infos := make([]docInfo, len(docs))
	for i := range docs {
		infos[i] = docInfo{
			ID:        docs[i].ID,
			Kind:      docs[i].Kind.String(),
			Name:      docs[i].Name,
			Bytes:     len(docs[i].Content),
			URI:       uriScheme + "documents/" + docs[i].Kind.String(),
			UpdatedAt: docs[i].UpdatedAt,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling documents: %w", err)
	}
	return textResult(req.Params.URI, mimeJSON, string(data)), nil
}

// handleDocumentContentResource returns the content of one editor.
func (s *Server) handleDocumentContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Workspace == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	kind, err := domain.ParseEditorKind(extractKind(req.Params.URI))
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	content, err := s.ports.Workspace.Load(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("loading %s document: %w", kind, err)
	}

	mime := mimeJSON
	if kind == domain.EditorMarkdown {
		mime = mimeMarkdown
	}
	return textResult(req.Params.URI, mime, content), nil
}

// handleSettingsResource returns the current viewer options.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	opts := domain.DefaultViewerOptions()
	if s.ports.Settings != nil {
		opts = s.ports.Settings.Get()
	}

	data, err := json.MarshalIndent(opts, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}
	return textResult(req.Params.URI, mimeJSON, string(data)), nil
}

func textResult(uri, mime, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mime,
			Text:     text,
		}},
	}
}

// extractKind extracts the editor kind from a URI like vibepad://documents/{kind}.
func extractKind(uri string) string {
	const prefix = uriScheme + "documents/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
