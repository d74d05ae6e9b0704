package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vibepad/internal/core/domain"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestExtractKind(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{name: "json", uri: "vibepad://documents/json", expected: "json"},
		{name: "markdown", uri: "vibepad://documents/markdown", expected: "markdown"},
		{name: "invalid prefix", uri: "file://documents/json", expected: ""},
		{name: "empty URI", uri: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractKind(tt.uri))
		})
	}
}

func TestServer_handleDocumentsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("lists saved documents", func(t *testing.T) {
		ports := newTestPorts()
		require.NoError(t, ports.Workspace.Save(ctx, domain.EditorJSON, `{"a":1}`))
		server := newTestServer(t, ports)

		res, err := server.handleDocumentsResource(ctx, readRequest("vibepad://documents"))
		require.NoError(t, err)
		require.Len(t, res.Contents, 1)
		assert.Equal(t, "application/json", res.Contents[0].MIMEType)

		var docs []map[string]any
		require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &docs))
		require.Len(t, docs, 1)
		assert.Equal(t, "json", docs[0]["kind"])
		assert.Equal(t, "vibepad://documents/json", docs[0]["uri"])
		assert.EqualValues(t, 7, docs[0]["bytes"])
	})

	t.Run("no workspace returns empty list", func(t *testing.T) {
		ports := newTestPorts()
		ports.Workspace = nil
		server := newTestServer(t, ports)

		res, err := server.handleDocumentsResource(ctx, readRequest("vibepad://documents"))
		require.NoError(t, err)
		assert.Equal(t, "[]", res.Contents[0].Text)
	})
}

func TestServer_handleDocumentContentResource(t *testing.T) {
	ctx := context.Background()
	ports := newTestPorts()
	require.NoError(t, ports.Workspace.Save(ctx, domain.EditorMarkdown, "# notes"))
	server := newTestServer(t, ports)

	t.Run("markdown content", func(t *testing.T) {
		res, err := server.handleDocumentContentResource(ctx, readRequest("vibepad://documents/markdown"))
		require.NoError(t, err)
		assert.Equal(t, "text/markdown", res.Contents[0].MIMEType)
		assert.Equal(t, "# notes", res.Contents[0].Text)
	})

	t.Run("unsaved editor is empty", func(t *testing.T) {
		res, err := server.handleDocumentContentResource(ctx, readRequest("vibepad://documents/json"))
		require.NoError(t, err)
		assert.Equal(t, "application/json", res.Contents[0].MIMEType)
		assert.Empty(t, res.Contents[0].Text)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := server.handleDocumentContentResource(ctx, readRequest("vibepad://documents/yaml"))
		assert.Error(t, err)
	})

	t.Run("no workspace", func(t *testing.T) {
		p := newTestPorts()
		p.Workspace = nil
		s := newTestServer(t, p)

		_, err := s.handleDocumentContentResource(ctx, readRequest("vibepad://documents/json"))
		assert.Error(t, err)
	})
}

func TestServer_handleSettingsResource(t *testing.T) {
	ctx := context.Background()
	ports := newTestPorts()
	require.NoError(t, ports.Settings.SetCollapsed(3))
	server := newTestServer(t, ports)

	res, err := server.handleSettingsResource(ctx, readRequest("vibepad://settings"))
	require.NoError(t, err)

	var opts domain.ViewerOptions
	require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &opts))
	assert.Equal(t, 3, opts.Collapsed)
}
