package cli

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vibepad/internal/core/domain"
	"github.com/custodia-labs/vibepad/internal/core/ports/driving"
	"github.com/custodia-labs/vibepad/internal/normalisers/jsontree"
)

func TestJSONView(t *testing.T) {
	installServices(t)

	t.Run("tree", func(t *testing.T) {
		out, err := execute(t, `{"name":"vibepad","tags":["a"]}`, "json", "view")
		require.NoError(t, err)
		assert.Contains(t, out, "name")
		assert.Contains(t, out, "tags")
	})

	t.Run("blank input", func(t *testing.T) {
		out, err := execute(t, "", "json", "view")
		require.NoError(t, err)
		assert.Equal(t, driving.EmptyJSONPreview+"\n", out)
	})

	t.Run("parse error is shown not returned", func(t *testing.T) {
		out, err := execute(t, "{", "json", "view")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, jsontree.ParseErrorPrefix))
	})
}

func TestJSONFmt(t *testing.T) {
	installServices(t)

	out, err := execute(t, `{"b":1,"a":[1,2]}`, "json", "fmt")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": [\n    1,\n    2\n  ]\n}\n", out)

	_, err = execute(t, `{"a":`, "json", "fmt")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), jsontree.FormatErrorPrefix))
}

func TestJSONMinify(t *testing.T) {
	installServices(t)

	out, err := execute(t, "{\n  \"a\": [ 1, 2 ]\n}\n", "json", "minify")
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":[1,2]}\n", out)

	_, err = execute(t, "[1,,2]", "json", "minify")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), jsontree.MinifyErrorPrefix))
}

func TestJSONFetch(t *testing.T) {
	ts := installServices(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	t.Cleanup(srv.Close)

	t.Run("raw body", func(t *testing.T) {
		out, err := execute(t, "", "json", "fetch", "--raw", srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "{\"status\":\"ok\"}\n", out)
	})

	t.Run("tree", func(t *testing.T) {
		out, err := execute(t, "", "json", "fetch", srv.URL)
		require.NoError(t, err)
		assert.Contains(t, out, "status")
	})

	t.Run("filtered url", func(t *testing.T) {
		opts := ts.settings.Get()
		opts.FilteredURLs = []string{"127.0.0.1"}
		require.NoError(t, ts.settings.Save(opts))
		t.Cleanup(func() { _ = ts.settings.Reset() })

		_, err := execute(t, "", "json", "fetch", srv.URL)
		assert.ErrorIs(t, err, domain.ErrFilteredURL)
	})
}

func TestCollapseDepth(t *testing.T) {
	ts := installServices(t)
	require.NoError(t, ts.settings.SetCollapsed(2))
	t.Cleanup(func() { jsonCollapsed = -1 })

	tests := []struct {
		name     string
		flag     int
		expected int
	}{
		{name: "unset uses settings", flag: -1, expected: 2},
		{name: "zero expands all", flag: 0, expected: 0},
		{name: "explicit depth", flag: 4, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jsonCollapsed = tt.flag
			assert.Equal(t, tt.expected, collapseDepth())
		})
	}
}

func TestJSON_NotConfigured(t *testing.T) {
	SetServices(nil)

	for _, sub := range []string{"view", "fmt", "minify"} {
		t.Run(sub, func(t *testing.T) {
			_, err := execute(t, "{}", "json", sub)
			assert.EqualError(t, err, "json service not configured")
		})
	}
}
