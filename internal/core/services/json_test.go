package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vibepad/internal/core/domain"
	"github.com/custodia-labs/vibepad/internal/core/ports/driving"
)

func TestJSONService_View(t *testing.T) {
	service := NewJSONService(nil)

	tests := []struct {
		name     string
		src      string
		depth    int
		expected string
	}{
		{name: "empty", src: "", expected: driving.EmptyJSONPreview},
		{name: "whitespace", src: "  \n\t", expected: driving.EmptyJSONPreview},
		{name: "scalar", src: " 42 ", expected: "42"},
		{name: "expanded", src: `{"a":[1]}`, expected: "{\n  \"a\": [\n    0: 1\n  ]\n}"},
		{name: "collapsed", src: `{"a":[1,2]}`, depth: 1, expected: "{\n  \"a\": […] 2 items\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.View(tt.src, tt.depth))
		})
	}
}

func TestJSONService_View_ParseError(t *testing.T) {
	service := NewJSONService(nil)

	out := service.View(`{"a": }`, 0)

	assert.True(t, strings.HasPrefix(out, "Parse Error: "), out)
}

func TestJSONService_Format(t *testing.T) {
	service := NewJSONService(nil)

	out, err := service.Format(` {"b":1,"a":[true,null]} `)

	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": [\n    true,\n    null\n  ]\n}", out)
}

func TestJSONService_Minify(t *testing.T) {
	service := NewJSONService(nil)

	out, err := service.Minify("{\n  \"b\": 1,\n  \"a\": [ 1.50 ]\n}\n")

	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":[1.50]}`, out)
}

func TestJSONService_FormatAndMinify_Errors(t *testing.T) {
	service := NewJSONService(nil)

	for _, src := range []string{"", "   ", "{", `{"a":1}x`} {
		_, err := service.Format(src)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "format %q", src)

		_, err = service.Minify(src)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "minify %q", src)
	}
}

func newJSONServer(t *testing.T, contentType, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestJSONService_Fetch_ContentType(t *testing.T) {
	service := NewJSONService(nil)
	opts := domain.DefaultViewerOptions()

	server := newJSONServer(t, "application/json; charset=utf-8", `{"ok":true}`)
	body, err := service.Fetch(context.Background(), server.URL, opts)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, body)

	html := newJSONServer(t, "text/html", `{"ok":true}`)
	_, err = service.Fetch(context.Background(), html.URL, opts)
	assert.ErrorIs(t, err, domain.ErrNotJSONContent)
}

func TestJSONService_Fetch_ContentSniffing(t *testing.T) {
	service := NewJSONService(nil)
	opts := domain.DefaultViewerOptions()
	opts.JSONDetection.Method = domain.DetectByContent

	server := newJSONServer(t, "text/plain", ` [1, 2] `)
	body, err := service.Fetch(context.Background(), server.URL, opts)
	require.NoError(t, err)
	assert.Equal(t, ` [1, 2] `, body)

	scalar := newJSONServer(t, "application/json", `"just a string"`)
	_, err = service.Fetch(context.Background(), scalar.URL, opts)
	assert.ErrorIs(t, err, domain.ErrNotJSONContent)
}

func TestJSONService_Fetch_FilteredURL(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requested = true
	}))
	defer server.Close()

	service := NewJSONService(server.Client())
	opts := domain.DefaultViewerOptions()
	opts.FilteredURLs = []string{"127.0.0.1"}

	_, err := service.Fetch(context.Background(), server.URL, opts)

	assert.ErrorIs(t, err, domain.ErrFilteredURL)
	assert.False(t, requested)
}

func TestJSONService_Fetch_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer server.Close()

	service := NewJSONService(server.Client())

	_, err := service.Fetch(context.Background(), server.URL, domain.DefaultViewerOptions())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestJSONService_Fetch_InvalidURL(t *testing.T) {
	service := NewJSONService(nil)

	_, err := service.Fetch(context.Background(), "://missing-scheme", domain.DefaultViewerOptions())

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
