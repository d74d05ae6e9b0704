// Package html renders Markdown to sanitised HTML.
package html

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/custodia-labs/vibepad/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Renderer converts Markdown to HTML.
// Output is GitHub Flavored Markdown with single newlines kept as <br>
// and generated heading ids, passed through a UGC sanitising policy.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// New creates a new HTML renderer.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	policy.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[\w+-]+$`)).OnElements("code")
	policy.AllowAttrs("type").Matching(regexp.MustCompile(`^checkbox$`)).OnElements("input")
	policy.AllowAttrs("checked", "disabled").OnElements("input")

	return &Renderer{md: md, policy: policy}
}

// Render converts markdown to sanitised HTML.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}

var (
	pageOnce sync.Once
	pageTmpl *template.Template
)

const pageSource = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{- if .CSS}}
<style>{{.CSS}}</style>
{{- end}}
</head>
<body>
{{.Body}}
</body>
</html>
`

// Page wraps a rendered body in a standalone HTML document.
// css is the user stylesheet from the viewer options.
func Page(title, body, css string) (string, error) {
	pageOnce.Do(func() {
		pageTmpl = template.Must(template.New("page").Parse(pageSource))
	})

	var buf bytes.Buffer
	err := pageTmpl.Execute(&buf, struct {
		Title string
		CSS   template.CSS
		Body  template.HTML
	}{
		Title: title,
		CSS:   template.CSS(css), //nolint:gosec // G203: user's own stylesheet.
		Body:  template.HTML(body), //nolint:gosec // G203: body is sanitised by Render.
	})
	if err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return buf.String(), nil
}
