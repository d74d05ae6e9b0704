package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/vibepad/internal/core/domain"
	"github.com/custodia-labs/vibepad/internal/normalisers/jsontree"
)

// MarkdownInput is the input schema for the Markdown cleanup tool.
type MarkdownInput struct {
	Text string `json:"text" jsonschema:"the Markdown text"`
}

// MarkdownOutput is the output schema for the Markdown cleanup tool.
type MarkdownOutput struct {
	Text string `json:"text"`
}

// FormatMarkdownInput is the input schema for the Markdown format tool.
type FormatMarkdownInput struct {
	Text       string `json:"text" jsonschema:"the Markdown text"`
	PrintWidth int    `json:"print_width,omitempty" jsonschema:"line width used when wrapping prose (default 80)"`
	ProseWrap  string `json:"prose_wrap,omitempty" jsonschema:"always, never or preserve (default always)"`
	TabWidth   int    `json:"tab_width,omitempty" jsonschema:"spaces per tab (default 2)"`
	UseTabs    bool   `json:"use_tabs,omitempty" jsonschema:"keep tabs instead of expanding them"`
}

// FormatMarkdownOutput is the output schema for the Markdown format tool.
type FormatMarkdownOutput struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
	Warning  string `json:"warning,omitempty"`
}

// RenderMarkdownInput is the input schema for the Markdown render tool.
type RenderMarkdownInput struct {
	Text   string `json:"text" jsonschema:"the Markdown text"`
	Target string `json:"target,omitempty" jsonschema:"html or terminal (default html)"`
}

// RenderMarkdownOutput is the output schema for the Markdown render tool.
type RenderMarkdownOutput struct {
	Output string `json:"output"`
	Target string `json:"target"`
}

// JSONInput is the input schema for the JSON format and minify tools.
type JSONInput struct {
	JSON string `json:"json" jsonschema:"the JSON document"`
}

// JSONOutput is the output schema for the JSON format and minify tools.
type JSONOutput struct {
	JSON string `json:"json"`
}

// JSONTreeInput is the input schema for the JSON tree tool.
type JSONTreeInput struct {
	JSON      string `json:"json" jsonschema:"the JSON document"`
	Collapsed int    `json:"collapsed,omitempty" jsonschema:"depth at which containers collapse (0 expands all)"`
}

// JSONTreeOutput is the output schema for the JSON tree tool.
type JSONTreeOutput struct {
	Tree string `json:"tree"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "normalize_markdown",
		Description: "Clean up pasted Markdown: setext headings become ATX headings, shallow indents and trailing whitespace are removed and blank lines collapsed",
	}, s.handleNormalizeMarkdown)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "format_markdown",
		Description: "Format Markdown, falling back to the cleanup pass if the formatter fails",
	}, s.handleFormatMarkdown)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "render_markdown",
		Description: "Render Markdown as sanitised HTML or as terminal output",
	}, s.handleRenderMarkdown)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "format_json",
		Description: "Pretty-print JSON with two-space indentation, keeping member order",
	}, s.handleFormatJSON)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "minify_json",
		Description: "Remove insignificant whitespace from JSON",
	}, s.handleMinifyJSON)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "json_tree",
		Description: "Show JSON as an indented tree, optionally collapsed below a depth",
	}, s.handleJSONTree)
}

func (s *Server) handleNormalizeMarkdown(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input MarkdownInput,
) (*mcp.CallToolResult, MarkdownOutput, error) {
	return nil, MarkdownOutput{Text: s.ports.Markdown.Clean(input.Text)}, nil
}

func (s *Server) handleFormatMarkdown(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FormatMarkdownInput,
) (*mcp.CallToolResult, FormatMarkdownOutput, error) {
	opts := domain.DefaultFormatOptions()
	if input.PrintWidth > 0 {
		opts.PrintWidth = input.PrintWidth
	}
	if input.ProseWrap != "" {
		opts.ProseWrap = domain.ProseWrap(input.ProseWrap)
		if !opts.ProseWrap.IsValid() {
			return nil, FormatMarkdownOutput{}, fmt.Errorf("%w: prose_wrap %q", domain.ErrInvalidInput, input.ProseWrap)
		}
	}
	if input.TabWidth > 0 {
		opts.TabWidth = input.TabWidth
	}
	opts.UseTabs = input.UseTabs

	result := s.ports.Markdown.FormatWith(ctx, input.Text, opts)
	output := FormatMarkdownOutput{
		Text:     result.Text,
		Fallback: result.Fallback,
	}
	if result.Err != nil {
		output.Warning = result.Err.Error()
	}
	return nil, output, nil
}

func (s *Server) handleRenderMarkdown(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input RenderMarkdownInput,
) (*mcp.CallToolResult, RenderMarkdownOutput, error) {
	target := domain.RenderHTML
	if input.Target != "" {
		target = domain.RenderTarget(input.Target)
	}
	if !target.IsValid() {
		return nil, RenderMarkdownOutput{}, fmt.Errorf("%w: target %q", domain.ErrUnsupportedType, input.Target)
	}

	return nil, RenderMarkdownOutput{
		Output: s.ports.Markdown.Render(input.Text, target),
		Target: string(target),
	}, nil
}

func (s *Server) handleFormatJSON(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input JSONInput,
) (*mcp.CallToolResult, JSONOutput, error) {
	out, err := s.ports.JSON.Format(input.JSON)
	if err != nil {
		return nil, JSONOutput{}, errors.New(jsontree.Message(jsontree.FormatErrorPrefix, err))
	}
	return nil, JSONOutput{JSON: out}, nil
}

func (s *Server) handleMinifyJSON(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input JSONInput,
) (*mcp.CallToolResult, JSONOutput, error) {
	out, err := s.ports.JSON.Minify(input.JSON)
	if err != nil {
		return nil, JSONOutput{}, errors.New(jsontree.Message(jsontree.MinifyErrorPrefix, err))
	}
	return nil, JSONOutput{JSON: out}, nil
}

func (s *Server) handleJSONTree(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input JSONTreeInput,
) (*mcp.CallToolResult, JSONTreeOutput, error) {
	if input.Collapsed < 0 {
		return nil, JSONTreeOutput{}, fmt.Errorf("%w: collapsed must not be negative", domain.ErrInvalidInput)
	}
	return nil, JSONTreeOutput{Tree: s.ports.JSON.View(input.JSON, input.Collapsed)}, nil
}
