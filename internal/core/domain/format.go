package domain

// ProseWrap controls how the formatter wraps paragraph text.
type ProseWrap string

// Prose wrap modes.
const (
	// ProseWrapAlways wraps prose at PrintWidth.
	ProseWrapAlways ProseWrap = "always"

	// ProseWrapNever leaves each paragraph on one line.
	ProseWrapNever ProseWrap = "never"

	// ProseWrapPreserve keeps the formatter's own line breaks.
	ProseWrapPreserve ProseWrap = "preserve"
)

// IsValid returns true if the prose wrap mode is recognised.
func (p ProseWrap) IsValid() bool {
	switch p {
	case ProseWrapAlways, ProseWrapNever, ProseWrapPreserve:
		return true
	default:
		return false
	}
}

// ParserMarkdown is the only parser the formatter accepts.
const ParserMarkdown = "markdown"

// FormatOptions configures a Formatter call.
type FormatOptions struct {
	// Parser selects the input language.
	Parser string

	// ProseWrap controls paragraph wrapping.
	ProseWrap ProseWrap

	// PrintWidth is the line width used when wrapping.
	PrintWidth int

	// TabWidth is the number of spaces a tab expands to.
	TabWidth int

	// UseTabs keeps tabs instead of expanding them.
	UseTabs bool
}

// DefaultFormatOptions returns the options used by the editor.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		Parser:     ParserMarkdown,
		ProseWrap:  ProseWrapAlways,
		PrintWidth: 80,
		TabWidth:   2,
		UseTabs:    false,
	}
}

// FormatResult is the outcome of a formatting request.
type FormatResult struct {
	// Text is the formatted text, or the cleanup output on fallback.
	Text string

	// Fallback is true when the formatter was absent or failed.
	Fallback bool

	// Err is the formatter error that caused the fallback, if any.
	Err error
}

// PasteResult is the editor text after a paste.
type PasteResult struct {
	// Text is the full editor text.
	Text string

	// Cursor is the byte offset just after the inserted text.
	Cursor int
}

// RenderTarget selects the output of the Markdown preview.
type RenderTarget string

// Render targets.
const (
	RenderHTML     RenderTarget = "html"
	RenderTerminal RenderTarget = "terminal"
)

// IsValid returns true if the render target is recognised.
func (r RenderTarget) IsValid() bool {
	return r == RenderHTML || r == RenderTerminal
}
