// Package markdownfmt implements the Markdown Formatter port with
// github.com/shurcooL/markdownfmt.
//
// markdownfmt re-renders the document from its parse tree: paragraphs are
// joined onto one line, list numbering is fixed up and spacing between
// blocks is normalised. This adapter then applies the FormatOptions the
// editor asks for: ATX headings, prose wrapping and tab expansion.
package markdownfmt

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/shurcooL/markdownfmt/markdown"

	"github.com/custodia-labs/vibepad/internal/core/domain"
	"github.com/custodia-labs/vibepad/internal/core/ports/driven"
)

// Ensure Formatter implements the interface.
var _ driven.Formatter = (*Formatter)(nil)

var (
	setextH1    = regexp.MustCompile(`^=+\s*$`)
	setextH2    = regexp.MustCompile(`^-+\s*$`)
	fence       = regexp.MustCompile("^\\s*(```|~~~)")
	listItem    = regexp.MustCompile(`^\s*([-*+]|\d+[.)])(\s|$)`)
	thematic    = regexp.MustCompile(`^\s*([-*_])(\s*([-*_]))+\s*$`)
	blockPrefix = regexp.MustCompile(`^\s*(#|>|\||<)`)
)

// Formatter formats Markdown with markdownfmt.
type Formatter struct{}

// New creates a new Formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format formats text according to opts.
func (f *Formatter) Format(ctx context.Context, text string, opts domain.FormatOptions) (string, error) {
	if opts.Parser != "" && opts.Parser != domain.ParserMarkdown {
		return "", fmt.Errorf("%w: parser %q", domain.ErrUnsupportedType, opts.Parser)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	out, err := markdown.Process("", []byte(text), nil)
	if err != nil {
		return "", fmt.Errorf("format markdown: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	lines := strings.Split(string(out), "\n")
	lines = atxHeadings(lines)
	if !opts.UseTabs {
		lines = expandTabs(lines, opts.TabWidth)
	}
	if opts.ProseWrap == domain.ProseWrapAlways && opts.PrintWidth > 0 {
		lines = wrapProse(lines, opts.PrintWidth)
	}
	lines = trimTrailing(lines)

	return strings.Trim(strings.Join(lines, "\n"), "\n"), nil
}

// atxHeadings rewrites setext headings as ATX headings outside code fences.
func atxHeadings(lines []string) []string {
	out := make([]string, 0, len(lines))
	inFence := false
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if fence.MatchString(line) {
			inFence = !inFence
		}
		if !inFence && i+1 < len(lines) && isParagraphLine(line) {
			next := lines[i+1]
			switch {
			case setextH1.MatchString(next):
				out = append(out, "# "+strings.TrimSpace(line))
				i++
				continue
			case setextH2.MatchString(next):
				out = append(out, "## "+strings.TrimSpace(line))
				i++
				continue
			}
		}
		out = append(out, line)
	}
	return out
}

// expandTabs replaces tabs with spaces up to the next tab stop.
func expandTabs(lines []string, width int) []string {
	if width <= 0 {
		width = domain.DefaultFormatOptions().TabWidth
	}
	for i, line := range lines {
		if !strings.Contains(line, "\t") {
			continue
		}
		var b strings.Builder
		col := 0
		for _, r := range line {
			if r == '\t' {
				n := width - col%width
				b.WriteString(strings.Repeat(" ", n))
				col += n
				continue
			}
			b.WriteRune(r)
			col++
		}
		lines[i] = b.String()
	}
	return lines
}

// wrapProse wraps paragraph lines at width. Code, headings, tables, lists,
// quotes and HTML are left alone.
func wrapProse(lines []string, width int) []string {
	out := make([]string, 0, len(lines))
	inFence := false
	for _, line := range lines {
		if fence.MatchString(line) {
			inFence = !inFence
			out = append(out, line)
			continue
		}
		if inFence || !isParagraphLine(line) || len(line) <= width {
			out = append(out, line)
			continue
		}
		hardBreak := strings.HasSuffix(line, "  ")
		wrapped := strings.Split(wrap(strings.TrimRight(line, " "), width), "\n")
		if hardBreak {
			wrapped[len(wrapped)-1] += "  "
		}
		out = append(out, wrapped...)
	}
	return out
}

// wrap breaks s at spaces only. Hyphens are not break points: a soft
// break after one would render as a space.
func wrap(s string, width int) string {
	w := wordwrap.NewWriter(width)
	w.Breakpoints = nil
	_, _ = w.Write([]byte(s))
	_ = w.Close()
	return w.String()
}

// isParagraphLine reports whether line is plain paragraph text.
func isParagraphLine(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
		return false
	}
	return !blockPrefix.MatchString(line) &&
		!listItem.MatchString(line) &&
		!thematic.MatchString(line) &&
		!setextH1.MatchString(line)
}

// trimTrailing strips trailing whitespace, keeping two-space hard breaks
// that are followed by more paragraph text.
func trimTrailing(lines []string) []string {
	for i, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		if strings.HasSuffix(line, "  ") && trimmed != "" &&
			i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
			lines[i] = trimmed + "  "
			continue
		}
		lines[i] = trimmed
	}
	return lines
}
