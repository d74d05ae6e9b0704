// Package markdown implements the synchronous Markdown cleanup pass.
//
// Normalise is the immediate fallback used when text is pasted or imported:
// it converts setext headings to ATX headings, strips accidental one to three
// space indents, trims trailing whitespace and collapses blank-line runs. The
// slower formatter may overwrite its output later; when the formatter is
// missing or fails, the output of Normalise is final.
package markdown

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/custodia-labs/vibepad/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// ws is the whitespace class used throughout: ASCII whitespace including \v,
// Unicode space separators (NBSP and friends), line and paragraph
// separators and the byte order mark. Go's \s covers only ASCII.
const ws = `\t\n\v\f\r\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	// setextH1 matches an underline of one or more '='.
	setextH1 = regexp.MustCompile(`^[` + ws + `]*=+[` + ws + `]*$`)

	// setextH2 matches an underline of two or more '-'.
	setextH2 = regexp.MustCompile(`^[` + ws + `]*-{2,}[` + ws + `]*$`)

	// bulletItem matches a line that starts a bullet list item.
	bulletItem = regexp.MustCompile(`^[` + ws + `]*[-*+][` + ws + `]`)

	// shallowIndent matches one to three leading whitespace characters before text.
	shallowIndent = regexp.MustCompile(`^[` + ws + `]{1,3}[^` + ws + `]`)

	// blockMarker matches lines whose indentation is meaningful: lists and quotes.
	blockMarker = regexp.MustCompile(`^[` + ws + `]*[-*+\d>]`)
)

// isSpace reports whether r belongs to the ws class.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// Normaliser exposes Normalise through the driven.Normaliser port.
type Normaliser struct{}

// New creates a new Markdown normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise cleans Markdown text. See the package-level Normalise.
func (n *Normaliser) Normalise(text string) string {
	return Normalise(text)
}

// Normalise returns text with setext headings rewritten as ATX headings,
// shallow paragraph indents removed, trailing whitespace trimmed, blank-line
// runs collapsed to one and leading and trailing blank lines dropped.
// Empty or whitespace-only input yields "".
func Normalise(text string) string {
	if strings.TrimFunc(text, isSpace) == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); {
		line := strings.TrimRightFunc(lines[i], isSpace)
		next := ""
		if i+1 < len(lines) {
			next = lines[i+1]
		}

		title := strings.TrimFunc(line, isSpace)
		if title != "" {
			if setextH1.MatchString(next) {
				out = append(out, "# "+title)
				i += 2
				continue
			}
			if setextH2.MatchString(next) && !bulletItem.MatchString(line) {
				out = append(out, "## "+title)
				i += 2
				continue
			}
		}

		if shallowIndent.MatchString(line) && !blockMarker.MatchString(line) {
			line = strings.TrimLeftFunc(line, isSpace)
		}

		out = append(out, line)
		i++
	}

	return strings.Join(trimBlankLines(collapseBlankLines(out)), "\n")
}

// collapseBlankLines keeps only the first blank line of every run.
func collapseBlankLines(lines []string) []string {
	result := make([]string, 0, len(lines))
	lastWasBlank := false
	for _, line := range lines {
		blank := isBlank(line)
		if blank && lastWasBlank {
			continue
		}
		result = append(result, line)
		lastWasBlank = blank
	}
	return result
}

// trimBlankLines drops blank lines from both ends.
func trimBlankLines(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && isBlank(lines[start]) {
		start++
	}
	for end > start && isBlank(lines[end-1]) {
		end--
	}
	return lines[start:end]
}

func isBlank(line string) bool {
	return strings.TrimFunc(line, isSpace) == ""
}
