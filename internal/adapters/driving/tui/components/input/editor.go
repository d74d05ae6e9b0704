// Package input provides the text editing component for the TUI.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/vibepad/internal/adapters/driving/tui/styles"
)

// Editor wraps a bubbles textarea with panel styling.
type Editor struct {
	textarea textarea.Model
	styles   *styles.Styles
	width    int
	height   int
}

// NewEditor creates a new editor component.
func NewEditor(s *styles.Styles, placeholder string) *Editor {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.MaxWidth = 0
	ta.Prompt = ""
	ta.FocusedStyle.CursorLine = ta.FocusedStyle.CursorLine.UnsetBackground()
	ta.Focus()

	e := &Editor{
		textarea: ta,
		styles:   s,
	}
	e.SetSize(40, 10)
	return e
}

// Init initialises the editor.
func (e *Editor) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles editing messages.
func (e *Editor) Update(msg tea.Msg) (*Editor, tea.Cmd) {
	var cmd tea.Cmd
	e.textarea, cmd = e.textarea.Update(msg)
	return e, cmd
}

// View renders the editor.
func (e *Editor) View() string {
	return e.textarea.View()
}

// Value returns the editor text.
func (e *Editor) Value() string {
	return e.textarea.Value()
}

// SetValue replaces the editor text and moves the cursor to the end.
func (e *Editor) SetValue(value string) {
	e.textarea.SetValue(value)
}

// InsertString inserts text at the cursor.
func (e *Editor) InsertString(s string) {
	e.textarea.InsertString(s)
}

// CursorOffset returns the byte offset of the cursor in Value.
func (e *Editor) CursorOffset() int {
	return offsetOf(e.textarea.Value(), e.textarea.Line(), e.column())
}

// column returns the cursor column in runes within its logical line.
func (e *Editor) column() int {
	info := e.textarea.LineInfo()
	return info.StartColumn + info.ColumnOffset
}

// offsetOf converts a line and rune column into a byte offset of value.
// Out of range positions are clamped.
func offsetOf(value string, line, col int) int {
	lines := strings.Split(value, "\n")
	if line < 0 {
		return 0
	}
	if line >= len(lines) {
		return len(value)
	}

	offset := 0
	for _, l := range lines[:line] {
		offset += len(l) + 1
	}

	current := lines[line]
	for i := range current {
		if col == 0 {
			return offset + i
		}
		col--
	}
	return offset + len(current)
}

// Focus sets focus on the editor.
func (e *Editor) Focus() tea.Cmd {
	return e.textarea.Focus()
}

// Blur removes focus from the editor.
func (e *Editor) Blur() {
	e.textarea.Blur()
}

// Focused returns whether the editor is focused.
func (e *Editor) Focused() bool {
	return e.textarea.Focused()
}

// SetSize sets the outer size of the editor, border included.
func (e *Editor) SetSize(width, height int) {
	e.width = width
	e.height = height
	e.textarea.SetWidth(max(width-2, 10))
	e.textarea.SetHeight(max(height-2, 1))
}

// Width returns the current width.
func (e *Editor) Width() int {
	return e.width
}

// Height returns the current height.
func (e *Editor) Height() int {
	return e.height
}

// LineCount returns the number of lines of text.
func (e *Editor) LineCount() int {
	return e.textarea.LineCount()
}

// Reset clears the editor.
func (e *Editor) Reset() {
	e.textarea.Reset()
}
