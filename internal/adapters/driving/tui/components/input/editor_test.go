package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vibepad/internal/adapters/driving/tui/styles"
)

func TestNewEditor(t *testing.T) {
	e := NewEditor(styles.DefaultStyles(), "Paste JSON here")

	require.NotNil(t, e)
	assert.Equal(t, "", e.Value())
	assert.True(t, e.Focused())
}

func TestNewEditor_NilStyles(t *testing.T) {
	e := NewEditor(nil, "")

	require.NotNil(t, e)
	assert.NotNil(t, e.styles)
}

func TestEditor_Init(t *testing.T) {
	assert.NotNil(t, NewEditor(nil, "").Init())
}

func TestEditor_Typing(t *testing.T) {
	e := NewEditor(nil, "")

	updated, _ := e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")})

	assert.Equal(t, e, updated)
	assert.Equal(t, "ab", e.Value())
}

func TestEditor_SetValueAndReset(t *testing.T) {
	e := NewEditor(nil, "")

	e.SetValue("one\ntwo")
	assert.Equal(t, "one\ntwo", e.Value())
	assert.Equal(t, 2, e.LineCount())
	assert.Equal(t, len("one\ntwo"), e.CursorOffset())

	e.Reset()
	assert.Equal(t, "", e.Value())
	assert.Equal(t, 0, e.CursorOffset())
}

func TestEditor_InsertString(t *testing.T) {
	e := NewEditor(nil, "")
	e.SetValue("ab")

	e.InsertString("# x")

	assert.Equal(t, "ab# x", e.Value())
	assert.Equal(t, 5, e.CursorOffset())
}

func TestEditor_FocusAndBlur(t *testing.T) {
	e := NewEditor(nil, "")

	e.Blur()
	assert.False(t, e.Focused())

	e.Focus()
	assert.True(t, e.Focused())
}

func TestEditor_SetSize(t *testing.T) {
	e := NewEditor(nil, "")

	e.SetSize(60, 20)

	assert.Equal(t, 60, e.Width())
	assert.Equal(t, 20, e.Height())
	assert.NotEmpty(t, e.View())
}

func TestOffsetOf(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		line, col int
		expected  int
	}{
		{name: "start", value: "abc", expected: 0},
		{name: "middle of first line", value: "abc", col: 2, expected: 2},
		{name: "end of first line", value: "abc", col: 3, expected: 3},
		{name: "second line", value: "ab\ncd", line: 1, col: 1, expected: 4},
		{name: "multibyte runes", value: "é€x", col: 2, expected: 5},
		{name: "column past end", value: "ab\ncd", col: 9, expected: 2},
		{name: "line past end", value: "ab\ncd", line: 5, expected: 5},
		{name: "negative line", value: "ab", line: -1, expected: 0},
		{name: "empty value", value: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, offsetOf(tt.value, tt.line, tt.col))
		})
	}
}
