package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"quit", km.Quit, []string{"esc", "ctrl+c"}},
		{"help", km.Help, []string{"f1"}},
		{"settings", km.Settings, []string{"f2"}},
		{"switch tab", km.SwitchTab, []string{"ctrl+t"}},
		{"format", km.Format, []string{"ctrl+f"}},
		{"minify", km.Minify, []string{"alt+m"}},
		{"paste", km.Paste, []string{"ctrl+v"}},
		{"copy", km.Copy, []string{"alt+c"}},
		{"clear", km.Clear, []string{"ctrl+l"}},
		{"save", km.Save, []string{"ctrl+s"}},
		{"shrink", km.Shrink, []string{"alt+left"}},
		{"grow", km.Grow, []string{"alt+right"}},
		{"expand", km.Expand, []string{"alt+down"}},
		{"collapse", km.Collapse, []string{"alt+up"}},
		{"scroll up", km.ScrollUp, []string{"pgup"}},
		{"scroll down", km.ScrollDown, []string{"pgdown"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestDefaultKeyMap_NoDuplicateKeys(t *testing.T) {
	km := DefaultKeyMap()

	seen := make(map[string]string)
	for _, group := range km.FullHelp() {
		for _, b := range group {
			for _, k := range b.Keys() {
				prev, dup := seen[k]
				assert.False(t, dup, "key %q bound to %q and %q", k, prev, b.Help().Desc)
				seen[k] = b.Help().Desc
			}
		}
	}
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ShortHelp()

	require.Len(t, help, 5)
	assert.Equal(t, km.SwitchTab.Keys(), help[0].Keys())
	assert.Equal(t, km.Quit.Keys(), help[4].Keys())
}

func TestKeyMap_FullHelp_CoversEveryBinding(t *testing.T) {
	km := DefaultKeyMap()

	count := 0
	for _, group := range km.FullHelp() {
		count += len(group)
	}

	assert.Equal(t, 16, count)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("esc", km.Quit))
	assert.False(t, Matches("q", km.Quit))
	assert.False(t, Matches("", km.Format))
}
