// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the dual editor.
type KeyMap struct {
	// Quit saves both editors and exits.
	Quit key.Binding

	// Help toggles the key reference.
	Help key.Binding

	// Settings opens the theme and API key settings.
	Settings key.Binding

	// SwitchTab toggles between the JSON and Markdown editors.
	SwitchTab key.Binding

	// Format formats the active editor.
	Format key.Binding

	// Minify compacts the JSON editor.
	Minify key.Binding

	// Paste inserts the clipboard through the paste flow.
	Paste key.Binding

	// Copy copies the editor content to the clipboard.
	Copy key.Binding

	// Clear empties the active editor.
	Clear key.Binding

	// Save persists both editors.
	Save key.Binding

	// Shrink moves the split to the left.
	Shrink key.Binding

	// Grow moves the split to the right.
	Grow key.Binding

	// Expand shows one more tree level in the JSON preview.
	Expand key.Binding

	// Collapse shows one less tree level in the JSON preview.
	Collapse key.Binding

	// ScrollUp scrolls the preview up.
	ScrollUp key.Binding

	// ScrollDown scrolls the preview down.
	ScrollDown key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Settings: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "settings"),
		),
		SwitchTab: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "switch editor"),
		),
		Format: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "format"),
		),
		Minify: key.NewBinding(
			key.WithKeys("alt+m"),
			key.WithHelp("alt+m", "minify"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste"),
		),
		Copy: key.NewBinding(
			key.WithKeys("alt+c"),
			key.WithHelp("alt+c", "copy"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("alt+left"),
			key.WithHelp("alt+←", "narrow input"),
		),
		Grow: key.NewBinding(
			key.WithKeys("alt+right"),
			key.WithHelp("alt+→", "widen input"),
		),
		Expand: key.NewBinding(
			key.WithKeys("alt+down"),
			key.WithHelp("alt+↓", "expand tree"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("alt+up"),
			key.WithHelp("alt+↑", "collapse tree"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll preview"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll preview"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchTab, k.Format, k.Paste, k.Help, k.Quit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwitchTab, k.Format, k.Minify, k.Paste, k.Copy, k.Clear},
		{k.Shrink, k.Grow, k.Expand, k.Collapse, k.ScrollUp, k.ScrollDown},
		{k.Save, k.Settings, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
