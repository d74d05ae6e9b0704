// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/vibepad/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/vibepad/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/vibepad/internal/adapters/driving/tui/styles"
)

// ToastDuration is how long a toast stays visible.
const ToastDuration = 2500 * time.Millisecond

// Bar displays the editor summary, the current toast and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	summary string
	toast   string
	level   messages.ToastLevel
	toastID int
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles toast messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.ShowToast:
		return s, s.ShowToast(msg.Text, msg.Level)
	case messages.ToastExpired:
		if msg.ID == s.toastID {
			s.toast = ""
		}
	}
	return s, nil
}

// ShowToast displays text until ToastDuration has passed or another toast
// replaces it. The returned command delivers the expiry.
func (s *Bar) ShowToast(text string, level messages.ToastLevel) tea.Cmd {
	s.toastID++
	s.toast = text
	s.level = level
	id := s.toastID
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return messages.ToastExpired{ID: id}
	})
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the toast, or the summary when no toast is shown.
func (s *Bar) renderLeft() string {
	if s.toast == "" {
		return s.styles.Muted.Render(s.summary)
	}
	switch s.level {
	case messages.ToastError:
		return s.styles.Error.Render(s.toast)
	case messages.ToastSuccess:
		return s.styles.Success.Render(s.toast)
	default:
		return s.styles.Normal.Render(s.toast)
	}
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		hints = append(hints, hint(b))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

func hint(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("%s: %s", h.Key, h.Desc)
}

// SetSummary sets the text shown when no toast is visible.
func (s *Bar) SetSummary(summary string) {
	s.summary = summary
}

// Summary returns the summary text.
func (s *Bar) Summary() string {
	return s.summary
}

// Toast returns the visible toast text, or "".
func (s *Bar) Toast() string {
	return s.toast
}

// ToastLevel returns the level of the visible toast.
func (s *Bar) ToastLevel() messages.ToastLevel {
	return s.level
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear hides the toast.
func (s *Bar) Clear() {
	s.toast = ""
}
