// Package preview provides the scrollable output panel for the TUI.
package preview

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wrap"

	"github.com/custodia-labs/vibepad/internal/adapters/driving/tui/styles"
)

// Panel shows rendered output in a viewport.
type Panel struct {
	viewport viewport.Model
	styles   *styles.Styles
	content  string
	wrap     bool
	width    int
	height   int
}

// New creates a preview panel. When wrapLines is set, lines wider than the
// panel are hard-wrapped.
func New(s *styles.Styles, wrapLines bool) *Panel {
	if s == nil {
		s = styles.DefaultStyles()
	}
	p := &Panel{
		viewport: viewport.New(40, 10),
		styles:   s,
		wrap:     wrapLines,
	}
	p.SetSize(40, 10)
	return p
}

// Update handles viewport messages such as mouse wheel events.
func (p *Panel) Update(msg tea.Msg) (*Panel, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View renders the visible part of the content.
func (p *Panel) View() string {
	return p.viewport.View()
}

// SetContent replaces the content, keeping the scroll position when possible.
func (p *Panel) SetContent(content string) {
	p.content = content
	p.refresh()
}

// Content returns the content as given to SetContent.
func (p *Panel) Content() string {
	return p.content
}

func (p *Panel) refresh() {
	content := strings.TrimRight(p.content, "\n")
	if p.wrap && p.viewport.Width > 0 {
		content = wrap.String(content, p.viewport.Width)
	}
	offset := p.viewport.YOffset
	p.viewport.SetContent(content)
	p.viewport.SetYOffset(offset)
}

// SetSize sets the outer size of the panel, border included.
func (p *Panel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.viewport.Width = max(width-2, 1)
	p.viewport.Height = max(height-2, 1)
	p.refresh()
}

// Width returns the current outer width.
func (p *Panel) Width() int {
	return p.width
}

// InnerWidth returns the width available to content.
func (p *Panel) InnerWidth() int {
	return p.viewport.Width
}

// ScrollUp moves up by one page.
func (p *Panel) ScrollUp() {
	p.viewport.SetYOffset(p.viewport.YOffset - p.viewport.Height)
}

// ScrollDown moves down by one page.
func (p *Panel) ScrollDown() {
	p.viewport.SetYOffset(p.viewport.YOffset + p.viewport.Height)
}

// GotoTop scrolls to the first line.
func (p *Panel) GotoTop() {
	p.viewport.SetYOffset(0)
}

// Offset returns the index of the first visible line.
func (p *Panel) Offset() int {
	return p.viewport.YOffset
}

// TotalLines returns the number of content lines after wrapping.
func (p *Panel) TotalLines() int {
	return p.viewport.TotalLineCount()
}
