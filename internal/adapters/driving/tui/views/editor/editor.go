// Package editor provides the editor view: a text input beside a live preview.
//
// One View serves each editor kind. The JSON view previews a collapsible
// tree; the Markdown view previews the terminal rendering and runs pasted
// text through the cleanup pass and the formatter.
package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/vibepad/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/vibepad/internal/adapters/driving/tui/components/preview"
	"github.com/custodia-labs/vibepad/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/vibepad/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/vibepad/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/vibepad/internal/core/domain"
	"github.com/custodia-labs/vibepad/internal/core/ports/driven"
	"github.com/custodia-labs/vibepad/internal/core/ports/driving"
	"github.com/custodia-labs/vibepad/internal/logger"
	"github.com/custodia-labs/vibepad/internal/normalisers/jsontree"
)

// Placeholders shown in empty editors.
const (
	JSONPlaceholder     = "Paste JSON here..."
	MarkdownPlaceholder = "Paste Markdown here..."
)

// Deps are the services a view uses. Clipboard may be nil.
type Deps struct {
	Markdown  driving.MarkdownService
	JSON      driving.JSONService
	Clipboard driven.Clipboard
}

// handler reacts to a bound key.
type handler func() tea.Cmd

// View is one editor tab.
type View struct {
	ctx    context.Context
	kind   domain.EditorKind
	styles *styles.Styles
	keymap *keymap.KeyMap
	deps   Deps

	editor  *input.Editor
	preview *preview.Panel

	// handlers maps key strings to their actions. Built once in NewView.
	handlers map[string]handler

	// generation increases on every content change. A format result is
	// applied only if the generation has not moved since the request.
	generation uint64

	// collapsed is the tree collapse depth; 0 expands everything.
	collapsed int

	width  int
	height int
	ratio  float64
}

// NewView creates an editor view for kind.
func NewView(ctx context.Context, kind domain.EditorKind, s *styles.Styles, km *keymap.KeyMap, deps Deps) *View {
	if ctx == nil {
		ctx = context.Background()
	}
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	placeholder := JSONPlaceholder
	if kind == domain.EditorMarkdown {
		placeholder = MarkdownPlaceholder
	}

	v := &View{
		ctx:     ctx,
		kind:    kind,
		styles:  s,
		keymap:  km,
		deps:    deps,
		editor:  input.NewEditor(s, placeholder),
		preview: preview.New(s, kind == domain.EditorJSON),
		ratio:   domain.DefaultSplitRatio,
	}
	v.handlers = v.buildHandlers()
	v.refresh()
	return v
}

func (v *View) buildHandlers() map[string]handler {
	m := make(map[string]handler)
	bind := func(b key.Binding, h handler) {
		for _, k := range b.Keys() {
			m[k] = h
		}
	}

	bind(v.keymap.Format, v.format)
	bind(v.keymap.Paste, v.readClipboard)
	bind(v.keymap.Copy, v.copy)
	bind(v.keymap.Clear, v.clear)
	bind(v.keymap.ScrollUp, func() tea.Cmd { v.preview.ScrollUp(); return nil })
	bind(v.keymap.ScrollDown, func() tea.Cmd { v.preview.ScrollDown(); return nil })

	if v.kind == domain.EditorJSON {
		bind(v.keymap.Minify, v.minify)
		bind(v.keymap.Expand, v.expand)
		bind(v.keymap.Collapse, v.collapse)
	}
	return m
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.editor.Init()
}

// Update handles messages for this editor. Messages for the other editor
// kind are ignored.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v, v.handleKey(msg)

	case messages.ContentLoaded:
		if msg.Kind != v.kind {
			return v, nil
		}
		if msg.Err != nil {
			return v, toast("Could not load "+v.kind.Title(), messages.ToastError)
		}
		v.SetContent(msg.Content)
		return v, nil

	case messages.ClipboardRead:
		if msg.Kind != v.kind {
			return v, nil
		}
		if msg.Err != nil {
			return v, toast("Could not read clipboard", messages.ToastError)
		}
		return v, v.paste(msg.Text)

	case messages.FormatCompleted:
		if msg.Kind != v.kind {
			return v, nil
		}
		return v, v.applyFormat(msg)
	}

	var cmd tea.Cmd
	v.editor, cmd = v.editor.Update(msg)
	return v, cmd
}

func (v *View) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Paste {
		return v.paste(string(msg.Runes))
	}
	if h, ok := v.handlers[msg.String()]; ok {
		return h()
	}

	before := v.editor.Value()
	var cmd tea.Cmd
	v.editor, cmd = v.editor.Update(msg)
	if v.editor.Value() != before {
		v.changed()
	}
	return cmd
}

// changed records a content change and refreshes the preview.
func (v *View) changed() {
	v.generation++
	v.refresh()
}

// Refresh re-renders the preview, e.g. after the renderer changed.
func (v *View) Refresh() {
	v.refresh()
}

// refresh re-renders the preview from the editor content.
func (v *View) refresh() {
	text := v.editor.Value()
	if v.kind == domain.EditorJSON {
		if v.deps.JSON == nil {
			v.preview.SetContent(driving.EmptyJSONPreview)
			return
		}
		v.preview.SetContent(v.deps.JSON.View(text, v.collapsed))
		return
	}

	if v.deps.Markdown == nil {
		v.preview.SetContent(driving.EmptyMarkdownPreview)
		return
	}
	v.preview.SetContent(v.deps.Markdown.Render(text, domain.RenderTerminal))
}

func (v *View) readClipboard() tea.Cmd {
	if v.deps.Clipboard == nil {
		return toast("Clipboard not available", messages.ToastError)
	}
	kind := v.kind
	clip := v.deps.Clipboard
	return func() tea.Msg {
		text, err := clip.Read()
		return messages.ClipboardRead{Kind: kind, Text: text, Err: err}
	}
}

// paste inserts text at the cursor. Markdown is cleaned first and then sent
// to the formatter; JSON is inserted as is.
func (v *View) paste(text string) tea.Cmd {
	if text == "" {
		return nil
	}

	if v.kind == domain.EditorJSON || v.deps.Markdown == nil {
		v.editor.InsertString(text)
		v.changed()
		return nil
	}

	off := v.editor.CursorOffset()
	res := v.deps.Markdown.Paste(v.editor.Value(), off, off, text)
	if res.Cursor > off {
		v.editor.InsertString(res.Text[off:res.Cursor])
	}
	v.changed()
	return v.formatCmd(false)
}

func (v *View) format() tea.Cmd {
	if v.kind == domain.EditorMarkdown {
		if v.deps.Markdown == nil {
			return toast("Formatter not available", messages.ToastError)
		}
		return v.formatCmd(true)
	}

	if v.deps.JSON == nil {
		return nil
	}
	out, err := v.deps.JSON.Format(v.editor.Value())
	if err != nil {
		return toast(jsontree.Message(jsontree.FormatErrorPrefix, err), messages.ToastError)
	}
	v.replace(out)
	return toast("JSON formatted", messages.ToastSuccess)
}

// formatCmd runs the Markdown formatter off the UI goroutine.
func (v *View) formatCmd(announce bool) tea.Cmd {
	text := v.editor.Value()
	if text == "" && !announce {
		return nil
	}
	gen := v.generation
	kind := v.kind
	svc := v.deps.Markdown
	ctx := v.ctx
	return func() tea.Msg {
		return messages.FormatCompleted{
			Kind:       kind,
			Generation: gen,
			Result:     svc.Format(ctx, text),
			Announce:   announce,
		}
	}
}

func (v *View) applyFormat(msg messages.FormatCompleted) tea.Cmd {
	if msg.Generation != v.generation {
		logger.Debug("discarding stale format result (generation %d, now %d)", msg.Generation, v.generation)
		return nil
	}

	res := msg.Result
	if res.Text != "" && res.Text != v.editor.Value() {
		v.replace(res.Text)
	}

	if !msg.Announce {
		return nil
	}
	switch {
	case errors.Is(res.Err, domain.ErrFormatterUnavailable):
		return toast("Formatter not loaded, cleaned instead", messages.ToastError)
	case res.Err != nil:
		return toast("Formatting failed, cleaned instead", messages.ToastError)
	default:
		return toast("Markdown formatted", messages.ToastSuccess)
	}
}

func (v *View) minify() tea.Cmd {
	if v.deps.JSON == nil {
		return nil
	}
	out, err := v.deps.JSON.Minify(v.editor.Value())
	if err != nil {
		return toast(jsontree.Message(jsontree.MinifyErrorPrefix, err), messages.ToastError)
	}
	v.replace(out)
	return toast("JSON minified", messages.ToastSuccess)
}

func (v *View) copy() tea.Cmd {
	if v.deps.Clipboard == nil {
		return toast("Clipboard not available", messages.ToastError)
	}
	if err := v.deps.Clipboard.Write(v.editor.Value()); err != nil {
		logger.Warn("copy to clipboard: %v", err)
		return toast("Could not copy to clipboard", messages.ToastError)
	}
	return toast("Copied to clipboard", messages.ToastInfo)
}

func (v *View) clear() tea.Cmd {
	if v.editor.Value() == "" {
		return nil
	}
	v.editor.Reset()
	v.changed()
	v.preview.GotoTop()
	return toast(v.kind.Title()+" cleared", messages.ToastInfo)
}

// depth returns the nesting depth of the current JSON, or 0 if it does
// not parse.
func (v *View) depth() int {
	root, err := jsontree.Parse([]byte(v.editor.Value()))
	if err != nil {
		return 0
	}
	return root.Depth()
}

func (v *View) effectiveCollapse(depth int) int {
	if v.collapsed <= 0 || v.collapsed > depth {
		return depth
	}
	return v.collapsed
}

func (v *View) expand() tea.Cmd {
	depth := v.depth()
	if depth == 0 {
		return nil
	}
	next := v.effectiveCollapse(depth) + 1
	if next >= depth {
		next = 0
	}
	v.collapsed = next
	v.refresh()
	return nil
}

func (v *View) collapse() tea.Cmd {
	depth := v.depth()
	if depth == 0 {
		return nil
	}
	v.collapsed = max(v.effectiveCollapse(depth)-1, 1)
	v.refresh()
	return nil
}

// replace swaps the whole content.
func (v *View) replace(text string) {
	v.editor.SetValue(text)
	v.changed()
}

// View renders the input and preview panels side by side.
func (v *View) View() string {
	inputTitle := v.styles.PanelTitle.Render(v.kind.Title())
	previewTitle := v.styles.PanelTitle.Render(v.previewTitle())

	left := lipgloss.JoinVertical(lipgloss.Left, inputTitle, v.styles.FocusedPanel.Render(v.editor.View()))
	right := lipgloss.JoinVertical(lipgloss.Left, previewTitle, v.styles.Panel.Render(v.preview.View()))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (v *View) previewTitle() string {
	if v.kind == domain.EditorJSON {
		if v.collapsed > 0 {
			return fmt.Sprintf("Tree (depth %d)", v.collapsed)
		}
		return "Tree"
	}
	return "Preview"
}

// SetSize lays out the panels in width x height, giving ratio of the width
// to the input.
func (v *View) SetSize(width, height int, ratio float64) {
	v.width = width
	v.height = height
	v.ratio = domain.ClampSplitRatio(ratio)

	inputWidth := int(float64(width) * v.ratio)
	panelHeight := max(height-1, 3)
	v.editor.SetSize(inputWidth, panelHeight)
	v.preview.SetSize(width-inputWidth, panelHeight)
	v.refresh()
}

// PreviewWidth returns the width available to preview content.
func (v *View) PreviewWidth() int {
	return v.preview.InnerWidth()
}

// Focus gives the input keyboard focus.
func (v *View) Focus() tea.Cmd {
	return v.editor.Focus()
}

// Blur removes keyboard focus.
func (v *View) Blur() {
	v.editor.Blur()
}

// Kind returns the editor kind.
func (v *View) Kind() domain.EditorKind {
	return v.kind
}

// Content returns the editor text.
func (v *View) Content() string {
	return v.editor.Value()
}

// SetContent replaces the editor text without triggering the formatter.
func (v *View) SetContent(text string) {
	v.editor.SetValue(text)
	v.changed()
	v.preview.GotoTop()
}

// Preview returns the current preview content.
func (v *View) Preview() string {
	return v.preview.Content()
}

// Generation returns the content generation.
func (v *View) Generation() uint64 {
	return v.generation
}

// Collapsed returns the tree collapse depth.
func (v *View) Collapsed() int {
	return v.collapsed
}

// SetCollapsed sets the tree collapse depth; 0 expands everything.
func (v *View) SetCollapsed(depth int) {
	v.collapsed = max(depth, 0)
	v.refresh()
}

// Summary describes the content for the status bar.
func (v *View) Summary() string {
	text := v.editor.Value()
	if text == "" {
		return v.kind.Title() + ": empty"
	}
	return fmt.Sprintf("%s: %d lines, %d bytes", v.kind.Title(), v.editor.LineCount(), len(text))
}

func toast(text string, level messages.ToastLevel) tea.Cmd {
	return func() tea.Msg {
		return messages.ShowToast{Text: text, Level: level}
	}
}
