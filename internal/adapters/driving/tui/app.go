package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/vibepad/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/vibepad/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/vibepad/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/vibepad/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/vibepad/internal/adapters/driving/tui/views/editor"
	"github.com/custodia-labs/vibepad/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/vibepad/internal/core/domain"
	"github.com/custodia-labs/vibepad/internal/logger"
)

// SplitStep is how far one resize key press moves the split.
const SplitStep = 0.05

// App is the dual editor following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	// views holds one editor per kind.
	views map[domain.EditorKind]*editor.View

	status *status.Bar

	// settingsView edits the theme and the API key.
	settingsView *settings.View

	// showSettings is set while the settings view replaces the editors.
	showSettings bool

	// active is the editor shown and receiving keys.
	active domain.EditorKind

	// ratio is the share of the width given to the input panel.
	ratio float64

	showHelp bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates the first window size has arrived.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the dual editor with the given ports.
// The theme, collapse depth and layout come from the settings service when
// one is provided.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	opts := domain.DefaultViewerOptions()
	state := domain.DefaultUIState()
	if ports.Settings != nil {
		opts = ports.Settings.Get()
		state = ports.Settings.UIState()
	}
	if !state.ActiveTab.IsValid() {
		state.ActiveTab = domain.EditorJSON
	}

	a := &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: styles.NewStyles(styles.ThemeFor(opts.Theme.Display())),
		keymap: keymap.DefaultKeyMap(),
		help:   help.New(),
		active: state.ActiveTab,
		ratio:  domain.ClampSplitRatio(state.SplitRatio),
	}
	a.status = status.NewBar(a.styles, a.keymap)
	a.settingsView = settings.NewView(a.styles, ports.Settings, ports.Credentials)
	a.buildViews()
	a.views[domain.EditorJSON].SetCollapsed(opts.Collapsed)
	a.focusActive()
	return a, nil
}

func (a *App) buildViews() {
	deps := editor.Deps{
		Markdown:  a.ports.Markdown,
		JSON:      a.ports.JSON,
		Clipboard: a.ports.Clipboard,
	}
	a.views = make(map[domain.EditorKind]*editor.View, 2)
	for _, kind := range domain.AllEditorKinds() {
		a.views[kind] = editor.NewView(a.ctx, kind, a.styles, a.keymap, deps)
	}
}

// WithContext sets the context for the app.
// It must be called before the program starts.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	collapsed := a.views[domain.EditorJSON].Collapsed()
	a.buildViews()
	a.views[domain.EditorJSON].SetCollapsed(collapsed)
	a.focusActive()
	return a
}

// Init implements tea.Model.
// It loads the stored editor content.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("vibepad"),
		a.activeView().Init(),
	}
	for _, kind := range domain.AllEditorKinds() {
		cmds = append(cmds, a.loadContent(kind))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.status.SetSummary(a.activeView().Summary())
	return a, cmd
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layout()
		a.settingsView.SetDimensions(msg.Width, max(msg.Height-2, 4))
		return nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.TabChanged:
		return a.activate(msg.Kind)

	case messages.ContentLoaded:
		return a.forward(msg.Kind, msg)

	case messages.ClipboardRead:
		return a.forward(msg.Kind, msg)

	case messages.FormatCompleted:
		return a.forward(msg.Kind, msg)

	case messages.ContentSaved:
		if msg.Err != nil {
			logger.Warn("save editors: %v", msg.Err)
			return a.toast("Save failed", messages.ToastError)
		}
		return a.toast("Saved", messages.ToastSuccess)

	case messages.UIStateSaved:
		if msg.Err != nil {
			logger.Warn("save layout: %v", msg.Err)
			return a.toast("Could not save layout", messages.ToastError)
		}
		return nil

	case messages.SettingsLoaded, messages.APIKeySaved, messages.APIKeyCleared:
		var cmd tea.Cmd
		a.settingsView, cmd = a.settingsView.Update(msg)
		return cmd

	case messages.ThemeChanged:
		a.settingsView.Update(msg)
		if msg.Err != nil {
			logger.Warn("save theme: %v", msg.Err)
			return a.toast("Could not save theme", messages.ToastError)
		}
		a.restyle(msg.Theme)
		return a.toast("Theme: "+msg.Theme.Description(), messages.ToastSuccess)

	case messages.SettingsClosed:
		a.showSettings = false
		return a.focusActive()

	case messages.ShowToast, messages.ToastExpired:
		var cmd tea.Cmd
		a.status, cmd = a.status.Update(msg)
		return cmd

	case messages.ErrorOccurred:
		logger.Error("%v", msg.Err)
		a.err = msg.Err
		return a.toast(msg.Err.Error(), messages.ToastError)

	case messages.Quit:
		return a.quit()
	}

	var cmd tea.Cmd
	a.views[a.active], cmd = a.activeView().Update(msg)
	return cmd
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.showHelp {
		if msg.String() == "ctrl+c" {
			return a.quit()
		}
		a.showHelp = false
		return nil
	}
	if a.showSettings {
		if msg.String() == "ctrl+c" {
			return a.quit()
		}
		var cmd tea.Cmd
		a.settingsView, cmd = a.settingsView.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a.quit()
	case key.Matches(msg, a.keymap.Help):
		a.showHelp = true
		return nil
	case key.Matches(msg, a.keymap.Settings):
		return a.openSettings()
	case key.Matches(msg, a.keymap.SwitchTab):
		next := a.other()
		return func() tea.Msg { return messages.TabChanged{Kind: next} }
	case key.Matches(msg, a.keymap.Save):
		return a.saveContent()
	case key.Matches(msg, a.keymap.Shrink):
		return a.resize(-SplitStep)
	case key.Matches(msg, a.keymap.Grow):
		return a.resize(SplitStep)
	}

	var cmd tea.Cmd
	a.views[a.active], cmd = a.activeView().Update(msg)
	return cmd
}

// openSettings replaces the editors with the settings view.
func (a *App) openSettings() tea.Cmd {
	a.showSettings = true
	a.settingsView.Reset()
	a.activeView().Blur()
	return a.settingsView.Init()
}

// restyle swaps the palette in place; every component shares a.styles.
func (a *App) restyle(theme domain.Theme) {
	*a.styles = *styles.NewStyles(styles.ThemeFor(theme.Display()))
}

func (a *App) forward(kind domain.EditorKind, msg tea.Msg) tea.Cmd {
	v, ok := a.views[kind]
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	a.views[kind], cmd = v.Update(msg)
	return cmd
}

// activate shows the editor for kind and persists the choice.
func (a *App) activate(kind domain.EditorKind) tea.Cmd {
	if !kind.IsValid() || kind == a.active {
		return nil
	}
	a.active = kind
	return tea.Batch(a.focusActive(), a.saveUIState())
}

func (a *App) focusActive() tea.Cmd {
	for kind, v := range a.views {
		if kind != a.active {
			v.Blur()
		}
	}
	return a.activeView().Focus()
}

func (a *App) other() domain.EditorKind {
	if a.active == domain.EditorJSON {
		return domain.EditorMarkdown
	}
	return domain.EditorJSON
}

// resize moves the split by delta and persists it.
func (a *App) resize(delta float64) tea.Cmd {
	ratio := domain.ClampSplitRatio(a.ratio + delta)
	if ratio == a.ratio {
		return nil
	}
	a.ratio = ratio
	a.layout()
	return a.saveUIState()
}

// layout sizes both editors for the window and re-wraps the Markdown
// preview to its new width.
func (a *App) layout() {
	if !a.ready {
		return
	}
	bodyHeight := max(a.height-2, 4)
	for _, v := range a.views {
		v.SetSize(a.width, bodyHeight, a.ratio)
	}
	a.status.SetWidth(a.width)
	a.help.Width = a.width

	if a.ports.Resizer == nil {
		return
	}
	md := a.views[domain.EditorMarkdown]
	if err := a.ports.Resizer.Resize(md.PreviewWidth()); err != nil {
		logger.Warn("resize markdown renderer: %v", err)
		return
	}
	md.Refresh()
}

func (a *App) loadContent(kind domain.EditorKind) tea.Cmd {
	ws := a.ports.Workspace
	if ws == nil {
		return nil
	}
	ctx := a.ctx
	return func() tea.Msg {
		content, err := ws.Load(ctx, kind)
		return messages.ContentLoaded{Kind: kind, Content: content, Err: err}
	}
}

// saveContent persists both editors.
func (a *App) saveContent() tea.Cmd {
	ws := a.ports.Workspace
	if ws == nil {
		return nil
	}
	ctx := a.ctx
	contents := make(map[domain.EditorKind]string, len(a.views))
	for kind, v := range a.views {
		contents[kind] = v.Content()
	}
	return func() tea.Msg {
		var errs []error
		for kind, content := range contents {
			if err := ws.Save(ctx, kind, content); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", kind, err))
			}
		}
		return messages.ContentSaved{Err: errors.Join(errs...)}
	}
}

func (a *App) saveUIState() tea.Cmd {
	settings := a.ports.Settings
	if settings == nil {
		return nil
	}
	state := domain.UIState{ActiveTab: a.active, SplitRatio: a.ratio}
	return func() tea.Msg {
		return messages.UIStateSaved{Err: settings.SaveUIState(state)}
	}
}

// quit saves the editors and the layout, then exits.
func (a *App) quit() tea.Cmd {
	return tea.Sequence(a.saveContent(), a.saveUIState(), tea.Quit)
}

func (a *App) toast(text string, level messages.ToastLevel) tea.Cmd {
	return a.status.ShowToast(text, level)
}

func (a *App) activeView() *editor.View {
	return a.views[a.active]
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	body := a.activeView().View()
	switch {
	case a.showHelp:
		body = a.viewHelp()
	case a.showSettings:
		body = a.settingsView.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, a.viewTabs(), body, a.status.View())
}

func (a *App) viewTabs() string {
	tabs := make([]string, 0, len(a.views))
	for _, kind := range domain.AllEditorKinds() {
		style := a.styles.Tab
		if kind == a.active {
			style = a.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(kind.Title()))
	}
	return a.styles.TabBar.Width(a.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (a *App) viewHelp() string {
	title := a.styles.Title.Render("Keys")
	footer := a.styles.Help.Render("Press any key to return")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", a.help.FullHelpView(a.keymap.FullHelp()), "", footer)
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// ActiveTab returns the editor currently shown.
func (a *App) ActiveTab() domain.EditorKind {
	return a.active
}

// SplitRatio returns the share of the width given to the input panel.
func (a *App) SplitRatio() float64 {
	return a.ratio
}

// ShowingHelp reports whether the key reference is open.
func (a *App) ShowingHelp() bool {
	return a.showHelp
}

// ShowingSettings reports whether the settings view is open.
func (a *App) ShowingSettings() bool {
	return a.showSettings
}

// Settings returns the settings view.
func (a *App) Settings() *settings.View {
	return a.settingsView
}

// Editor returns the view for kind.
func (a *App) Editor(kind domain.EditorKind) *editor.View {
	return a.views[kind]
}

// Status returns the status bar.
func (a *App) Status() *status.Bar {
	return a.status
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.layout()
}
