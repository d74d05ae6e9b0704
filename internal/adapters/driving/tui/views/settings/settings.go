// Package settings provides the settings view for the TUI: the theme picker
// and the Anthropic API key.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/vibepad/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/vibepad/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/vibepad/internal/core/domain"
	"github.com/custodia-labs/vibepad/internal/core/ports/driving"
)

// Section tracks which settings section is active.
type Section int

const (
	SectionOverview Section = iota
	SectionTheme
	SectionAPIKey
)

// Toast texts for the API key actions.
const (
	ToastKeyRequired  = "Please enter an API key"
	ToastKeyFormat    = "Invalid API key format"
	ToastKeySaved     = "API key saved successfully"
	ToastKeySaveError = "Error saving API key"
	ToastKeyCleared   = "API key cleared"
	ToastKeyClearErr  = "Error clearing API key"
)

// Input placeholders.
const (
	placeholderEmpty = "sk-ant-api03-..."
	placeholderSaved = "API key saved"
)

// Key constants for key handling.
const (
	keyDown  = "down"
	keyEnter = "enter"
	keyEsc   = "esc"
	keyClear = "ctrl+x"
)

// overviewItems is the number of rows in the overview.
const overviewItems = 2

var (
	errNoSettings    = errors.New("settings service not available")
	errNoCredentials = errors.New("credentials service not available")
)

// View is the settings view.
type View struct {
	styles      *styles.Styles
	settings    driving.SettingsService
	credentials driving.CredentialsService

	opts      domain.ViewerOptions
	maskedKey string
	loaded    bool
	err       error

	section  Section
	selected int

	apiKeyInput textinput.Model

	width  int
	height int
}

// NewView creates a new settings view. Either service may be nil; the
// matching section then reports it is unavailable.
func NewView(s *styles.Styles, settingsService driving.SettingsService, credentials driving.CredentialsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	apiKeyInput := textinput.New()
	apiKeyInput.Placeholder = placeholderEmpty
	apiKeyInput.EchoMode = textinput.EchoPassword
	apiKeyInput.CharLimit = 256

	return &View{
		styles:      s,
		settings:    settingsService,
		credentials: credentials,
		opts:        domain.DefaultViewerOptions(),
		section:     SectionOverview,
		apiKeyInput: apiKeyInput,
	}
}

// Init loads the current options and the masked key.
func (v *View) Init() tea.Cmd {
	return v.load()
}

func (v *View) load() tea.Cmd {
	settings, credentials := v.settings, v.credentials
	return func() tea.Msg {
		if settings == nil {
			return messages.SettingsLoaded{Err: errNoSettings}
		}
		msg := messages.SettingsLoaded{Options: settings.Get()}
		if credentials != nil {
			msg.MaskedKey = credentials.Masked()
		}
		return msg
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		v.err = msg.Err
		if msg.Err == nil {
			v.opts = msg.Options
			v.loaded = true
			v.setMaskedKey(msg.MaskedKey)
		}
		return v, nil

	case messages.ThemeChanged:
		v.err = msg.Err
		if msg.Err == nil {
			v.opts.Theme = msg.Theme
			v.section = SectionOverview
			v.selected = 0
		}
		return v, nil

	case messages.APIKeySaved:
		if msg.Err != nil {
			return v, toast(saveErrorText(msg.Err), messages.ToastError)
		}
		v.setMaskedKey(msg.MaskedKey)
		v.apiKeyInput.SetValue("")
		return v, toast(ToastKeySaved, messages.ToastSuccess)

	case messages.APIKeyCleared:
		if msg.Err != nil {
			return v, toast(ToastKeyClearErr, messages.ToastError)
		}
		v.setMaskedKey("")
		v.apiKeyInput.SetValue("")
		return v, toast(ToastKeyCleared, messages.ToastSuccess)

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) setMaskedKey(masked string) {
	v.maskedKey = masked
	if masked != "" {
		v.apiKeyInput.Placeholder = placeholderSaved
	} else {
		v.apiKeyInput.Placeholder = placeholderEmpty
	}
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == keyEsc {
		if v.section == SectionOverview {
			return v, func() tea.Msg { return messages.SettingsClosed{} }
		}
		v.back()
		return v, nil
	}

	switch v.section {
	case SectionOverview:
		return v.handleOverviewKeys(msg)
	case SectionTheme:
		return v.handleThemeKeys(msg)
	case SectionAPIKey:
		return v.handleAPIKeyKeys(msg)
	}
	return v, nil
}

func (v *View) back() {
	v.section = SectionOverview
	v.selected = 0
	v.apiKeyInput.SetValue("")
	v.apiKeyInput.Blur()
}

func (v *View) handleOverviewKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < overviewItems-1 {
			v.selected++
		}
	case keyEnter:
		if v.selected == 0 {
			v.section = SectionTheme
			v.selected = v.themeIndex()
			return v, nil
		}
		v.section = SectionAPIKey
		v.selected = 0
		return v, v.apiKeyInput.Focus()
	}
	return v, nil
}

func (v *View) handleThemeKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	themes := domain.AllThemes()

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < len(themes)-1 {
			v.selected++
		}
	case keyEnter:
		if v.selected >= 0 && v.selected < len(themes) {
			return v, v.setTheme(themes[v.selected])
		}
	}
	return v, nil
}

func (v *View) handleAPIKeyKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case keyEnter:
		return v, v.saveAPIKey(v.apiKeyInput.Value())
	case keyClear:
		return v, v.clearAPIKey()
	}

	var cmd tea.Cmd
	v.apiKeyInput, cmd = v.apiKeyInput.Update(msg)
	return v, cmd
}

func (v *View) setTheme(theme domain.Theme) tea.Cmd {
	settings := v.settings
	return func() tea.Msg {
		if settings == nil {
			return messages.ThemeChanged{Theme: theme, Err: errNoSettings}
		}
		return messages.ThemeChanged{Theme: theme, Err: settings.SetTheme(theme)}
	}
}

func (v *View) saveAPIKey(key string) tea.Cmd {
	credentials := v.credentials
	return func() tea.Msg {
		if credentials == nil {
			return messages.APIKeySaved{Err: errNoCredentials}
		}
		if err := credentials.Save(key); err != nil {
			return messages.APIKeySaved{Err: err}
		}
		return messages.APIKeySaved{MaskedKey: credentials.Masked()}
	}
}

func (v *View) clearAPIKey() tea.Cmd {
	credentials := v.credentials
	return func() tea.Msg {
		if credentials == nil {
			return messages.APIKeyCleared{Err: errNoCredentials}
		}
		return messages.APIKeyCleared{Err: credentials.Clear()}
	}
}

// saveErrorText maps a save failure to its toast text.
func saveErrorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrAPIKeyRequired):
		return ToastKeyRequired
	case errors.Is(err, domain.ErrAPIKeyFormat):
		return ToastKeyFormat
	default:
		return ToastKeySaveError
	}
}

func toast(text string, level messages.ToastLevel) tea.Cmd {
	return func() tea.Msg {
		return messages.ShowToast{Text: text, Level: level}
	}
}

func (v *View) themeIndex() int {
	for i, t := range domain.AllThemes() {
		if t == v.opts.Theme {
			return i
		}
	}
	return 0
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if !v.loaded {
		if v.err == nil {
			b.WriteString(v.styles.Muted.Render("Loading settings..."))
		}
		return b.String()
	}

	switch v.section {
	case SectionOverview:
		b.WriteString(v.renderOverview())
	case SectionTheme:
		b.WriteString(v.renderThemeSelect())
	case SectionAPIKey:
		b.WriteString(v.renderAPIKey())
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())
	return b.String()
}

func (v *View) renderOverview() string {
	keyValue := "Not Set"
	if v.maskedKey != "" {
		keyValue = v.maskedKey
	}

	items := []struct {
		label string
		value string
	}{
		{label: "Theme", value: v.opts.Theme.Description()},
		{label: "Anthropic API Key", value: keyValue},
	}

	var b strings.Builder
	for i, item := range items {
		b.WriteString(v.renderRow(i, fmt.Sprintf("%s: %s", item.label, item.value)))
	}
	return b.String()
}

func (v *View) renderThemeSelect() string {
	var b strings.Builder

	b.WriteString(v.styles.PanelTitle.Render("Select Theme"))
	b.WriteString("\n\n")

	for i, theme := range domain.AllThemes() {
		label := theme.Description()
		if theme == v.opts.Theme {
			label += v.styles.Success.Render(" (current)")
		}
		b.WriteString(v.renderRow(i, label))
	}
	return b.String()
}

func (v *View) renderAPIKey() string {
	var b strings.Builder

	b.WriteString(v.styles.PanelTitle.Render("Anthropic API Key"))
	b.WriteString("\n\n")
	b.WriteString(v.apiKeyInput.View())
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("The key is stored on this machine only and is never sent anywhere."))
	b.WriteString("\n")
	return b.String()
}

func (v *View) renderRow(i int, text string) string {
	if i == v.selected {
		return v.styles.Selected.Render("> "+text) + "\n"
	}
	return v.styles.Normal.Render("  "+text) + "\n"
}

func (v *View) renderHelp() string {
	switch v.section {
	case SectionOverview:
		return v.styles.Help.Render("[j/k] navigate  [enter] edit  [esc] back")
	case SectionTheme:
		return v.styles.Help.Render("[j/k] navigate  [enter] select  [esc] back")
	case SectionAPIKey:
		return v.styles.Help.Render("[enter] save  [ctrl+x] clear  [esc] back")
	default:
		return ""
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.apiKeyInput.Width = max(width-4, 10)
}

// Section returns the active section.
func (v *View) Section() Section {
	return v.section
}

// Theme returns the theme the view last loaded or stored.
func (v *View) Theme() domain.Theme {
	return v.opts.Theme
}

// MaskedKey returns the masked stored API key, or "".
func (v *View) MaskedKey() string {
	return v.maskedKey
}

// Reset returns the view to the overview and clears the key input.
func (v *View) Reset() {
	v.back()
	v.err = nil
}
