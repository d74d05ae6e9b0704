package services

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/custodia-labs/vibepad/internal/core/domain"
	"github.com/custodia-labs/vibepad/internal/core/ports/driven"
	"github.com/custodia-labs/vibepad/internal/core/ports/driving"
	"github.com/custodia-labs/vibepad/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Configuration keys.
const (
	keyViewerOptions = "viewer.options"
	keyActiveTab     = "ui.active_tab"
	keySplitRatio    = "ui.split_ratio"
)

// SettingsService manages viewer options and editor UI state.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get returns the stored viewer options merged over the defaults.
func (s *SettingsService) Get() domain.ViewerOptions {
	opts := domain.DefaultViewerOptions()
	if s.configStore == nil {
		return opts
	}

	raw, ok := s.configStore.Get(keyViewerOptions)
	if !ok {
		return opts
	}

	fields, err := decodeOptions(raw)
	if err != nil {
		logger.Warn("ignoring stored viewer options: %v", err)
		return opts
	}

	for _, key := range domain.ValidOptionKeys() {
		value, ok := fields[key]
		if !ok {
			continue
		}
		if err := mergeOption(&opts, key, value); err != nil {
			logger.Warn("ignoring viewer option %s: %v", key, err)
		}
	}

	if !opts.Theme.IsValid() {
		opts.Theme = domain.ThemeDefault
	}
	if opts.Collapsed < 0 {
		opts.Collapsed = 0
	}
	return opts
}

// Save persists viewer options as a JSON blob.
func (s *SettingsService) Save(opts domain.ViewerOptions) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if !opts.Theme.IsValid() {
		return fmt.Errorf("%w: theme %q", domain.ErrUnsupportedType, opts.Theme)
	}
	if opts.Collapsed < 0 {
		return fmt.Errorf("%w: collapsed depth %d", domain.ErrInvalidInput, opts.Collapsed)
	}
	if opts.FilteredURLs == nil {
		opts.FilteredURLs = []string{}
	}

	data, err := json.Marshal(opts)
	if err != nil {
		return fmt.Errorf("encode viewer options: %w", err)
	}
	if err := s.configStore.Set(keyViewerOptions, string(data)); err != nil {
		return fmt.Errorf("save viewer options: %w", err)
	}
	return nil
}

// SetTheme updates the theme.
func (s *SettingsService) SetTheme(theme domain.Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("%w: theme %q", domain.ErrUnsupportedType, theme)
	}
	opts := s.Get()
	opts.Theme = theme
	return s.Save(opts)
}

// SetCollapsed updates the tree collapse depth.
func (s *SettingsService) SetCollapsed(depth int) error {
	if depth < 0 {
		return fmt.Errorf("%w: collapsed depth %d", domain.ErrInvalidInput, depth)
	}
	opts := s.Get()
	opts.Collapsed = depth
	return s.Save(opts)
}

// Reset removes stored options so defaults apply.
func (s *SettingsService) Reset() error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if err := s.configStore.Delete(keyViewerOptions); err != nil {
		return fmt.Errorf("reset viewer options: %w", err)
	}
	return nil
}

// Repair removes the options blob if it does not decode to an object.
func (s *SettingsService) Repair() (bool, error) {
	if s.configStore == nil {
		return false, domain.ErrNotImplemented
	}

	raw, ok := s.configStore.Get(keyViewerOptions)
	if !ok {
		return false, nil
	}
	if _, err := decodeOptions(raw); err == nil {
		return false, nil
	}

	logger.Info("removing corrupted viewer options")
	if err := s.configStore.Delete(keyViewerOptions); err != nil {
		return false, fmt.Errorf("repair viewer options: %w", err)
	}
	return true, nil
}

// GetDefaults returns the default viewer options.
func (s *SettingsService) GetDefaults() domain.ViewerOptions {
	return domain.DefaultViewerOptions()
}

// UIState returns the persisted editor UI state.
func (s *SettingsService) UIState() domain.UIState {
	state := domain.DefaultUIState()
	if s.configStore == nil {
		return state
	}

	if kind, err := domain.ParseEditorKind(s.configStore.GetString(keyActiveTab)); err == nil {
		state.ActiveTab = kind
	}

	if raw, ok := s.configStore.Get(keySplitRatio); ok {
		if ratio, ok := toFloat(raw); ok && ratio >= domain.MinSplitRatio && ratio <= domain.MaxSplitRatio {
			state.SplitRatio = ratio
		}
	}
	return state
}

// SaveUIState persists the editor UI state.
// The split ratio is clamped to the allowed range.
func (s *SettingsService) SaveUIState(state domain.UIState) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if !state.ActiveTab.IsValid() {
		return fmt.Errorf("%w: editor %q", domain.ErrUnsupportedType, state.ActiveTab)
	}
	if err := s.configStore.Set(keyActiveTab, state.ActiveTab.String()); err != nil {
		return fmt.Errorf("save active tab: %w", err)
	}
	if err := s.configStore.Set(keySplitRatio, domain.ClampSplitRatio(state.SplitRatio)); err != nil {
		return fmt.Errorf("save split ratio: %w", err)
	}
	return nil
}

// decodeOptions turns a stored blob into its top-level fields.
// The blob may be a JSON string or an already decoded map.
func decodeOptions(raw any) (map[string]json.RawMessage, error) {
	var data []byte
	switch v := raw.(type) {
	case string:
		data = []byte(v)
	case map[string]any:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		data = encoded
	default:
		return nil, fmt.Errorf("%w: options stored as %T", domain.ErrInvalidInput, raw)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: options blob is null", domain.ErrInvalidInput)
	}
	return fields, nil
}

// mergeOption decodes one sanitised option into opts.
func mergeOption(opts *domain.ViewerOptions, key string, value json.RawMessage) error {
	switch key {
	case "theme":
		return json.Unmarshal(value, &opts.Theme)
	case "css":
		return json.Unmarshal(value, &opts.CSS)
	case "collapsed":
		return json.Unmarshal(value, &opts.Collapsed)
	case "filteredURL":
		var urls []string
		if err := json.Unmarshal(value, &urls); err != nil {
			return err
		}
		opts.FilteredURLs = slices.DeleteFunc(urls, func(u string) bool { return u == "" })
		return nil
	case "jsonDetection":
		detection := opts.JSONDetection
		if err := json.Unmarshal(value, &detection); err != nil {
			return err
		}
		if detection.Method != domain.DetectByContentType && detection.Method != domain.DetectByContent {
			detection.Method = domain.DetectByContentType
		}
		opts.JSONDetection = detection
		return nil
	default:
		return fmt.Errorf("%w: option %q", domain.ErrInvalidInput, key)
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
