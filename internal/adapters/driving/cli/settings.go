package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vibepad/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage viewer settings",
	Long: `View and change the JSON viewer options: theme, custom CSS, default
collapse depth, filtered URLs and JSON detection.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsThemeCmd = &cobra.Command{
	Use:   "theme <name>",
	Short: "Set the theme",
	Long: `Set the colour theme.

Available themes:
  default - Dark theme
  mdn     - Light theme
  system  - Follow the terminal background`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"default", "mdn", "system"},
	RunE:      runSettingsTheme,
}

var settingsCollapsedCmd = &cobra.Command{
	Use:   "collapsed <depth>",
	Short: "Set the default tree collapse depth (0 expands all)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsCollapsed,
}

var settingsCSSCmd = &cobra.Command{
	Use:   "css [file|-]",
	Short: "Set custom CSS for HTML previews",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSettingsCSS,
}

var settingsDetectionCmd = &cobra.Command{
	Use:   "detection <contentType|content> [content-type...]",
	Short: "Set how fetched responses are recognised as JSON",
	Long: `Set how fetched responses are recognised as JSON.

  contentType - Match the Content-Type header against a list. Extra arguments
                replace the list.
  content     - Accept any body that is a JSON object or array.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSettingsDetection,
}

var settingsFilterCmd = &cobra.Command{
	Use:   "filter [url-pattern...]",
	Short: "Set URL patterns the viewer ignores",
	Args:  cobra.ArbitraryArgs,
	RunE:  runSettingsFilter,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

var settingsRepairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Remove corrupted stored settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsRepair,
}

// filterClear is a flag for the filter command.
var filterClear bool

func init() {
	settingsFilterCmd.Flags().BoolVar(&filterClear, "clear", false, "Remove all URL patterns")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsThemeCmd)
	settingsCmd.AddCommand(settingsCollapsedCmd)
	settingsCmd.AddCommand(settingsCSSCmd)
	settingsCmd.AddCommand(settingsDetectionCmd)
	settingsCmd.AddCommand(settingsFilterCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsRepairCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	opts := settingsService.Get()
	state := settingsService.UIState()

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Viewer]")
	cmd.Printf("  Theme: %s\n", opts.Theme.Description())
	cmd.Printf("  Collapsed depth: %s\n", describeDepth(opts.Collapsed))
	if opts.CSS != "" {
		cmd.Printf("  Custom CSS: %d bytes\n", len(opts.CSS))
	} else {
		cmd.Printf("  Custom CSS: (none)\n")
	}
	cmd.Println()

	cmd.Println("[JSON Detection]")
	cmd.Printf("  Method: %s\n", opts.JSONDetection.Method)
	if opts.JSONDetection.Method == domain.DetectByContentType {
		cmd.Printf("  Content types: %s\n", strings.Join(opts.JSONDetection.ContentTypes, ", "))
	}
	if len(opts.FilteredURLs) > 0 {
		cmd.Printf("  Filtered URLs: %s\n", strings.Join(opts.FilteredURLs, ", "))
	} else {
		cmd.Printf("  Filtered URLs: (none)\n")
	}
	cmd.Println()

	cmd.Println("[Editor]")
	cmd.Printf("  Active tab: %s\n", state.ActiveTab.Title())
	cmd.Printf("  Split: %.0f%% input\n", state.SplitRatio*100)

	if credentialsService != nil {
		cmd.Println()
		cmd.Println("[API Key]")
		if masked := credentialsService.Masked(); masked != "" {
			cmd.Printf("  Anthropic: %s\n", masked)
		} else {
			cmd.Printf("  Anthropic: (not set)\n")
		}
	}
	return nil
}

func runSettingsTheme(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}
	theme := domain.Theme(strings.ToLower(strings.TrimSpace(args[0])))
	if err := settingsService.SetTheme(theme); err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}
	cmd.Printf("Theme set to %s\n", theme.Description())
	return nil
}

func runSettingsCollapsed(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}
	depth, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("%w: depth %q is not a number", domain.ErrInvalidInput, args[0])
	}
	if err := settingsService.SetCollapsed(depth); err != nil {
		return fmt.Errorf("failed to set collapse depth: %w", err)
	}
	cmd.Printf("Collapsed depth set to %s\n", describeDepth(depth))
	return nil
}

func runSettingsCSS(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}
	css, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	opts := settingsService.Get()
	opts.CSS = strings.TrimSpace(css)
	if err := settingsService.Save(opts); err != nil {
		return fmt.Errorf("failed to save CSS: %w", err)
	}
	if opts.CSS == "" {
		cmd.Println("Custom CSS removed")
	} else {
		cmd.Printf("Custom CSS saved (%d bytes)\n", len(opts.CSS))
	}
	return nil
}

func runSettingsDetection(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	method := domain.DetectionMethod(args[0])
	if method != domain.DetectByContentType && method != domain.DetectByContent {
		return fmt.Errorf("%w: detection method %q", domain.ErrInvalidInput, args[0])
	}

	opts := settingsService.Get()
	opts.JSONDetection.Method = method
	if method == domain.DetectByContentType && len(args) > 1 {
		opts.JSONDetection.ContentTypes = args[1:]
	}
	if err := settingsService.Save(opts); err != nil {
		return fmt.Errorf("failed to save detection: %w", err)
	}
	cmd.Printf("JSON detection set to %s\n", method)
	return nil
}

func runSettingsFilter(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	opts := settingsService.Get()
	switch {
	case filterClear:
		opts.FilteredURLs = []string{}
	case len(args) == 0:
		for _, u := range opts.FilteredURLs {
			cmd.Println(u)
		}
		return nil
	default:
		opts.FilteredURLs = append(opts.FilteredURLs, args...)
	}

	if err := settingsService.Save(opts); err != nil {
		return fmt.Errorf("failed to save filtered URLs: %w", err)
	}
	cmd.Printf("%d filtered URL pattern(s)\n", len(opts.FilteredURLs))
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}
	if err := settingsService.Reset(); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	cmd.Println("Settings restored to defaults")
	return nil
}

func runSettingsRepair(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}
	removed, err := settingsService.Repair()
	if err != nil {
		return fmt.Errorf("failed to repair settings: %w", err)
	}
	if removed {
		cmd.Println("Removed corrupted settings; defaults apply")
	} else {
		cmd.Println("Settings are valid")
	}
	return nil
}

func describeDepth(depth int) string {
	if depth <= 0 {
		return "expand all"
	}
	return strconv.Itoa(depth)
}
