// Package cli implements the vibepad command line interface.
//
// Commands are registered on rootCmd in init functions and call the
// package-level services. The services are built by a Bootstrap function
// supplied by main, which runs once the global flags are parsed.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vibepad/internal/core/ports/driven"
	"github.com/custodia-labs/vibepad/internal/core/ports/driving"
	"github.com/custodia-labs/vibepad/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Services used by the commands.
var (
	markdownService    driving.MarkdownService
	jsonService        driving.JSONService
	settingsService    driving.SettingsService
	credentialsService driving.CredentialsService
	workspaceService   driving.WorkspaceService
	clipboardPort      driven.Clipboard
	terminalResizer    Resizer
)

// Resizer changes the word wrap width of the terminal renderer.
type Resizer interface {
	Resize(width int) error
}

// Services groups everything the commands need.
type Services struct {
	Markdown    driving.MarkdownService
	JSON        driving.JSONService
	Settings    driving.SettingsService
	Credentials driving.CredentialsService
	Workspace   driving.WorkspaceService
	Clipboard   driven.Clipboard

	// TerminalRenderer is optional. The TUI resizes it with the window.
	TerminalRenderer Resizer
}

// Options holds the global flags.
type Options struct {
	Verbose   bool
	ConfigDir string
	DataDir   string
}

// Bootstrap builds the services for the given options.
// The returned cleanup function is called after the command has run.
type Bootstrap func(opts Options) (*Services, func() error, error)

var (
	globalOpts Options
	bootstrap  Bootstrap
	cleanup    func() error
)

var rootCmd = &cobra.Command{
	Use:   "vibepad",
	Short: "Markdown and JSON scratchpad for the terminal",
	Long: `vibepad cleans up pasted Markdown, formats and previews it, and views JSON
documents as collapsible trees.

Run without arguments to open the dual editor.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: runPersistentPre,
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return runCleanup()
	},
	RunE: runTUI,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&globalOpts.Verbose, "verbose", "v", false, "Print debug logs to stderr")
	flags.StringVar(&globalOpts.ConfigDir, "config-dir", "", "Configuration directory (default ~/.vibepad)")
	flags.StringVar(&globalOpts.DataDir, "data-dir", "", "Data directory (default ~/.vibepad/data)")
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that builds the services.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices installs services directly, bypassing Bootstrap.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	markdownService = s.Markdown
	jsonService = s.JSON
	settingsService = s.Settings
	credentialsService = s.Credentials
	workspaceService = s.Workspace
	clipboardPort = s.Clipboard
	terminalResizer = s.TerminalRenderer
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if cerr := runCleanup(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func runPersistentPre(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(globalOpts.Verbose)
	if bootstrap == nil {
		return nil
	}

	services, done, err := bootstrap(globalOpts)
	if err != nil {
		return fmt.Errorf("initialise: %w", err)
	}
	SetServices(services)
	cleanup = done
	return nil
}

func runCleanup() error {
	if cleanup == nil {
		return nil
	}
	done := cleanup
	cleanup = nil
	return done()
}

// errNotConfigured reports a service missing from the wiring.
func errNotConfigured(name string) error {
	return fmt.Errorf("%s service not configured", name)
}

// readInput reads the named file, or stdin when name is empty or "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}

// writeOutput prints text followed by a single newline.
func writeOutput(cmd *cobra.Command, text string) {
	out := cmd.OutOrStdout()
	if text == "" {
		return
	}
	fmt.Fprint(out, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(out)
	}
}

// isStdin reports whether the arguments name stdin.
func isStdin(args []string) bool {
	return len(args) == 0 || args[0] == "-"
}

var errWriteStdin = errors.New("--write needs a file argument")
