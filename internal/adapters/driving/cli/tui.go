package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vibepad/internal/adapters/driving/tui"
	"github.com/custodia-labs/vibepad/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the dual editor",
	Long: `Open the JSON and Markdown dual editor. This is also what vibepad runs
without a command.

Controls:
  ctrl+t      Switch between the JSON and Markdown editors
  ctrl+f      Format the editor
  ctrl+v      Paste (Markdown is cleaned, then formatted)
  alt+←/→     Resize the split
  alt+↑/↓     Collapse or expand the JSON tree
  ctrl+s      Save both editors
  f2          Theme and API key settings
  f1          Show all keys
  esc         Save and quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// newTUIPorts builds the TUI ports from the configured services.
func newTUIPorts() *tui.Ports {
	ports := tui.NewPorts(markdownService, jsonService)
	ports.Settings = settingsService
	ports.Credentials = credentialsService
	ports.Workspace = workspaceService
	ports.Clipboard = clipboardPort
	if terminalResizer != nil {
		ports.Resizer = terminalResizer
	}
	return ports
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	if markdownService == nil {
		return errNotConfigured("markdown")
	}
	if jsonService == nil {
		return errNotConfigured("json")
	}

	// Log lines would corrupt the alternate screen.
	out := logger.Output()
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(out)

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	app, err := tui.NewApp(newTUIPorts())
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(commandContext(cmd))

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
