package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vibepad/internal/core/domain"
	"github.com/custodia-labs/vibepad/internal/normalisers/jsontree"
)

var jsonCmd = &cobra.Command{
	Use:   "json",
	Short: "View, format and minify JSON",
	Long: `Commands for the JSON editor.

Input is read from the named file, or from stdin when the file is omitted or "-".`,
}

var jsonViewCmd = &cobra.Command{
	Use:   "view [file|-]",
	Short: "Show JSON as a tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runJSONView,
}

var jsonFmtCmd = &cobra.Command{
	Use:   "fmt [file|-]",
	Short: "Pretty-print JSON with two-space indentation",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runJSONFmt,
}

var jsonMinifyCmd = &cobra.Command{
	Use:   "minify [file|-]",
	Short: "Remove insignificant whitespace from JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runJSONMinify,
}

var jsonFetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Download a JSON document and show it as a tree",
	Long: `Download a JSON document and show it as a tree.

The viewer settings apply: filtered URLs are refused, and the response must be
recognised as JSON by content type or by content.`,
	Args: cobra.ExactArgs(1),
	RunE: runJSONFetch,
}

// Flags for json view and json fetch.
var (
	jsonCollapsed int
	jsonFetchRaw  bool
)

func init() {
	jsonViewCmd.Flags().IntVarP(&jsonCollapsed, "collapsed", "c", -1, "Collapse depth (default from settings, 0 expands all)")
	jsonFetchCmd.Flags().IntVarP(&jsonCollapsed, "collapsed", "c", -1, "Collapse depth (default from settings, 0 expands all)")
	jsonFetchCmd.Flags().BoolVar(&jsonFetchRaw, "raw", false, "Print the body instead of the tree")

	jsonCmd.AddCommand(jsonViewCmd)
	jsonCmd.AddCommand(jsonFmtCmd)
	jsonCmd.AddCommand(jsonMinifyCmd)
	jsonCmd.AddCommand(jsonFetchCmd)
	rootCmd.AddCommand(jsonCmd)
}

// collapseDepth returns the flag value, or the stored option when unset.
func collapseDepth() int {
	if jsonCollapsed >= 0 {
		return jsonCollapsed
	}
	if settingsService != nil {
		return settingsService.Get().Collapsed
	}
	return 0
}

func runJSONView(cmd *cobra.Command, args []string) error {
	if jsonService == nil {
		return errNotConfigured("json")
	}
	src, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	writeOutput(cmd, jsonService.View(src, collapseDepth()))
	return nil
}

func runJSONFmt(cmd *cobra.Command, args []string) error {
	if jsonService == nil {
		return errNotConfigured("json")
	}
	src, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	out, err := jsonService.Format(src)
	if err != nil {
		return errors.New(jsontree.Message(jsontree.FormatErrorPrefix, err))
	}
	writeOutput(cmd, out)
	return nil
}

func runJSONMinify(cmd *cobra.Command, args []string) error {
	if jsonService == nil {
		return errNotConfigured("json")
	}
	src, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	out, err := jsonService.Minify(src)
	if err != nil {
		return errors.New(jsontree.Message(jsontree.MinifyErrorPrefix, err))
	}
	writeOutput(cmd, out)
	return nil
}

func runJSONFetch(cmd *cobra.Command, args []string) error {
	if jsonService == nil {
		return errNotConfigured("json")
	}

	opts := domain.DefaultViewerOptions()
	if settingsService != nil {
		opts = settingsService.Get()
	}

	body, err := jsonService.Fetch(commandContext(cmd), args[0], opts)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	if jsonFetchRaw {
		writeOutput(cmd, body)
		return nil
	}
	writeOutput(cmd, jsonService.View(body, collapseDepth()))
	return nil
}
