package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vibepad/internal/adapters/driven/filewatch"
	"github.com/custodia-labs/vibepad/internal/adapters/driven/renderer/html"
	"github.com/custodia-labs/vibepad/internal/core/domain"
	"github.com/custodia-labs/vibepad/internal/logger"
)

var mdCmd = &cobra.Command{
	Use:   "md",
	Short: "Clean, format and preview Markdown",
	Long: `Commands for the Markdown editor.

Input is read from the named file, or from stdin when the file is omitted or "-".`,
}

var mdCleanCmd = &cobra.Command{
	Use:   "clean [file|-]",
	Short: "Run the cleanup pass",
	Long: `Convert setext headings to ATX headings, strip accidental shallow indents,
trim trailing whitespace and collapse blank lines.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMDClean,
}

var mdFmtCmd = &cobra.Command{
	Use:   "fmt [file|-]",
	Short: "Format Markdown",
	Long: `Format Markdown with the full formatter. When the formatter is unavailable
or fails, the cleanup pass output is printed instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMDFmt,
}

var mdRenderCmd = &cobra.Command{
	Use:   "render [file|-]",
	Short: "Render Markdown as HTML or for the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMDRender,
}

var mdPasteCmd = &cobra.Command{
	Use:   "paste",
	Short: "Clean the clipboard",
	Long: `Read Markdown from the clipboard, clean and format it, print the result and
copy it back to the clipboard.`,
	Args: cobra.NoArgs,
	RunE: runMDPaste,
}

var mdImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load a file into the Markdown editor",
	Args:  cobra.ExactArgs(1),
	RunE:  runMDImport,
}

var mdWatchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Clean a file every time it is saved",
	Args:  cobra.ExactArgs(1),
	RunE:  runMDWatch,
}

// Flags for md fmt.
var (
	fmtWidth     int
	fmtProseWrap string
	fmtTabWidth  int
	fmtUseTabs   bool
	fmtWrite     bool
)

// Flags for md render.
var (
	renderHTML       bool
	renderTerm       bool
	renderStandalone bool
)

// Flags for md paste.
var pasteNoFormat bool

func init() {
	defaults := domain.DefaultFormatOptions()
	mdFmtCmd.Flags().IntVarP(&fmtWidth, "width", "w", defaults.PrintWidth, "Print width used for prose wrapping")
	mdFmtCmd.Flags().StringVar(&fmtProseWrap, "prose-wrap", string(defaults.ProseWrap), "Prose wrap: always, never or preserve")
	mdFmtCmd.Flags().IntVar(&fmtTabWidth, "tab-width", defaults.TabWidth, "Spaces per tab")
	mdFmtCmd.Flags().BoolVar(&fmtUseTabs, "use-tabs", defaults.UseTabs, "Keep tabs instead of expanding them")
	mdFmtCmd.Flags().BoolVar(&fmtWrite, "write", false, "Write the result back to the file")

	mdRenderCmd.Flags().BoolVar(&renderHTML, "html", false, "Render HTML (default)")
	mdRenderCmd.Flags().BoolVar(&renderTerm, "term", false, "Render for the terminal")
	mdRenderCmd.Flags().BoolVar(&renderStandalone, "standalone", false, "Wrap HTML in a full page with the viewer CSS")
	mdRenderCmd.MarkFlagsMutuallyExclusive("html", "term")

	mdPasteCmd.Flags().BoolVar(&pasteNoFormat, "no-format", false, "Only run the cleanup pass")

	mdCmd.AddCommand(mdCleanCmd)
	mdCmd.AddCommand(mdFmtCmd)
	mdCmd.AddCommand(mdRenderCmd)
	mdCmd.AddCommand(mdPasteCmd)
	mdCmd.AddCommand(mdImportCmd)
	mdCmd.AddCommand(mdWatchCmd)
	rootCmd.AddCommand(mdCmd)
}

func runMDClean(cmd *cobra.Command, args []string) error {
	if markdownService == nil {
		return errNotConfigured("markdown")
	}
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	writeOutput(cmd, markdownService.Clean(text))
	return nil
}

func runMDFmt(cmd *cobra.Command, args []string) error {
	if markdownService == nil {
		return errNotConfigured("markdown")
	}
	if fmtWrite && isStdin(args) {
		return errWriteStdin
	}

	opts := domain.DefaultFormatOptions()
	opts.PrintWidth = fmtWidth
	opts.ProseWrap = domain.ProseWrap(fmtProseWrap)
	opts.TabWidth = fmtTabWidth
	opts.UseTabs = fmtUseTabs
	if !opts.ProseWrap.IsValid() {
		return fmt.Errorf("%w: prose wrap %q", domain.ErrInvalidInput, fmtProseWrap)
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	result := markdownService.FormatWith(commandContext(cmd), text, opts)
	if result.Fallback {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; printed the cleanup pass instead\n", result.Err)
	}

	if fmtWrite {
		if err := writeFile(args[0], result.Text); err != nil {
			return err
		}
		cmd.Printf("Formatted %s\n", args[0])
		return nil
	}

	writeOutput(cmd, result.Text)
	return nil
}

func runMDRender(cmd *cobra.Command, args []string) error {
	if markdownService == nil {
		return errNotConfigured("markdown")
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	target := domain.RenderHTML
	if renderTerm {
		target = domain.RenderTerminal
	}
	out := markdownService.Render(text, target)

	if renderStandalone && target == domain.RenderHTML {
		css := ""
		if settingsService != nil {
			css = settingsService.Get().CSS
		}
		title := "vibepad"
		if !isStdin(args) {
			title = filepath.Base(args[0])
		}
		out, err = html.Page(title, out, css)
		if err != nil {
			return fmt.Errorf("build page: %w", err)
		}
	}

	writeOutput(cmd, out)
	return nil
}

func runMDPaste(cmd *cobra.Command, _ []string) error {
	if markdownService == nil {
		return errNotConfigured("markdown")
	}
	if clipboardPort == nil {
		return errNotConfigured("clipboard")
	}

	pasted, err := clipboardPort.Read()
	if err != nil {
		return fmt.Errorf("read clipboard: %w", err)
	}

	text := markdownService.Paste("", 0, 0, pasted).Text
	if !pasteNoFormat {
		if result := markdownService.Format(commandContext(cmd), text); result.Text != "" && result.Text != text {
			text = result.Text
		}
	}

	if err := clipboardPort.Write(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	writeOutput(cmd, text)
	return nil
}

func runMDImport(cmd *cobra.Command, args []string) error {
	if markdownService == nil {
		return errNotConfigured("markdown")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}
	defer f.Close()

	doc, err := markdownService.Import(commandContext(cmd), args[0], f)
	if err != nil {
		return err
	}
	cmd.Printf("Imported %s into the Markdown editor (%d bytes)\n", doc.Name, len(doc.Content))
	return nil
}

func runMDWatch(cmd *cobra.Command, args []string) error {
	if markdownService == nil {
		return errNotConfigured("markdown")
	}
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", path)
	cleaner := &fileCleaner{}
	if err := cleaner.Clean(path); err != nil {
		return err
	}
	return filewatch.Watch(ctx, path, cleaner.Clean)
}

// fileCleaner rewrites a watched file with the cleanup pass output.
//
// The cleanup pass is not idempotent for every input ("a\n---\n---" becomes
// "## a\n---" and then "## ## a"), so the content it last wrote is
// remembered and the change event caused by that write is skipped.
type fileCleaner struct {
	mu      sync.Mutex
	written []byte
}

// Clean cleans path unless it still holds what the cleaner last wrote.
// An unchanged file is not written, so the watcher does not loop.
func (c *fileCleaner) Clean(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if c.written != nil && bytes.Equal(data, c.written) {
		return nil
	}

	cleaned := markdownService.Clean(string(data))
	if cleaned != "" {
		cleaned += "\n"
	}
	if bytes.Equal(data, []byte(cleaned)) {
		return nil
	}
	logger.Info("cleaned %s", path)
	if err := writeFile(path, cleaned); err != nil {
		return err
	}
	c.written = []byte(cleaned)
	return nil
}

// writeFile replaces the file content, keeping its permissions.
func writeFile(path, content string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if content != "" && content[len(content)-1] != '\n' {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// commandContext returns the command context, or Background if unset.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
