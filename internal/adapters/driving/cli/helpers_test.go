package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/vibepad/internal/adapters/driven/clipboard"
	"github.com/custodia-labs/vibepad/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/vibepad/internal/core/services"
	"github.com/custodia-labs/vibepad/internal/normalisers/markdown"
)

// testServices holds the concrete services installed for a test.
type testServices struct {
	markdown    *services.MarkdownService
	json        *services.JSONService
	settings    *services.SettingsService
	credentials *services.CredentialsService
	workspace   *services.WorkspaceService
	clipboard   *clipboard.Memory
}

// installServices wires real services over memory stores and removes them
// when the test ends.
func installServices(t *testing.T) *testServices {
	t.Helper()

	docs := memory.NewDocumentStore()
	config := memory.NewConfigStore()
	ts := &testServices{
		markdown:    services.NewMarkdownService(markdown.New(), nil, docs),
		json:        services.NewJSONService(nil),
		settings:    services.NewSettingsService(config),
		credentials: services.NewCredentialsService(memory.NewSecretStore()),
		workspace:   services.NewWorkspaceService(docs),
		clipboard:   clipboard.NewMemory(),
	}
	SetServices(&Services{
		Markdown:    ts.markdown,
		JSON:        ts.json,
		Settings:    ts.settings,
		Credentials: ts.credentials,
		Workspace:   ts.workspace,
		Clipboard:   ts.clipboard,
	})
	t.Cleanup(func() { SetServices(nil) })
	return ts
}

// execute runs the root command with args and stdin, returning everything
// written to stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		resetFlags(rootCmd)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
