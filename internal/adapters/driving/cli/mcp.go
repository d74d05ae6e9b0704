package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vibepad/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can clean,
format and render Markdown and format JSON through vibepad.

Tools: normalize_markdown, format_markdown, render_markdown, format_json,
minify_json and json_tree. Resources expose the saved editor documents
(vibepad://documents) and the viewer settings (vibepad://settings).

By default, the server communicates over stdio using JSON-RPC. Use --port to
start an HTTP server instead, for example to test with MCP Inspector.

Examples:
  # Stdio mode (default, for Claude Desktop)
  vibepad mcp serve

  # HTTP mode
  vibepad mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "vibepad": {
        "command": "/path/to/vibepad",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

// newMCPPorts builds the MCP server ports from the installed services.
func newMCPPorts() *mcp.Ports {
	return &mcp.Ports{
		Markdown:  markdownService,
		JSON:      jsonService,
		Settings:  settingsService,
		Workspace: workspaceService,
	}
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := mcp.NewServer(newMCPPorts())
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}
