package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/natemoore/tix/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run tix as an MCP server",
	Long: `Run tix as an MCP (Model Context Protocol) server.

This enables LLM agents to manage Todoist tasks through a standardized
protocol. The server communicates over stdin/stdout using JSON-RPC 2.0;
tool calls re-enter the tix CLI with --json.

For use with Claude Desktop, add to your config:
  {
    "mcpServers": {
      "tix": {
        "command": "tix",
        "args": ["serve"]
      }
    }
  }

Or let tix write the entry for you: tix mcp install --client claude-desktop`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Nothing but protocol goes to stdout; logs go to stderr.
		server := mcp.NewServer()
		if err := server.Run(); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
