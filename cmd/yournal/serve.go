package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/yournal/internal/journal"
	yournalmcp "github.com/gorewood/yournal/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd(d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run yournal as a Model Context Protocol (MCP) server over stdio.

Agents can find, create and read daily notes with the same directory,
extension and template settings as the CLI. The server never starts an
editor.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "yournal": {
        "command": "yournal",
        "args": ["serve", "--directory", "/home/me/journal"]
      }
    }
  }

Available tools: note_path, daily_note, list_notes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := resolveSettings(cmd, d)
			if err != nil {
				newPrinter(cmd).Error(err)
				return err
			}
			server := yournalmcp.NewServer(buildVersion(), yournalmcp.Notes{
				Resolver: journal.NewResolver(nil, d.now),
				Defaults: noteRequest(settings, ""),
			})
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
