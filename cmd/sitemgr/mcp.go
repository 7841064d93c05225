package main

import (
	"github.com/spf13/cobra"

	"fieldnote.dev/consultant-site/internal/mcptool"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the content tools over MCP stdio",
	Long: `Runs a Model Context Protocol server on stdin/stdout exposing
update_website_content and rollback_website_content. Logs go to stderr;
stdout carries only protocol frames.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		srv := mcptool.New(newManager(), logger, repoRoot())
		return srv.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
