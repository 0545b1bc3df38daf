// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-mcp/internal/tools"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	Long: `Serve runs the model-context-protocol server over stdin/stdout.
Both upstream clients are created once at startup and shared by every
tool invocation; they are closed when the transport shuts down.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd)

		scholarClient, err := newScholarClient()
		if err != nil {
			return err
		}
		defer scholarClient.Close()

		fulltextClient := newFulltextClient()
		defer fulltextClient.Close()

		server := mcp.NewServer(&mcp.Implementation{Name: "scholar-mcp", Version: version}, nil)
		tools.Register(server,
			tools.NewScholarTools(scholarClient, log),
			tools.NewFulltextTools(fulltextClient, log),
		)

		log.Info().Str("version", version).Msg("serving on stdio")
		return server.Run(cmd.Context(), &mcp.StdioTransport{})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
