// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-mcp/internal/tools"
)

var authorCmd = &cobra.Command{
	Use:   "author <name>",
	Short: "Search Google Scholar author profiles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newScholarClient()
		if err != nil {
			return err
		}
		defer client.Close()

		scholar := tools.NewScholarTools(client, newLogger(cmd))
		_, res, err := scholar.SearchAuthor(cmd.Context(), nil, tools.SearchAuthorInput{AuthorName: args[0]})
		if err != nil {
			return err
		}
		return tools.FormatJSON(res, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(authorCmd)
}
