// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-mcp/internal/tools"
)

var fulltextCmd = &cobra.Command{
	Use:   "fulltext",
	Short: "Fetch open-access full text, or search it with --query",
	Long: `Fulltext resolves a single work by --core-id, --doi, or --title (tried
in that order) and prints its metadata and full text when available.
With --query it searches the open-access index instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newFulltextClient()
		defer client.Close()

		fulltext := tools.NewFulltextTools(client, newLogger(cmd))

		if query, _ := cmd.Flags().GetString("query"); query != "" {
			limit, _ := cmd.Flags().GetInt("limit")
			_, res, err := fulltext.SearchOpenAccess(cmd.Context(), nil, tools.SearchOpenAccessInput{
				Query: query,
				Limit: limit,
			})
			if err != nil {
				return err
			}
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return tools.FormatJSON(res, os.Stdout)
			}
			tools.FormatOpenAccessTable(res, os.Stdout)
			return nil
		}

		doi, _ := cmd.Flags().GetString("doi")
		title, _ := cmd.Flags().GetString("title")
		coreID, _ := cmd.Flags().GetString("core-id")

		_, res, err := fulltext.GetFulltext(cmd.Context(), nil, tools.GetFulltextInput{
			DOI:    doi,
			Title:  title,
			CoreID: coreID,
		})
		if err != nil {
			return err
		}
		return tools.FormatJSON(res, os.Stdout)
	},
}

func init() {
	fulltextCmd.Flags().String("doi", "", "DOI of the article")
	fulltextCmd.Flags().String("title", "", "title of the article")
	fulltextCmd.Flags().String("core-id", "", "CORE ID of the article")
	fulltextCmd.Flags().String("query", "", "search the open-access index instead of resolving one work")
	fulltextCmd.Flags().Int("limit", 10, "number of search results (1-50)")
	fulltextCmd.Flags().Bool("json", false, "output search results as JSON")

	rootCmd.AddCommand(fulltextCmd)
}
