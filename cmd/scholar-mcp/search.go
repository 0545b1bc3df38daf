// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-mcp/internal/tools"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search Google Scholar for articles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd)

		client, err := newScholarClient()
		if err != nil {
			return err
		}
		defer client.Close()

		yearFrom, _ := cmd.Flags().GetInt("from")
		yearTo, _ := cmd.Flags().GetInt("to")
		language, _ := cmd.Flags().GetString("language")
		numResults, _ := cmd.Flags().GetInt("num-results")

		in := tools.SearchArticlesInput{
			Query:      args[0],
			YearFrom:   yearFrom,
			YearTo:     yearTo,
			Language:   language,
			NumResults: numResults,
		}

		scholar := tools.NewScholarTools(client, log)
		_, res, err := scholar.SearchArticles(cmd.Context(), nil, in)
		if err != nil {
			return err
		}

		if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
			if err := tools.WriteResultFile(savePath, in, res); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Saved %d results to %s\n", res.TotalResults, savePath)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return tools.FormatJSON(res, os.Stdout)
		}
		tools.FormatArticlesTable(res, os.Stdout)
		return nil
	},
}

func init() {
	searchCmd.Flags().Int("from", 0, "filter articles from this year")
	searchCmd.Flags().Int("to", 0, "filter articles up to this year")
	searchCmd.Flags().String("language", "en", "language code (e.g. 'en', 'ru')")
	searchCmd.Flags().Int("num-results", 10, "number of results (1-20)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("save", "", "save results to a YAML file")

	rootCmd.AddCommand(searchCmd)
}
