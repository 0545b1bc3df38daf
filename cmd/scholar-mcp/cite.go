// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-mcp/internal/tools"
)

var citeCmd = &cobra.Command{
	Use:   "cite <id>",
	Short: "List articles citing a work, or its versions with --versions",
	Long: `Cite takes a citation ID from a previous search and lists the works
citing it. With --versions the argument is treated as a cluster ID
instead and all versions of the article are listed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newScholarClient()
		if err != nil {
			return err
		}
		defer client.Close()

		scholar := tools.NewScholarTools(client, newLogger(cmd))

		if versions, _ := cmd.Flags().GetBool("versions"); versions {
			_, res, err := scholar.GetVersions(cmd.Context(), nil, tools.GetVersionsInput{ClusterID: args[0]})
			if err != nil {
				return err
			}
			return tools.FormatJSON(res, os.Stdout)
		}

		numResults, _ := cmd.Flags().GetInt("num-results")
		_, res, err := scholar.GetCitations(cmd.Context(), nil, tools.GetCitationsInput{
			CitationID: args[0],
			NumResults: numResults,
		})
		if err != nil {
			return err
		}
		return tools.FormatJSON(res, os.Stdout)
	},
}

func init() {
	citeCmd.Flags().Bool("versions", false, "treat the ID as a cluster ID and list article versions")
	citeCmd.Flags().Int("num-results", 10, "number of citing articles (1-20)")

	rootCmd.AddCommand(citeCmd)
}
