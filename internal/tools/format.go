// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/scholar-mcp/pkg/types"
)

// FormatArticlesTable writes an article result set as a human-readable
// table for the CLI subcommands.
func FormatArticlesTable(res types.SearchArticlesResult, w io.Writer) {
	if len(res.Articles) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-24s  %-6s  %-5s  %s\n",
		"Rank", "Title", "Authors", "Year", "Cites", "PDF")
	fmt.Fprintln(w, strings.Repeat("-", 112))

	for i, a := range res.Articles {
		pdf := ""
		if a.PDFLink != "" {
			pdf = "yes"
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-24s  %-6s  %-5d  %s\n",
			i+1, truncate(a.Title, 60), truncate(a.Authors, 24), a.Year, a.Citations, pdf)
	}

	fmt.Fprintf(w, "\n%d results for %q\n", res.TotalResults, res.Query)
}

// FormatOpenAccessTable writes an open-access result set as a table.
func FormatOpenAccessTable(res types.SearchOpenAccessResult, w io.Writer) {
	if len(res.Articles) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-24s  %-4s  %s\n",
		"Rank", "Title", "Authors", "Year", "DOI")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, a := range res.Articles {
		year := ""
		if a.Year > 0 {
			year = fmt.Sprintf("%d", a.Year)
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-24s  %-4s  %s\n",
			i+1, truncate(a.Title, 60), truncate(a.Authors, 24), year, a.DOI)
	}

	fmt.Fprintf(w, "\n%d results for %q\n", res.TotalResults, res.Query)
}

// FormatJSON writes any result record as indented JSON.
func FormatJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
