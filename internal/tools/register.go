// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import "github.com/modelcontextprotocol/go-sdk/mcp"

// Register adds the six scholar-mcp tools to an MCP server. The tool
// layer borrows the process-scoped clients held by the tool sets; it
// never owns or closes them.
func Register(server *mcp.Server, scholar *ScholarTools, fulltext *FulltextTools) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "search_articles",
		Description: "Search for academic articles on Google Scholar. " +
			"Returns articles with title, authors, year, citation count, and links. " +
			"Use citation_id with get_citations and cluster_id with get_article_versions.",
	}, scholar.SearchArticles)

	mcp.AddTool(server, &mcp.Tool{
		Name: "search_author",
		Description: "Search for author profiles on Google Scholar. " +
			"Returns profiles with name, affiliations, interests, and citation count.",
	}, scholar.SearchAuthor)

	mcp.AddTool(server, &mcp.Tool{
		Name: "get_citations",
		Description: "Get articles that cite a specific paper. " +
			"Use the citation_id from search_articles results.",
	}, scholar.GetCitations)

	mcp.AddTool(server, &mcp.Tool{
		Name: "get_article_versions",
		Description: "Get all versions of an article from different sources. " +
			"Use the cluster_id from search_articles results.",
	}, scholar.GetVersions)

	mcp.AddTool(server, &mcp.Tool{
		Name: "get_fulltext",
		Description: "Get the full text of an Open Access article via the CORE aggregator. " +
			"Provide at least one identifier: DOI, title, or CORE ID. " +
			"Returns the full text when available, otherwise abstract and download link.",
	}, fulltext.GetFulltext)

	mcp.AddTool(server, &mcp.Tool{
		Name: "search_open_access",
		Description: "Search for Open Access articles with full text available. " +
			"Returns articles from the CORE aggregator with direct download links.",
	}, fulltext.SearchOpenAccess)
}
