// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tools implements the scholar-mcp tool surface: it validates
// arguments, calls the upstream clients, and normalizes their ad-hoc JSON
// shapes into the stable records of pkg/types. Tool structs are stateless
// beyond the injected client and logger, so invocations run concurrently
// without coordination.
package tools

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/pdiddy/scholar-mcp/internal/serpapi"
	"github.com/pdiddy/scholar-mcp/pkg/types"
)

// Scholar result pages are capped at 20 by the upstream; requests below
// the floor are raised to it rather than rejected.
const (
	minScholarResults = 1
	maxScholarResults = 20
)

// ScholarClient is the citation-index surface the scholar tools consume.
// *serpapi.Client implements it; tests substitute stubs.
type ScholarClient interface {
	SearchArticles(ctx context.Context, q serpapi.ArticleQuery) ([]serpapi.OrganicResult, error)
	SearchProfiles(ctx context.Context, authorName string) ([]serpapi.Profile, error)
	Citations(ctx context.Context, citationID string, num int) ([]serpapi.OrganicResult, error)
	Cluster(ctx context.Context, clusterID string) ([]serpapi.OrganicResult, error)
}

// ScholarTools exposes the four Google Scholar operations.
type ScholarTools struct {
	client ScholarClient
	log    zerolog.Logger
}

// NewScholarTools builds the scholar tool set around a client.
func NewScholarTools(client ScholarClient, log zerolog.Logger) *ScholarTools {
	return &ScholarTools{client: client, log: log}
}

// SearchArticlesInput are the arguments of the search_articles tool.
type SearchArticlesInput struct {
	Query      string `json:"query" jsonschema:"search query for articles"`
	YearFrom   int    `json:"year_from,omitempty" jsonschema:"filter articles from this year"`
	YearTo     int    `json:"year_to,omitempty" jsonschema:"filter articles up to this year"`
	Language   string `json:"language,omitempty" jsonschema:"language code (e.g. 'en', 'ru'), default 'en'"`
	NumResults int    `json:"num_results,omitempty" jsonschema:"number of results (1-20, default 10)"`
}

// SearchArticles searches Google Scholar and normalizes each hit into an
// Article. A failed upstream call fails the whole operation; there is no
// partial-result salvage.
func (t *ScholarTools) SearchArticles(ctx context.Context, _ *mcp.CallToolRequest, in SearchArticlesInput) (*mcp.CallToolResult, types.SearchArticlesResult, error) {
	num := clampResults(in.NumResults)

	items, err := t.client.SearchArticles(ctx, serpapi.ArticleQuery{
		Query:    in.Query,
		Language: in.Language,
		Num:      num,
		YearFrom: in.YearFrom,
		YearTo:   in.YearTo,
	})
	if err != nil {
		return nil, types.SearchArticlesResult{}, err
	}

	articles := make([]types.Article, 0, len(items))
	for _, item := range items {
		articles = append(articles, types.Article{
			Title:      item.Title,
			Link:       item.Link,
			Snippet:    item.Snippet,
			Authors:    joinAuthors(item.PublicationInfo.Authors),
			Year:       item.PublicationInfo.Year,
			Citations:  item.InlineLinks.CitedBy.Total,
			CitationID: item.InlineLinks.CitedBy.CitesID,
			ClusterID:  item.InlineLinks.ClusterID,
			PDFLink:    pdfLink(item.Resources),
		})
	}

	t.log.Debug().Str("query", in.Query).Int("results", len(articles)).Msg("search_articles")
	return nil, types.SearchArticlesResult{
		Query:        in.Query,
		TotalResults: len(articles),
		Articles:     articles,
	}, nil
}

// SearchAuthorInput are the arguments of the search_author tool.
type SearchAuthorInput struct {
	AuthorName string `json:"author_name" jsonschema:"name of the author to search"`
}

// SearchAuthor searches Google Scholar author profiles.
func (t *ScholarTools) SearchAuthor(ctx context.Context, _ *mcp.CallToolRequest, in SearchAuthorInput) (*mcp.CallToolResult, types.SearchAuthorResult, error) {
	items, err := t.client.SearchProfiles(ctx, in.AuthorName)
	if err != nil {
		return nil, types.SearchAuthorResult{}, err
	}

	profiles := make([]types.Author, 0, len(items))
	for _, p := range items {
		interests := make([]string, 0, len(p.Interests))
		for _, i := range p.Interests {
			interests = append(interests, i.Title)
		}
		profiles = append(profiles, types.Author{
			Name:         p.Name,
			Affiliations: p.Affiliations,
			Email:        p.Email,
			Interests:    strings.Join(interests, ", "),
			AuthorID:     p.AuthorID,
			Citations:    p.CitedBy.All,
		})
	}

	t.log.Debug().Str("author", in.AuthorName).Int("profiles", len(profiles)).Msg("search_author")
	return nil, types.SearchAuthorResult{
		Query:         in.AuthorName,
		TotalProfiles: len(profiles),
		Profiles:      profiles,
	}, nil
}

// GetCitationsInput are the arguments of the get_citations tool.
type GetCitationsInput struct {
	CitationID string `json:"citation_id" jsonschema:"citation ID from a previous search result"`
	NumResults int    `json:"num_results,omitempty" jsonschema:"number of citing articles (1-20, default 10)"`
}

// GetCitations returns the works citing an article. The citation ID is
// passed through opaquely.
func (t *ScholarTools) GetCitations(ctx context.Context, _ *mcp.CallToolRequest, in GetCitationsInput) (*mcp.CallToolResult, types.CitationsResult, error) {
	num := clampResults(in.NumResults)

	items, err := t.client.Citations(ctx, in.CitationID, num)
	if err != nil {
		return nil, types.CitationsResult{}, err
	}

	citing := make([]types.CitingArticle, 0, len(items))
	for _, item := range items {
		citing = append(citing, types.CitingArticle{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
			Authors: joinAuthors(item.PublicationInfo.Authors),
			Year:    item.PublicationInfo.Year,
		})
	}

	t.log.Debug().Str("citation_id", in.CitationID).Int("citing", len(citing)).Msg("get_citations")
	return nil, types.CitationsResult{
		CitationID:     in.CitationID,
		TotalCitations: len(citing),
		CitingArticles: citing,
	}, nil
}

// GetVersionsInput are the arguments of the get_article_versions tool.
type GetVersionsInput struct {
	ClusterID string `json:"cluster_id" jsonschema:"cluster ID from a previous search result"`
}

// GetVersions returns all versions of an article across sources.
func (t *ScholarTools) GetVersions(ctx context.Context, _ *mcp.CallToolRequest, in GetVersionsInput) (*mcp.CallToolResult, types.VersionsResult, error) {
	items, err := t.client.Cluster(ctx, in.ClusterID)
	if err != nil {
		return nil, types.VersionsResult{}, err
	}

	versions := make([]types.ArticleVersion, 0, len(items))
	for _, item := range items {
		versions = append(versions, types.ArticleVersion{
			Title:  item.Title,
			Link:   item.Link,
			Source: defaultString(item.PublicationInfo.Summary, "Unknown"),
			Type:   defaultString(item.Type, "Unknown"),
		})
	}

	t.log.Debug().Str("cluster_id", in.ClusterID).Int("versions", len(versions)).Msg("get_article_versions")
	return nil, types.VersionsResult{
		ClusterID:     in.ClusterID,
		TotalVersions: len(versions),
		Versions:      versions,
	}, nil
}

// clampResults normalizes a requested result count into [1,20], with 10
// as the unset default.
func clampResults(n int) int {
	switch {
	case n == 0:
		return 10
	case n < minScholarResults:
		return minScholarResults
	case n > maxScholarResults:
		return maxScholarResults
	default:
		return n
	}
}

// joinAuthors flattens a structured author list into comma-joined text.
// An empty list yields the literal "Unknown".
func joinAuthors(authors []serpapi.PubAuthor) string {
	if len(authors) == 0 {
		return "Unknown"
	}
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

// pdfLink returns the link of the first PDF resource, or "" when the
// item carries no resources or no PDF entry.
func pdfLink(resources []serpapi.Resource) string {
	for _, r := range resources {
		if r.FileFormat == "PDF" {
			return r.Link
		}
	}
	return ""
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
