// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the normalized result records returned by the
// scholar-mcp tool surface. Every record is a request-scoped value: built
// fresh from an upstream response, handed to the caller, and discarded.
package types

// Article is a single Google Scholar search hit. CitationID and ClusterID
// are opaque upstream identifiers: never parsed, only threaded into
// get_citations and get_article_versions calls.
type Article struct {
	// Title is the article title as returned by the citation index.
	Title string `json:"title" yaml:"title"`

	// Link is the landing page for the article, when present.
	Link string `json:"link,omitempty" yaml:"link,omitempty"`

	// Snippet is the short result excerpt, when present.
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty"`

	// Authors is a comma-joined free-text author list ("Unknown" when the
	// upstream item carries none).
	Authors string `json:"authors" yaml:"authors"`

	// Year is free text; the upstream reports years in inconsistent formats.
	Year string `json:"year,omitempty" yaml:"year,omitempty"`

	// Citations is the number of works citing this article.
	Citations int `json:"citations" yaml:"citations"`

	// CitationID fetches citing works via get_citations.
	CitationID string `json:"citation_id,omitempty" yaml:"citation_id,omitempty"`

	// ClusterID fetches article versions via get_article_versions.
	ClusterID string `json:"cluster_id,omitempty" yaml:"cluster_id,omitempty"`

	// PDFLink is the first PDF resource attached to the result, when any.
	PDFLink string `json:"pdf_link,omitempty" yaml:"pdf_link,omitempty"`
}

// SearchArticlesResult pairs a query with the articles returned for it.
// TotalResults always equals len(Articles): it counts the page actually
// returned, not the upstream result universe.
type SearchArticlesResult struct {
	Query        string    `json:"query" yaml:"query"`
	TotalResults int       `json:"total_results" yaml:"total_results"`
	Articles     []Article `json:"articles" yaml:"articles"`
}

// Author is a Google Scholar profile hit.
type Author struct {
	Name         string `json:"name" yaml:"name"`
	Affiliations string `json:"affiliations,omitempty" yaml:"affiliations,omitempty"`
	Email        string `json:"email,omitempty" yaml:"email,omitempty"`

	// Interests is a comma-joined flattening of the profile's interest tags.
	Interests string `json:"interests,omitempty" yaml:"interests,omitempty"`

	// AuthorID is the opaque profile identifier.
	AuthorID string `json:"author_id,omitempty" yaml:"author_id,omitempty"`

	// Citations is the profile's total citation count.
	Citations int `json:"citations" yaml:"citations"`
}

// SearchAuthorResult pairs an author-name query with the matching profiles.
type SearchAuthorResult struct {
	Query         string   `json:"query" yaml:"query"`
	TotalProfiles int      `json:"total_profiles" yaml:"total_profiles"`
	Profiles      []Author `json:"profiles" yaml:"profiles"`
}

// CitingArticle is an article that cites another. Citing results are
// leaves: they carry no citation or cluster identifiers of their own.
type CitingArticle struct {
	Title   string `json:"title" yaml:"title"`
	Link    string `json:"link,omitempty" yaml:"link,omitempty"`
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty"`
	Authors string `json:"authors" yaml:"authors"`
	Year    string `json:"year,omitempty" yaml:"year,omitempty"`
}

// CitationsResult pairs a citation identifier with the works citing it.
type CitationsResult struct {
	CitationID     string          `json:"citation_id" yaml:"citation_id"`
	TotalCitations int             `json:"total_citations" yaml:"total_citations"`
	CitingArticles []CitingArticle `json:"citing_articles" yaml:"citing_articles"`
}

// ArticleVersion is one version of an article hosted by a particular source.
type ArticleVersion struct {
	Title  string `json:"title" yaml:"title"`
	Link   string `json:"link,omitempty" yaml:"link,omitempty"`
	Source string `json:"source" yaml:"source"`
	Type   string `json:"type" yaml:"type"`
}

// VersionsResult pairs a cluster identifier with the versions found for it.
type VersionsResult struct {
	ClusterID     string           `json:"cluster_id" yaml:"cluster_id"`
	TotalVersions int              `json:"total_versions" yaml:"total_versions"`
	Versions      []ArticleVersion `json:"versions" yaml:"versions"`
}
