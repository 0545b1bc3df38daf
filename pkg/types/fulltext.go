// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FulltextSource labels every full-text record with its aggregator.
const FulltextSource = "CORE API"

// FulltextResult is the outcome of a full-text lookup. A lookup that
// resolves no work is still a valid result with FulltextAvailable false,
// never an error.
type FulltextResult struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Abstract    string `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	DownloadURL string `json:"download_url,omitempty" yaml:"download_url,omitempty"`

	// FulltextAvailable reports whether the resolved work carries a
	// non-null full-text body.
	FulltextAvailable bool `json:"fulltext_available" yaml:"fulltext_available"`

	// Fulltext is the body text, included only when available.
	Fulltext string `json:"fulltext,omitempty" yaml:"fulltext,omitempty"`

	Source string `json:"source" yaml:"source"`
}

// OpenAccessArticle is a work from the open-access aggregator.
type OpenAccessArticle struct {
	Title string `json:"title" yaml:"title"`

	// Authors is a comma-joined name list. Unlike the Scholar records it
	// stays empty when the upstream item carries no authors.
	Authors string `json:"authors,omitempty" yaml:"authors,omitempty"`

	Year        int    `json:"year,omitempty" yaml:"year,omitempty"`
	DOI         string `json:"doi,omitempty" yaml:"doi,omitempty"`
	DownloadURL string `json:"download_url,omitempty" yaml:"download_url,omitempty"`
	Abstract    string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// CoreID is the opaque provider-assigned identifier, usable with
	// get_fulltext.
	CoreID string `json:"core_id,omitempty" yaml:"core_id,omitempty"`
}

// SearchOpenAccessResult pairs a query with the open-access works
// returned for it. TotalResults equals len(Articles).
type SearchOpenAccessResult struct {
	Query        string              `json:"query" yaml:"query"`
	TotalResults int                 `json:"total_results" yaml:"total_results"`
	Articles     []OpenAccessArticle `json:"articles" yaml:"articles"`
}
