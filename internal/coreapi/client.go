// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package coreapi wraps the CORE v3 open-access aggregator API: work
// search, work-by-id fetch, and DOI/title lookup helpers. An optional
// bearer token raises the rate allowance; without one requests go out
// unauthenticated.
package coreapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/scholar-mcp/internal/httputil"
	"github.com/pdiddy/scholar-mcp/pkg/types"
)

// apiBase is the CORE v3 endpoint root. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://api.core.ac.uk/v3"

// maxLimit is the upstream per-page ceiling for works searches.
const maxLimit = 100

// Client calls the CORE API with one connection-pooled http.Client,
// created at process start and shared by all tool invocations.
type Client struct {
	httpClient *http.Client
	apiKey     string
	userAgent  string
}

// New builds a Client from the given configuration.
func New(cfg types.FulltextConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = types.DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
	}
}

// Close releases idle connections held by the pooled client.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// SearchWorksResponse is the upstream works-search envelope.
type SearchWorksResponse struct {
	TotalHits int    `json:"totalHits"`
	Results   []Work `json:"results"`
}

// Work is one aggregated research output as the upstream shapes it.
// FullText is a pointer so a present-but-empty body and an absent field
// stay distinguishable.
type Work struct {
	ID            json.Number `json:"id"`
	Title         string      `json:"title"`
	Abstract      string      `json:"abstract"`
	DOI           string      `json:"doi"`
	YearPublished int         `json:"yearPublished"`
	DownloadURL   string      `json:"downloadUrl"`
	FullText      *string     `json:"fullText"`
	Authors       []Author    `json:"authors"`
}

// CoreID returns the provider-assigned identifier as a string, or ""
// when the upstream omitted it.
func (w *Work) CoreID() string {
	return w.ID.String()
}

// Author is one author entry. The upstream emits either a structured
// object with a name field or a bare string; both decode to a name.
type Author struct {
	Name string `json:"name"`
}

// UnmarshalJSON accepts both the object and the bare-string forms.
func (a *Author) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &a.Name)
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	a.Name = obj.Name
	return nil
}

// SearchWorks searches aggregated works. Limit is clamped to the
// upstream ceiling of 100; fulltextOnly restricts to works whose body
// text is available.
func (c *Client) SearchWorks(ctx context.Context, query string, fulltextOnly bool, limit, offset int) (*SearchWorksResponse, error) {
	if limit > maxLimit {
		limit = maxLimit
	}
	params := url.Values{
		"q":      {query},
		"limit":  {strconv.Itoa(limit)},
		"offset": {strconv.Itoa(offset)},
	}
	if fulltextOnly {
		params.Set("fulltext", "true")
	}

	var swr SearchWorksResponse
	if err := c.get(ctx, "/search/works?"+params.Encode(), &swr); err != nil {
		return nil, err
	}
	return &swr, nil
}

// GetWork fetches one work by its CORE identifier. A missing work
// surfaces as a not-found StatusError; this layer never swallows it.
func (c *Client) GetWork(ctx context.Context, workID string) (*Work, error) {
	var w Work
	if err := c.get(ctx, "/works/"+url.PathEscape(workID), &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// SearchByDOI looks one work up by DOI. Zero matches return (nil, nil),
// never an error.
func (c *Client) SearchByDOI(ctx context.Context, doi string) (*Work, error) {
	swr, err := c.SearchWorks(ctx, "doi:"+doi, false, 1, 0)
	if err != nil {
		return nil, err
	}
	if len(swr.Results) == 0 {
		return nil, nil
	}
	return &swr.Results[0], nil
}

// SearchByTitle looks the best-matching work up by title, restricted to
// works with full text. Zero matches return (nil, nil).
func (c *Client) SearchByTitle(ctx context.Context, title string) (*Work, error) {
	swr, err := c.SearchWorks(ctx, "title:"+title, true, 1, 0)
	if err != nil {
		return nil, err
	}
	if len(swr.Results) == 0 {
		return nil, nil
	}
	return &swr.Results[0], nil
}

// FullText returns the body text of a work, or nil when none is stored.
func (c *Client) FullText(ctx context.Context, workID string) (*string, error) {
	w, err := c.GetWork(ctx, workID)
	if err != nil {
		return nil, err
	}
	return w.FullText, nil
}

// DownloadURL returns the download link of a work, or "" when none.
func (c *Client) DownloadURL(ctx context.Context, workID string) (string, error) {
	w, err := c.GetWork(ctx, workID)
	if err != nil {
		return "", err
	}
	return w.DownloadURL, nil
}

// get performs one GET against the API and decodes the JSON body into
// out. Non-2xx responses surface as StatusError; no retries.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBase+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("CORE API request: %w", err)
	}
	defer httputil.DrainClose(resp)

	if err := httputil.CheckStatus(resp); err != nil {
		return fmt.Errorf("CORE API %s: %w", strings.SplitN(path, "?", 2)[0], err)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing CORE response: %w", err)
	}
	return nil
}
