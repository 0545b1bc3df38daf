// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package serpapi wraps the SerpAPI Google Scholar endpoints. Every
// operation is a single GET against one search endpoint; the engine
// parameter selects the sub-API. A 200 response whose body carries an
// "error" key is an upstream-reported failure and surfaces as an APIError.
package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/scholar-mcp/internal/httputil"
	"github.com/pdiddy/scholar-mcp/pkg/types"
)

// searchBase is the SerpAPI search endpoint. Declared as a var so tests
// can substitute an httptest server.
var searchBase = "https://serpapi.com/search"

// maxNum is the upstream per-page ceiling for scholar results.
const maxNum = 20

// APIError is an error the upstream reported inside a 200 response body.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("serpapi: %s", e.Message)
}

// Client calls SerpAPI with one connection-pooled http.Client. It is
// created once at process start and shared by all tool invocations.
type Client struct {
	httpClient *http.Client
	apiKey     string
	userAgent  string
}

// New builds a Client from the given configuration.
func New(cfg types.ScholarConfig) *Client {
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

// ArticleQuery holds the parameters for an article search.
type ArticleQuery struct {
	Query    string
	Language string
	Num      int
	YearFrom int
	YearTo   int
}

// SearchArticles searches Google Scholar for articles. Num is clamped to
// the upstream ceiling of 20; year bounds are sent only when set.
func (c *Client) SearchArticles(ctx context.Context, q ArticleQuery) ([]OrganicResult, error) {
	lang := q.Language
	if lang == "" {
		lang = "en"
	}
	num := q.Num
	if num > maxNum {
		num = maxNum
	}

	params := url.Values{
		"engine": {"google_scholar"},
		"q":      {q.Query},
		"hl":     {lang},
		"num":    {strconv.Itoa(num)},
	}
	if q.YearFrom > 0 {
		params.Set("as_ylo", strconv.Itoa(q.YearFrom))
	}
	if q.YearTo > 0 {
		params.Set("as_yhi", strconv.Itoa(q.YearTo))
	}

	resp, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}
	return resp.OrganicResults, nil
}

// SearchProfiles searches Google Scholar author profiles.
func (c *Client) SearchProfiles(ctx context.Context, authorName string) ([]Profile, error) {
	params := url.Values{
		"engine": {"google_scholar_profiles"},
		"q":      {authorName},
	}
	resp, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}
	return resp.Profiles, nil
}

// Citations returns the works citing the article identified by
// citationID. Num is clamped to the upstream ceiling of 20.
func (c *Client) Citations(ctx context.Context, citationID string, num int) ([]OrganicResult, error) {
	if num > maxNum {
		num = maxNum
	}
	params := url.Values{
		"engine": {"google_scholar"},
		"cites":  {citationID},
		"num":    {strconv.Itoa(num)},
	}
	resp, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}
	return resp.OrganicResults, nil
}

// Cluster returns all versions of the article identified by clusterID.
func (c *Client) Cluster(ctx context.Context, clusterID string) ([]OrganicResult, error) {
	params := url.Values{
		"engine":  {"google_scholar"},
		"cluster": {clusterID},
	}
	resp, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}
	return resp.OrganicResults, nil
}

// get performs one GET against the search endpoint. It fails on non-2xx
// status and on an error field embedded in an otherwise successful body;
// there are no retries, a failed call surfaces immediately.
func (c *Client) get(ctx context.Context, params url.Values) (*searchResponse, error) {
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("SerpAPI request: %w", err)
	}
	defer httputil.DrainClose(resp)

	if err := httputil.CheckStatus(resp); err != nil {
		return nil, fmt.Errorf("SerpAPI request: %w", err)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing SerpAPI response: %w", err)
	}
	if sr.Error != "" {
		return nil, &APIError{Message: sr.Error}
	}
	return &sr, nil
}

// SerpAPI JSON structures. Fields the upstream omits decode to zero
// values, which the tool layer treats as declared defaults.
type searchResponse struct {
	Error          string          `json:"error"`
	OrganicResults []OrganicResult `json:"organic_results"`
	Profiles       []Profile       `json:"profiles"`
}

// OrganicResult is one scholar search hit as the upstream shapes it.
type OrganicResult struct {
	Title           string          `json:"title"`
	Link            string          `json:"link"`
	Snippet         string          `json:"snippet"`
	Type            string          `json:"type"`
	PublicationInfo PublicationInfo `json:"publication_info"`
	InlineLinks     InlineLinks     `json:"inline_links"`
	Resources       []Resource      `json:"resources"`
}

// PublicationInfo carries the free-text publication summary and the
// structured author list, either of which may be absent.
type PublicationInfo struct {
	Summary string      `json:"summary"`
	Year    string      `json:"year"`
	Authors []PubAuthor `json:"authors"`
}

// PubAuthor is one structured author entry.
type PubAuthor struct {
	Name string `json:"name"`
}

// InlineLinks carries the citation cross-references for a result.
type InlineLinks struct {
	CitedBy   CitedBy `json:"cited_by"`
	ClusterID string  `json:"cluster_id"`
}

// CitedBy holds the citation count and the opaque cites identifier.
type CitedBy struct {
	Total   int    `json:"total"`
	CitesID string `json:"cites_id"`
}

// Resource is an attached file, e.g. a PDF mirror.
type Resource struct {
	Title      string `json:"title"`
	FileFormat string `json:"file_format"`
	Link       string `json:"link"`
}

// Profile is one author-profile hit.
type Profile struct {
	Name         string         `json:"name"`
	AuthorID     string         `json:"author_id"`
	Affiliations string         `json:"affiliations"`
	Email        string         `json:"email"`
	Interests    []Interest     `json:"interests"`
	CitedBy      ProfileCitedBy `json:"cited_by"`
}

// Interest is one research-interest tag on a profile.
type Interest struct {
	Title string `json:"title"`
}

// ProfileCitedBy holds a profile's aggregate citation count.
type ProfileCitedBy struct {
	All int `json:"all"`
}
