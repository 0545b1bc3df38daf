// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/pdiddy/scholar-mcp/internal/coreapi"
	"github.com/pdiddy/scholar-mcp/internal/httputil"
	"github.com/pdiddy/scholar-mcp/pkg/types"
)

// FulltextClient is the open-access aggregator surface the fulltext
// tools consume. *coreapi.Client implements it; tests substitute stubs.
type FulltextClient interface {
	SearchWorks(ctx context.Context, query string, fulltextOnly bool, limit, offset int) (*coreapi.SearchWorksResponse, error)
	GetWork(ctx context.Context, workID string) (*coreapi.Work, error)
	SearchByDOI(ctx context.Context, doi string) (*coreapi.Work, error)
	SearchByTitle(ctx context.Context, title string) (*coreapi.Work, error)
}

// FulltextTools exposes the two open-access operations.
type FulltextTools struct {
	client   FulltextClient
	log      zerolog.Logger
	validate *validator.Validate
}

// NewFulltextTools builds the fulltext tool set around a client.
func NewFulltextTools(client FulltextClient, log zerolog.Logger) *FulltextTools {
	return &FulltextTools{
		client:   client,
		log:      log,
		validate: validator.New(),
	}
}

// GetFulltextInput are the arguments of the get_fulltext tool. At least
// one identifier must be provided.
type GetFulltextInput struct {
	DOI    string `json:"doi,omitempty" jsonschema:"DOI of the article"`
	Title  string `json:"title,omitempty" jsonschema:"title of the article"`
	CoreID string `json:"core_id,omitempty" jsonschema:"CORE ID of the article"`
}

// strategy is one ordered attempt to locate a work from a partial
// identifier set. run returns (nil, nil) for a clean miss.
type strategy struct {
	name string
	run  func(ctx context.Context) (*coreapi.Work, error)
}

// GetFulltext resolves a work by CORE ID, then DOI, then title, stopping
// at the first hit. A strategy failure — not-found or transport — is
// logged and the chain continues; only exhaustion of every strategy
// yields the not-found result, which is a success, never an error.
func (t *FulltextTools) GetFulltext(ctx context.Context, _ *mcp.CallToolRequest, in GetFulltextInput) (*mcp.CallToolResult, types.FulltextResult, error) {
	if in.DOI == "" && in.Title == "" && in.CoreID == "" {
		return nil, types.FulltextResult{}, fmt.Errorf("provide at least one of: doi, title, or core_id")
	}

	var strategies []strategy
	if in.CoreID != "" {
		strategies = append(strategies, strategy{"core_id", func(ctx context.Context) (*coreapi.Work, error) {
			return t.client.GetWork(ctx, in.CoreID)
		}})
	}
	if in.DOI != "" {
		strategies = append(strategies, strategy{"doi", func(ctx context.Context) (*coreapi.Work, error) {
			return t.client.SearchByDOI(ctx, in.DOI)
		}})
	}
	if in.Title != "" {
		strategies = append(strategies, strategy{"title", func(ctx context.Context) (*coreapi.Work, error) {
			return t.client.SearchByTitle(ctx, in.Title)
		}})
	}

	work := t.resolve(ctx, strategies)
	if work == nil {
		// Not an error: echo the input title, flag unavailability.
		return nil, types.FulltextResult{
			Title:  in.Title,
			Source: types.FulltextSource,
		}, nil
	}

	result := types.FulltextResult{
		Title:             work.Title,
		Abstract:          work.Abstract,
		DownloadURL:       work.DownloadURL,
		FulltextAvailable: work.FullText != nil,
		Source:            types.FulltextSource,
	}
	if work.FullText != nil {
		result.Fulltext = *work.FullText
	}
	return nil, result, nil
}

// resolve drives the strategy chain: first non-nil work wins and later
// strategies are never consulted. Misses are logged at debug, transport
// failures at warn; both fall through to the next strategy.
func (t *FulltextTools) resolve(ctx context.Context, strategies []strategy) *coreapi.Work {
	for _, s := range strategies {
		work, err := s.run(ctx)
		if err != nil {
			if httputil.IsNotFound(err) {
				t.log.Debug().Str("strategy", s.name).Msg("fulltext lookup: not found")
			} else {
				t.log.Warn().Str("strategy", s.name).Err(err).Msg("fulltext lookup failed")
			}
			continue
		}
		if work == nil {
			t.log.Debug().Str("strategy", s.name).Msg("fulltext lookup: no match")
			continue
		}
		return work
	}
	return nil
}

// SearchOpenAccessInput are the arguments of the search_open_access
// tool. Out-of-range limits are rejected before any upstream call.
type SearchOpenAccessInput struct {
	Query string `json:"query" jsonschema:"search query for open access articles" validate:"required"`
	Limit int    `json:"limit,omitempty" jsonschema:"number of results (1-50, default 10)" validate:"omitempty,min=1,max=50"`
}

// SearchOpenAccess searches works with full text available and maps each
// to an OpenAccessArticle.
func (t *FulltextTools) SearchOpenAccess(ctx context.Context, _ *mcp.CallToolRequest, in SearchOpenAccessInput) (*mcp.CallToolResult, types.SearchOpenAccessResult, error) {
	if err := t.validate.Struct(in); err != nil {
		return nil, types.SearchOpenAccessResult{}, fmt.Errorf("invalid arguments: %w", err)
	}
	limit := in.Limit
	if limit == 0 {
		limit = 10
	}

	swr, err := t.client.SearchWorks(ctx, in.Query, true, limit, 0)
	if err != nil {
		return nil, types.SearchOpenAccessResult{}, err
	}

	articles := make([]types.OpenAccessArticle, 0, len(swr.Results))
	for i := range swr.Results {
		w := &swr.Results[i]
		articles = append(articles, types.OpenAccessArticle{
			Title:       w.Title,
			Authors:     joinWorkAuthors(w.Authors),
			Year:        w.YearPublished,
			DOI:         w.DOI,
			DownloadURL: w.DownloadURL,
			Abstract:    w.Abstract,
			CoreID:      w.CoreID(),
		})
	}

	t.log.Debug().Str("query", in.Query).Int("results", len(articles)).Msg("search_open_access")
	return nil, types.SearchOpenAccessResult{
		Query:        in.Query,
		TotalResults: len(articles),
		Articles:     articles,
	}, nil
}

// joinWorkAuthors flattens aggregator author entries to comma-joined
// text. An empty list stays empty here; the "Unknown" default belongs to
// the Scholar records only.
func joinWorkAuthors(authors []coreapi.Author) string {
	if len(authors) == 0 {
		return ""
	}
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}
