// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pdiddy/scholar-mcp/internal/coreapi"
	"github.com/pdiddy/scholar-mcp/internal/httputil"
	"github.com/pdiddy/scholar-mcp/pkg/types"
)

// stubFulltext dispatches to per-method funcs and counts calls. A method
// invoked without a func fails the test.
type stubFulltext struct {
	t *testing.T

	searchWorks   func(query string, fulltextOnly bool, limit, offset int) (*coreapi.SearchWorksResponse, error)
	getWork       func(workID string) (*coreapi.Work, error)
	searchByDOI   func(doi string) (*coreapi.Work, error)
	searchByTitle func(title string) (*coreapi.Work, error)

	calls []string
}

func (s *stubFulltext) SearchWorks(_ context.Context, query string, fulltextOnly bool, limit, offset int) (*coreapi.SearchWorksResponse, error) {
	s.calls = append(s.calls, "search_works")
	if s.searchWorks == nil {
		s.t.Fatal("unexpected SearchWorks call")
	}
	return s.searchWorks(query, fulltextOnly, limit, offset)
}

func (s *stubFulltext) GetWork(_ context.Context, workID string) (*coreapi.Work, error) {
	s.calls = append(s.calls, "get_work")
	if s.getWork == nil {
		s.t.Fatal("unexpected GetWork call")
	}
	return s.getWork(workID)
}

func (s *stubFulltext) SearchByDOI(_ context.Context, doi string) (*coreapi.Work, error) {
	s.calls = append(s.calls, "doi")
	if s.searchByDOI == nil {
		s.t.Fatal("unexpected SearchByDOI call")
	}
	return s.searchByDOI(doi)
}

func (s *stubFulltext) SearchByTitle(_ context.Context, title string) (*coreapi.Work, error) {
	s.calls = append(s.calls, "title")
	if s.searchByTitle == nil {
		s.t.Fatal("unexpected SearchByTitle call")
	}
	return s.searchByTitle(title)
}

func newTestFulltextTools(stub *stubFulltext) *FulltextTools {
	return NewFulltextTools(stub, zerolog.Nop())
}

func strPtr(s string) *string { return &s }

// --- GetFulltext ---

func TestGetFulltextRequiresAnIdentifier(t *testing.T) {
	stub := &stubFulltext{t: t}
	_, _, err := newTestFulltextTools(stub).GetFulltext(context.Background(), nil, GetFulltextInput{})
	if err == nil {
		t.Fatal("expected error for empty input")
	}
	if !strings.Contains(err.Error(), "at least one of") {
		t.Errorf("err = %v", err)
	}
	if len(stub.calls) != 0 {
		t.Errorf("calls = %v, want none before validation", stub.calls)
	}
}

func TestGetFulltextCoreIDShortCircuits(t *testing.T) {
	stub := &stubFulltext{
		t: t,
		getWork: func(workID string) (*coreapi.Work, error) {
			if workID != "42" {
				t.Errorf("workID = %q, want 42", workID)
			}
			return &coreapi.Work{
				Title:       "Found by ID",
				Abstract:    "An abstract.",
				DownloadURL: "https://core.ac.uk/download/42.pdf",
				FullText:    strPtr("The body text."),
			}, nil
		},
	}

	_, res, err := newTestFulltextTools(stub).GetFulltext(context.Background(), nil, GetFulltextInput{
		CoreID: "42", DOI: "10.1/x", Title: "Found by ID",
	})
	if err != nil {
		t.Fatalf("GetFulltext: %v", err)
	}

	// First hit wins; DOI and title strategies are never consulted.
	if len(stub.calls) != 1 || stub.calls[0] != "get_work" {
		t.Errorf("calls = %v, want [get_work]", stub.calls)
	}
	if !res.FulltextAvailable || res.Fulltext != "The body text." {
		t.Errorf("result = %+v, want available full text", res)
	}
	if res.Source != types.FulltextSource {
		t.Errorf("Source = %q", res.Source)
	}
}

func TestGetFulltextFallsThroughOnFailure(t *testing.T) {
	stub := &stubFulltext{
		t: t,
		getWork: func(string) (*coreapi.Work, error) {
			return nil, &httputil.StatusError{Code: http.StatusNotFound}
		},
		searchByDOI: func(doi string) (*coreapi.Work, error) {
			return &coreapi.Work{
				Title:    "Found by DOI",
				DOI:      doi,
				FullText: strPtr("Body."),
			}, nil
		},
	}

	_, res, err := newTestFulltextTools(stub).GetFulltext(context.Background(), nil, GetFulltextInput{
		CoreID: "42", DOI: "10.1/x",
	})
	if err != nil {
		t.Fatalf("GetFulltext: %v", err)
	}
	if len(stub.calls) != 2 || stub.calls[0] != "get_work" || stub.calls[1] != "doi" {
		t.Errorf("calls = %v, want [get_work doi]", stub.calls)
	}
	if res.Title != "Found by DOI" || !res.FulltextAvailable {
		t.Errorf("result = %+v", res)
	}
}

func TestGetFulltextTransportFailureAlsoFallsThrough(t *testing.T) {
	stub := &stubFulltext{
		t: t,
		searchByDOI: func(string) (*coreapi.Work, error) {
			return nil, &httputil.StatusError{Code: http.StatusBadGateway}
		},
		searchByTitle: func(string) (*coreapi.Work, error) {
			return &coreapi.Work{Title: "Found by Title"}, nil
		},
	}

	_, res, err := newTestFulltextTools(stub).GetFulltext(context.Background(), nil, GetFulltextInput{
		DOI: "10.1/x", Title: "Found by Title",
	})
	if err != nil {
		t.Fatalf("GetFulltext: %v", err)
	}
	if res.Title != "Found by Title" {
		t.Errorf("Title = %q", res.Title)
	}
}

func TestGetFulltextExhaustionIsNotAnError(t *testing.T) {
	stub := &stubFulltext{
		t:             t,
		searchByDOI:   func(string) (*coreapi.Work, error) { return nil, nil },
		searchByTitle: func(string) (*coreapi.Work, error) { return nil, nil },
	}

	_, res, err := newTestFulltextTools(stub).GetFulltext(context.Background(), nil, GetFulltextInput{
		DOI: "10.9999/nope", Title: "Lost Paper",
	})
	if err != nil {
		t.Fatalf("GetFulltext: %v", err)
	}
	if res.FulltextAvailable {
		t.Error("FulltextAvailable = true, want false on exhaustion")
	}
	if res.Title != "Lost Paper" {
		t.Errorf("Title = %q, want the input title echoed", res.Title)
	}
	if res.Source != types.FulltextSource {
		t.Errorf("Source = %q", res.Source)
	}
}

func TestGetFulltextMetadataWithoutBody(t *testing.T) {
	stub := &stubFulltext{
		t: t,
		searchByDOI: func(string) (*coreapi.Work, error) {
			return &coreapi.Work{
				Title:       "Metadata Only",
				Abstract:    "An abstract.",
				DownloadURL: "https://core.ac.uk/download/7.pdf",
			}, nil
		},
	}

	_, res, err := newTestFulltextTools(stub).GetFulltext(context.Background(), nil, GetFulltextInput{DOI: "10.1/y"})
	if err != nil {
		t.Fatalf("GetFulltext: %v", err)
	}
	if res.FulltextAvailable || res.Fulltext != "" {
		t.Errorf("result = %+v, want metadata with no body", res)
	}
	if res.Abstract != "An abstract." || res.DownloadURL != "https://core.ac.uk/download/7.pdf" {
		t.Errorf("result = %+v", res)
	}
}

// --- SearchOpenAccess ---

func TestSearchOpenAccess(t *testing.T) {
	stub := &stubFulltext{
		t: t,
		searchWorks: func(query string, fulltextOnly bool, limit, offset int) (*coreapi.SearchWorksResponse, error) {
			if !fulltextOnly {
				t.Error("fulltextOnly = false, want true")
			}
			if limit != 10 || offset != 0 {
				t.Errorf("limit/offset = %d/%d, want 10/0", limit, offset)
			}
			return &coreapi.SearchWorksResponse{
				TotalHits: 5000,
				Results: []coreapi.Work{
					{
						ID:            "123",
						Title:         "OA Paper",
						DOI:           "10.1/oa",
						YearPublished: 2021,
						Authors:       []coreapi.Author{{Name: "K He"}, {Name: "X Zhang"}},
					},
					{Title: "Anonymous Paper"},
				},
			}, nil
		},
	}

	_, res, err := newTestFulltextTools(stub).SearchOpenAccess(context.Background(), nil, SearchOpenAccessInput{Query: "residual"})
	if err != nil {
		t.Fatalf("SearchOpenAccess: %v", err)
	}

	// The count is the page size, not the upstream hit total.
	if res.TotalResults != 2 {
		t.Fatalf("TotalResults = %d, want 2", res.TotalResults)
	}

	a0 := res.Articles[0]
	if a0.Authors != "K He, X Zhang" || a0.CoreID != "123" || a0.Year != 2021 {
		t.Errorf("article 0 = %+v", a0)
	}
	// Missing authors stay empty here; no "Unknown" placeholder.
	if res.Articles[1].Authors != "" {
		t.Errorf("Authors = %q, want empty", res.Articles[1].Authors)
	}
}

func TestSearchOpenAccessRejectsBadArguments(t *testing.T) {
	tests := []struct {
		name string
		in   SearchOpenAccessInput
	}{
		{"missing query", SearchOpenAccessInput{Limit: 10}},
		{"limit above ceiling", SearchOpenAccessInput{Query: "q", Limit: 51}},
		{"negative limit", SearchOpenAccessInput{Query: "q", Limit: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubFulltext{t: t}
			_, _, err := newTestFulltextTools(stub).SearchOpenAccess(context.Background(), nil, tt.in)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if len(stub.calls) != 0 {
				t.Errorf("calls = %v, want none for rejected input", stub.calls)
			}
		})
	}
}
