// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/scholar-mcp/pkg/types"
)

// ResultFile is the on-disk form of an article search: the parameters
// that produced it, the records, and a summary. A researcher can save a
// search and reload it later without re-querying the citation index.
type ResultFile struct {
	Params  ResultParams               `yaml:"params"`
	Result  types.SearchArticlesResult `yaml:"result"`
	Summary ResultSummary              `yaml:"summary"`
}

// ResultParams stores the search parameters in a serializable form.
type ResultParams struct {
	Query      string `yaml:"query"`
	YearFrom   int    `yaml:"year_from,omitempty"`
	YearTo     int    `yaml:"year_to,omitempty"`
	Language   string `yaml:"language,omitempty"`
	NumResults int    `yaml:"num_results"`
}

// ResultSummary stores result statistics and a timestamp.
type ResultSummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteResultFile saves search parameters and results to a YAML file.
func WriteResultFile(path string, in SearchArticlesInput, res types.SearchArticlesResult) error {
	rf := ResultFile{
		Params: ResultParams{
			Query:      in.Query,
			YearFrom:   in.YearFrom,
			YearTo:     in.YearTo,
			Language:   in.Language,
			NumResults: in.NumResults,
		},
		Result: res,
		Summary: ResultSummary{
			Total:     res.TotalResults,
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved search from disk.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}
