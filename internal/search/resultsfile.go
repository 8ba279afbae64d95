// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/saturation-search/pkg/types"
)

// ResultsFile is the on-disk representation of a search run: the query, the
// raw collected records, and run statistics. Saved runs let the dedupe and
// screening stages operate offline without re-querying APIs.
type ResultsFile struct {
	Query    QueryParams           `yaml:"query"`
	Articles []types.ArticleRecord `yaml:"articles"`
	Summary  ResultsSummary        `yaml:"summary"`
}

// QueryParams stores the query in a serializable form.
type QueryParams struct {
	Term     string `yaml:"term"`
	YearFrom int    `yaml:"year_from,omitempty"`
	YearTo   int    `yaml:"year_to,omitempty"`
}

// ResultsSummary stores collection statistics and a timestamp.
type ResultsSummary struct {
	Total         int            `yaml:"total"`
	ByBackend     map[string]int `yaml:"by_backend,omitempty"`
	BackendErrors []string       `yaml:"backend_errors,omitempty"`
	Timestamp     time.Time      `yaml:"timestamp"`
}

// WriteResultsFile saves a search run to a YAML file.
func WriteResultsFile(path string, query Query, out Output) error {
	rf := ResultsFile{
		Query: QueryParams{
			Term:     query.Term,
			YearFrom: query.YearFrom,
			YearTo:   query.YearTo,
		},
		Articles: out.Articles,
		Summary: ResultsSummary{
			Total:         len(out.Articles),
			ByBackend:     out.ByBackend,
			BackendErrors: out.BackendErrors,
			Timestamp:     time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling results file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultsFile loads a previously saved search run from disk.
func ReadResultsFile(path string) (*ResultsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading results file: %w", err)
	}
	var rf ResultsFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing results file %s: %w", path, err)
	}
	return &rf, nil
}
