// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package results

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/saturation-search/pkg/types"
)

// ExportEntry is one article with its screening outcome, in the flat form
// reference-manager uploads expect.
type ExportEntry struct {
	Title    string   `json:"title" yaml:"title"`
	Abstract string   `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Authors  []string `json:"authors,omitempty" yaml:"authors,omitempty"`
	Year     int      `json:"year,omitempty" yaml:"year,omitempty"`
	Journal  string   `json:"journal,omitempty" yaml:"journal,omitempty"`
	DOI      string   `json:"doi,omitempty" yaml:"doi,omitempty"`
	PMID     string   `json:"pmid,omitempty" yaml:"pmid,omitempty"`
	SourceDB string   `json:"source_db" yaml:"source_db"`

	Decision        types.Decision `json:"decision" yaml:"decision"`
	Theme           types.Theme    `json:"theme,omitempty" yaml:"theme,omitempty"`
	ConfidenceScore float64        `json:"confidence_score" yaml:"confidence_score"`
}

const exportLimit = 100000

// ExportYAML writes filtered results to resultsDir/index/export.yaml.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions) error {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return err
	}

	path := filepath.Join(s.resultsDir, indexDir, "export.yaml")
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes filtered results to resultsDir/index/export.json.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions) error {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return err
	}

	path := filepath.Join(s.resultsDir, indexDir, "export.json")
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Store) exportEntries(ctx context.Context, opts QueryOptions) ([]ExportEntry, error) {
	opts.MaxResults = exportLimit
	results, err := s.Retrieve(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	entries := make([]ExportEntry, len(results))
	for i, r := range results {
		entries[i] = ExportEntry{
			Title:           r.Article.Title,
			Abstract:        r.Article.Abstract,
			Authors:         r.Article.Authors,
			Year:            r.Article.Year,
			Journal:         r.Article.Journal,
			DOI:             r.Article.DOI,
			PMID:            r.Article.PMID,
			SourceDB:        r.Article.SourceDB,
			Decision:        r.Decision,
			Theme:           r.Theme,
			ConfidenceScore: r.ConfidenceScore,
		}
	}

	return entries, nil
}
