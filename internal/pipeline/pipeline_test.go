// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/saturation-search/internal/gazetteer"
	"github.com/pdiddy/saturation-search/internal/search"
	"github.com/pdiddy/saturation-search/pkg/types"
)

func testGazetteer() *gazetteer.Database {
	return gazetteer.New(map[string][]string{
		"rivers":           {"Nechako River"},
		"lakes":            {"Stuart Lake"},
		"populated_places": {"Vanderhoof"},
	}, []string{"Nechako River"})
}

func testPipelineConfig(t *testing.T) types.PipelineConfig {
	t.Helper()
	return types.PipelineConfig{
		Dedup:  types.DefaultDedupConfig(),
		Screen: types.DefaultScreenConfig(),
		Results: types.ResultsConfig{
			ResultsDir: t.TempDir(),
			MaxResults: 20,
		},
	}
}

func sampleArticles() []types.ArticleRecord {
	return []types.ArticleRecord{
		{
			Title:    "Water quality trends in the Nechako River",
			Abstract: "We measured water quality along the Nechako River near Vanderhoof over several seasons, with attention to salmon habitat and flows in the Nechako River mainstem.",
			Authors:  []string{"Smith, Jane"},
			Year:     2015, DOI: "10.1234/nechako.2015", SourceDB: "openalex",
		},
		{
			// Duplicate of the first by DOI.
			Title:    "Water quality trends in the Nechako River",
			Year:     2015, DOI: "10.1234/nechako.2015", SourceDB: "crossref",
		},
		{
			Title:    "Astronomy survey of stellar formation",
			Abstract: "This study presents an analysis of star-forming regions with results from a decade of telescope data.",
			Year:     2010, SourceDB: "crossref",
		},
	}
}

func writeArticlesFile(t *testing.T, articles []types.ArticleRecord) string {
	t.Helper()
	data, err := yaml.Marshal(articles)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "articles.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunFromFile(t *testing.T) {
	p, err := New(testPipelineConfig(t), testGazetteer(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	path := writeArticlesFile(t, sampleArticles())
	result, err := p.Run(context.Background(), Input{ArticlesFile: path}, io.Discard)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.RunID == 0 {
		t.Error("RunID = 0, want stored run")
	}
	// The DOI duplicate is removed.
	if len(result.Unique) != 2 {
		t.Fatalf("unique = %d, want 2", len(result.Unique))
	}
	if result.DedupReport.DuplicatesRemoved != 1 {
		t.Errorf("DuplicatesRemoved = %d, want 1", result.DedupReport.DuplicatesRemoved)
	}
	if len(result.Decisions) != len(result.Unique) {
		t.Errorf("decisions = %d, want %d", len(result.Decisions), len(result.Unique))
	}
	// The Nechako article is included, the astronomy article excluded.
	if result.Decisions[0].Decision != types.DecisionIncluded {
		t.Errorf("decisions[0] = %s, want included", result.Decisions[0].Decision)
	}
	if result.Decisions[1].Decision != types.DecisionExcluded {
		t.Errorf("decisions[1] = %s, want excluded", result.Decisions[1].Decision)
	}
}

func TestRunWritesReports(t *testing.T) {
	cfg := testPipelineConfig(t)
	p, err := New(cfg, testGazetteer(), nil)
	if err != nil {
		t.Fatal(err)
	}

	path := writeArticlesFile(t, sampleArticles())
	if _, err := p.Run(context.Background(), Input{ArticlesFile: path}, io.Discard); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, name := range []string{"deduplication_report.yaml", "screening_report.yaml"} {
		if _, err := os.Stat(filepath.Join(cfg.Results.ResultsDir, reportsDir, name)); err != nil {
			t.Errorf("report %s not written: %v", name, err)
		}
	}
}

func TestRunWithBaseline(t *testing.T) {
	p, err := New(testPipelineConfig(t), testGazetteer(), nil)
	if err != nil {
		t.Fatal(err)
	}

	articles := sampleArticles()[:1]
	baseline := []types.ArticleRecord{
		{Title: "Water quality trends in the Nechako River", DOI: "10.1234/nechako.2015"},
	}

	result, err := p.Run(context.Background(), Input{
		ArticlesFile: writeArticlesFile(t, articles),
		BaselineFile: writeArticlesFile(t, baseline),
	}, io.Discard)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// The only new article matches the baseline by DOI and is removed.
	if len(result.Unique) != 0 {
		t.Errorf("unique = %d, want 0 after baseline removal", len(result.Unique))
	}
	if result.DedupReport.MatchesByType[types.MatchBaselineDOI] != 1 {
		t.Errorf("baseline DOI matches = %d, want 1", result.DedupReport.MatchesByType[types.MatchBaselineDOI])
	}
}

func TestRunFromBackends(t *testing.T) {
	backend := &stubBackend{articles: sampleArticles()}
	p, err := New(testPipelineConfig(t), testGazetteer(), []search.Backend{backend})
	if err != nil {
		t.Fatal(err)
	}

	result, err := p.Run(context.Background(), Input{Query: search.Query{Term: "nechako watershed"}}, io.Discard)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Unique) != 2 {
		t.Errorf("unique = %d, want 2", len(result.Unique))
	}
}

func TestRunNoArticles(t *testing.T) {
	p, err := New(testPipelineConfig(t), testGazetteer(), []search.Backend{
		&stubBackend{},
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = p.Run(context.Background(), Input{Query: search.Query{Term: "nothing"}}, io.Discard)
	if err == nil {
		t.Error("expected error for empty collection")
	}
}

func TestLoadArticlesBareListAndResultsFile(t *testing.T) {
	articles := sampleArticles()[:1]

	barePath := writeArticlesFile(t, articles)
	got, err := LoadArticles(barePath)
	if err != nil {
		t.Fatalf("LoadArticles(bare): %v", err)
	}
	if len(got) != 1 {
		t.Errorf("bare list = %d articles, want 1", len(got))
	}

	rf := struct {
		Articles []types.ArticleRecord `yaml:"articles"`
	}{Articles: articles}
	data, err := yaml.Marshal(rf)
	if err != nil {
		t.Fatal(err)
	}
	rfPath := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(rfPath, data, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err = LoadArticles(rfPath)
	if err != nil {
		t.Fatalf("LoadArticles(results file): %v", err)
	}
	if len(got) != 1 {
		t.Errorf("results file = %d articles, want 1", len(got))
	}
}

// stubBackend returns canned records.
type stubBackend struct {
	articles []types.ArticleRecord
}

func (s *stubBackend) Name() string { return "stub" }

func (s *stubBackend) Search(_ context.Context, _ search.Query, _ types.SearchConfig) ([]types.ArticleRecord, error) {
	return s.articles, nil
}
