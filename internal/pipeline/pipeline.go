// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates a full saturation-search run: collect
// article records (from the search backends or a saved file), remove
// duplicates against an optional baseline, screen the survivors, and
// persist everything to the results store.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/saturation-search/internal/dedup"
	"github.com/pdiddy/saturation-search/internal/gazetteer"
	"github.com/pdiddy/saturation-search/internal/results"
	"github.com/pdiddy/saturation-search/internal/screen"
	"github.com/pdiddy/saturation-search/internal/search"
	"github.com/pdiddy/saturation-search/pkg/types"
)

const reportsDir = "reports"

// Pipeline wires the stages together. Construct once per run configuration.
type Pipeline struct {
	cfg      types.PipelineConfig
	backends []search.Backend
	detector *dedup.Detector
	screener *screen.Screener
}

// New validates the stage configurations and returns a Pipeline. backends
// may be empty when runs always load articles from files.
func New(cfg types.PipelineConfig, db *gazetteer.Database, backends []search.Backend) (*Pipeline, error) {
	detector, err := dedup.New(cfg.Dedup)
	if err != nil {
		return nil, err
	}
	screener, err := screen.New(cfg.Screen, gazetteer.NewScorer(db), nil)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:      cfg,
		backends: backends,
		detector: detector,
		screener: screener,
	}, nil
}

// Input selects the article source for one run. When ArticlesFile is set
// the file is loaded instead of querying the backends.
type Input struct {
	Query        search.Query
	ArticlesFile string
	BaselineFile string
}

// Result holds the outcome of one pipeline run.
type Result struct {
	RunID        int64
	Unique       []types.ArticleRecord
	DedupReport  types.DeduplicationReport
	Decisions    []types.ScreeningDecision
	ScreenReport types.ScreeningReport
}

// Run executes collect, dedupe, screen, and store. Progress goes to w.
func (p *Pipeline) Run(ctx context.Context, in Input, w io.Writer) (Result, error) {
	articles, err := p.collect(ctx, in, w)
	if err != nil {
		return Result{}, err
	}
	if len(articles) == 0 {
		return Result{}, fmt.Errorf("no articles to process")
	}

	var baseline []types.ArticleRecord
	if in.BaselineFile != "" {
		baseline, err = LoadArticles(in.BaselineFile)
		if err != nil {
			return Result{}, fmt.Errorf("loading baseline: %w", err)
		}
		fmt.Fprintf(w, "baseline: %d articles\n", len(baseline))
	}

	unique, dedupReport := p.detector.Detect(articles, baseline, w)
	decisions, screenReport := p.screener.Screen(unique, w)

	store, err := results.NewStore(p.cfg.Results)
	if err != nil {
		return Result{}, err
	}
	defer store.Close()

	runID, err := store.SaveRun(ctx, results.Run{
		Query:        in.Query.Term,
		Articles:     unique,
		DedupReport:  dedupReport,
		Decisions:    decisions,
		ScreenReport: screenReport,
	})
	if err != nil {
		return Result{}, fmt.Errorf("saving run: %w", err)
	}
	fmt.Fprintf(w, "stored run %d\n", runID)

	if err := p.writeReports(dedupReport, screenReport); err != nil {
		fmt.Fprintf(w, "warning: writing reports failed: %v\n", err)
	}

	return Result{
		RunID:        runID,
		Unique:       unique,
		DedupReport:  dedupReport,
		Decisions:    decisions,
		ScreenReport: screenReport,
	}, nil
}

func (p *Pipeline) collect(ctx context.Context, in Input, w io.Writer) ([]types.ArticleRecord, error) {
	if in.ArticlesFile != "" {
		articles, err := LoadArticles(in.ArticlesFile)
		if err != nil {
			return nil, fmt.Errorf("loading articles: %w", err)
		}
		fmt.Fprintf(w, "loaded %d articles from %s\n", len(articles), in.ArticlesFile)
		return articles, nil
	}

	out, err := search.Search(ctx, in.Query, p.backends, p.cfg.Search, w)
	if err != nil {
		return nil, err
	}
	return out.Articles, nil
}

// writeReports saves the per-stage reports under resultsDir/reports/.
func (p *Pipeline) writeReports(dedupReport types.DeduplicationReport, screenReport types.ScreeningReport) error {
	dir := filepath.Join(p.cfg.Results.ResultsDir, reportsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for name, report := range map[string]any{
		"deduplication_report.yaml": dedupReport,
		"screening_report.yaml":     screenReport,
	} {
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshaling %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// LoadArticles reads article records from a YAML file. Both a bare list and
// a saved search results file (with an articles key) are accepted.
func LoadArticles(path string) ([]types.ArticleRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var articles []types.ArticleRecord
	if err := yaml.Unmarshal(data, &articles); err == nil {
		return articles, nil
	}

	var rf struct {
		Articles []types.ArticleRecord `yaml:"articles"`
	}
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rf.Articles, nil
}
