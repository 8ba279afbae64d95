// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/saturation-search/internal/pipeline"
	"github.com/pdiddy/saturation-search/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run [terms]",
	Short: "Run the full pipeline: search, dedupe, screen, store",
	Long: `Run executes the complete saturation-search pipeline. Articles come from
the bibliographic APIs (or --articles for a saved file), duplicates are
removed against the optional --baseline set, survivors are screened, and
everything is persisted to the results store with per-stage reports.`,
	RunE: runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) error {
	query := queryFromFlags(cmd, args)
	articlesFile, _ := cmd.Flags().GetString("articles")
	baselineFile, _ := cmd.Flags().GetString("baseline")

	if query.IsEmpty() && articlesFile == "" {
		return fmt.Errorf("search terms or --articles required")
	}

	db, err := gazetteerFromFlags(cmd)
	if err != nil {
		return err
	}

	searchCfg := searchConfigFromFlags(cmd)
	cfg := types.PipelineConfig{
		Search:  searchCfg,
		Dedup:   types.DefaultDedupConfig(),
		Screen:  types.DefaultScreenConfig(),
		Results: resultsConfigFromFlags(cmd),
	}

	p, err := pipeline.New(cfg, db, buildBackends(searchCfg))
	if err != nil {
		return err
	}

	result, err := p.Run(context.Background(), pipeline.Input{
		Query:        query,
		ArticlesFile: articlesFile,
		BaselineFile: baselineFile,
	}, os.Stderr)
	if err != nil {
		return err
	}

	fmt.Printf("run %d: %d unique articles, %d included, %d excluded, %d manual review\n",
		result.RunID, len(result.Unique),
		result.ScreenReport.Included, result.ScreenReport.Excluded, result.ScreenReport.ManualReview)
	return nil
}

func init() {
	runCmd.Flags().String("query", "", "search terms (alternative to positional arguments)")
	runCmd.Flags().Int("year-from", 0, "earliest publication year for the search")
	runCmd.Flags().Int("year-to", 0, "latest publication year for the search")
	runCmd.Flags().Int("max-results", 100, "maximum number of records per backend")
	runCmd.Flags().String("email", "", "contact email for API polite pools")
	runCmd.Flags().Bool("no-openalex", false, "disable the OpenAlex backend")
	runCmd.Flags().Bool("no-crossref", false, "disable the Crossref backend")
	runCmd.Flags().String("articles", "", "load articles from a YAML file instead of searching")
	runCmd.Flags().String("baseline", "", "baseline articles YAML file for saturation comparison")
	runCmd.Flags().String("gazetteer", "", "location term database YAML file (default: built-in Nechako Watershed)")
	runCmd.Flags().String("results-dir", "results", "base directory for the results store")

	rootCmd.AddCommand(runCmd)
}
