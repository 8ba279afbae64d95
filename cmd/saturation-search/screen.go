// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/saturation-search/internal/gazetteer"
	"github.com/pdiddy/saturation-search/internal/pipeline"
	"github.com/pdiddy/saturation-search/internal/screen"
	"github.com/pdiddy/saturation-search/pkg/types"
)

var screenCmd = &cobra.Command{
	Use:   "screen [articles-file]",
	Short: "Screen articles with inclusion/exclusion criteria",
	Long: `Screen applies the review criteria to articles loaded from a YAML file:
English language, publication date range, geographic relevance against the
location term database, and out-of-domain keyword exclusion. Each article
receives a decision (included, excluded, manual_review), a confidence
score, and a theme.

Decisions are written to --output (or stdout) and the summary to stderr.`,
	Args: cobra.ExactArgs(1),
	RunE: runScreen,
}

func runScreen(cmd *cobra.Command, args []string) error {
	articles, err := pipeline.LoadArticles(args[0])
	if err != nil {
		return err
	}

	db, err := gazetteerFromFlags(cmd)
	if err != nil {
		return err
	}

	cfg := types.DefaultScreenConfig()
	if startYear, _ := cmd.Flags().GetInt("start-year"); startYear > 0 {
		cfg.StartYear = startYear
	}
	if workers, _ := cmd.Flags().GetInt("workers"); workers > 0 {
		cfg.Workers = workers
	}

	screener, err := screen.New(cfg, gazetteer.NewScorer(db), nil)
	if err != nil {
		return err
	}

	decisions, report := screener.Screen(articles, os.Stderr)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stderr)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(decisions)
	if err != nil {
		return fmt.Errorf("marshaling decisions: %w", err)
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %d decisions to %s\n", len(decisions), output)
		return nil
	}
	_, err = os.Stdout.Write(data)
	return err
}

func init() {
	screenCmd.Flags().String("gazetteer", "", "location term database YAML file (default: built-in Nechako Watershed)")
	screenCmd.Flags().Int("start-year", 0, "override the earliest acceptable publication year")
	screenCmd.Flags().Int("workers", 0, "override the screening worker count")
	screenCmd.Flags().String("output", "", "write decisions to a YAML file instead of stdout")
	screenCmd.Flags().Bool("json", false, "print the screening report as JSON")

	rootCmd.AddCommand(screenCmd)
}
