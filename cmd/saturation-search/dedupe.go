// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/saturation-search/internal/dedup"
	"github.com/pdiddy/saturation-search/internal/pipeline"
	"github.com/pdiddy/saturation-search/pkg/types"
)

var dedupeCmd = &cobra.Command{
	Use:   "dedupe [articles-file]",
	Short: "Remove duplicate records from a set of articles",
	Long: `Dedupe runs multi-pass duplicate detection over articles loaded from a
YAML file: exact identifier matching, fuzzy title matching, author-year-
journal signatures, abstract similarity, and cross-database comparison.
With --baseline, new articles already present in the baseline set are
removed as well.

The surviving unique articles are written to --output (or stdout) and the
detection report to stderr.`,
	Args: cobra.ExactArgs(1),
	RunE: runDedupe,
}

func runDedupe(cmd *cobra.Command, args []string) error {
	articles, err := pipeline.LoadArticles(args[0])
	if err != nil {
		return err
	}

	var baseline []types.ArticleRecord
	if baselinePath, _ := cmd.Flags().GetString("baseline"); baselinePath != "" {
		baseline, err = pipeline.LoadArticles(baselinePath)
		if err != nil {
			return fmt.Errorf("loading baseline: %w", err)
		}
	}

	cfg := types.DefaultDedupConfig()
	if threshold, _ := cmd.Flags().GetFloat64("title-threshold"); threshold > 0 {
		cfg.TitleThreshold = threshold
	}

	detector, err := dedup.New(cfg)
	if err != nil {
		return err
	}

	unique, report := detector.Detect(articles, baseline, os.Stderr)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stderr)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(os.Stderr, "%d input, %d unique, %d removed\n",
			report.TotalInput, report.UniqueCount, report.DuplicatesRemoved)
	}

	data, err := yaml.Marshal(unique)
	if err != nil {
		return fmt.Errorf("marshaling unique articles: %w", err)
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %d unique articles to %s\n", len(unique), output)
		return nil
	}
	_, err = os.Stdout.Write(data)
	return err
}

func init() {
	dedupeCmd.Flags().String("baseline", "", "baseline articles YAML file for saturation comparison")
	dedupeCmd.Flags().Float64("title-threshold", 0, "override the title similarity threshold")
	dedupeCmd.Flags().String("output", "", "write unique articles to a YAML file instead of stdout")
	dedupeCmd.Flags().Bool("json", false, "print the detection report as JSON")

	rootCmd.AddCommand(dedupeCmd)
}
