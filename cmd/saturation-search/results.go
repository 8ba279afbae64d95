// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/saturation-search/internal/results"
	"github.com/pdiddy/saturation-search/pkg/types"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Query and export stored pipeline runs",
	Long: `Results manages the SQLite store of past pipeline runs. Use subcommands
to query stored articles with full-text search and decision filters, or to
export decisions for reference-manager upload.`,
}

// --- query subcommand ---

var resultsQueryCmd = &cobra.Command{
	Use:   "query [terms]",
	Short: "Query stored articles with full-text search and filters",
	Long: `Query searches stored articles using FTS5 full-text search over title
and abstract, plus structured filters (decision, theme, source). Without
--run the latest run is queried.`,
	RunE: runResultsQuery,
}

func runResultsQuery(cmd *cobra.Command, args []string) error {
	store, err := results.NewStore(resultsConfigFromFlags(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := resultsOptsFromFlags(cmd, args)
	found, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(found)
	}
	return formatResultsOutput(found)
}

func formatResultsOutput(found []results.QueryResult) error {
	if len(found) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-50s  %-4s  %-14s  %-12s  %s\n",
		"Rank", "Title", "Year", "Decision", "Theme", "Confidence")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for i, r := range found {
		title := r.Article.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		year := ""
		if r.Article.Year > 0 {
			year = fmt.Sprintf("%d", r.Article.Year)
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-50s  %-4s  %-14s  %-12s  %.2f\n",
			i+1, title, year, r.Decision, r.Theme, r.ConfidenceScore)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(found))
	return nil
}

// --- export subcommand ---

var resultsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored decisions to YAML or JSON",
	Long: `Export writes stored articles with their screening decisions to
results/index/export.yaml or export.json. Supports the same filter flags
as query for partial exports.`,
	RunE: runResultsExport,
}

func runResultsExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := results.NewStore(resultsConfigFromFlags(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := resultsOptsFromFlags(cmd, args)

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to results/index/export.yaml")
	case "json":
		if err := store.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to results/index/export.json")
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

func resultsOptsFromFlags(cmd *cobra.Command, args []string) results.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	runID, _ := cmd.Flags().GetInt64("run")
	decision, _ := cmd.Flags().GetString("decision")
	theme, _ := cmd.Flags().GetString("theme")
	source, _ := cmd.Flags().GetString("source")
	limit, _ := cmd.Flags().GetInt("limit")

	return results.QueryOptions{
		Query:      queryText,
		RunID:      runID,
		Decision:   types.Decision(decision),
		Theme:      types.Theme(theme),
		SourceDB:   source,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	resultsCmd.PersistentFlags().String("results-dir", "results", "base directory for the results store")
	resultsCmd.PersistentFlags().Int("max-results", 20, "maximum number of query results")
	resultsCmd.PersistentFlags().Int64("run", 0, "run ID (0 = latest)")
	resultsCmd.PersistentFlags().String("decision", "", "filter by decision: included, excluded, manual_review")
	resultsCmd.PersistentFlags().String("theme", "", "filter by theme: Environment, Community, Health")
	resultsCmd.PersistentFlags().String("source", "", "filter by source database")

	// Query flags.
	resultsQueryCmd.Flags().String("query", "", "full-text search query")
	resultsQueryCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	resultsQueryCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	resultsExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	resultsExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	resultsExportCmd.Flags().Int("limit", 0, "maximum entries to export (0 = all)")

	// Wire subcommands.
	resultsCmd.AddCommand(resultsQueryCmd)
	resultsCmd.AddCommand(resultsExportCmd)

	rootCmd.AddCommand(resultsCmd)
}
