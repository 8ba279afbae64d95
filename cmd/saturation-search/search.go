// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/saturation-search/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [terms]",
	Short: "Query bibliographic databases for candidate articles",
	Long: `Search queries the enabled bibliographic APIs (OpenAlex, Crossref) for
articles matching the given terms and optional year range. Raw records are
collected per source; duplicate removal happens in the dedupe stage.

Use --output to save the run to a YAML file for offline processing.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := queryFromFlags(cmd, args)
	cfg := searchConfigFromFlags(cmd)
	backends := buildBackends(cfg)

	out, err := search.Search(context.Background(), query, backends, cfg, os.Stderr)
	if err != nil {
		return err
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := search.WriteResultsFile(output, query, out); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved %d records to %s\n", len(out.Articles), output)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return search.FormatJSON(out, os.Stdout)
	}
	search.FormatTable(out, os.Stdout)
	return nil
}

func init() {
	searchCmd.Flags().String("query", "", "search terms (alternative to positional arguments)")
	searchCmd.Flags().Int("year-from", 0, "earliest publication year")
	searchCmd.Flags().Int("year-to", 0, "latest publication year")
	searchCmd.Flags().Int("max-results", 100, "maximum number of records per backend")
	searchCmd.Flags().String("email", "", "contact email for API polite pools")
	searchCmd.Flags().Bool("no-openalex", false, "disable the OpenAlex backend")
	searchCmd.Flags().Bool("no-crossref", false, "disable the Crossref backend")
	searchCmd.Flags().String("output", "", "save the run to a YAML results file")
	searchCmd.Flags().Bool("json", false, "output records as JSON")

	rootCmd.AddCommand(searchCmd)
}
