// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var gazetteerCmd = &cobra.Command{
	Use:   "gazetteer",
	Short: "Inspect the location term database",
	Long: `Gazetteer reports statistics about the location term database used for
geographic relevance scoring: term counts per category, cross-category
duplicates, and overlapping terms.`,
	RunE: runGazetteerStats,
}

func runGazetteerStats(cmd *cobra.Command, args []string) error {
	db, err := gazetteerFromFlags(cmd)
	if err != nil {
		return err
	}

	stats := db.Stats()

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	fmt.Printf("%-20s  %s\n", "Category", "Terms")
	for _, cat := range db.Categories() {
		fmt.Printf("%-20s  %d\n", cat, stats.RawByCategory[cat])
	}
	fmt.Printf("\ntotal: %d raw, %d unique (%d cross-category duplicates)\n",
		stats.TotalRaw, stats.TotalUnique, stats.CrossCategoryDupes)

	if showOverlaps, _ := cmd.Flags().GetBool("overlaps"); showOverlaps {
		overlaps := db.Overlaps()
		keys := make([]string, 0, len(overlaps))
		for k := range overlaps {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Println()
		for _, k := range keys {
			fmt.Printf("%s: %v\n", k, overlaps[k])
		}
	}
	return nil
}

func init() {
	gazetteerCmd.Flags().String("gazetteer", "", "location term database YAML file (default: built-in Nechako Watershed)")
	gazetteerCmd.Flags().Bool("overlaps", false, "list terms appearing in multiple categories")
	gazetteerCmd.Flags().Bool("json", false, "output statistics as JSON")

	rootCmd.AddCommand(gazetteerCmd)
}
