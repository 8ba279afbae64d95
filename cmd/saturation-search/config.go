// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/saturation-search/internal/gazetteer"
	"github.com/pdiddy/saturation-search/internal/search"
	"github.com/pdiddy/saturation-search/internal/secrets"
	"github.com/pdiddy/saturation-search/pkg/types"
)

// searchConfigFromFlags builds the search stage configuration from command
// flags and loaded secrets.
func searchConfigFromFlags(cmd *cobra.Command) types.SearchConfig {
	maxResults, _ := cmd.Flags().GetInt("max-results")
	email, _ := cmd.Flags().GetString("email")
	noOpenAlex, _ := cmd.Flags().GetBool("no-openalex")
	noCrossref, _ := cmd.Flags().GetBool("no-crossref")

	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "saturation-search/" + version,
		},
		MaxResults:        maxResults,
		EnableOpenAlex:    !noOpenAlex,
		EnableCrossref:    !noCrossref,
		Email:             secrets.Get(loadedSecrets, secrets.KeyOpenAlexEmail, email),
		InterBackendDelay: time.Second,
	}
}

// buildBackends constructs the enabled search backends.
func buildBackends(cfg types.SearchConfig) []search.Backend {
	client := &http.Client{Timeout: cfg.Timeout}

	var backends []search.Backend
	if cfg.EnableOpenAlex {
		backends = append(backends, &search.OpenAlexBackend{Client: client, Email: cfg.Email})
	}
	if cfg.EnableCrossref {
		email := secrets.Get(loadedSecrets, secrets.KeyCrossrefEmail, cfg.Email)
		backends = append(backends, &search.CrossrefBackend{Client: client, Email: email})
	}
	return backends
}

// queryFromFlags builds a search query from flags and positional arguments.
func queryFromFlags(cmd *cobra.Command, args []string) search.Query {
	term, _ := cmd.Flags().GetString("query")
	if term == "" && len(args) > 0 {
		term = strings.Join(args, " ")
	}
	yearFrom, _ := cmd.Flags().GetInt("year-from")
	yearTo, _ := cmd.Flags().GetInt("year-to")

	return search.Query{Term: term, YearFrom: yearFrom, YearTo: yearTo}
}

// gazetteerFromFlags loads the gazetteer named by --gazetteer, or the
// built-in Nechako Watershed database.
func gazetteerFromFlags(cmd *cobra.Command) (*gazetteer.Database, error) {
	path, _ := cmd.Flags().GetString("gazetteer")
	if path == "" {
		return gazetteer.NewNechako(), nil
	}
	return gazetteer.LoadFile(path)
}

// resultsConfigFromFlags builds the results store configuration.
func resultsConfigFromFlags(cmd *cobra.Command) types.ResultsConfig {
	dir, _ := cmd.Flags().GetString("results-dir")
	if dir == "" {
		dir = "results"
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")
	return types.ResultsConfig{ResultsDir: dir, MaxResults: maxResults}
}
