// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries bibliographic APIs and collects raw article
// records for the downstream deduplication and screening stages. Each
// backend implements the Backend interface; records are returned as-is,
// tagged with their source database, and deduplicated later by the
// dedicated detector.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/pdiddy/saturation-search/pkg/types"
)

// Backend searches a single bibliographic API.
type Backend interface {
	Name() string
	Search(ctx context.Context, query Query, cfg types.SearchConfig) ([]types.ArticleRecord, error)
}

// Query holds the search parameters: free-text terms plus an optional
// publication year range.
type Query struct {
	Term     string
	YearFrom int
	YearTo   int
}

// IsEmpty reports whether the query contains no searchable terms.
func (q Query) IsEmpty() bool {
	return strings.TrimSpace(q.Term) == ""
}

// Output holds the collected records and per-backend statistics.
type Output struct {
	Articles      []types.ArticleRecord
	ByBackend     map[string]int
	BackendErrors []string
}

// Search fans the query out to all backends concurrently and collects
// their records in backend order. A failing backend is reported in
// BackendErrors and skipped; Search only errors when the query is empty or
// no backends are configured.
func Search(ctx context.Context, query Query, backends []Backend, cfg types.SearchConfig, w io.Writer) (Output, error) {
	if query.IsEmpty() {
		return Output{}, fmt.Errorf("query is empty: provide search terms")
	}
	if len(backends) == 0 {
		return Output{}, fmt.Errorf("no search backends configured")
	}

	type backendResult struct {
		articles []types.ArticleRecord
		err      error
	}

	results := make([]backendResult, len(backends))
	var wg sync.WaitGroup
	for i, b := range backends {
		if i > 0 && cfg.InterBackendDelay > 0 {
			time.Sleep(cfg.InterBackendDelay)
		}
		wg.Add(1)
		go func(i int, b Backend) {
			defer wg.Done()
			articles, err := b.Search(ctx, query, cfg)
			results[i] = backendResult{articles: articles, err: err}
		}(i, b)
	}
	wg.Wait()

	out := Output{ByBackend: make(map[string]int, len(backends))}
	for i, b := range backends {
		br := results[i]
		if br.err != nil {
			msg := fmt.Sprintf("%s: %v", b.Name(), br.err)
			out.BackendErrors = append(out.BackendErrors, msg)
			fmt.Fprintf(w, "warning: backend %s failed: %v\n", b.Name(), br.err)
			continue
		}
		out.ByBackend[b.Name()] = len(br.articles)
		out.Articles = append(out.Articles, br.articles...)
		fmt.Fprintf(w, "%s: %d records\n", b.Name(), len(br.articles))
	}

	return out, nil
}

// FormatTable writes collected records as a human-readable table to w.
func FormatTable(out Output, w io.Writer) {
	if len(out.Articles) == 0 {
		fmt.Fprintln(w, "No records found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-20s  %-4s  %s\n",
		"#", "Title", "Authors", "Year", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, a := range out.Articles {
		title := a.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		year := ""
		if a.Year > 0 {
			year = fmt.Sprintf("%d", a.Year)
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-20s  %-4s  %s\n",
			i+1, title, formatAuthors(a.Authors), year, a.SourceDB)
	}

	fmt.Fprintf(w, "\n%d records", len(out.Articles))
	if len(out.BackendErrors) > 0 {
		fmt.Fprintf(w, " (%d backend errors)", len(out.BackendErrors))
	}
	fmt.Fprintln(w)
}

// FormatJSON writes collected records as indented JSON to w.
func FormatJSON(out Output, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out.Articles)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 20)
	default:
		return truncate(authors[0], 14) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
