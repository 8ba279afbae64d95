// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/pdiddy/saturation-search/pkg/types"
)

// stubBackend returns canned records or a canned error.
type stubBackend struct {
	name     string
	articles []types.ArticleRecord
	err      error
}

func (s *stubBackend) Name() string { return s.name }

func (s *stubBackend) Search(_ context.Context, _ Query, _ types.SearchConfig) ([]types.ArticleRecord, error) {
	return s.articles, s.err
}

func TestSearchFansOutToAllBackends(t *testing.T) {
	backends := []Backend{
		&stubBackend{name: "openalex", articles: []types.ArticleRecord{
			{Title: "A", SourceDB: "openalex"},
			{Title: "B", SourceDB: "openalex"},
		}},
		&stubBackend{name: "crossref", articles: []types.ArticleRecord{
			{Title: "C", SourceDB: "crossref"},
		}},
	}

	out, err := Search(context.Background(), Query{Term: "nechako"}, backends, testCfg(), io.Discard)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(out.Articles) != 3 {
		t.Fatalf("len(articles) = %d, want 3", len(out.Articles))
	}
	// Records arrive in backend order regardless of goroutine scheduling.
	want := []string{"A", "B", "C"}
	for i, a := range out.Articles {
		if a.Title != want[i] {
			t.Errorf("articles[%d].Title = %q, want %q", i, a.Title, want[i])
		}
	}
	if out.ByBackend["openalex"] != 2 || out.ByBackend["crossref"] != 1 {
		t.Errorf("ByBackend = %v", out.ByBackend)
	}
}

func TestSearchSkipsFailingBackend(t *testing.T) {
	backends := []Backend{
		&stubBackend{name: "openalex", err: fmt.Errorf("connection refused")},
		&stubBackend{name: "crossref", articles: []types.ArticleRecord{
			{Title: "C", SourceDB: "crossref"},
		}},
	}

	var buf bytes.Buffer
	out, err := Search(context.Background(), Query{Term: "nechako"}, backends, testCfg(), &buf)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(out.Articles) != 1 {
		t.Fatalf("len(articles) = %d, want 1", len(out.Articles))
	}
	if len(out.BackendErrors) != 1 || !strings.Contains(out.BackendErrors[0], "openalex") {
		t.Errorf("BackendErrors = %v", out.BackendErrors)
	}
	if !strings.Contains(buf.String(), "warning: backend openalex failed") {
		t.Errorf("progress output = %q, want failure warning", buf.String())
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	backends := []Backend{&stubBackend{name: "openalex"}}
	_, err := Search(context.Background(), Query{}, backends, testCfg(), io.Discard)
	if err == nil || !strings.Contains(err.Error(), "empty") {
		t.Errorf("expected empty query error, got: %v", err)
	}
}

func TestSearchNoBackends(t *testing.T) {
	_, err := Search(context.Background(), Query{Term: "nechako"}, nil, testCfg(), io.Discard)
	if err == nil || !strings.Contains(err.Error(), "no search backends") {
		t.Errorf("expected no-backends error, got: %v", err)
	}
}

func TestQueryIsEmpty(t *testing.T) {
	if !(Query{}).IsEmpty() {
		t.Error("zero query should be empty")
	}
	if !(Query{Term: "   "}).IsEmpty() {
		t.Error("whitespace-only term should be empty")
	}
	if (Query{Term: "nechako"}).IsEmpty() {
		t.Error("non-empty term should not be empty")
	}
}

func TestFormatTable(t *testing.T) {
	out := Output{
		Articles: []types.ArticleRecord{
			{Title: "Water quality in the Nechako River", Authors: []string{"Smith, Jane", "Lee, Ming"}, Year: 2015, SourceDB: "openalex"},
			{Title: strings.Repeat("Long title ", 10), Year: 2018, SourceDB: "crossref"},
		},
		BackendErrors: []string{"wos: timeout"},
	}

	var buf bytes.Buffer
	FormatTable(out, &buf)
	got := buf.String()

	if !strings.Contains(got, "Water quality in the Nechako River") {
		t.Error("table should contain first title")
	}
	if !strings.Contains(got, "Smith, Jane et al.") {
		t.Errorf("table should abbreviate multiple authors, got:\n%s", got)
	}
	if !strings.Contains(got, "2 records") {
		t.Error("table should report record count")
	}
	if !strings.Contains(got, "1 backend errors") {
		t.Error("table should report backend errors")
	}
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(Output{}, &buf)
	if !strings.Contains(buf.String(), "No records found.") {
		t.Errorf("got %q", buf.String())
	}
}

func TestFormatJSON(t *testing.T) {
	out := Output{Articles: []types.ArticleRecord{{Title: "A", DOI: "10.1/a"}}}
	var buf bytes.Buffer
	if err := FormatJSON(out, &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"10.1/a"`) {
		t.Errorf("JSON output = %q", buf.String())
	}
}
