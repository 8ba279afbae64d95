// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sampleCrossrefJSON = `{
  "message": {
    "total-results": 2,
    "items": [
      {
        "DOI": "10.1234/nechako.2015",
        "title": ["Water quality trends in the Nechako River"],
        "container-title": ["Journal of Hydrology"],
        "abstract": "<jats:p>We measured <jats:italic>water quality</jats:italic> downstream.</jats:p>",
        "author": [
          {"given": "Jane", "family": "Smith"},
          {"given": "Ming", "family": "Lee"}
        ],
        "published-print": {"date-parts": [[2015, 6, 12]]}
      },
      {
        "DOI": "10.5678/stuart.2018",
        "title": ["Salmon populations of Stuart Lake"],
        "container-title": [],
        "author": [],
        "issued": {"date-parts": [[2018]]}
      }
    ]
  }
}`

func crossrefTestServer(statusCode int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		fmt.Fprint(w, body)
	}))
}

func TestCrossrefBackendSearch(t *testing.T) {
	ts := crossrefTestServer(http.StatusOK, sampleCrossrefJSON)
	defer ts.Close()

	old := crossrefSearchBase
	crossrefSearchBase = ts.URL
	defer func() { crossrefSearchBase = old }()

	b := &CrossrefBackend{Client: ts.Client()}
	articles, err := b.Search(context.Background(), Query{Term: "nechako watershed"}, testCfg())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("len(articles) = %d, want 2", len(articles))
	}

	a0 := articles[0]
	if a0.DOI != "10.1234/nechako.2015" {
		t.Errorf("DOI = %q", a0.DOI)
	}
	if a0.Title != "Water quality trends in the Nechako River" {
		t.Errorf("Title = %q", a0.Title)
	}
	if a0.Journal != "Journal of Hydrology" {
		t.Errorf("Journal = %q", a0.Journal)
	}
	if a0.SourceDB != "crossref" {
		t.Errorf("SourceDB = %q, want %q", a0.SourceDB, "crossref")
	}
	if a0.Year != 2015 {
		t.Errorf("Year = %d, want 2015", a0.Year)
	}
	if len(a0.Authors) != 2 || a0.Authors[0] != "Smith, Jane" {
		t.Errorf("Authors = %v, want family-comma-given form", a0.Authors)
	}
	// JATS markup must be stripped from the abstract.
	if strings.Contains(a0.Abstract, "<") || !strings.Contains(a0.Abstract, "water quality") {
		t.Errorf("Abstract = %q, want plain text", a0.Abstract)
	}

	a1 := articles[1]
	if a1.Year != 2018 {
		t.Errorf("Year = %d, want 2018 from issued date", a1.Year)
	}
	if a1.Journal != "" {
		t.Errorf("Journal = %q, want empty", a1.Journal)
	}
}

func TestCrossrefBackendPoliteUserAgent(t *testing.T) {
	var receivedUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"message":{"total-results":0,"items":[]}}`)
	}))
	defer ts.Close()

	old := crossrefSearchBase
	crossrefSearchBase = ts.URL
	defer func() { crossrefSearchBase = old }()

	b := &CrossrefBackend{Client: ts.Client(), Email: "researcher@example.com"}
	_, _ = b.Search(context.Background(), Query{Term: "test"}, testCfg())
	if !strings.Contains(receivedUA, "mailto:researcher@example.com") {
		t.Errorf("User-Agent = %q, should carry mailto for the polite pool", receivedUA)
	}
}

func TestCrossrefBackendYearFilter(t *testing.T) {
	var receivedFilter string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedFilter = r.URL.Query().Get("filter")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"message":{"total-results":0,"items":[]}}`)
	}))
	defer ts.Close()

	old := crossrefSearchBase
	crossrefSearchBase = ts.URL
	defer func() { crossrefSearchBase = old }()

	b := &CrossrefBackend{Client: ts.Client()}
	_, err := b.Search(context.Background(), Query{Term: "test", YearFrom: 1930, YearTo: 2025}, testCfg())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !strings.Contains(receivedFilter, "from-pub-date:1930-01-01") {
		t.Errorf("filter = %q, should contain from-pub-date", receivedFilter)
	}
	if !strings.Contains(receivedFilter, "until-pub-date:2025-12-31") {
		t.Errorf("filter = %q, should contain until-pub-date", receivedFilter)
	}
}

func TestCrossrefBackendHTTPError(t *testing.T) {
	ts := crossrefTestServer(http.StatusServiceUnavailable, "")
	defer ts.Close()

	old := crossrefSearchBase
	crossrefSearchBase = ts.URL
	defer func() { crossrefSearchBase = old }()

	b := &CrossrefBackend{Client: ts.Client()}
	_, err := b.Search(context.Background(), Query{Term: "test"}, testCfg())
	if err == nil || !strings.Contains(err.Error(), "HTTP 503") {
		t.Errorf("error = %v, should mention HTTP 503", err)
	}
}

func TestStripJATS(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text", "No markup here.", "No markup here."},
		{"nested tags", "<jats:p>Water <jats:italic>quality</jats:italic> study</jats:p>", "Water quality study"},
		{"collapses whitespace", "<p>a</p>  <p>b</p>", "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripJATS(tt.in); got != tt.want {
				t.Errorf("stripJATS(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCrossrefBackendName(t *testing.T) {
	b := &CrossrefBackend{}
	if b.Name() != "crossref" {
		t.Errorf("Name() = %q, want %q", b.Name(), "crossref")
	}
}
