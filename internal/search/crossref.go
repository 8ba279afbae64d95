// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/pdiddy/saturation-search/internal/httputil"
	"github.com/pdiddy/saturation-search/pkg/types"
)

// crossrefSearchBase is the Crossref Works search endpoint. Declared as a
// var so tests can substitute an httptest server.
var crossrefSearchBase = "https://api.crossref.org/works"

// CrossrefBackend queries the Crossref API.
type CrossrefBackend struct {
	Client *http.Client
	// Email is appended to the User-Agent for the Crossref polite pool.
	Email string
}

// Name returns the backend identifier.
func (b *CrossrefBackend) Name() string { return "crossref" }

// Search queries Crossref and converts works into article records.
func (b *CrossrefBackend) Search(ctx context.Context, query Query, cfg types.SearchConfig) ([]types.ArticleRecord, error) {
	if query.IsEmpty() {
		return nil, fmt.Errorf("empty Crossref query")
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 100
	}
	if maxResults > 1000 {
		maxResults = 1000
	}

	params := url.Values{
		"query": {query.Term},
		"rows":  {fmt.Sprintf("%d", maxResults)},
	}

	var filters []string
	if query.YearFrom > 0 {
		filters = append(filters, fmt.Sprintf("from-pub-date:%d-01-01", query.YearFrom))
	}
	if query.YearTo > 0 {
		filters = append(filters, fmt.Sprintf("until-pub-date:%d-12-31", query.YearTo))
	}
	if len(filters) > 0 {
		params.Set("filter", strings.Join(filters, ","))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, crossrefSearchBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	userAgent := cfg.UserAgent
	if b.Email != "" {
		userAgent = fmt.Sprintf("%s (mailto:%s)", userAgent, b.Email)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httputil.DoWithRetry(ctx, b.Client, req, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("Crossref API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Crossref API returned HTTP %d", resp.StatusCode)
	}

	var cr crossrefResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("parsing Crossref response: %w", err)
	}

	var articles []types.ArticleRecord
	for _, item := range cr.Message.Items {
		a := types.ArticleRecord{
			Abstract: stripJATS(item.Abstract),
			DOI:      item.DOI,
			SourceDB: "crossref",
		}
		if len(item.Title) > 0 {
			a.Title = item.Title[0]
		}
		if len(item.ContainerTitle) > 0 {
			a.Journal = item.ContainerTitle[0]
		}
		for _, author := range item.Author {
			name := strings.TrimSpace(author.Family + ", " + author.Given)
			name = strings.TrimSuffix(name, ",")
			if name != "" {
				a.Authors = append(a.Authors, name)
			}
		}
		a.Year = item.year()

		articles = append(articles, a)
	}
	return articles, nil
}

var jatsTagRe = regexp.MustCompile(`<[^>]+>`)

// stripJATS removes JATS XML markup from Crossref abstracts.
func stripJATS(abstract string) string {
	if abstract == "" {
		return ""
	}
	plain := jatsTagRe.ReplaceAllString(abstract, " ")
	return strings.Join(strings.Fields(plain), " ")
}

// Crossref API JSON structures.
type crossrefResponse struct {
	Message crossrefMessage `json:"message"`
}

type crossrefMessage struct {
	TotalResults int            `json:"total-results"`
	Items        []crossrefItem `json:"items"`
}

type crossrefItem struct {
	DOI             string         `json:"DOI"`
	Title           []string       `json:"title"`
	ContainerTitle  []string       `json:"container-title"`
	Abstract        string         `json:"abstract"`
	Author          []crossrefName `json:"author"`
	PublishedPrint  crossrefDate   `json:"published-print"`
	PublishedOnline crossrefDate   `json:"published-online"`
	Issued          crossrefDate   `json:"issued"`
}

type crossrefName struct {
	Given  string `json:"given"`
	Family string `json:"family"`
}

type crossrefDate struct {
	DateParts [][]int `json:"date-parts"`
}

func (d crossrefDate) year() int {
	if len(d.DateParts) > 0 && len(d.DateParts[0]) > 0 {
		return d.DateParts[0][0]
	}
	return 0
}

// year picks the first available publication year: print, then online,
// then the issued date.
func (i crossrefItem) year() int {
	for _, d := range []crossrefDate{i.PublishedPrint, i.PublishedOnline, i.Issued} {
		if y := d.year(); y > 0 {
			return y
		}
	}
	return 0
}
