// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gazetteer holds the watershed location-term database and the
// geographic relevance scorer built on it. The database is an immutable
// value constructed once at startup and safe for concurrent readers.
package gazetteer

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/saturation-search/internal/normalize"
)

// Database is a read-only gazetteer: location terms partitioned into
// categories (rivers, creeks, lakes, populated places, ...) plus a priority
// tier of major water bodies. Terms are stored in display form; matching
// and cross-category deduplication use lowercased and canonical forms.
type Database struct {
	categories map[string][]string
	order      []string
	priority   []string

	// lowered mirrors categories with lowercased terms for substring
	// matching; loweredPriority does the same for the priority tier.
	lowered         map[string][]string
	loweredPriority []string

	// canonical maps normalize.LocationName(term) to the set of categories
	// the term appears in.
	canonical map[string]map[string]bool
}

// New builds an immutable Database from category term lists and a priority
// tier. Inputs are copied; empty terms are dropped.
func New(categories map[string][]string, priority []string) *Database {
	db := &Database{
		categories: make(map[string][]string, len(categories)),
		lowered:    make(map[string][]string, len(categories)),
		canonical:  make(map[string]map[string]bool),
	}

	for cat := range categories {
		db.order = append(db.order, cat)
	}
	sort.Strings(db.order)

	for _, cat := range db.order {
		for _, term := range categories[cat] {
			term = strings.TrimSpace(term)
			if term == "" {
				continue
			}
			db.categories[cat] = append(db.categories[cat], term)
			db.lowered[cat] = append(db.lowered[cat], strings.ToLower(term))

			canon := normalize.LocationName(term)
			if canon == "" {
				continue
			}
			if db.canonical[canon] == nil {
				db.canonical[canon] = make(map[string]bool)
			}
			db.canonical[canon][cat] = true
		}
	}

	for _, term := range priority {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		db.priority = append(db.priority, term)
		db.loweredPriority = append(db.loweredPriority, strings.ToLower(term))
	}

	return db
}

// NewNechako returns the built-in Nechako Watershed gazetteer.
func NewNechako() *Database {
	return New(nechakoTerms, nechakoPriorityTerms)
}

// databaseFile is the on-disk YAML form of a gazetteer, so the pipeline can
// run against a different watershed without a rebuild.
type databaseFile struct {
	Categories    map[string][]string `yaml:"categories"`
	PriorityTerms []string            `yaml:"priority_terms"`
}

// LoadFile reads a gazetteer from a YAML file.
func LoadFile(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading gazetteer file: %w", err)
	}
	var f databaseFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing gazetteer file %s: %w", path, err)
	}
	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("gazetteer file %s defines no categories", path)
	}
	return New(f.Categories, f.PriorityTerms), nil
}

// Categories returns the category names in sorted order.
func (db *Database) Categories() []string {
	out := make([]string, len(db.order))
	copy(out, db.order)
	return out
}

// Terms returns the display-form terms for a category.
func (db *Database) Terms(category string) []string {
	terms := db.categories[category]
	out := make([]string, len(terms))
	copy(out, terms)
	return out
}

// UniqueTermCount returns the number of distinct canonical terms across all
// categories.
func (db *Database) UniqueTermCount() int {
	return len(db.canonical)
}

// Stats summarizes the database for reporting.
type Stats struct {
	RawByCategory      map[string]int `json:"raw_by_category" yaml:"raw_by_category"`
	TotalRaw           int            `json:"total_raw" yaml:"total_raw"`
	TotalUnique        int            `json:"total_unique" yaml:"total_unique"`
	CrossCategoryDupes int            `json:"cross_category_duplicates" yaml:"cross_category_duplicates"`
	MultiCategoryTerms int            `json:"multi_category_terms" yaml:"multi_category_terms"`
}

// Stats returns raw and deduplicated term counts.
func (db *Database) Stats() Stats {
	s := Stats{RawByCategory: make(map[string]int, len(db.order))}
	for _, cat := range db.order {
		n := len(db.categories[cat])
		s.RawByCategory[cat] = n
		s.TotalRaw += n
	}
	s.TotalUnique = len(db.canonical)
	s.CrossCategoryDupes = s.TotalRaw - s.TotalUnique
	for _, cats := range db.canonical {
		if len(cats) > 1 {
			s.MultiCategoryTerms++
		}
	}
	return s
}

// Overlaps returns canonical terms that appear in more than one category,
// keyed by the sorted category combination ("lakes + populated_places").
func (db *Database) Overlaps() map[string][]string {
	overlaps := make(map[string][]string)
	for canon, cats := range db.canonical {
		if len(cats) < 2 {
			continue
		}
		names := make([]string, 0, len(cats))
		for cat := range cats {
			names = append(names, cat)
		}
		sort.Strings(names)
		key := strings.Join(names, " + ")
		overlaps[key] = append(overlaps[key], canon)
	}
	for _, terms := range overlaps {
		sort.Strings(terms)
	}
	return overlaps
}
