// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the saturation-search
// pipeline: article records, duplicate-detection results, screening
// decisions, and stage configurations.
package types

// ArticleRecord is the unit of work flowing through the pipeline: one
// bibliographic record as returned by a database search. Every field except
// Title may be absent; consumers treat missing fields as "no signal", never
// as an error.
type ArticleRecord struct {
	// InternalID is assigned by the duplicate detector for the duration of
	// one detection run. It is not persisted across runs.
	InternalID int `json:"internal_id" yaml:"internal_id"`

	// Title is the article title as returned by the source.
	Title string `json:"title" yaml:"title"`

	// Abstract is the article abstract or summary, possibly empty.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Authors lists the article authors in source order.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Year is the publication year, or 0 when unknown.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// Journal is the journal or container title.
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`

	// DOI is the raw DOI string as returned by the source (any prefix form).
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// PMID is the PubMed identifier, when the source supplies one.
	PMID string `json:"pmid,omitempty" yaml:"pmid,omitempty"`

	// SourceDB tags the database of origin (e.g. "openalex", "crossref").
	SourceDB string `json:"source_db" yaml:"source_db"`
}

// HasAuthors reports whether at least one non-empty author name is present.
func (a ArticleRecord) HasAuthors() bool {
	for _, name := range a.Authors {
		if name != "" {
			return true
		}
	}
	return false
}

// CombinedText returns the title and abstract joined for text analysis.
func (a ArticleRecord) CombinedText() string {
	if a.Abstract == "" {
		return a.Title
	}
	return a.Title + " " + a.Abstract
}
