// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MatchType identifies which detection pass asserted a duplicate pair.
type MatchType string

const (
	MatchDOIExact           MatchType = "doi_exact"
	MatchPMIDExact          MatchType = "pmid_exact"
	MatchTitleSimilarity    MatchType = "title_similarity"
	MatchAuthorYearJournal  MatchType = "author_year_journal"
	MatchAbstractSimilarity MatchType = "abstract_similarity"
	MatchCrossDatabase      MatchType = "cross_database"
	MatchBaselineDOI        MatchType = "baseline_doi_match"
	MatchBaselineTitle      MatchType = "baseline_title_match"
)

// BaselineID is the sentinel internal ID standing in for a baseline article
// in a DuplicateMatch. Baseline articles are never removed; only the new
// article on the other side of the match is dropped.
const BaselineID = -1

// DuplicateMatch is a pairwise duplicate assertion between two articles,
// identified by their detection-run internal IDs. For any unordered pair at
// most one match is retained per run.
type DuplicateMatch struct {
	IDA        int       `json:"id_a" yaml:"id_a"`
	IDB        int       `json:"id_b" yaml:"id_b"`
	Type       MatchType `json:"match_type" yaml:"match_type"`
	Confidence float64   `json:"confidence" yaml:"confidence"`
	Reason     string    `json:"reason" yaml:"reason"`
}

// DeduplicationReport aggregates one detection run. All fields are plain
// values so the report serializes directly to YAML or JSON.
type DeduplicationReport struct {
	TotalInput        int               `json:"total_input" yaml:"total_input"`
	UniqueCount       int               `json:"unique_count" yaml:"unique_count"`
	DuplicatesRemoved int               `json:"duplicates_removed" yaml:"duplicates_removed"`
	MatchesByType     map[MatchType]int `json:"matches_by_type" yaml:"matches_by_type"`
	Matches           []DuplicateMatch  `json:"matches" yaml:"matches"`
	ProcessingSeconds float64           `json:"processing_seconds" yaml:"processing_seconds"`
}
