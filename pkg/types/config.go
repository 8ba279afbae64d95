package types

import (
	"fmt"
	"time"
)

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "saturation-search/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the bibliographic search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of results per backend (default 100).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// EnableOpenAlex controls whether the OpenAlex backend is used.
	EnableOpenAlex bool `json:"enable_openalex" yaml:"enable_openalex"`

	// EnableCrossref controls whether the Crossref backend is used.
	EnableCrossref bool `json:"enable_crossref" yaml:"enable_crossref"`

	// Email is sent to polite-pool endpoints (OpenAlex mailto, Crossref
	// User-Agent suffix) when set.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// InterBackendDelay is the delay between API calls to different backends (default 1s).
	InterBackendDelay time.Duration `json:"inter_backend_delay" yaml:"inter_backend_delay"`
}

// DedupConfig holds thresholds and weights for the duplicate detector.
// All values have working defaults via DefaultDedupConfig; Validate rejects
// out-of-range settings before a run starts.
type DedupConfig struct {
	// TitleThreshold is the minimum normalized title similarity for a
	// title_similarity match (default 0.95).
	TitleThreshold float64 `json:"title_threshold" yaml:"title_threshold"`

	// AbstractThreshold is the minimum abstract sequence similarity for an
	// abstract_similarity match (default 0.85).
	AbstractThreshold float64 `json:"abstract_threshold" yaml:"abstract_threshold"`

	// MinAbstractLength excludes shorter abstracts from similarity
	// comparison; short abstracts produce too many false positives
	// (default 50).
	MinAbstractLength int `json:"min_abstract_length" yaml:"min_abstract_length"`

	// CrossDBThreshold is the minimum combined score for a cross_database
	// match (default 0.8).
	CrossDBThreshold float64 `json:"cross_db_threshold" yaml:"cross_db_threshold"`

	// CrossDBTitleWeight, CrossDBAuthorWeight and CrossDBYearWeight combine
	// title similarity, author-set Jaccard similarity and year equality into
	// the cross-database score (defaults 0.5, 0.3, 0.2).
	CrossDBTitleWeight  float64 `json:"cross_db_title_weight" yaml:"cross_db_title_weight"`
	CrossDBAuthorWeight float64 `json:"cross_db_author_weight" yaml:"cross_db_author_weight"`
	CrossDBYearWeight   float64 `json:"cross_db_year_weight" yaml:"cross_db_year_weight"`

	// SourcePriority orders source databases for representative selection.
	// Earlier entries win ties; articles from any listed source get the
	// preference bonus.
	SourcePriority []string `json:"source_priority" yaml:"source_priority"`
}

// DefaultDedupConfig returns the detector defaults.
func DefaultDedupConfig() DedupConfig {
	return DedupConfig{
		TitleThreshold:      0.95,
		AbstractThreshold:   0.85,
		MinAbstractLength:   50,
		CrossDBThreshold:    0.8,
		CrossDBTitleWeight:  0.5,
		CrossDBAuthorWeight: 0.3,
		CrossDBYearWeight:   0.2,
		SourcePriority:      []string{"openalex", "crossref"},
	}
}

// Validate reports the first out-of-range setting, or nil.
func (c DedupConfig) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"title_threshold", c.TitleThreshold},
		{"abstract_threshold", c.AbstractThreshold},
		{"cross_db_threshold", c.CrossDBThreshold},
		{"cross_db_title_weight", c.CrossDBTitleWeight},
		{"cross_db_author_weight", c.CrossDBAuthorWeight},
		{"cross_db_year_weight", c.CrossDBYearWeight},
	} {
		if v.value < 0 || v.value > 1 {
			return fmt.Errorf("dedup config: %s must be in [0,1], got %v", v.name, v.value)
		}
	}
	if c.MinAbstractLength < 0 {
		return fmt.Errorf("dedup config: min_abstract_length must be >= 0, got %d", c.MinAbstractLength)
	}
	return nil
}

// ScreenConfig holds thresholds and keyword lists for the screening engine.
type ScreenConfig struct {
	// ConfidenceThreshold is the minimum confidence for automatic inclusion
	// (default 0.8).
	ConfidenceThreshold float64 `json:"confidence_threshold" yaml:"confidence_threshold"`

	// ManualReviewThreshold flags low-confidence manual-review decisions
	// (default 0.8).
	ManualReviewThreshold float64 `json:"manual_review_threshold" yaml:"manual_review_threshold"`

	// StartYear is the earliest acceptable publication year (default 1930).
	// Earlier years accumulate an exclusion reason.
	StartYear int `json:"start_year" yaml:"start_year"`

	// WatershedName appears in human-readable screening reasons
	// (default "Nechako Watershed").
	WatershedName string `json:"watershed_name" yaml:"watershed_name"`

	// ExclusionKeywords mark out-of-domain articles (unrelated disciplines).
	ExclusionKeywords []string `json:"exclusion_keywords" yaml:"exclusion_keywords"`

	// OverrideTerms suppress keyword exclusion when the text also mentions
	// the watershed itself.
	OverrideTerms []string `json:"override_terms" yaml:"override_terms"`

	// Workers bounds the screening worker pool (default 4).
	Workers int `json:"workers" yaml:"workers"`
}

// DefaultScreenConfig returns the screening defaults from the original
// review methodology.
func DefaultScreenConfig() ScreenConfig {
	return ScreenConfig{
		ConfidenceThreshold:   0.8,
		ManualReviewThreshold: 0.8,
		StartYear:             1930,
		WatershedName:         "Nechako Watershed",
		ExclusionKeywords: []string{
			"timber engineering",
			"forestry engineering",
			"astronomy",
			"astrophysics",
			"software engineering",
			"computer science",
		},
		OverrideTerms: []string{"nechako", "stuart lake", "fraser lake", "vanderhoof"},
		Workers:       4,
	}
}

// Validate reports the first out-of-range setting, or nil.
func (c ScreenConfig) Validate() error {
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return fmt.Errorf("screen config: confidence_threshold must be in [0,1], got %v", c.ConfidenceThreshold)
	}
	if c.ManualReviewThreshold < 0 || c.ManualReviewThreshold > 1 {
		return fmt.Errorf("screen config: manual_review_threshold must be in [0,1], got %v", c.ManualReviewThreshold)
	}
	if c.StartYear < 1900 || c.StartYear > 2030 {
		return fmt.Errorf("screen config: start_year must be within 1900-2030, got %d", c.StartYear)
	}
	if c.Workers < 0 {
		return fmt.Errorf("screen config: workers must be >= 0, got %d", c.Workers)
	}
	return nil
}

// ResultsConfig holds settings for the results store.
type ResultsConfig struct {
	// ResultsDir is the base directory for run output (contains index/, reports/).
	ResultsDir string `json:"results_dir" yaml:"results_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Search  SearchConfig  `json:"search" yaml:"search"`
	Dedup   DedupConfig   `json:"dedup" yaml:"dedup"`
	Screen  ScreenConfig  `json:"screen" yaml:"screen"`
	Results ResultsConfig `json:"results" yaml:"results"`
}
