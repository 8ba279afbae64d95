// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Decision is the three-way screening outcome for one article.
type Decision string

const (
	DecisionIncluded     Decision = "included"
	DecisionExcluded     Decision = "excluded"
	DecisionManualReview Decision = "manual_review"
)

// Theme classifies an included article by subject area.
type Theme string

const (
	ThemeEnvironment Theme = "Environment"
	ThemeCommunity   Theme = "Community"
	ThemeHealth      Theme = "Health"
	ThemeUnknown     Theme = "Unknown"
)

// Themes lists the assignable themes in classification priority order.
var Themes = []Theme{ThemeEnvironment, ThemeCommunity, ThemeHealth}

// LocationMatches holds gazetteer term occurrence counts for one text.
type LocationMatches struct {
	ByCategory map[string]int `json:"by_category" yaml:"by_category"`
	Total      int            `json:"total" yaml:"total"`
}

// ScreeningDecision is the immutable per-article screening result. Theme is
// empty when the article is excluded or not geographically relevant.
type ScreeningDecision struct {
	ArticleID           int             `json:"article_id" yaml:"article_id"`
	Decision            Decision        `json:"decision" yaml:"decision"`
	Theme               Theme           `json:"theme,omitempty" yaml:"theme,omitempty"`
	ConfidenceScore     float64         `json:"confidence_score" yaml:"confidence_score"`
	InclusionReasons    []string        `json:"inclusion_reasons,omitempty" yaml:"inclusion_reasons,omitempty"`
	ExclusionReasons    []string        `json:"exclusion_reasons,omitempty" yaml:"exclusion_reasons,omitempty"`
	ManualReviewReasons []string        `json:"manual_review_reasons,omitempty" yaml:"manual_review_reasons,omitempty"`
	GeoRelevanceScore   float64         `json:"geographic_relevance_score" yaml:"geographic_relevance_score"`
	LocationMatches     LocationMatches `json:"location_matches" yaml:"location_matches"`
}

// ScreeningReport aggregates one screening run.
type ScreeningReport struct {
	TotalArticles     int            `json:"total_articles" yaml:"total_articles"`
	Included          int            `json:"included" yaml:"included"`
	Excluded          int            `json:"excluded" yaml:"excluded"`
	ManualReview      int            `json:"manual_review" yaml:"manual_review"`
	ThemeDistribution map[Theme]int  `json:"theme_distribution" yaml:"theme_distribution"`
	ExclusionReasons  map[string]int `json:"exclusion_reasons" yaml:"exclusion_reasons"`
	AverageConfidence float64        `json:"average_confidence" yaml:"average_confidence"`
	ProcessingSeconds float64        `json:"processing_seconds" yaml:"processing_seconds"`
}
