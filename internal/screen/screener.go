// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package screen applies the review methodology's inclusion/exclusion
// criteria to deduplicated articles: English language, publication date
// range, geographic relevance, and out-of-domain keyword exclusion, with a
// confidence score and theme label per article.
package screen

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/pdiddy/saturation-search/internal/gazetteer"
	"github.com/pdiddy/saturation-search/pkg/types"
)

// englishIndicators is the word list for the language heuristic: at least
// three distinct hits in the combined text are required to treat an
// article as English.
var englishIndicators = []string{
	"the", "and", "or", "of", "in", "to", "a", "is", "that", "for",
	"with", "as", "by", "on", "from", "this", "study", "research",
	"analysis", "results", "data", "water", "river", "lake",
}

const (
	// minEnglishHits is the distinct-indicator threshold for the language check.
	minEnglishHits = 3

	// minCombinedLength flags very short title+abstract text for manual review.
	minCombinedLength = 50

	// exclusionConfidence is the fixed confidence for any exclusion.
	exclusionConfidence = 0.95

	// Year sanity bounds; values outside are treated as unparseable.
	sanityYearMin = 1900
	sanityYearMax = 2030
)

// Screener screens articles independently and order-independently; report
// statistics are pure aggregations over the per-article decisions.
type Screener struct {
	cfg        types.ScreenConfig
	scorer     *gazetteer.Scorer
	classifier Classifier
}

// New validates cfg and returns a Screener. A nil classifier selects the
// keyword default.
func New(cfg types.ScreenConfig, scorer *gazetteer.Scorer, classifier Classifier) (*Screener, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if classifier == nil {
		classifier = NewKeywordClassifier()
	}
	return &Screener{cfg: cfg, scorer: scorer, classifier: classifier}, nil
}

// Screen evaluates every article and returns decisions positionally
// aligned with the input, plus a summary report. Articles are screened
// concurrently; each decision is side-effect-free and written to its input
// index. A panic while screening one article downgrades that article to
// manual review instead of aborting the batch.
func (s *Screener) Screen(articles []types.ArticleRecord, w io.Writer) ([]types.ScreeningDecision, types.ScreeningReport) {
	start := time.Now()
	fmt.Fprintf(w, "screening %d articles\n", len(articles))

	decisions := make([]types.ScreeningDecision, len(articles))

	workers := s.cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	jobs := make(chan int)
	var wg sync.WaitGroup
	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				decisions[i] = s.screenOne(articles[i], i, w)
			}
		}()
	}
	for i := range articles {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	report := s.summarize(decisions, time.Since(start))
	fmt.Fprintf(w, "screening complete: %d included, %d excluded, %d manual review in %.2fs\n",
		report.Included, report.Excluded, report.ManualReview, report.ProcessingSeconds)

	return decisions, report
}

// screenOne evaluates a single article. The recover keeps one bad record
// from sinking the batch: the article lands in manual review.
func (s *Screener) screenOne(article types.ArticleRecord, id int, w io.Writer) (decision types.ScreeningDecision) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(w, "warning: screening article %d failed: %v\n", id, r)
			decision = types.ScreeningDecision{
				ArticleID:           id,
				Decision:            types.DecisionManualReview,
				ConfidenceScore:     0,
				ManualReviewReasons: []string{fmt.Sprintf("screening error: %v", r)},
				LocationMatches:     types.LocationMatches{ByCategory: map[string]int{}},
			}
		}
	}()

	var inclusion, exclusion, manualReview []string
	combined := article.CombinedText()

	// 1. Language check: failure finalizes the decision immediately.
	if !isEnglish(combined) {
		return types.ScreeningDecision{
			ArticleID:        id,
			Decision:         types.DecisionExcluded,
			ConfidenceScore:  exclusionConfidence,
			ExclusionReasons: []string{"non-English language"},
			LocationMatches:  types.LocationMatches{ByCategory: map[string]int{}},
		}
	}

	// 2. Date range check: accumulates, never short-circuits.
	switch {
	case article.Year < sanityYearMin || article.Year > sanityYearMax:
		manualReview = append(manualReview, "invalid or missing publication year")
	case article.Year < s.cfg.StartYear:
		exclusion = append(exclusion, fmt.Sprintf("publication year %d before %d", article.Year, s.cfg.StartYear))
	default:
		inclusion = append(inclusion, fmt.Sprintf("valid publication year: %d", article.Year))
	}

	// 3. Geographic relevance.
	relevant, geoScore, matches := s.scorer.Score(combined)
	switch {
	case relevant:
		inclusion = append(inclusion,
			fmt.Sprintf("geographic relevance score: %.2f", geoScore),
			fmt.Sprintf("location matches: %d", matches.Total))
	case geoScore < 0.1:
		exclusion = append(exclusion, fmt.Sprintf("no %s location terms found", s.cfg.WatershedName))
	default:
		manualReview = append(manualReview, fmt.Sprintf("low geographic relevance: %.2f", geoScore))
	}

	// 4. Out-of-domain keyword check with watershed-context override.
	if kw := s.exclusionKeywordHit(combined); kw != "" {
		exclusion = append(exclusion, fmt.Sprintf("out-of-domain subject: %s", kw))
	}

	// 5. Minimum-content check: manual review, never exclusion alone.
	if len(strings.TrimSpace(combined)) < minCombinedLength {
		manualReview = append(manualReview, "very short title/abstract")
	}

	confidence := s.confidence(relevant, geoScore, matches.Total, len(exclusion), len(combined))

	// Manual-review reasons are data-quality flags, not vetoes: a confident,
	// relevant article is included with its flags attached.
	var result types.Decision
	var theme types.Theme
	switch {
	case len(exclusion) > 0:
		result = types.DecisionExcluded
	case confidence >= s.cfg.ConfidenceThreshold && relevant:
		result = types.DecisionIncluded
		theme = s.classifier.Classify(combined)
	default:
		result = types.DecisionManualReview
		if relevant {
			theme = s.classifier.Classify(combined)
		}
		if confidence < s.cfg.ManualReviewThreshold {
			manualReview = append(manualReview, fmt.Sprintf("low confidence score: %.2f", confidence))
		}
	}

	return types.ScreeningDecision{
		ArticleID:           id,
		Decision:            result,
		Theme:               theme,
		ConfidenceScore:     confidence,
		InclusionReasons:    inclusion,
		ExclusionReasons:    exclusion,
		ManualReviewReasons: manualReview,
		GeoRelevanceScore:   geoScore,
		LocationMatches:     matches,
	}
}

// isEnglish counts distinct indicator-word hits in the lowercased text.
func isEnglish(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	textLower := strings.ToLower(text)
	hits := 0
	for _, word := range englishIndicators {
		if strings.Contains(textLower, word) {
			hits++
			if hits >= minEnglishHits {
				return true
			}
		}
	}
	return false
}

// exclusionKeywordHit returns the first exclusion keyword present in the
// text, unless an override term (the watershed's own proper nouns) is also
// present. Empty means no exclusion.
func (s *Screener) exclusionKeywordHit(text string) string {
	textLower := strings.ToLower(text)
	for _, kw := range s.cfg.ExclusionKeywords {
		if !strings.Contains(textLower, strings.ToLower(kw)) {
			continue
		}
		for _, override := range s.cfg.OverrideTerms {
			if strings.Contains(textLower, strings.ToLower(override)) {
				return ""
			}
		}
		return kw
	}
	return ""
}

// confidence implements the screening confidence formula: a fixed 0.95 for
// any exclusion, a fixed 0.2 when not geographically relevant, otherwise
// base 0.3 + geo contribution + capped location bonus + text-length bonus,
// capped at 1.0. Increasing the location-match count never decreases it.
func (s *Screener) confidence(relevant bool, geoScore float64, locationTotal, exclusionCount, textLength int) float64 {
	if exclusionCount > 0 {
		return exclusionConfidence
	}
	if !relevant {
		return 0.2
	}

	confidence := 0.3
	confidence += geoScore * 0.4

	if locationTotal > 0 {
		bonus := float64(locationTotal) * 0.05
		if bonus > 0.2 {
			bonus = 0.2
		}
		confidence += bonus
	}

	if textLength > 200 {
		confidence += 0.1
	} else if textLength > 100 {
		confidence += 0.05
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

// summarize aggregates per-article decisions into the run report.
func (s *Screener) summarize(decisions []types.ScreeningDecision, elapsed time.Duration) types.ScreeningReport {
	report := types.ScreeningReport{
		TotalArticles:     len(decisions),
		ThemeDistribution: make(map[types.Theme]int),
		ExclusionReasons:  make(map[string]int),
		ProcessingSeconds: elapsed.Seconds(),
	}

	var confidenceSum float64
	for _, d := range decisions {
		switch d.Decision {
		case types.DecisionIncluded:
			report.Included++
		case types.DecisionExcluded:
			report.Excluded++
		case types.DecisionManualReview:
			report.ManualReview++
		}
		if d.Theme != "" {
			report.ThemeDistribution[d.Theme]++
		}
		for _, reason := range d.ExclusionReasons {
			report.ExclusionReasons[reason]++
		}
		confidenceSum += d.ConfidenceScore
	}
	if len(decisions) > 0 {
		report.AverageConfidence = confidenceSum / float64(len(decisions))
	}
	return report
}
