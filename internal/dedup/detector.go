// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dedup removes duplicate articles from merged search results with
// a five-level matching pipeline: exact identifiers, fuzzy titles,
// author-year-journal signatures, abstract similarity, and cross-database
// or baseline comparison. Overlapping matches merge into groups via
// union-find and one representative survives per group.
package dedup

import (
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/saturation-search/pkg/types"
)

// Detector runs the matching pipeline. Construct with New; the zero value
// is not usable.
type Detector struct {
	cfg   types.DedupConfig
	ratio *titleRatio
	prio  map[string]int
}

// New validates cfg and returns a Detector. Threshold or weight values
// outside [0,1] fail here, before any articles are processed.
func New(cfg types.DedupConfig) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	prio := make(map[string]int, len(cfg.SourcePriority))
	for i, src := range cfg.SourcePriority {
		if _, ok := prio[src]; !ok {
			prio[src] = i
		}
	}
	return &Detector{cfg: cfg, ratio: newTitleRatio(), prio: prio}, nil
}

// titleSimilarity is the fuzzy ratio over canonical titles. Empty strings
// never match anything.
func (d *Detector) titleSimilarity(a, b string) float64 {
	return d.ratio.similarity(a, b)
}

// Detect deduplicates articles, optionally against a baseline collection
// from a previous run, and returns the surviving articles (input order
// preserved) with a full report. Progress lines go to w.
//
// Missing or malformed fields never fail a run: a pass that cannot read its
// field simply finds no match for that article. Absence of signal is not
// evidence of non-duplication, so the detector errs toward under-merging.
func (d *Detector) Detect(articles, baseline []types.ArticleRecord, w io.Writer) ([]types.ArticleRecord, types.DeduplicationReport) {
	start := time.Now()
	fmt.Fprintf(w, "deduplicating %d articles\n", len(articles))

	cands := make([]candidate, len(articles))
	for i, a := range articles {
		a.InternalID = i
		cands[i] = newCandidate(i, a)
	}

	passes := []pass{
		identifierPass{},
		titlePass{threshold: d.cfg.TitleThreshold, similarity: d.titleSimilarity},
		signaturePass{},
		abstractPass{threshold: d.cfg.AbstractThreshold, minLength: d.cfg.MinAbstractLength},
		crossDatabasePass{cfg: d.cfg, similarity: d.titleSimilarity},
	}
	if len(baseline) > 0 {
		passes = append(passes, baselinePass{
			baseline:   baseline,
			threshold:  d.cfg.TitleThreshold,
			similarity: d.titleSimilarity,
		})
	}

	set := newMatchSet()
	for i, p := range passes {
		before := len(set.matches)
		p.run(cands, set)
		fmt.Fprintf(w, "level %d (%s): %d matches\n", i+1, p.name(), len(set.matches)-before)
	}

	removed := d.resolveRemovals(cands, set)

	unique := make([]types.ArticleRecord, 0, len(articles))
	for _, c := range cands {
		if !removed[c.id] {
			unique = append(unique, c.rec)
		}
	}

	byType := make(map[types.MatchType]int)
	for _, m := range set.matches {
		byType[m.Type]++
	}

	report := types.DeduplicationReport{
		TotalInput:        len(articles),
		UniqueCount:       len(unique),
		DuplicatesRemoved: len(articles) - len(unique),
		MatchesByType:     byType,
		Matches:           set.matches,
		ProcessingSeconds: time.Since(start).Seconds(),
	}

	fmt.Fprintf(w, "deduplication complete: %d unique, %d removed in %.2fs\n",
		report.UniqueCount, report.DuplicatesRemoved, report.ProcessingSeconds)

	return unique, report
}

// resolveRemovals merges matches into groups and keeps one representative
// per group. Baseline matches bypass grouping: the new article is dropped
// directly, the baseline side does not exist in this run.
func (d *Detector) resolveRemovals(cands []candidate, set *matchSet) map[int]bool {
	uf := newUnionFind()
	removed := make(map[int]bool)

	for _, m := range set.matches {
		if m.IDA == types.BaselineID {
			removed[m.IDB] = true
			continue
		}
		uf.union(m.IDA, m.IDB)
	}

	for _, group := range uf.groups() {
		keep := d.selectRepresentative(cands, group)
		for _, id := range group {
			if id != keep {
				removed[id] = true
			}
		}
	}
	return removed
}

// selectRepresentative scores each group member by metadata completeness
// and keeps the best. Ties resolve by source priority rank, then by first
// appearance in the input (stable).
func (d *Detector) selectRepresentative(cands []candidate, group []int) int {
	best := group[0]
	bestScore, bestRank := d.completeness(cands[best])
	for _, id := range group[1:] {
		score, rank := d.completeness(cands[id])
		if score > bestScore || (score == bestScore && rank < bestRank) {
			best, bestScore, bestRank = id, score, rank
		}
	}
	return best
}

// completeness is the representative-selection rubric: DOI 10, title 5,
// abstract 3, authors 2, preferred source 1. The returned rank is the
// article's position in the source priority list (lower is better).
func (d *Detector) completeness(c candidate) (score, rank int) {
	if c.doi != "" {
		score += 10
	}
	if c.rec.Title != "" {
		score += 5
	}
	if c.rec.Abstract != "" {
		score += 3
	}
	if c.rec.HasAuthors() {
		score += 2
	}
	rank, preferred := d.prio[c.rec.SourceDB]
	if preferred {
		score++
	} else {
		rank = len(d.prio)
	}
	return score, rank
}
