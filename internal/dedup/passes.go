// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dedup

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/pdiddy/saturation-search/internal/normalize"
	"github.com/pdiddy/saturation-search/pkg/types"
)

// candidate caches the normalized comparison fields for one article so the
// quadratic passes never re-normalize.
type candidate struct {
	id       int
	rec      types.ArticleRecord
	title    string
	doi      string
	pmid     string
	abstract string
	surname  string
	journal  string
	authors  map[string]bool
}

func newCandidate(id int, rec types.ArticleRecord) candidate {
	c := candidate{
		id:       id,
		rec:      rec,
		title:    normalize.Title(rec.Title),
		doi:      normalize.Identifier(rec.DOI),
		pmid:     normalize.Identifier(rec.PMID),
		abstract: normalize.Abstract(rec.Abstract),
		surname:  normalize.FirstAuthorSurname(rec.Authors),
		journal:  normalize.Journal(rec.Journal),
	}
	if len(rec.Authors) > 0 {
		c.authors = make(map[string]bool, len(rec.Authors))
		for _, a := range rec.Authors {
			a = strings.ToLower(strings.TrimSpace(a))
			if a != "" {
				c.authors[a] = true
			}
		}
	}
	return c
}

// signature is the author+year+journal key. Articles missing any component
// produce an empty signature and are excluded from that pass.
func (c candidate) signature() string {
	if c.surname == "" || c.rec.Year == 0 || c.journal == "" {
		return ""
	}
	return fmt.Sprintf("%s_%d_%s", c.surname, c.rec.Year, c.journal)
}

// pass is one independent matching strategy over the candidate set. Passes
// only add to the shared match set; insertion is idempotent per pair, so
// pass order never changes which pairs match, only which pass is credited.
// The baseline quadratic passes can be swapped for blocking/bucketing
// implementations without changing the matching semantics.
type pass interface {
	name() string
	run(cands []candidate, set *matchSet)
}

// identifierPass groups by normalized DOI and, independently, by normalized
// PMID. Empty identifiers never group: two articles with no DOI are not
// thereby duplicates.
type identifierPass struct{}

func (identifierPass) name() string { return "exact identifiers" }

func (identifierPass) run(cands []candidate, set *matchSet) {
	byDOI := make(map[string][]int)
	byPMID := make(map[string][]int)
	for _, c := range cands {
		if c.doi != "" {
			byDOI[c.doi] = append(byDOI[c.doi], c.id)
		}
		if c.pmid != "" {
			byPMID[c.pmid] = append(byPMID[c.pmid], c.id)
		}
	}

	emit := func(groups map[string][]int, mt types.MatchType, label string) {
		for ident, ids := range groups {
			for i := 0; i < len(ids); i++ {
				for j := i + 1; j < len(ids); j++ {
					set.add(types.DuplicateMatch{
						IDA:        ids[i],
						IDB:        ids[j],
						Type:       mt,
						Confidence: 1.0,
						Reason:     fmt.Sprintf("identical %s: %s", label, ident),
					})
				}
			}
		}
	}
	emit(byDOI, types.MatchDOIExact, "DOI")
	emit(byPMID, types.MatchPMIDExact, "PMID")
}

// titlePass compares every pair of normalized titles with a fuzzy ratio.
// O(n²), acceptable at the volumes a saturation search produces.
type titlePass struct {
	threshold  float64
	similarity func(a, b string) float64
}

func (titlePass) name() string { return "title similarity" }

func (p titlePass) run(cands []candidate, set *matchSet) {
	for i := 0; i < len(cands); i++ {
		if cands[i].title == "" {
			continue
		}
		for j := i + 1; j < len(cands); j++ {
			if cands[j].title == "" || set.has(cands[i].id, cands[j].id) {
				continue
			}
			sim := p.similarity(cands[i].title, cands[j].title)
			if sim >= p.threshold {
				set.add(types.DuplicateMatch{
					IDA:        cands[i].id,
					IDB:        cands[j].id,
					Type:       types.MatchTitleSimilarity,
					Confidence: sim,
					Reason:     fmt.Sprintf("title similarity: %.2f", sim),
				})
			}
		}
	}
}

// signaturePass matches articles sharing a first-author+year+journal key.
type signaturePass struct{}

func (signaturePass) name() string { return "author-year-journal" }

func (signaturePass) run(cands []candidate, set *matchSet) {
	byKey := make(map[string][]int)
	var keys []string
	for _, c := range cands {
		key := c.signature()
		if key == "" {
			continue
		}
		if _, ok := byKey[key]; !ok {
			keys = append(keys, key)
		}
		byKey[key] = append(byKey[key], c.id)
	}

	for _, key := range keys {
		ids := byKey[key]
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				set.add(types.DuplicateMatch{
					IDA:        ids[i],
					IDB:        ids[j],
					Type:       types.MatchAuthorYearJournal,
					Confidence: 0.9,
					Reason:     "matching author-year-journal: " + key,
				})
			}
		}
	}
}

// abstractPass compares abstracts with a word-sequence ratio. Articles with
// a normalized DOI are skipped: DOI presence implies high metadata
// confidence, and the identifier pass already covers them. Abstracts below
// the minimum length are excluded outright.
type abstractPass struct {
	threshold float64
	minLength int
}

func (abstractPass) name() string { return "abstract similarity" }

func (p abstractPass) run(cands []candidate, set *matchSet) {
	var eligible []candidate
	for _, c := range cands {
		if c.doi == "" && len(c.abstract) >= p.minLength {
			eligible = append(eligible, c)
		}
	}

	for i := 0; i < len(eligible); i++ {
		for j := i + 1; j < len(eligible); j++ {
			if set.has(eligible[i].id, eligible[j].id) {
				continue
			}
			sim := sequenceRatio(eligible[i].abstract, eligible[j].abstract)
			if sim >= p.threshold {
				set.add(types.DuplicateMatch{
					IDA:        eligible[i].id,
					IDB:        eligible[j].id,
					Type:       types.MatchAbstractSimilarity,
					Confidence: sim,
					Reason:     fmt.Sprintf("abstract similarity: %.2f", sim),
				})
			}
		}
	}
}

// sequenceRatio is the longest-matching-block ratio over word tokens.
func sequenceRatio(a, b string) float64 {
	return difflib.NewMatcher(strings.Fields(a), strings.Fields(b)).Ratio()
}

// crossDatabasePass compares articles from different source databases with
// a weighted combined score of title similarity, author-set Jaccard
// similarity, and year equality.
type crossDatabasePass struct {
	cfg        types.DedupConfig
	similarity func(a, b string) float64
}

func (crossDatabasePass) name() string { return "cross-database" }

func (p crossDatabasePass) run(cands []candidate, set *matchSet) {
	bySource := make(map[string][]candidate)
	var sources []string
	for _, c := range cands {
		src := c.rec.SourceDB
		if _, ok := bySource[src]; !ok {
			sources = append(sources, src)
		}
		bySource[src] = append(bySource[src], c)
	}

	for i := 0; i < len(sources); i++ {
		for j := i + 1; j < len(sources); j++ {
			for _, a := range bySource[sources[i]] {
				for _, b := range bySource[sources[j]] {
					if set.has(a.id, b.id) {
						continue
					}
					score := p.combinedScore(a, b)
					if score >= p.cfg.CrossDBThreshold {
						set.add(types.DuplicateMatch{
							IDA:        a.id,
							IDB:        b.id,
							Type:       types.MatchCrossDatabase,
							Confidence: score,
							Reason:     fmt.Sprintf("cross-database combined score: %.2f (%s vs %s)", score, sources[i], sources[j]),
						})
					}
				}
			}
		}
	}
}

func (p crossDatabasePass) combinedScore(a, b candidate) float64 {
	var titleSim float64
	if a.title != "" && b.title != "" {
		titleSim = p.similarity(a.title, b.title)
	}
	yearScore := 0.0
	if a.rec.Year != 0 && a.rec.Year == b.rec.Year {
		yearScore = 1.0
	}
	return p.cfg.CrossDBTitleWeight*titleSim +
		p.cfg.CrossDBAuthorWeight*jaccard(a.authors, b.authors) +
		p.cfg.CrossDBYearWeight*yearScore
}

// jaccard is |A∩B| / |A∪B| over lowercased author names; empty sets score 0.
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for name := range a {
		if b[name] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// baselinePass compares new articles against a prior run's collection.
// Matches carry the baseline sentinel id so removal only ever drops the new
// article, never the baseline one. At most one baseline match is recorded
// per new article (DOI first, then first fuzzy title hit).
type baselinePass struct {
	baseline   []types.ArticleRecord
	threshold  float64
	similarity func(a, b string) float64
}

func (baselinePass) name() string { return "baseline comparison" }

func (p baselinePass) run(cands []candidate, set *matchSet) {
	baselineDOIs := make(map[string]bool)
	var baselineTitles []string
	for _, b := range p.baseline {
		if doi := normalize.Identifier(b.DOI); doi != "" {
			baselineDOIs[doi] = true
		}
		if title := normalize.Title(b.Title); title != "" {
			baselineTitles = append(baselineTitles, title)
		}
	}

	for _, c := range cands {
		if c.doi != "" && baselineDOIs[c.doi] {
			set.add(types.DuplicateMatch{
				IDA:        types.BaselineID,
				IDB:        c.id,
				Type:       types.MatchBaselineDOI,
				Confidence: 1.0,
				Reason:     "matches baseline article DOI: " + c.doi,
			})
			continue
		}
		if c.title == "" {
			continue
		}
		for _, bt := range baselineTitles {
			sim := p.similarity(c.title, bt)
			if sim >= p.threshold {
				set.add(types.DuplicateMatch{
					IDA:        types.BaselineID,
					IDB:        c.id,
					Type:       types.MatchBaselineTitle,
					Confidence: sim,
					Reason:     fmt.Sprintf("matches baseline article title: %.2f", sim),
				})
				break
			}
		}
	}
}
