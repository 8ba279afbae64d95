// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gazetteer

import (
	"strings"

	"github.com/pdiddy/saturation-search/pkg/types"
)

// Relevance scoring constants. A single incidental mention must not
// dominate, so the density bonus is capped; priority terms (major water
// bodies) carry a flat bonus that nearly guarantees relevance on their own.
const (
	baseScore        = 0.3
	densityBonusStep = 0.1
	densityBonusCap  = 0.4
	priorityBonus    = 0.2

	// RelevanceThreshold is the minimum score counted as relevant: the
	// score of exactly one non-priority match.
	RelevanceThreshold = 0.3
)

// Scorer computes geographic relevance of a text against a Database.
type Scorer struct {
	db *Database
}

// NewScorer returns a Scorer over db.
func NewScorer(db *Database) *Scorer {
	return &Scorer{db: db}
}

// Score counts gazetteer term occurrences in text and derives a relevance
// score in [0,1]. Matching is case-insensitive substring occurrence
// counting, so three mentions of "Nechako River" count three times toward
// the density bonus.
func (s *Scorer) Score(text string) (relevant bool, score float64, matches types.LocationMatches) {
	matches.ByCategory = make(map[string]int, len(s.db.order))
	textLower := strings.ToLower(text)

	for _, cat := range s.db.order {
		for _, term := range s.db.lowered[cat] {
			if n := strings.Count(textLower, term); n > 0 {
				matches.ByCategory[cat] += n
				matches.Total += n
			}
		}
	}

	if matches.Total > 0 {
		score = baseScore
		bonus := float64(matches.Total) * densityBonusStep
		if bonus > densityBonusCap {
			bonus = densityBonusCap
		}
		score += bonus

		for _, term := range s.db.loweredPriority {
			if strings.Contains(textLower, term) {
				score += priorityBonus
				break
			}
		}

		if score > 1.0 {
			score = 1.0
		}
	}

	return score >= RelevanceThreshold, score, matches
}
