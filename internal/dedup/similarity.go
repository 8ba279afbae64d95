// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dedup

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// titleRatio computes the fuzzy similarity of two normalized titles as the
// better of a plain normalized-edit-distance ratio and a token-set ratio.
// The token-set form keeps near-identical titles that differ only by
// function words or token order (a missing "the", reordered subtitle) above
// the match threshold, which a raw character ratio misses.
type titleRatio struct {
	lev *metrics.Levenshtein
}

func newTitleRatio() *titleRatio {
	return &titleRatio{lev: metrics.NewLevenshtein()}
}

func (r *titleRatio) similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	plain := strutil.Similarity(a, b, r.lev)
	tokenSet := r.tokenSetSimilarity(a, b)
	if tokenSet > plain {
		return tokenSet
	}
	return plain
}

// tokenSetSimilarity rebuilds both strings around their shared token set
// and compares the reconstructions. When one title's tokens are a subset of
// the other's, the intersection equals the shorter side and the ratio is 1.
func (r *titleRatio) tokenSetSimilarity(a, b string) float64 {
	ta := tokenSet(a)
	tb := tokenSet(b)

	var inter, restA, restB []string
	for tok := range ta {
		if tb[tok] {
			inter = append(inter, tok)
		} else {
			restA = append(restA, tok)
		}
	}
	for tok := range tb {
		if !ta[tok] {
			restB = append(restB, tok)
		}
	}
	if len(inter) == 0 {
		return 0
	}
	sort.Strings(inter)
	sort.Strings(restA)
	sort.Strings(restB)

	s0 := strings.Join(inter, " ")
	s1 := strings.TrimSpace(s0 + " " + strings.Join(restA, " "))
	s2 := strings.TrimSpace(s0 + " " + strings.Join(restB, " "))

	best := strutil.Similarity(s0, s1, r.lev)
	if sim := strutil.Similarity(s0, s2, r.lev); sim > best {
		best = sim
	}
	if sim := strutil.Similarity(s1, s2, r.lev); sim > best {
		best = sim
	}
	return best
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}
