// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dedup

import "github.com/pdiddy/saturation-search/pkg/types"

// pairKey identifies an unordered article pair. The smaller id is always
// first, so (a,b) and (b,a) key identically. The baseline sentinel (-1)
// sorts first, which keeps at most one baseline match per new article.
type pairKey struct {
	lo, hi int
}

func keyFor(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// matchSet accumulates duplicate matches across passes with idempotent
// insertion: for any unordered pair only the first match is retained, so a
// pair found by several passes is never double-reported.
type matchSet struct {
	seen    map[pairKey]bool
	matches []types.DuplicateMatch
}

func newMatchSet() *matchSet {
	return &matchSet{seen: make(map[pairKey]bool)}
}

// add records m unless its pair is already present. It reports whether the
// match was inserted.
func (s *matchSet) add(m types.DuplicateMatch) bool {
	k := keyFor(m.IDA, m.IDB)
	if s.seen[k] {
		return false
	}
	s.seen[k] = true
	s.matches = append(s.matches, m)
	return true
}

// has reports whether the unordered pair already matched.
func (s *matchSet) has(a, b int) bool {
	return s.seen[keyFor(a, b)]
}
