// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gazetteer

import (
	"math"
	"testing"
)

func TestScoreNoMatches(t *testing.T) {
	s := NewScorer(testDB())
	relevant, score, matches := s.Score("This paper discusses timber engineering in Ontario")
	if relevant {
		t.Error("relevant = true, want false")
	}
	if score != 0 {
		t.Errorf("score = %v, want 0", score)
	}
	if matches.Total != 0 {
		t.Errorf("total = %d, want 0", matches.Total)
	}
}

func TestScoreSingleNonPriorityMatch(t *testing.T) {
	s := NewScorer(testDB())
	relevant, score, matches := s.Score("A survey near Vanderhoof")
	if !relevant {
		t.Error("relevant = false, want true (score exactly at threshold)")
	}
	if math.Abs(score-0.4) > 1e-9 {
		t.Errorf("score = %v, want 0.4 (base 0.3 + one-match bonus 0.1)", score)
	}
	if matches.ByCategory["populated_places"] != 1 {
		t.Errorf("populated_places = %d, want 1", matches.ByCategory["populated_places"])
	}
}

func TestScorePriorityBonus(t *testing.T) {
	s := NewScorer(testDB())
	_, scorePriority, _ := s.Score("Nechako River flows")
	_, scorePlain, _ := s.Score("Stuart River flows")
	if scorePriority <= scorePlain {
		t.Errorf("priority term score %v should exceed non-priority score %v", scorePriority, scorePlain)
	}
}

func TestScoreOccurrenceCounting(t *testing.T) {
	s := NewScorer(testDB())
	text := "The Nechako River study measured the Nechako River upstream and the Nechako River downstream near Vanderhoof"
	relevant, score, matches := s.Score(text)
	if !relevant {
		t.Error("relevant = false, want true")
	}
	// 3x Nechako River + 1x Vanderhoof: density bonus capped at 0.4,
	// priority bonus 0.2 -> 0.3 + 0.4 + 0.2 = 0.9.
	if matches.Total != 4 {
		t.Errorf("total = %d, want 4", matches.Total)
	}
	if math.Abs(score-0.9) > 1e-9 {
		t.Errorf("score = %v, want 0.9", score)
	}
}

func TestScoreSaturates(t *testing.T) {
	s := NewScorer(testDB())
	text := "Nechako River Stuart River Stuart Lake François Lake Vanderhoof Fraser Lake Nechako River"
	_, score, _ := s.Score(text)
	// Density bonus caps at 0.4, so 0.9 is the formula ceiling.
	if math.Abs(score-0.9) > 1e-9 {
		t.Errorf("score = %v, want 0.9 for saturated text", score)
	}
}

func TestScoreCaseInsensitive(t *testing.T) {
	s := NewScorer(testDB())
	relevant, _, _ := s.Score("studies of the NECHAKO RIVER basin")
	if !relevant {
		t.Error("matching must be case-insensitive")
	}
}

func TestScoreDeterministic(t *testing.T) {
	s := NewScorer(testDB())
	text := "Nechako River near Vanderhoof"
	_, first, _ := s.Score(text)
	_, second, _ := s.Score(text)
	if first != second {
		t.Errorf("scores differ across runs: %v vs %v", first, second)
	}
}
