// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package screen

import (
	"strings"

	"github.com/pdiddy/saturation-search/pkg/types"
)

// Classifier assigns a theme to article text. The screening engine depends
// only on this interface; a trained model can replace the keyword default
// without touching the decision procedure.
type Classifier interface {
	Classify(text string) types.Theme
}

// themeBucket pairs a theme with its keyword list. Bucket order is the
// tie-break priority: Environment, then Community, then Health.
type themeBucket struct {
	theme    types.Theme
	keywords []string
}

// KeywordClassifier is the default theme classifier: count keyword hits per
// bucket and take the highest non-zero count.
type KeywordClassifier struct {
	buckets []themeBucket
}

// NewKeywordClassifier returns the classifier with the review
// methodology's keyword lists.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{buckets: []themeBucket{
		{theme: types.ThemeEnvironment, keywords: []string{
			"water quality", "ecosystem", "habitat", "fish", "salmon", "trout",
			"pollution", "contamination", "sediment", "temperature", "flow",
			"hydrology", "watershed", "stream", "river", "lake", "wetland",
			"biodiversity", "species", "environmental", "ecology", "conservation",
		}},
		{theme: types.ThemeCommunity, keywords: []string{
			"first nations", "indigenous", "aboriginal", "community", "cultural",
			"traditional", "social", "economic", "development", "land use",
			"resource management", "stakeholder", "governance", "policy",
			"treaty", "consultation", "capacity building", "employment",
		}},
		{theme: types.ThemeHealth, keywords: []string{
			"health", "disease", "mortality", "survival", "growth", "reproduction",
			"toxicity", "contamination", "mercury", "heavy metals", "pathogen",
			"stress", "biomarker", "epidemiology", "public health", "exposure",
		}},
	}}
}

// Classify counts substring hits per bucket over the lowercased text and
// returns the winning theme, or Unknown when no bucket scores.
func (c *KeywordClassifier) Classify(text string) types.Theme {
	textLower := strings.ToLower(text)

	best := types.ThemeUnknown
	bestCount := 0
	for _, bucket := range c.buckets {
		count := 0
		for _, kw := range bucket.keywords {
			if strings.Contains(textLower, kw) {
				count++
			}
		}
		// Strict > keeps the earlier bucket on ties.
		if count > bestCount {
			best = bucket.theme
			bestCount = count
		}
	}
	return best
}
