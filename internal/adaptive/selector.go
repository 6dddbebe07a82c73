package adaptive

import (
	"math"
	"sort"
)

// Content is one candidate learning item offered to the selector.
type Content struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Difficulty float64  `json:"difficulty"`
	Tags       []string `json:"tags,omitempty"`
	Completed  bool     `json:"completed,omitempty"`
}

// Scoring weights: difficulty fit dominates, weak-area overlap comes next,
// unseen content gets a freshness bonus.
const (
	difficultyWeight = 50.0
	weaknessWeight   = 30.0
	freshnessBonus   = 20.0
)

// RankContent orders the candidate pool by fit to the target difficulty and
// the learner's weak-skill tags, best first. The sort is stable, so ties
// keep their original pool order. The input slice is not modified.
func RankContent(pool []Content, targetDifficulty float64, weaknesses []string) []Content {
	weak := make(map[string]bool, len(weaknesses))
	for _, w := range weaknesses {
		weak[w] = true
	}

	type scored struct {
		item  Content
		score float64
	}
	ranked := make([]scored, 0, len(pool))
	for _, item := range pool {
		ranked = append(ranked, scored{item: item, score: score(item, targetDifficulty, weak)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]Content, len(ranked))
	for i, s := range ranked {
		out[i] = s.item
	}
	return out
}

func score(item Content, target float64, weak map[string]bool) float64 {
	s := difficultyWeight * (1 - math.Abs(item.Difficulty-target))

	// Distinct tags only; a tag repeated on the item earns the bonus once.
	overlap := 0
	seen := make(map[string]bool, len(item.Tags))
	for _, t := range item.Tags {
		if weak[t] && !seen[t] {
			seen[t] = true
			overlap++
		}
	}
	s += weaknessWeight * float64(overlap)

	if !item.Completed {
		s += freshnessBonus
	}
	return s
}
