package adaptive

import (
	"sort"

	"github.com/avelar/lingo/internal/srs"
)

// WeakTags derives the learner's weak-skill tags from deck history: a tag is
// weak when the pooled accuracy of its reviewed cards falls below threshold.
// Tags with fewer than minReviews total reviews are skipped — not enough
// signal yet. The result is sorted for stable output.
func WeakTags(cards []srs.Card, threshold float64, minReviews int) []string {
	type tally struct {
		correct int
		total   int
	}
	byTag := make(map[string]*tally)
	for _, c := range cards {
		if c.TotalReviews == 0 {
			continue
		}
		for _, tag := range c.Tags {
			t := byTag[tag]
			if t == nil {
				t = &tally{}
				byTag[tag] = t
			}
			t.correct += c.CorrectCount
			t.total += c.TotalReviews
		}
	}

	var weak []string
	for tag, t := range byTag {
		if t.total < minReviews {
			continue
		}
		if float64(t.correct)/float64(t.total) < threshold {
			weak = append(weak, tag)
		}
	}
	sort.Strings(weak)
	return weak
}
