package srs

import (
	"sort"
	"time"
)

// DueQueue is the result of a due-card query: the cards to review now, the
// new cards to introduce, and the total pool sizes so callers can show
// "N more due" beyond the returned slices.
type DueQueue struct {
	Review   []Card
	New      []Card
	TotalDue int
	TotalNew int
}

// DueCards partitions cards into due and new pools and returns the most
// urgent of each. Due cards are ordered most-overdue first at whole-day
// granularity; among cards overdue by the same number of days the lower
// ease factor (harder card) surfaces first. New cards keep their input
// order.
func DueCards(cards []Card, limit, includeNew int, now time.Time) DueQueue {
	var due, fresh []Card
	for _, c := range cards {
		switch {
		case c.IsDue(now):
			due = append(due, c)
		case c.IsNew():
			fresh = append(fresh, c)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		oi, oj := int(due[i].OverdueDays(now)), int(due[j].OverdueDays(now))
		if oi != oj {
			return oi > oj
		}
		return due[i].EaseFactor < due[j].EaseFactor
	})

	return DueQueue{
		Review:   head(due, limit),
		New:      head(fresh, includeNew),
		TotalDue: len(due),
		TotalNew: len(fresh),
	}
}

func head(cards []Card, n int) []Card {
	if n < 0 {
		n = 0
	}
	if n > len(cards) {
		n = len(cards)
	}
	return cards[:n]
}
