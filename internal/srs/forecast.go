package srs

import (
	"math"
	"time"
)

// PredictRetention estimates the probability (0-100, one decimal) that the
// card is still remembered daysFromNow days in the future, following an
// exponential forgetting curve R = e^(-t/S) with stability
// S = interval * ease factor. Returns 0 for a card that has never been
// reviewed. Read-only: the card is not modified.
func PredictRetention(card Card, daysFromNow int, now time.Time) float64 {
	if card.LastReviewed == nil {
		return 0
	}
	card = card.Normalize()

	// Whole-day granularity: scheduling works in calendar days, so a card
	// reviewed earlier the same day has zero elapsed time.
	target := now.AddDate(0, 0, daysFromNow)
	elapsedDays := int(target.Sub(*card.LastReviewed).Hours() / 24)
	stability := float64(card.Interval) * card.EaseFactor

	retention := math.Exp(-float64(elapsedDays)/stability) * 100
	return math.Round(retention*10) / 10
}

// WorkloadDay is one point on the review-load forecast curve.
type WorkloadDay struct {
	Date     time.Time `json:"date"`
	DueCount int       `json:"due_count"`
}

// EstimateWorkload returns, for each of the next daysAhead calendar days,
// the count of cards whose next review falls on or before that day. The
// curve is cumulative, so it is non-decreasing.
func EstimateWorkload(cards []Card, daysAhead int, now time.Time) []WorkloadDay {
	workload := make([]WorkloadDay, 0, max(daysAhead, 0))
	for day := 0; day < daysAhead; day++ {
		target := now.AddDate(0, 0, day)
		count := 0
		for _, c := range cards {
			if c.NextReview != nil && !dateAfter(*c.NextReview, target) {
				count++
			}
		}
		workload = append(workload, WorkloadDay{Date: target, DueCount: count})
	}
	return workload
}

// dateAfter compares two instants at calendar-day granularity in UTC.
func dateAfter(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	if ay != by {
		return ay > by
	}
	if am != bm {
		return am > bm
	}
	return ad > bd
}
