// Package srs schedules vocabulary reviews with an SM-2 derivative that
// also weighs response latency. All operations are pure: they take the
// current card state plus an explicit "now" and return updated values,
// leaving persistence and concurrency control to the caller.
package srs

import (
	"math"
	"time"
)

// Action classifies the branch a review took.
type Action string

const (
	// ActionReset means the review failed: repetitions and interval start over.
	ActionReset Action = "reset"
	// ActionAdvance means the review passed and the interval grew.
	ActionAdvance Action = "advance"
)

// DecisionLog explains a single scheduling step. It is the only output
// safe to surface to a learner as "why did my review interval change".
type DecisionLog struct {
	Quality          Quality   `json:"quality"`
	Action           Action    `json:"action"`
	TimeFactor       float64   `json:"time_factor"`
	PreviousInterval int       `json:"previous_interval"`
	PreviousEase     float64   `json:"previous_ease"`
	NewInterval      int       `json:"new_interval"`
	NewEase          float64   `json:"new_ease"`
	NextReview       time.Time `json:"next_review"`
}

// Review applies one review outcome to a card and returns the updated card
// together with a decision log. Invalid input is rejected before any state
// is touched; the input card is never modified.
//
// The ease-factor delta follows the classic SM-2 quality formula, scaled by
// a response-time factor that rewards fast confident recall independent of
// correctness. A failing grade (quality < 3) resets repetitions and the
// interval; a passing grade grows the interval through the graduating steps
// and then multiplicatively by the new ease factor.
func Review(card Card, q Quality, responseTimeMs int64, now time.Time) (Card, DecisionLog, error) {
	if !q.Valid() {
		return Card{}, DecisionLog{}, &ErrInvalidQuality{Quality: q}
	}
	if responseTimeMs < 0 {
		return Card{}, DecisionLog{}, &ErrInvalidResponseTime{Ms: responseTimeMs}
	}

	card = card.Normalize()

	tf := timeFactor(responseTimeMs)
	newEase := nextEaseFactor(card.EaseFactor, q, tf)

	log := DecisionLog{
		Quality:          q,
		TimeFactor:       tf,
		PreviousInterval: card.Interval,
		PreviousEase:     card.EaseFactor,
	}

	if q.Passing() {
		card.CorrectCount++
		switch card.Repetitions {
		case 0:
			card.Interval = GraduatingIntervalDays
		case 1:
			card.Interval = SecondPassIntervalDays
		default:
			card.Interval = int(float64(card.Interval) * newEase)
		}
		if q == QualityPerfect {
			card.Interval = int(float64(card.Interval) * PerfectBonus)
		}
		card.Repetitions++
		log.Action = ActionAdvance
	} else {
		card.Repetitions = 0
		card.Interval = MinIntervalDays
		card.IncorrectCount++
		log.Action = ActionReset
	}

	card.Interval = clampInterval(card.Interval)
	card.EaseFactor = newEase

	next := now.AddDate(0, 0, card.Interval)
	card.NextReview = &next
	last := now
	card.LastReviewed = &last

	card.TotalReviews++
	card.AverageResponseMs = (card.AverageResponseMs*float64(card.TotalReviews-1) +
		float64(responseTimeMs)) / float64(card.TotalReviews)

	log.NewInterval = card.Interval
	log.NewEase = card.EaseFactor
	log.NextReview = next
	return card, log, nil
}

// timeFactor converts response latency into an ease-delta multiplier.
// 0ms maps to 1.2, the 3000ms baseline to 1.0, and anything at or beyond
// three times the baseline saturates at 0.8.
func timeFactor(responseTimeMs int64) float64 {
	baseline := float64(TimeFactorBaselineMs)
	rt := float64(responseTimeMs)
	if rt < baseline {
		return 1.0 + (baseline-rt)/baseline*TimeFactorSwing
	}
	excess := math.Min(rt-baseline, baseline*2)
	return 1.0 - excess/(baseline*2)*TimeFactorSwing
}

// nextEaseFactor applies the SM-2 delta formula scaled by the time factor.
func nextEaseFactor(current float64, q Quality, tf float64) float64 {
	miss := float64(int(QualityPerfect) - int(q))
	delta := 0.1 - miss*(0.08+miss*0.02)
	return clampEase(current + delta*tf)
}
