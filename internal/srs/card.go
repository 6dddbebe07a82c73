package srs

import (
	"time"

	"github.com/google/uuid"
)

// Card is the scheduling state for one learnable item (word, phrase, fact)
// tracked for one learner. It is a value type: Review returns an updated
// copy and never mutates its input. Word, Meaning and Tags are payload,
// not scheduling state.
type Card struct {
	ID      string   `json:"id"`
	Word    string   `json:"word"`
	Meaning string   `json:"meaning"`
	Tags    []string `json:"tags,omitempty"`

	EaseFactor   float64    `json:"ease_factor"`
	Interval     int        `json:"interval"`
	Repetitions  int        `json:"repetitions"`
	NextReview   *time.Time `json:"next_review,omitempty"`
	LastReviewed *time.Time `json:"last_reviewed,omitempty"`

	TotalReviews      int     `json:"total_reviews"`
	CorrectCount      int     `json:"correct_count"`
	IncorrectCount    int     `json:"incorrect_count"`
	AverageResponseMs float64 `json:"average_response_ms"`
}

// NewCard creates an unscheduled card with default scheduling state.
func NewCard(word, meaning string, tags ...string) Card {
	return Card{
		ID:         uuid.NewString(),
		Word:       word,
		Meaning:    meaning,
		Tags:       tags,
		EaseFactor: InitialEaseFactor,
		Interval:   MinIntervalDays,
	}
}

// Normalize clamps the ease factor and interval back into their legal
// ranges. Call it after loading a card from external storage so out-of-range
// values can never enter a scheduling step.
func (c Card) Normalize() Card {
	c.EaseFactor = clampEase(c.EaseFactor)
	c.Interval = clampInterval(c.Interval)
	if c.Repetitions < 0 {
		c.Repetitions = 0
	}
	return c
}

// IsNew reports whether the card has never been scheduled.
func (c Card) IsNew() bool {
	return c.Repetitions == 0 && c.NextReview == nil
}

// IsDue reports whether the card is scheduled and at or past its review date.
func (c Card) IsDue(now time.Time) bool {
	return c.NextReview != nil && !c.NextReview.After(now)
}

// OverdueDays returns how many days past due the card is.
// Returns 0 if the card is unscheduled or not yet due.
func (c Card) OverdueDays(now time.Time) float64 {
	if !c.IsDue(now) {
		return 0
	}
	return now.Sub(*c.NextReview).Hours() / 24.0
}

// Accuracy returns the lifetime correct-answer ratio, 0 with no reviews.
func (c Card) Accuracy() float64 {
	if c.TotalReviews == 0 {
		return 0
	}
	return float64(c.CorrectCount) / float64(c.TotalReviews)
}
