package srs

import "math"

// MasteryLevel buckets a card's mastery percentage into ordinal levels.
type MasteryLevel string

const (
	MasteryNew      MasteryLevel = "new"
	MasteryLearning MasteryLevel = "learning"
	MasteryFamiliar MasteryLevel = "familiar"
	MasteryMastered MasteryLevel = "mastered"
)

// AllMasteryLevels returns the levels in order from lowest to highest.
func AllMasteryLevels() []MasteryLevel {
	return []MasteryLevel{MasteryNew, MasteryLearning, MasteryFamiliar, MasteryMastered}
}

// DisplayName returns a human-readable label for the level.
func (l MasteryLevel) DisplayName() string {
	switch l {
	case MasteryNew:
		return "New"
	case MasteryLearning:
		return "Learning"
	case MasteryFamiliar:
		return "Familiar"
	case MasteryMastered:
		return "Mastered"
	default:
		return string(l)
	}
}

// LevelForPercent returns the level bucket for a 0-100 mastery percentage.
func LevelForPercent(percent float64) MasteryLevel {
	switch {
	case percent >= 90:
		return MasteryMastered
	case percent >= 70:
		return MasteryFamiliar
	case percent >= 40:
		return MasteryLearning
	default:
		return MasteryNew
	}
}

// MasteryReport summarizes how well a single card is known.
type MasteryReport struct {
	Percent      float64      `json:"mastery_percent"`
	Level        MasteryLevel `json:"level"`
	Accuracy     float64      `json:"accuracy"` // percent, 0-100
	IntervalDays int          `json:"interval_days"`
	ReviewCount  int          `json:"reviews_count"`
	Mastered     bool         `json:"is_mastered"`
}

// MasteryOf computes the weighted mastery composite for a card: 30% lifetime
// accuracy, 50% interval growth (90 days counts as full), 20% normalized
// ease factor, scaled to 0-100. Read-only.
func MasteryOf(card Card) MasteryReport {
	card = card.Normalize()

	accuracy := card.Accuracy()
	intervalScore := math.Min(float64(card.Interval)/masteryIntervalCapDays, 1.0)
	easeScore := (card.EaseFactor - MinEaseFactor) / (MaxEaseFactor - MinEaseFactor)

	percent := (masteryAccuracyWeight*accuracy +
		masteryIntervalWeight*intervalScore +
		masteryEaseWeight*easeScore) * 100
	percent = math.Round(percent*10) / 10

	return MasteryReport{
		Percent:      percent,
		Level:        LevelForPercent(percent),
		Accuracy:     math.Round(accuracy*1000) / 10,
		IntervalDays: card.Interval,
		ReviewCount:  card.TotalReviews,
		Mastered:     percent >= 90,
	}
}
