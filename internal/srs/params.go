package srs

// Algorithm constants. These tables are owned by the engine and fixed at
// compile time; nothing mutates them at runtime.
const (
	// Ease factor domain.
	MinEaseFactor     = 1.3
	MaxEaseFactor     = 2.5
	InitialEaseFactor = 2.5

	// Interval domain in days.
	MinIntervalDays = 1
	MaxIntervalDays = 365

	// GraduatingIntervalDays is assigned on a card's first-ever pass.
	GraduatingIntervalDays = 1

	// SecondPassIntervalDays is the fixed step on the second consecutive
	// pass, before ease-driven multiplicative growth takes over.
	SecondPassIntervalDays = 6

	// PerfectBonus multiplies the interval when recall was perfect (quality 5).
	PerfectBonus = 1.3

	// Response-time correction. Responses faster than the baseline scale
	// the ease delta up to 1+TimeFactorSwing at 0ms; slower responses scale
	// it down to 1-TimeFactorSwing, saturating at twice the baseline past it.
	TimeFactorBaselineMs = 3000
	TimeFactorSwing      = 0.2

	// Mastery composite weights and the interval treated as full mastery.
	masteryAccuracyWeight  = 0.3
	masteryIntervalWeight  = 0.5
	masteryEaseWeight      = 0.2
	masteryIntervalCapDays = 90
)

func clampEase(ef float64) float64 {
	if ef < MinEaseFactor {
		return MinEaseFactor
	}
	if ef > MaxEaseFactor {
		return MaxEaseFactor
	}
	return ef
}

func clampInterval(days int) int {
	if days < MinIntervalDays {
		return MinIntervalDays
	}
	if days > MaxIntervalDays {
		return MaxIntervalDays
	}
	return days
}
