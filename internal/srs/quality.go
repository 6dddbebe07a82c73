package srs

// Quality is the 0-5 ordinal recall grade reported for a single review.
// Grades of 3 and above count as passing.
type Quality int

const (
	QualityBlackout            Quality = iota // no recall at all
	QualityIncorrectRemembered                // wrong, recognized the answer when shown
	QualityIncorrectEasyRecall                // wrong, but the answer came back easily
	QualityCorrectDifficult                   // correct with serious difficulty
	QualityCorrectHesitant                    // correct after some hesitation
	QualityPerfect                            // perfect, effortless recall
)

// Valid reports whether q is inside the 0-5 scale.
func (q Quality) Valid() bool {
	return q >= QualityBlackout && q <= QualityPerfect
}

// Passing reports whether the review counts as a success.
func (q Quality) Passing() bool {
	return q >= QualityCorrectDifficult
}

// Label returns a human-readable description of the grade.
func (q Quality) Label() string {
	switch q {
	case QualityBlackout:
		return "complete blackout"
	case QualityIncorrectRemembered:
		return "incorrect, remembered after seeing the answer"
	case QualityIncorrectEasyRecall:
		return "incorrect, but the answer came back easily"
	case QualityCorrectDifficult:
		return "correct with difficulty"
	case QualityCorrectHesitant:
		return "correct with some hesitation"
	case QualityPerfect:
		return "perfect recall"
	default:
		return "invalid"
	}
}
