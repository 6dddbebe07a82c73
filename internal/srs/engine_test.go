package srs

import (
	"errors"
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestReview_NewCardFirstPass(t *testing.T) {
	card := NewCard("hund", "dog")

	updated, decision, err := Review(card, QualityCorrectHesitant, 2000, testNow)
	if err != nil {
		t.Fatalf("Review: %v", err)
	}

	if decision.Action != ActionAdvance {
		t.Errorf("Action = %q, want %q", decision.Action, ActionAdvance)
	}
	if updated.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1", updated.Repetitions)
	}
	if updated.Interval != GraduatingIntervalDays {
		t.Errorf("Interval = %d, want %d", updated.Interval, GraduatingIntervalDays)
	}
	if updated.EaseFactor != MaxEaseFactor {
		t.Errorf("EaseFactor = %v, want %v", updated.EaseFactor, MaxEaseFactor)
	}
	if updated.CorrectCount != 1 || updated.IncorrectCount != 0 {
		t.Errorf("counters = %d/%d, want 1/0", updated.CorrectCount, updated.IncorrectCount)
	}
	wantNext := testNow.AddDate(0, 0, 1)
	if updated.NextReview == nil || !updated.NextReview.Equal(wantNext) {
		t.Errorf("NextReview = %v, want %v", updated.NextReview, wantNext)
	}
	if updated.LastReviewed == nil || !updated.LastReviewed.Equal(testNow) {
		t.Errorf("LastReviewed = %v, want %v", updated.LastReviewed, testNow)
	}
}

func TestReview_SecondPassPerfectBonus(t *testing.T) {
	card := NewCard("katt", "cat")
	card.Repetitions = 1
	card.Interval = 1
	card.EaseFactor = 2.5

	updated, decision, err := Review(card, QualityPerfect, 1000, testNow)
	if err != nil {
		t.Fatalf("Review: %v", err)
	}

	if updated.Repetitions != 2 {
		t.Errorf("Repetitions = %d, want 2", updated.Repetitions)
	}
	// Second-pass fixed step of 6 days, then the perfect bonus: floor(6*1.3) = 7.
	if updated.Interval != 7 {
		t.Errorf("Interval = %d, want 7", updated.Interval)
	}
	if updated.EaseFactor != MaxEaseFactor {
		t.Errorf("EaseFactor = %v, want %v", updated.EaseFactor, MaxEaseFactor)
	}
	if decision.Action != ActionAdvance {
		t.Errorf("Action = %q, want %q", decision.Action, ActionAdvance)
	}
}

func TestReview_FailResets(t *testing.T) {
	card := NewCard("fisk", "fish")
	card.Repetitions = 3
	card.Interval = 10
	card.EaseFactor = 2.0

	updated, decision, err := Review(card, QualityIncorrectRemembered, 3000, testNow)
	if err != nil {
		t.Fatalf("Review: %v", err)
	}

	if decision.Action != ActionReset {
		t.Errorf("Action = %q, want %q", decision.Action, ActionReset)
	}
	if updated.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want 0", updated.Repetitions)
	}
	if updated.Interval != 1 {
		t.Errorf("Interval = %d, want 1", updated.Interval)
	}
	if updated.IncorrectCount != 1 {
		t.Errorf("IncorrectCount = %d, want 1", updated.IncorrectCount)
	}
	// quality 1 at baseline latency: delta = 0.1 - 4*(0.08+4*0.02) = -0.54.
	if !approxEqual(updated.EaseFactor, 1.46, 1e-9) {
		t.Errorf("EaseFactor = %v, want 1.46", updated.EaseFactor)
	}
}

func TestReview_MatureCardGrowsByEase(t *testing.T) {
	card := NewCard("brod", "bread")
	card.Repetitions = 4
	card.Interval = 10
	card.EaseFactor = 2.0

	updated, _, err := Review(card, QualityCorrectHesitant, 3000, testNow)
	if err != nil {
		t.Fatalf("Review: %v", err)
	}

	// quality 4 at baseline latency leaves ease at 2.0; floor(10*2.0) = 20.
	if updated.Interval != 20 {
		t.Errorf("Interval = %d, want 20", updated.Interval)
	}
	if updated.Repetitions != 5 {
		t.Errorf("Repetitions = %d, want 5", updated.Repetitions)
	}
}

func TestReview_FailAlwaysResets(t *testing.T) {
	for q := QualityBlackout; q < QualityCorrectDifficult; q++ {
		card := NewCard("word", "meaning")
		card.Repetitions = 7
		card.Interval = 200
		card.EaseFactor = 1.9

		updated, decision, err := Review(card, q, 500, testNow)
		if err != nil {
			t.Fatalf("Review(q=%d): %v", q, err)
		}
		if updated.Repetitions != 0 || updated.Interval != 1 {
			t.Errorf("q=%d: reps/interval = %d/%d, want 0/1", q, updated.Repetitions, updated.Interval)
		}
		if decision.Action != ActionReset {
			t.Errorf("q=%d: Action = %q, want %q", q, decision.Action, ActionReset)
		}
	}
}

func TestReview_InvariantsHoldUnderExtremeInputs(t *testing.T) {
	card := NewCard("sten", "stone")
	now := testNow

	inputs := []struct {
		q  Quality
		rt int64
	}{
		{QualityPerfect, 0},
		{QualityPerfect, 0},
		{QualityPerfect, 0},
		{QualityBlackout, 1 << 40},
		{QualityPerfect, 0},
		{QualityCorrectDifficult, 1 << 40},
	}
	for i := 0; i < 60; i++ {
		in := inputs[i%len(inputs)]
		var err error
		card, _, err = Review(card, in.q, in.rt, now)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if card.EaseFactor < MinEaseFactor || card.EaseFactor > MaxEaseFactor {
			t.Fatalf("step %d: EaseFactor %v out of range", i, card.EaseFactor)
		}
		if card.Interval < MinIntervalDays || card.Interval > MaxIntervalDays {
			t.Fatalf("step %d: Interval %d out of range", i, card.Interval)
		}
		if card.TotalReviews != card.CorrectCount+card.IncorrectCount {
			t.Fatalf("step %d: counters out of sync: %d != %d+%d",
				i, card.TotalReviews, card.CorrectCount, card.IncorrectCount)
		}
		now = now.AddDate(0, 0, 1)
	}
}

func TestReview_EaseMonotonicInQuality(t *testing.T) {
	base := NewCard("ord", "word")
	base.Repetitions = 2
	base.Interval = 6
	base.EaseFactor = 2.0

	prev := -1.0
	for q := QualityCorrectDifficult; q <= QualityPerfect; q++ {
		updated, _, err := Review(base, q, 2500, testNow)
		if err != nil {
			t.Fatalf("Review(q=%d): %v", q, err)
		}
		if updated.EaseFactor < prev {
			t.Errorf("q=%d: EaseFactor %v < previous %v", q, updated.EaseFactor, prev)
		}
		prev = updated.EaseFactor
	}
}

func TestReview_AverageResponseTime(t *testing.T) {
	card := NewCard("tid", "time")

	card, _, err := Review(card, QualityCorrectHesitant, 2000, testNow)
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if !approxEqual(card.AverageResponseMs, 2000, 1e-9) {
		t.Errorf("AverageResponseMs = %v, want 2000", card.AverageResponseMs)
	}

	card, _, err = Review(card, QualityCorrectHesitant, 4000, testNow.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if !approxEqual(card.AverageResponseMs, 3000, 1e-9) {
		t.Errorf("AverageResponseMs = %v, want 3000", card.AverageResponseMs)
	}
}

func TestReview_DoesNotMutateInput(t *testing.T) {
	card := NewCard("orm", "snake")
	card.Repetitions = 2
	card.Interval = 6

	_, _, err := Review(card, QualityPerfect, 100, testNow)
	if err != nil {
		t.Fatalf("Review: %v", err)
	}

	if card.Repetitions != 2 || card.Interval != 6 || card.TotalReviews != 0 {
		t.Errorf("input card was mutated: %+v", card)
	}
	if card.NextReview != nil || card.LastReviewed != nil {
		t.Errorf("input card timestamps were set: %+v", card)
	}
}

func TestReview_RejectsInvalidInput(t *testing.T) {
	card := NewCard("fel", "error")

	_, _, err := Review(card, Quality(6), 1000, testNow)
	var badQ *ErrInvalidQuality
	if !errors.As(err, &badQ) {
		t.Errorf("quality 6: err = %v, want ErrInvalidQuality", err)
	}

	_, _, err = Review(card, Quality(-1), 1000, testNow)
	if !errors.As(err, &badQ) {
		t.Errorf("quality -1: err = %v, want ErrInvalidQuality", err)
	}

	_, _, err = Review(card, QualityCorrectHesitant, -5, testNow)
	var badRT *ErrInvalidResponseTime
	if !errors.As(err, &badRT) {
		t.Errorf("negative latency: err = %v, want ErrInvalidResponseTime", err)
	}
}

func TestTimeFactor(t *testing.T) {
	tests := []struct {
		rt   int64
		want float64
	}{
		{0, 1.2},
		{1500, 1.1},
		{3000, 1.0},
		{6000, 0.9},
		{9000, 0.8},
		{60000, 0.8}, // saturates past 3x baseline
	}
	for _, tt := range tests {
		if got := timeFactor(tt.rt); !approxEqual(got, tt.want, 1e-9) {
			t.Errorf("timeFactor(%d) = %v, want %v", tt.rt, got, tt.want)
		}
	}
}
