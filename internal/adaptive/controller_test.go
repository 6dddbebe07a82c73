package adaptive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptimalDifficulty_StartsFromMiddle(t *testing.T) {
	c := NewController()

	// Accuracy exactly on target: no adjustment from the 0.5 default.
	got := c.OptimalDifficulty(0.8)
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestOptimalDifficulty_ProportionalStep(t *testing.T) {
	c := NewController()

	// error = 0.8 - 0.5 = 0.3, step = 0.15.
	assert.InDelta(t, 0.65, c.OptimalDifficulty(0.5), 1e-9)

	// Next step starts from the last difficulty.
	// error = 0.8 - 1.0 = -0.2, step = -0.1.
	assert.InDelta(t, 0.55, c.OptimalDifficulty(1.0), 1e-9)
}

func TestOptimalDifficulty_Clamps(t *testing.T) {
	c := NewController()
	for i := 0; i < 10; i++ {
		c.OptimalDifficulty(0.0)
	}
	assert.InDelta(t, MaxDifficulty, c.OptimalDifficulty(0.0), 1e-9)

	c = NewController()
	for i := 0; i < 10; i++ {
		c.OptimalDifficulty(1.0)
	}
	assert.InDelta(t, MinDifficulty, c.OptimalDifficulty(1.0), 1e-9)
}

func TestController_HistoryIsBounded(t *testing.T) {
	c := NewController()
	for i := 0; i < DefaultHistoryLimit*3; i++ {
		c.OptimalDifficulty(0.8)
	}

	history := c.History()
	assert.Len(t, history, DefaultHistoryLimit)
}

func TestController_HistoryRecordsSamples(t *testing.T) {
	c := NewController()
	first := c.OptimalDifficulty(0.6)
	second := c.OptimalDifficulty(0.9)

	history := c.History()
	assert.Len(t, history, 2)
	assert.Equal(t, Sample{Difficulty: first, Accuracy: 0.6}, history[0])
	assert.Equal(t, Sample{Difficulty: second, Accuracy: 0.9}, history[1])

	// The returned slice is a copy.
	history[0].Difficulty = -1
	assert.NotEqual(t, -1.0, c.History()[0].Difficulty)
}

func TestNewControllerWithTarget(t *testing.T) {
	c := NewControllerWithTarget(0.9)
	assert.Equal(t, 0.9, c.Target())

	// error = 0.9 - 0.5 = 0.4, step = 0.2.
	assert.InDelta(t, 0.7, c.OptimalDifficulty(0.5), 1e-9)
}
