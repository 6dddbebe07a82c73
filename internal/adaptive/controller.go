// Package adaptive steers a learner's target content difficulty from
// observed accuracy and ranks candidate content against that target.
package adaptive

// DefaultTargetAccuracy is the accuracy the controller steers toward —
// roughly the zone where material is neither trivial nor frustrating.
const DefaultTargetAccuracy = 0.8

// DefaultHistoryLimit bounds the rolling (difficulty, accuracy) history;
// samples older than the window are dropped.
const DefaultHistoryLimit = 50

const (
	MinDifficulty     = 0.1
	MaxDifficulty     = 0.9
	InitialDifficulty = 0.5

	// proportionalGain scales the accuracy error into a difficulty step.
	proportionalGain = 0.5
)

// Sample is one recorded (difficulty, accuracy) observation.
type Sample struct {
	Difficulty float64
	Accuracy   float64
}

// Controller is a proportional feedback loop tracking one learner's recent
// accuracy. It is stateful per learner session and not safe for concurrent
// use; callers own serialization.
type Controller struct {
	target  float64
	limit   int
	history []Sample
}

// NewController creates a controller steering toward the default 80% accuracy.
func NewController() *Controller {
	return NewControllerWithTarget(DefaultTargetAccuracy)
}

// NewControllerWithTarget creates a controller steering toward the given
// target accuracy.
func NewControllerWithTarget(target float64) *Controller {
	return &Controller{target: target, limit: DefaultHistoryLimit}
}

// OptimalDifficulty performs one proportional-control step: it moves the
// last difficulty by half the observed accuracy error, clamps the result
// into [0.1, 0.9], records the sample, and returns the new difficulty
// target for content selection. With no history the step starts from 0.5.
func (c *Controller) OptimalDifficulty(recentAccuracy float64) float64 {
	accuracyError := c.target - recentAccuracy
	next := clamp(c.lastDifficulty()+accuracyError*proportionalGain, MinDifficulty, MaxDifficulty)
	c.record(Sample{Difficulty: next, Accuracy: recentAccuracy})
	return next
}

// Target returns the accuracy the controller steers toward.
func (c *Controller) Target() float64 {
	return c.target
}

// History returns a copy of the recorded samples, oldest first.
func (c *Controller) History() []Sample {
	out := make([]Sample, len(c.history))
	copy(out, c.history)
	return out
}

func (c *Controller) lastDifficulty() float64 {
	if len(c.history) == 0 {
		return InitialDifficulty
	}
	return c.history[len(c.history)-1].Difficulty
}

func (c *Controller) record(s Sample) {
	c.history = append(c.history, s)
	if len(c.history) > c.limit {
		c.history = c.history[len(c.history)-c.limit:]
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
