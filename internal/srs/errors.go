package srs

import "fmt"

// ErrInvalidQuality indicates a review grade outside the 0-5 scale.
// The engine rejects rather than clamps: a silently clamped grade would
// corrupt the ease-factor computation undetectably.
type ErrInvalidQuality struct {
	Quality Quality
}

func (e *ErrInvalidQuality) Error() string {
	return fmt.Sprintf("quality %d outside valid range 0-5", int(e.Quality))
}

// ErrInvalidResponseTime indicates a negative response latency.
type ErrInvalidResponseTime struct {
	Ms int64
}

func (e *ErrInvalidResponseTime) Error() string {
	return fmt.Sprintf("response time %dms is negative", e.Ms)
}
