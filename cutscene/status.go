// Package cutscene implements the declarative cutscene DSL (Ast) and its
// compiled scene-node tree, plus the per-frame Scene runtime that drives
// it against a theater.Theater.
package cutscene

import "math"

// Status is a scene node's reported progress, ordered
// Active < Paused < Twiddling < Done. A composite node's status is
// derived from its children per the rules in §4.2.
type Status int

const (
	Active Status = iota
	Paused
	Twiddling
	Done
)

// minStatus returns the lesser of a and b under the Status ordering.
func minStatus(a, b Status) Status {
	if a < b {
		return a
	}
	return b
}

// FramesPerSecond is the engine's fixed frame rate, used to convert
// node durations given in seconds into frame counts.
const FramesPerSecond = 30

// SecondsToFrames converts a duration in seconds to a frame count,
// rounding down.
func SecondsToFrames(seconds float64) int {
	f := int(seconds * FramesPerSecond)
	return f
}

// FramesToSeconds converts a frame count back to seconds.
func FramesToSeconds(frames int) float64 {
	return float64(frames) / FramesPerSecond
}

// TimeToFall solves 0.5*g*t^2 = height for t, exposed so puzzle-specific
// code can build custom fall animations synchronized with Jump nodes
// (§4.2, "time_to_fall").
func TimeToFall(height float64) float64 {
	if height <= 0 {
		return 0
	}
	return math.Sqrt(2 * height / gravity)
}
