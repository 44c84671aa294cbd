package kinematic

// This package includes the straight-line motion helpers used by the game loop.

import "math"

type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Lerp returns the linear interpolation between from and to at fraction t.
func Lerp(from float64, to float64, t float64) float64 {
	return from + (to-from)*t
}

// Clamp restricts v to the range [min, max].
func Clamp(v float64, min float64, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}

// Progress returns how far v has travelled from start toward end, clamped to [0, 1].
// A zero-length range counts as complete.
func Progress(v float64, start float64, end float64) float64 {
	if end == start {
		return 1
	}
	return Clamp((v-start)/(end-start), 0, 1)
}

// StepToward moves current toward target by at most step, never passing the target.
func StepToward(current float64, target float64, step float64) float64 {
	distance := target - current
	if math.Abs(distance) <= step {
		return target
	}
	if distance > 0 {
		return current + step
	}
	return current - step
}
