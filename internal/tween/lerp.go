package tween

import "github.com/vovakirdan/borker-run/internal/core"

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// StepValue returns a while t < 0.5 and b afterwards.
func StepValue(a, b, t float64) float64 {
	if t < 0.5 {
		return a
	}
	return b
}

// LerpVec interpolates each component of two vectors.
func LerpVec(a, b core.Vec3, t float64) core.Vec3 {
	return core.Vec3{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
		Z: Lerp(a.Z, b.Z, t),
	}
}
