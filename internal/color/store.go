package color

import "math"

// ClampU8 converts a computed channel value into a stored sample.
//
// This is the single store rule for every filter: NaN becomes 0, values are
// clamped to [0,255] and then rounded half to even. It matches the clamped
// byte array behind an HTML canvas, so chains of filters drift the same way
// they would on a drawing surface.
func ClampU8(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.RoundToEven(v))
}

// RoundHalfUp rounds to the nearest integer, ties toward +Inf.
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func floor(v float64) float64 {
	return math.Floor(v)
}
