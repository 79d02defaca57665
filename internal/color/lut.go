package color

import "math"

// PowLUT holds the stored result of c^exp for every 8-bit sample c.
//
// Samples are bytes, so a 256-entry table gives the exact per-pixel result
// of math.Pow with one call per entry instead of three per pixel.
type PowLUT [256]uint8

// NewPowLUT builds the lookup table for raising samples to exp.
func NewPowLUT(exp float64) *PowLUT {
	var lut PowLUT
	for i := range lut {
		lut[i] = ClampU8(math.Pow(float64(i), exp))
	}
	return &lut
}

// Apply returns the stored value of c^exp.
func (l *PowLUT) Apply(c uint8) uint8 {
	return l[c]
}
