package color

import "math"

// RGBToHSL converts 8-bit RGB into full-precision HSL fractions.
//
// Achromatic inputs (r == g == b) yield H = S = 0.
func RGBToHSL(r, g, b uint8) HSL {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))
	l := (maxC + minC) / 2

	if maxC == minC {
		return HSL{L: l}
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var h float64
	switch maxC {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}
	h /= 6

	return HSL{H: h, S: s, L: l}
}

// RGBToHSLPercent converts 8-bit RGB into percent-scaled HSL:
// [floor(h*100), round(s*100), round(l*100)].
//
// This is the quantized form the saturation filter works in. Divide each
// component by 100 before passing it to HSLToRGB.
func RGBToHSLPercent(r, g, b uint8) [3]float64 {
	c := RGBToHSL(r, g, b)
	return [3]float64{
		math.Floor(c.H * 100),
		RoundHalfUp(c.S * 100),
		RoundHalfUp(c.L * 100),
	}
}

// HSLToRGB converts HSL fractions into 8-bit RGB.
//
// Saturation above 1 is accepted; the resulting channels are clamped.
func HSLToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64
	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3)
	}
	return ClampU8(RoundHalfUp(rf * 255)),
		ClampU8(RoundHalfUp(gf * 255)),
		ClampU8(RoundHalfUp(bf * 255))
}

// hueToRGB evaluates one channel of the HSL hexcone at phase t.
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}
