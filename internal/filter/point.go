package filter

import (
	"math"

	"github.com/gogpu/gg-filter/internal/color"
	"github.com/gogpu/gg-filter/pixel"
)

// mapRGB replaces each R, G and B sample with fn(sample).
func mapRGB(buf *pixel.Buffer, fn func(c float64) float64) {
	data := buf.Data()
	for i := 0; i < len(data); i += pixel.BytesPerPixel {
		for j := 0; j < 3; j++ {
			data[i+j] = color.ClampU8(fn(float64(data[i+j])))
		}
	}
}

// Contrast pushes each channel away from mid-gray: c += (c-127.5)*factor.
func Contrast(buf *pixel.Buffer, factor float64) bool {
	mapRGB(buf, func(c float64) float64 {
		return c + (c-127.5)*factor
	})
	return true
}

// Invert replaces each channel with (255-c)*amount. amount is clamped to
// [0,1]; an amount of 0 or less is a no-op.
func Invert(buf *pixel.Buffer, amount float64) bool {
	amount = clampUnit(amount)
	if amount <= 0 {
		return false
	}
	mapRGB(buf, func(c float64) float64 {
		return (255 - c) * amount
	})
	return true
}

// GammaExponent maps a gamma setting in [-100, 100] to the power applied to
// each channel: ((setting+100)/200)*2. 0 maps to 1 (identity).
func GammaExponent(setting float64) float64 {
	return ((setting + 100) / 200) * 2
}

// Gamma raises each channel to GammaExponent(setting). Channels are not
// normalized first, so exponents above 1 brighten quickly.
func Gamma(buf *pixel.Buffer, setting float64) bool {
	lut := color.NewPowLUT(GammaExponent(setting))
	data := buf.Data()
	for i := 0; i < len(data); i += pixel.BytesPerPixel {
		data[i+0] = lut.Apply(data[i+0])
		data[i+1] = lut.Apply(data[i+1])
		data[i+2] = lut.Apply(data[i+2])
	}
	return true
}

// Posterize reduces each channel to multiples of floor(255/steps).
// steps is clamped to [1, 255].
func Posterize(buf *pixel.Buffer, steps int) bool {
	steps = max(1, min(steps, 255))
	level := 255 / steps
	data := buf.Data()
	for i := 0; i < len(data); i += pixel.BytesPerPixel {
		for j := 0; j < 3; j++ {
			data[i+j] = uint8(int(data[i+j]) / level * level)
		}
	}
	return true
}

// Saturate scales HSL saturation by factor: s += s*(factor-1).
// 0 removes all color, 1 is identity (up to HSL quantization), values above
// 1 amplify.
//
// Each pixel goes through the percent-quantized HSL form, so even factor 1
// may move channels by a few units.
func Saturate(buf *pixel.Buffer, factor float64) bool {
	data := buf.Data()
	for i := 0; i < len(data); i += pixel.BytesPerPixel {
		hsl := color.RGBToHSLPercent(data[i], data[i+1], data[i+2])
		h := hsl[0] / 100
		s := hsl[1] / 100
		l := hsl[2] / 100
		s += s * (factor - 1)
		data[i+0], data[i+1], data[i+2] = color.HSLToRGB(h, s, l)
	}
	return true
}

// clampUnit clamps v to [0,1]. NaN maps to 0.
func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(v, 1))
}
