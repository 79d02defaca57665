package filter

import (
	"github.com/gogpu/gg-filter/internal/color"
	"github.com/gogpu/gg-filter/pixel"
)

// mapGray sets R, G and B of each pixel to fn(r, g, b).
func mapGray(buf *pixel.Buffer, fn func(r, g, b float64) float64) {
	data := buf.Data()
	for i := 0; i < len(data); i += pixel.BytesPerPixel {
		v := color.ClampU8(fn(float64(data[i]), float64(data[i+1]), float64(data[i+2])))
		data[i+0] = v
		data[i+1] = v
		data[i+2] = v
	}
}

// Grayscale blends each channel toward the floored Rec. 709 luminance.
// amount 1 is full grayscale; amount <= 0 is a no-op; amounts above 1 are
// clamped to 1.
func Grayscale(buf *pixel.Buffer, amount float64) bool {
	if !(amount > 0) {
		return false
	}
	amount = min(amount, 1)
	keep := 1 - amount

	data := buf.Data()
	for i := 0; i < len(data); i += pixel.BytesPerPixel {
		r, g, b := float64(data[i]), float64(data[i+1]), float64(data[i+2])
		gray := color.Luma709(r, g, b)
		data[i+0] = color.ClampU8(color.RoundHalfUp(gray + (r-gray)*keep))
		data[i+1] = color.ClampU8(color.RoundHalfUp(gray + (g-gray)*keep))
		data[i+2] = color.ClampU8(color.RoundHalfUp(gray + (b-gray)*keep))
	}
	return true
}

// GrayAverage sets each channel to (R+G+B)/3.
func GrayAverage(buf *pixel.Buffer) bool {
	mapGray(buf, func(r, g, b float64) float64 {
		return (r + g + b) / 3
	})
	return true
}

// GrayCommon sets each channel to the truncated weighted luminance
// 0.299R + 0.578G + 0.114B.
func GrayCommon(buf *pixel.Buffer) bool {
	mapGray(buf, color.LumaCommon)
	return true
}

// GrayDesaturate sets each channel to the desaturated gray.
//
// With corrected == false it reproduces the legacy result min(R,G,B)/2
// that earlier releases produced. With corrected == true it computes
// (max+min)/2.
func GrayDesaturate(buf *pixel.Buffer, corrected bool) bool {
	mapGray(buf, func(r, g, b float64) float64 {
		lo := min(r, g, b)
		if !corrected {
			return lo / 2
		}
		return (max(r, g, b) + lo) / 2
	})
	return true
}

// GrayMax sets each channel to max(R,G,B).
func GrayMax(buf *pixel.Buffer) bool {
	mapGray(buf, func(r, g, b float64) float64 {
		return max(r, g, b)
	})
	return true
}

// GrayMin sets each channel to min(R,G,B).
func GrayMin(buf *pixel.Buffer) bool {
	mapGray(buf, func(r, g, b float64) float64 {
		return min(r, g, b)
	})
	return true
}

// GraySingle copies channel ch into R, G and B.
// A value outside the defined channels is a no-op.
func GraySingle(buf *pixel.Buffer, ch Channel) bool {
	if !ch.valid() {
		return false
	}
	off := ch.offset()
	data := buf.Data()
	for i := 0; i < len(data); i += pixel.BytesPerPixel {
		v := data[i+off]
		data[i+0] = v
		data[i+1] = v
		data[i+2] = v
	}
	return true
}

// SingleColor keeps channel ch and zeroes the other two.
// A value outside the defined channels is a no-op.
func SingleColor(buf *pixel.Buffer, ch Channel) bool {
	if !ch.valid() {
		return false
	}
	off := ch.offset()
	data := buf.Data()
	for i := 0; i < len(data); i += pixel.BytesPerPixel {
		for j := 0; j < 3; j++ {
			if j != off {
				data[i+j] = 0
			}
		}
	}
	return true
}

// GrayShadow quantizes the channel average into levels evenly spaced gray
// steps across [0,255]. Fewer than 2 levels is a no-op.
func GrayShadow(buf *pixel.Buffer, levels int) bool {
	if levels < 2 {
		return false
	}
	factor := 255 / float64(levels-1)
	mapGray(buf, func(r, g, b float64) float64 {
		avg := (r + g + b) / 3
		return color.RoundHalfUp(avg/factor+0.5) * factor
	})
	return true
}

// OilPainting sets each channel to the channel average floored to a
// multiple of bucket. bucket <= 0 is a no-op.
func OilPainting(buf *pixel.Buffer, bucket int) bool {
	if bucket <= 0 {
		return false
	}
	size := float64(bucket)
	mapGray(buf, func(r, g, b float64) float64 {
		avg := (r + g + b) / 3
		return float64(int(avg/size)) * size
	})
	return true
}
