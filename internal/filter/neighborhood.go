package filter

import (
	"github.com/gogpu/gg-filter/internal/color"
	"github.com/gogpu/gg-filter/pixel"
)

// Sharp boosts local contrast against the causal neighborhood.
//
// Pixels are visited in row-major order. For every pixel outside the first
// row and column, delta = c - mean(north, west, north-west) and c += delta*amount.
// The neighbors have already been sharpened when they are read, which is
// what gives this filter its directional look.
func Sharp(buf *pixel.Buffer, amount float64) bool {
	width, height := buf.Width(), buf.Height()
	data := buf.Data()

	for y := 1; y < height; y++ {
		for x := 1; x < width; x++ {
			i := pixel.Index(width, x, y, 0)
			nw := pixel.Index(width, x-1, y-1, 0)
			n := pixel.Index(width, x, y-1, 0)
			w := pixel.Index(width, x-1, y, 0)

			for j := 0; j < 3; j++ {
				c := float64(data[i+j])
				mean := (float64(data[n+j]) + float64(data[w+j]) + float64(data[nw+j])) / 3
				data[i+j] = color.ClampU8(c + (c-mean)*amount)
			}
		}
	}
	return true
}

// Embossment renders a gray relief: c = northWest - southEast + 127.5.
//
// Values come from the unmodified image. Pixels without both diagonal
// neighbors (the first and last row and column) keep their values; alpha
// is unchanged.
func Embossment(buf *pixel.Buffer) bool {
	width, height := buf.Width(), buf.Height()
	if width < 3 || height < 3 {
		return false
	}

	data := buf.Data()
	src := make([]uint8, len(data))
	copy(src, data)

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			i := pixel.Index(width, x, y, 0)
			nw := pixel.Index(width, x-1, y-1, 0)
			se := pixel.Index(width, x+1, y+1, 0)

			for j := 0; j < 3; j++ {
				data[i+j] = color.ClampU8(float64(src[nw+j]) - float64(src[se+j]) + 127.5)
			}
		}
	}
	return true
}
