package filter

import (
	"github.com/gogpu/gg-filter/internal/color"
	"github.com/gogpu/gg-filter/pixel"
)

// Rand is the random source used by the stochastic filters.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	// IntN returns a uniform int in [0, n). n > 0.
	IntN(n int) int
}

// symmetric returns a uniform int in [-n, n].
func symmetric(rng Rand, n int) int {
	return rng.IntN(2*n+1) - n
}

// Corrode scatters pixels: each pixel's R, G and B are copied from a pixel
// offset by uniform random amounts in [-radius, radius] on both axes.
// The sample position is clamped into the image so edge pixels never read
// from an adjacent row. Pixels are visited column by column and the buffer
// is updated in place. radius <= 0 is a no-op.
func Corrode(buf *pixel.Buffer, radius int, rng Rand) bool {
	if radius <= 0 || rng == nil {
		return false
	}

	width, height := buf.Width(), buf.Height()
	data := buf.Data()

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			dy := symmetric(rng, radius)
			dx := symmetric(rng, radius)
			sx := clampInt(x+dx, 0, width-1)
			sy := clampInt(y+dy, 0, height-1)

			dst := pixel.Index(width, x, y, 0)
			src := pixel.Index(width, sx, sy, 0)
			for j := 0; j < 3; j++ {
				data[dst+j] = data[src+j]
			}
		}
	}
	return true
}

// Noise adds an independent uniform integer in [-amount, amount] to each
// of R, G and B. amount <= 0 is a no-op.
func Noise(buf *pixel.Buffer, amount int, rng Rand) bool {
	if amount <= 0 || rng == nil {
		return false
	}

	width, height := buf.Width(), buf.Height()
	data := buf.Data()

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			i := pixel.Index(width, x, y, 0)
			for j := 0; j < 3; j++ {
				v := int(data[i+j]) + symmetric(rng, amount)
				data[i+j] = color.ClampU8(float64(v))
			}
		}
	}
	return true
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
