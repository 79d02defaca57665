package filter

import (
	"math"

	"github.com/gogpu/gg-filter/internal/color"
	"github.com/gogpu/gg-filter/pixel"
)

// BlurScale multiplies the user-facing blur radius to get the kernel
// half-width in pixels.
const BlurScale = 6

// Blur applies a separable Gaussian blur to the R, G and B channels.
//
// The kernel half-width is radius*BlurScale. Only |sigma| matters; a zero
// or NaN sigma defaults to a third of the half-width. Taps falling outside the image are skipped and
// each output is divided by the sum of the weights actually used, so edges
// do not darken. Alpha is unchanged.
//
// The operation uses a two-pass separable algorithm:
//  1. Horizontal pass: convolve each row with the 1D kernel
//  2. Vertical pass: convolve each column of the horizontal result
func Blur(buf *pixel.Buffer, radius int, sigma float64) bool {
	if radius <= 0 {
		return false
	}
	halfWidth := radius * BlurScale
	sigma = math.Abs(sigma)
	if !(sigma > 0) {
		sigma = float64(halfWidth) / 3
	}

	kernel := GaussianKernel(halfWidth, sigma)
	blurHorizontal(buf, kernel)
	blurVertical(buf, kernel)
	return true
}

// blurHorizontal convolves every row in place, reading from a row copy.
func blurHorizontal(buf *pixel.Buffer, kernel []float64) {
	width, height := buf.Width(), buf.Height()
	data := buf.Data()
	half := KernelCenter(len(kernel))
	rowLen := width * pixel.BytesPerPixel
	row := make([]uint8, rowLen)

	for y := 0; y < height; y++ {
		copy(row, data[y*rowLen:(y+1)*rowLen])

		for x := 0; x < width; x++ {
			var r, g, b, used float64

			for k, weight := range kernel {
				kx := x + k - half
				if kx < 0 || kx >= width {
					continue
				}
				i := kx * pixel.BytesPerPixel
				r += float64(row[i+0]) * weight
				g += float64(row[i+1]) * weight
				b += float64(row[i+2]) * weight
				used += weight
			}

			i := pixel.Index(width, x, y, 0)
			data[i+0] = color.ClampU8(r / used)
			data[i+1] = color.ClampU8(g / used)
			data[i+2] = color.ClampU8(b / used)
		}
	}
}

// blurVertical convolves every column in place, reading from a column copy.
func blurVertical(buf *pixel.Buffer, kernel []float64) {
	width, height := buf.Width(), buf.Height()
	data := buf.Data()
	half := KernelCenter(len(kernel))
	col := make([]uint8, height*pixel.BytesPerPixel)

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			copy(col[y*pixel.BytesPerPixel:(y+1)*pixel.BytesPerPixel], data[pixel.Index(width, x, y, 0):])
		}

		for y := 0; y < height; y++ {
			var r, g, b, used float64

			for k, weight := range kernel {
				ky := y + k - half
				if ky < 0 || ky >= height {
					continue
				}
				i := ky * pixel.BytesPerPixel
				r += float64(col[i+0]) * weight
				g += float64(col[i+1]) * weight
				b += float64(col[i+2]) * weight
				used += weight
			}

			i := pixel.Index(width, x, y, 0)
			data[i+0] = color.ClampU8(r / used)
			data[i+1] = color.ClampU8(g / used)
			data[i+2] = color.ClampU8(b / used)
		}
	}
}
