package filter

import (
	"math"

	"github.com/gogpu/gg-filter/internal/color"
	"github.com/gogpu/gg-filter/pixel"
)

// Easing curve control points for the dark corner falloff.
const (
	cornerP0 = 0
	cornerP1 = 0.02
	cornerP2 = 0.3
	cornerP3 = 1
)

// DarkCorner darkens the image toward its corners.
//
// The vignette center is (2/3 width, 1/2 height). maxDistance is the
// distance from the center to the origin and darkening starts at
// maxDistance*(1-strength/10). A pixel's normalized distance t in that band
// (0 inside the start radius) is eased through a cubic Bézier, and
// eased*c*finalLevel/255 is subtracted from each of R, G and B, so bright
// pixels darken more than dark ones.
//
// strength <= 0 is a no-op.
func DarkCorner(buf *pixel.Buffer, strength, finalLevel float64) bool {
	if !(strength > 0) {
		return false
	}

	width, height := buf.Width(), buf.Height()
	centerX := float64(width) * 2 / 3
	centerY := float64(height) / 2
	center := []float64{centerX, centerY}

	maxDistance, err := pixel.Distance(center, nil)
	if err != nil {
		return false
	}
	startDistance := maxDistance * (1 - strength/10)
	band := maxDistance - startDistance

	data := buf.Data()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			d, _ := pixel.Distance([]float64{float64(x), float64(y)}, center)
			t := (d - startDistance) / band
			if t < 0 {
				t = 0
			}
			eased := cubicBezier(t, cornerP0, cornerP1, cornerP2, cornerP3)

			i := pixel.Index(width, x, y, 0)
			for j := 0; j < 3; j++ {
				c := float64(data[i+j])
				data[i+j] = color.ClampU8(c - eased*c*finalLevel/255)
			}
		}
	}
	return true
}

// cubicBezier evaluates a 1D cubic Bézier with control values p0..p3 at t.
func cubicBezier(t, p0, p1, p2, p3 float64) float64 {
	u := 1 - t
	return p0*math.Pow(u, 3) +
		3*p1*t*math.Pow(u, 2) +
		3*p2*t*t*u +
		p3*math.Pow(t, 3)
}
