package filter

import (
	"image"

	"github.com/gogpu/gg-filter/internal/color"
	"github.com/gogpu/gg-filter/pixel"
)

// BlockSelector decides whether the mosaic block at block index (bx, by)
// is processed. side is the block side length in pixels.
type BlockSelector func(bx, by, side int) bool

// AllBlocks selects every block.
func AllBlocks(_, _, _ int) bool {
	return true
}

// ExceptRegion selects blocks whose top-left pixel does not lie strictly
// inside r.
func ExceptRegion(r image.Rectangle) BlockSelector {
	return func(bx, by, side int) bool {
		x, y := bx*side, by*side
		inside := x > r.Min.X && x < r.Max.X && y > r.Min.Y && y < r.Max.Y
		return !inside
	}
}

// WithinRegion selects blocks whose indices fall in
// [r.Min/side, r.Max/side) on both axes.
func WithinRegion(r image.Rectangle) BlockSelector {
	return func(bx, by, side int) bool {
		return bx >= r.Min.X/side && bx < r.Max.X/side &&
			by >= r.Min.Y/side && by < r.Max.Y/side
	}
}

// Mosaic replaces each selected (2*radius+1)-sided block with the mean of
// its R, G and B samples. Alpha is untouched. Partial blocks at the right
// and bottom edges are left unchanged. radius < 0 is a no-op.
func Mosaic(buf *pixel.Buffer, radius int, sel BlockSelector) bool {
	if radius < 0 {
		return false
	}
	if sel == nil {
		sel = AllBlocks
	}

	side := radius*2 + 1
	width := buf.Width()
	cols, rows := width/side, buf.Height()/side
	area := float64(side * side)
	data := buf.Data()

	for bx := 0; bx < cols; bx++ {
		for by := 0; by < rows; by++ {
			if !sel(bx, by, side) {
				continue
			}

			var sum [3]int
			for i := 0; i < side; i++ {
				for j := 0; j < side; j++ {
					p := pixel.Index(width, bx*side+j, by*side+i, 0)
					sum[0] += int(data[p])
					sum[1] += int(data[p+1])
					sum[2] += int(data[p+2])
				}
			}

			r := color.ClampU8(float64(sum[0]) / area)
			g := color.ClampU8(float64(sum[1]) / area)
			b := color.ClampU8(float64(sum[2]) / area)

			for i := 0; i < side; i++ {
				for j := 0; j < side; j++ {
					p := pixel.Index(width, bx*side+j, by*side+i, 0)
					data[p] = r
					data[p+1] = g
					data[p+2] = b
				}
			}
		}
	}
	return true
}

// DotValue is the sample value written by Dotted.
const DotValue = 225

// Dotted stipples the image on a grid of (2*outer+1)-sided cells. Around
// each cell center, the offsets (dx, dy) with dx, dy in [-outer, outer) that
// lie outside the circle of radius inner have all four channels set to
// DotValue. outer <= 0 is a no-op.
func Dotted(buf *pixel.Buffer, outer, inner int) bool {
	if outer <= 0 {
		return false
	}

	side := outer*2 + 1
	r2 := inner * inner
	var offsets []image.Point
	for dx := -outer; dx < outer; dx++ {
		for dy := -outer; dy < outer; dy++ {
			if dx*dx+dy*dy > r2 {
				offsets = append(offsets, image.Pt(dx, dy))
			}
		}
	}

	width := buf.Width()
	cols, rows := width/side, buf.Height()/side
	data := buf.Data()

	for cx := 0; cx < cols; cx++ {
		for cy := 0; cy < rows; cy++ {
			midX := cx*side + outer
			midY := cy*side + outer

			for _, off := range offsets {
				x, y := midX+off.X, midY+off.Y
				if !buf.InBounds(x, y) {
					continue
				}
				p := pixel.Index(width, x, y, 0)
				data[p+0] = DotValue
				data[p+1] = DotValue
				data[p+2] = DotValue
				data[p+3] = DotValue
			}
		}
	}
	return true
}
