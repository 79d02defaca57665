package pixel

import (
	"fmt"
	"math"
)

// Index returns the sample index of channel c of pixel (x, y) in a buffer
// of the given width: (y*width + x)*4 + c.
func Index(width, x, y, c int) int {
	return (y*width+x)*BytesPerPixel + c
}

// Coord returns the position of pixel index i in a buffer of the given width.
//
// i is a pixel index (a sample index divided by 4), so Coord is not the
// inverse of Index. Callers must track which domain they are in.
func Coord(width, i int) (x, y int) {
	return i % width, i / width
}

// Distance returns the Euclidean distance between two 2-element points.
// A nil p2 is the origin. Any other length is ErrInvalidArgument.
func Distance(p1, p2 []float64) (float64, error) {
	if p2 == nil {
		p2 = []float64{0, 0}
	}
	if len(p1) != 2 || len(p2) != 2 {
		return 0, fmt.Errorf("%w: distance needs 2-element points, got %d and %d",
			ErrInvalidArgument, len(p1), len(p2))
	}
	dx := p1[0] - p2[0]
	dy := p1[1] - p2[1]
	return math.Sqrt(dx*dx + dy*dy), nil
}
