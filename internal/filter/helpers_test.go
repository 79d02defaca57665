package filter

import (
	"math"
	"testing"

	"github.com/gogpu/gg-filter/pixel"
)

// Test helper functions shared across filter tests.

// newSolid creates a buffer filled with one color.
func newSolid(t testing.TB, w, h int, r, g, b, a uint8) *pixel.Buffer {
	t.Helper()
	buf, err := pixel.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	buf.Fill(r, g, b, a)
	return buf
}

// newGradient creates an opaque buffer with distinct values per channel.
func newGradient(t testing.TB, w, h int) *pixel.Buffer {
	t.Helper()
	buf, err := pixel.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf.SetRGBA(x, y, uint8(x*255/w), uint8(y*255/h), uint8((x*7+y*13)%256), 255)
		}
	}
	return buf
}

// newPixel creates a 1x1 buffer.
func newPixel(t testing.TB, r, g, b, a uint8) *pixel.Buffer {
	t.Helper()
	return newSolid(t, 1, 1, r, g, b, a)
}

// assertPixel checks pixel (x, y) of buf.
func assertPixel(t *testing.T, buf *pixel.Buffer, x, y int, want [4]uint8) {
	t.Helper()
	r, g, b, a := buf.RGBA(x, y)
	if got := [4]uint8{r, g, b, a}; got != want {
		t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
	}
}

// assertGray checks that every pixel has R == G == B.
func assertGray(t *testing.T, buf *pixel.Buffer) {
	t.Helper()
	data := buf.Data()
	for i := 0; i < len(data); i += 4 {
		if data[i] != data[i+1] || data[i+1] != data[i+2] {
			x, y := buf.Coord(i / 4)
			t.Fatalf("pixel (%d,%d) = (%d,%d,%d), want R == G == B", x, y, data[i], data[i+1], data[i+2])
		}
	}
}

// assertAlpha checks that every alpha sample equals want.
func assertAlpha(t *testing.T, buf *pixel.Buffer, want uint8) {
	t.Helper()
	data := buf.Data()
	for i := 3; i < len(data); i += 4 {
		if data[i] != want {
			t.Fatalf("alpha at sample %d = %d, want %d", i, data[i], want)
		}
	}
}

// stubRand returns min(v, n-1) from every IntN call.
type stubRand struct {
	v int
}

func (s stubRand) IntN(n int) int {
	return min(s.v, n-1)
}

// roundEven mirrors the store rule for in-range values.
func roundEven(v float64) uint8 {
	return uint8(math.RoundToEven(v))
}
