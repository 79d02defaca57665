package ggfilter

import (
	"testing"

	"github.com/gogpu/gg-filter/pixel"
)

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

// newTestEngine creates an engine over a solid buffer.
func newTestEngine(t testing.TB, w, h int, r, g, b, a uint8, opts ...Option) *Engine {
	t.Helper()
	e, err := New(newSolid(t, w, h, r, g, b, a), opts...)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	return e
}

// assertPixel fails if the pixel at (x, y) differs from want.
func assertPixel(t *testing.T, buf *pixel.Buffer, x, y int, want [4]uint8) {
	t.Helper()
	r, g, b, a := buf.RGBA(x, y)
	if got := [4]uint8{r, g, b, a}; got != want {
		t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
	}
}
