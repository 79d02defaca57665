package filter

import "testing"

func TestSharpSolidUnchanged(t *testing.T) {
	buf := newSolid(t, 6, 6, 90, 120, 150, 255)
	want := buf.Clone()
	Sharp(buf, 2)
	if !buf.Equal(want) {
		t.Error("Sharp changed a flat image")
	}
}

func TestSharpDelta(t *testing.T) {
	buf := newSolid(t, 2, 2, 10, 10, 10, 255)
	buf.SetRGBA(1, 1, 40, 10, 0, 200)

	Sharp(buf, 1)

	// mean(N, W, NW) = 10; delta = 30 -> 70. Blue: 0 - 10 = -10 -> 0.
	assertPixel(t, buf, 1, 1, [4]uint8{70, 10, 0, 200})
	// First row and column untouched.
	assertPixel(t, buf, 0, 0, [4]uint8{10, 10, 10, 255})
	assertPixel(t, buf, 1, 0, [4]uint8{10, 10, 10, 255})
	assertPixel(t, buf, 0, 1, [4]uint8{10, 10, 10, 255})
}

func TestSharpIsCausal(t *testing.T) {
	// Row: 0, 90, 90. With a causal neighborhood, pixel 2 sees the already
	// sharpened pixel 1.
	buf := newSolid(t, 3, 2, 0, 0, 0, 255)
	buf.SetRGBA(1, 1, 90, 90, 90, 255)
	buf.SetRGBA(2, 1, 90, 90, 90, 255)

	Sharp(buf, 1)

	// pixel (1,1): mean(0,0,0) = 0 -> 90 + 90 = 180
	// pixel (2,1): mean(N=0, W=180, NW=0) = 60 -> 90 + 30 = 120
	assertPixel(t, buf, 1, 1, [4]uint8{180, 180, 180, 255})
	assertPixel(t, buf, 2, 1, [4]uint8{120, 120, 120, 255})
}

func TestEmbossmentSolid(t *testing.T) {
	buf := newSolid(t, 4, 4, 100, 100, 100, 77)
	Embossment(buf)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := [4]uint8{100, 100, 100, 77}
			if x > 0 && x < 3 && y > 0 && y < 3 {
				// 100 - 100 + 127.5 -> 128
				want = [4]uint8{128, 128, 128, 77}
			}
			assertPixel(t, buf, x, y, want)
		}
	}
}

func TestEmbossmentReadsOriginal(t *testing.T) {
	buf := newSolid(t, 4, 4, 0, 0, 0, 255)
	buf.SetRGBA(0, 0, 100, 100, 100, 255)

	Embossment(buf)

	// (1,1): NW=100, SE=0 -> 227.5 -> 228
	assertPixel(t, buf, 1, 1, [4]uint8{228, 228, 228, 255})
	// (2,2): NW is (1,1); it must be read before (1,1) was rewritten.
	assertPixel(t, buf, 2, 2, [4]uint8{128, 128, 128, 255})
}

func TestEmbossmentTooSmall(t *testing.T) {
	buf := newSolid(t, 2, 5, 1, 2, 3, 4)
	if Embossment(buf) {
		t.Error("Embossment on 2px wide image applied, want no-op")
	}
}
