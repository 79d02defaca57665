package filter

import (
	"math"
	"testing"
)

func TestContrast(t *testing.T) {
	buf := newPixel(t, 200, 100, 127, 255)
	Contrast(buf, 1)
	// 200+72.5 -> 255; 100-27.5 = 72.5 -> 72 (half to even); 127-0.5 = 126.5 -> 126
	assertPixel(t, buf, 0, 0, [4]uint8{255, 72, 126, 255})
}

func TestContrastZeroIsIdentity(t *testing.T) {
	buf := newGradient(t, 5, 5)
	want := buf.Clone()
	Contrast(buf, 0)
	if !buf.Equal(want) {
		t.Error("Contrast(0) changed the buffer")
	}
}

func TestInvertExact(t *testing.T) {
	buf := newGradient(t, 7, 5)
	orig := buf.Clone()

	if !Invert(buf, 1) {
		t.Fatal("Invert(1) reported no-op")
	}

	got, want := buf.Data(), orig.Data()
	for i := 0; i < len(got); i += 4 {
		for j := 0; j < 3; j++ {
			if got[i+j] != 255-want[i+j] {
				t.Fatalf("sample %d = %d, want %d", i+j, got[i+j], 255-want[i+j])
			}
		}
		if got[i+3] != want[i+3] {
			t.Fatalf("alpha %d changed: %d -> %d", i+3, want[i+3], got[i+3])
		}
	}
}

func TestInvertWhiteToBlack(t *testing.T) {
	buf := newSolid(t, 2, 2, 255, 255, 255, 255)
	Invert(buf, 1)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			assertPixel(t, buf, x, y, [4]uint8{0, 0, 0, 255})
		}
	}
}

func TestInvertAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		applied bool
		want    [4]uint8
	}{
		{"zero is noop", 0, false, [4]uint8{55, 155, 0, 9}},
		{"negative is noop", -1, false, [4]uint8{55, 155, 0, 9}},
		{"NaN is noop", math.NaN(), false, [4]uint8{55, 155, 0, 9}},
		{"half", 0.5, true, [4]uint8{100, 50, 128, 9}},
		{"clamped above one", 7, true, [4]uint8{200, 100, 255, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := newPixel(t, 55, 155, 0, 9)
			if got := Invert(buf, tt.amount); got != tt.applied {
				t.Errorf("Invert(%v) applied = %v, want %v", tt.amount, got, tt.applied)
			}
			assertPixel(t, buf, 0, 0, tt.want)
		})
	}
}

func TestGammaExponent(t *testing.T) {
	tests := []struct{ setting, want float64 }{
		{-100, 0},
		{0, 1},
		{10, 1.1},
		{100, 2},
	}
	for _, tt := range tests {
		if got := GammaExponent(tt.setting); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("GammaExponent(%v) = %v, want %v", tt.setting, got, tt.want)
		}
	}
}

func TestGammaIdentityAtZero(t *testing.T) {
	buf := newGradient(t, 6, 6)
	want := buf.Clone()
	Gamma(buf, 0)
	if !buf.Equal(want) {
		t.Error("Gamma(0) changed the buffer")
	}
}

func TestGammaLeavesAlpha(t *testing.T) {
	buf := newSolid(t, 3, 3, 10, 11, 12, 42)
	Gamma(buf, 10)
	assertAlpha(t, buf, 42)
	// 10^1.1 = 12.59
	r, _, _, _ := buf.RGBA(0, 0)
	if r != 13 {
		t.Errorf("Gamma(10) of 10 = %d, want 13", r)
	}
}

func TestPosterize(t *testing.T) {
	buf := newPixel(t, 200, 255, 11, 255)
	Posterize(buf, 20)
	// step = floor(255/20) = 12
	assertPixel(t, buf, 0, 0, [4]uint8{192, 252, 0, 255})
}

func TestPosterizeClampsSteps(t *testing.T) {
	buf := newPixel(t, 200, 100, 50, 255)
	Posterize(buf, 1000) // clamped to 255 -> step 1
	assertPixel(t, buf, 0, 0, [4]uint8{200, 100, 50, 255})

	buf = newPixel(t, 200, 100, 50, 255)
	Posterize(buf, -4) // clamped to 1 -> step 255
	assertPixel(t, buf, 0, 0, [4]uint8{0, 0, 0, 255})
}

func TestSaturateZeroRemovesColor(t *testing.T) {
	buf := newPixel(t, 255, 0, 0, 255)
	Saturate(buf, 0)
	assertPixel(t, buf, 0, 0, [4]uint8{128, 128, 128, 255})
}

func TestSaturateOneIsNearIdentity(t *testing.T) {
	buf := newGradient(t, 8, 8)
	orig := buf.Clone()
	Saturate(buf, 1)

	// Percent-quantized hue moves channels by up to a few units.
	got, want := buf.Data(), orig.Data()
	for i := range got {
		d := int(got[i]) - int(want[i])
		if d < -20 || d > 20 {
			t.Fatalf("sample %d moved from %d to %d", i, want[i], got[i])
		}
	}
}

func TestSaturateAmplifies(t *testing.T) {
	buf := newPixel(t, 150, 100, 100, 255)
	Saturate(buf, 2)
	r, g, _, _ := buf.RGBA(0, 0)
	if int(r)-int(g) <= 50 {
		t.Errorf("Saturate(2) spread = %d, want > 50", int(r)-int(g))
	}
}
