package filter

import (
	"github.com/gogpu/gg-filter/internal/color"
	"github.com/gogpu/gg-filter/pixel"
)

// ColorMatrix is a 4x5 color transformation applied per pixel:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// The fifth column is a bias. Values are in [0, 255] during the
// transformation and stored with color.ClampU8.
type ColorMatrix [20]float64

// IdentityMatrix passes pixels through unchanged.
func IdentityMatrix() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0, // R
		0, 1, 0, 0, 0, // G
		0, 0, 1, 0, 0, // B
		0, 0, 0, 1, 0, // A
	}
}

// BrightnessMatrix scales R, G and B by factor.
// 0 = black, 1 = unchanged, 2 = twice as bright.
func BrightnessMatrix(factor float64) ColorMatrix {
	m := IdentityMatrix()
	m[0], m[6], m[12] = factor, factor, factor
	return m
}

// OpacityMatrix scales alpha by amount.
func OpacityMatrix(amount float64) ColorMatrix {
	m := IdentityMatrix()
	m[18] = amount
	return m
}

// SepiaMatrix is the classic sepia tone transform.
func SepiaMatrix() ColorMatrix {
	return ColorMatrix{
		0.393, 0.769, 0.189, 0, 0,
		0.349, 0.686, 0.168, 0, 0,
		0.272, 0.534, 0.131, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Apply transforms every pixel of buf in place.
func (m *ColorMatrix) Apply(buf *pixel.Buffer) {
	data := buf.Data()
	for i := 0; i < len(data); i += pixel.BytesPerPixel {
		r := float64(data[i+0])
		g := float64(data[i+1])
		b := float64(data[i+2])
		a := float64(data[i+3])

		data[i+0] = color.ClampU8(m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4])
		data[i+1] = color.ClampU8(m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9])
		data[i+2] = color.ClampU8(m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14])
		data[i+3] = color.ClampU8(m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19])
	}
}

// Brightness multiplies R, G and B by factor.
func Brightness(buf *pixel.Buffer, factor float64) bool {
	m := BrightnessMatrix(factor)
	m.Apply(buf)
	return true
}

// Opacity multiplies alpha by amount. amount is clamped to [0,1];
// an amount of 1 or more is a no-op.
func Opacity(buf *pixel.Buffer, amount float64) bool {
	amount = clampUnit(amount)
	if amount >= 1 {
		return false
	}
	m := OpacityMatrix(amount)
	m.Apply(buf)
	return true
}

// Sepia applies the sepia tone matrix.
func Sepia(buf *pixel.Buffer) bool {
	m := SepiaMatrix()
	m.Apply(buf)
	return true
}
