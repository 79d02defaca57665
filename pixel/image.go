package pixel

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// FromImage creates a buffer from any image. Samples are stored
// non-premultiplied, the same as a canvas ImageData.
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	b, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	// Fast path: NRGBA already has the buffer layout.
	if nrgba, ok := img.(*image.NRGBA); ok {
		rowLen := b.width * BytesPerPixel
		for y := range b.height {
			src := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(b.data[y*rowLen:(y+1)*rowLen], nrgba.Pix[src:src+rowLen])
		}
		return b, nil
	}

	dst := b.nrgba()
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return b, nil
}

// ToImage returns a copy of b as a non-premultiplied image.
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.data)
	return img
}

// nrgba returns an image view sharing b's samples.
func (b *Buffer) nrgba() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.data,
		Stride: b.width * BytesPerPixel,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// Scale returns a new buffer resampled to width x height with Catmull-Rom
// interpolation.
func (b *Buffer) Scale(width, height int) (*Buffer, error) {
	dst, err := New(width, height)
	if err != nil {
		return nil, err
	}
	img := dst.nrgba()
	draw.CatmullRom.Scale(img, img.Bounds(), b.nrgba(), b.nrgba().Bounds(), draw.Src, nil)
	return dst, nil
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	r, g, bl, a := b.RGBA(x, y)
	return color.NRGBA{R: r, G: g, B: bl, A: a}
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}
