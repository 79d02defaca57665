package pixel

import (
	"bytes"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is returned when dimensions, sample counts or
// coordinates are malformed.
var ErrInvalidArgument = errors.New("pixel: invalid argument")

// Channel offsets within a pixel.
const (
	R = 0
	G = 1
	B = 2
	A = 3
)

// BytesPerPixel is the number of samples per pixel.
const BytesPerPixel = 4

// Buffer is a rectangular RGBA pixel buffer.
type Buffer struct {
	width  int
	height int
	data   []uint8 // RGBA, 4 samples per pixel, row-major
}

// New creates a zeroed (transparent black) buffer of the given dimensions.
func New(width, height int) (*Buffer, error) {
	if err := validateDims(width, height); err != nil {
		return nil, err
	}
	return &Buffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*BytesPerPixel),
	}, nil
}

// FromData creates a buffer holding a copy of data.
// len(data) must be exactly width*height*4.
func FromData(width, height int, data []uint8) (*Buffer, error) {
	if err := Validate(width, height, len(data)); err != nil {
		return nil, err
	}
	b := &Buffer{width: width, height: height, data: make([]uint8, len(data))}
	copy(b.data, data)
	return b, nil
}

// Validate checks that width and height are positive and that n samples
// describe exactly width*height pixels.
func Validate(width, height, n int) error {
	if err := validateDims(width, height); err != nil {
		return err
	}
	if n != width*height*BytesPerPixel {
		return fmt.Errorf("%w: %d samples for %dx%d image, want %d",
			ErrInvalidArgument, n, width, height, width*height*BytesPerPixel)
	}
	return nil
}

func validateDims(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidArgument, width, height)
	}
	if width > math.MaxInt/BytesPerPixel/height {
		return fmt.Errorf("%w: dimensions %dx%d overflow", ErrInvalidArgument, width, height)
	}
	return nil
}

// Width returns the width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Data returns the raw samples. The slice aliases the buffer; writes through
// it are visible to every holder of b.
func (b *Buffer) Data() []uint8 {
	return b.data
}

// Len returns the number of pixels.
func (b *Buffer) Len() int {
	return b.width * b.height
}

// Validate reports whether b satisfies the buffer invariants.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidArgument)
	}
	return Validate(b.width, b.height, b.Len())
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{width: b.width, height: b.height, data: make([]uint8, b.Len())}
	copy(c.data, b.data)
	return c
}

// CopyFrom overwrites b's samples with src's.
// The buffers must have identical dimensions.
func (b *Buffer) CopyFrom(src *Buffer) error {
	if src.width != b.width || src.height != b.height {
		return fmt.Errorf("%w: copy %dx%d into %dx%d",
			ErrInvalidArgument, src.width, src.height, b.width, b.height)
	}
	copy(b.data, src.data)
	return nil
}

// Equal reports whether b and o have the same dimensions and samples.
func (b *Buffer) Equal(o *Buffer) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.width == o.width && b.height == o.height && bytes.Equal(b.data, o.data)
}

// Index returns the sample index of channel c of pixel (x, y).
func (b *Buffer) Index(x, y, c int) int {
	return Index(b.width, x, y, c)
}

// Coord returns the (x, y) position of pixel index i.
func (b *Buffer) Coord(i int) (x, y int) {
	return Coord(b.width, i)
}

// InBounds reports whether (x, y) lies inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// RGBA returns the samples of pixel (x, y).
// Out-of-bounds positions return zeros.
func (b *Buffer) RGBA(x, y int) (r, g, bl, a uint8) {
	if !b.InBounds(x, y) {
		return 0, 0, 0, 0
	}
	i := b.Index(x, y, 0)
	return b.data[i], b.data[i+1], b.data[i+2], b.data[i+3]
}

// SetRGBA sets the samples of pixel (x, y).
// Out-of-bounds positions are ignored.
func (b *Buffer) SetRGBA(x, y int, r, g, bl, a uint8) {
	if !b.InBounds(x, y) {
		return
	}
	i := b.Index(x, y, 0)
	b.data[i+0] = r
	b.data[i+1] = g
	b.data[i+2] = bl
	b.data[i+3] = a
}

// Fill sets every pixel to the given color.
func (b *Buffer) Fill(r, g, bl, a uint8) {
	for i := 0; i < len(b.data); i += BytesPerPixel {
		b.data[i+0] = r
		b.data[i+1] = g
		b.data[i+2] = bl
		b.data[i+3] = a
	}
}
