package pixel

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("pixel: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("pixel: empty data")
)

// Format identifies an encoded image format.
type Format string

// Supported formats.
const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatRaw  Format = "raw"
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	name := strings.ToLower(path)
	if strings.HasSuffix(name, RawExt) {
		return FormatRaw, nil
	}
	switch filepath.Ext(name) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads an image file into a buffer, detecting the format from content.
// Files ending in RawExt are read with ReadRaw.
func Load(path string) (*Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("pixel: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if strings.HasSuffix(strings.ToLower(path), RawExt) {
		return ReadRaw(f)
	}
	return Decode(f)
}

// LoadFromBytes decodes an encoded image held in memory.
func LoadFromBytes(data []byte) (*Buffer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (*Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pixel: decode: %w", err)
	}
	return FromImage(img)
}

// Save writes b to path, choosing the encoder from the file extension.
func (b *Buffer) Save(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("pixel: create file: %w", err)
	}

	if err := b.Encode(f, format); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes b to w in the given format. JPEG uses quality 90.
func (b *Buffer) Encode(w io.Writer, format Format) error {
	img := b.ToImage()

	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatRaw:
		return WriteRaw(w, b)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("pixel: encode %s: %w", format, err)
	}
	return nil
}
