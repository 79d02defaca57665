package pixel

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// RawExt is the file extension of the raw buffer format.
const RawExt = ".rgba.zst"

// rawMagic starts every raw buffer stream.
var rawMagic = [4]byte{'G', 'G', 'F', 'R'}

// maxRawPixels bounds the dimensions accepted by ReadRaw.
const maxRawPixels = 1 << 28

// ErrBadRaw is returned when a raw stream has a malformed header.
var ErrBadRaw = errors.New("pixel: malformed raw buffer")

// rawHeader precedes the compressed samples.
type rawHeader struct {
	Magic  [4]byte
	Width  uint32
	Height uint32
}

// WriteRaw writes b as a header followed by zstd-compressed samples.
func WriteRaw(w io.Writer, b *Buffer) error {
	hdr := rawHeader{Magic: rawMagic, Width: uint32(b.width), Height: uint32(b.height)} //nolint:gosec // dimensions are validated positive ints
	if err := binary.Write(w, binary.BigEndian, &hdr); err != nil {
		return fmt.Errorf("pixel: write raw header: %w", err)
	}

	enc, err := zstd.NewWriter(w,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
	)
	if err != nil {
		return fmt.Errorf("pixel: zstd writer: %w", err)
	}
	if _, err := enc.Write(b.data); err != nil {
		_ = enc.Close()
		return fmt.Errorf("pixel: write raw samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("pixel: flush raw samples: %w", err)
	}
	return nil
}

// ReadRaw reads a buffer written by WriteRaw.
func ReadRaw(r io.Reader) (*Buffer, error) {
	var hdr rawHeader
	if err := binary.Read(r, binary.BigEndian, &hdr); err != nil {
		return nil, fmt.Errorf("pixel: read raw header: %w", err)
	}
	if hdr.Magic != rawMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrBadRaw, hdr.Magic[:])
	}
	if hdr.Width == 0 || hdr.Height == 0 || uint64(hdr.Width)*uint64(hdr.Height) > maxRawPixels {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrBadRaw, hdr.Width, hdr.Height)
	}

	b, err := New(int(hdr.Width), int(hdr.Height))
	if err != nil {
		return nil, err
	}

	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("pixel: zstd reader: %w", err)
	}
	defer dec.Close()

	if _, err := io.ReadFull(dec, b.data); err != nil {
		return nil, fmt.Errorf("pixel: read raw samples: %w", err)
	}
	return b, nil
}
