// Package pixel defines the RGBA pixel buffer the filters operate on and the
// coordinate helpers that map between pixel positions and sample indices.
//
// # Layout
//
// A [Buffer] is a flat, row-major sequence of 8-bit samples, four per pixel,
// in R, G, B, A order. Its length is always width*height*4 and its dimensions
// never change after creation. This is the same layout as the pixel array of
// an HTML canvas ImageData, so buffers round-trip with drawing surfaces
// without conversion.
//
// # Coordinates
//
// [Index] maps (x, y, channel) to a sample (byte) index. [Coord] maps a pixel
// index, not a byte index, back to (x, y). The two are deliberately not exact
// inverses; divide a byte index by 4 before calling [Coord].
//
// # Interop
//
// [FromImage] and [Buffer.ToImage] convert to and from the standard library
// image types. [Load], [Save] and [Decode] read and write PNG, JPEG, BMP, TIFF
// and WebP (decode only) files. [ReadRaw] and [WriteRaw] use a compact
// zstd-compressed raw format for piping buffers between tools.
package pixel
