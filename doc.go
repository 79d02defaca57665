// Package ggfilter provides pixel-level filters over RGBA images.
//
// # Overview
//
// An Engine owns two buffers of identical size: the original image, written
// once, and a working copy that filters mutate in place. Filters can be
// chained freely; Reset discards them all by copying the original back.
//
// # Quick Start
//
//	import "github.com/gogpu/gg-filter"
//
//	buf, err := pixel.Load("photo.png")
//	if err != nil {
//		return err
//	}
//	e, err := ggfilter.New(buf)
//	if err != nil {
//		return err
//	}
//
//	e.Sepia()
//	e.DarkCorner(3, 30)
//	e.Working().Save("photo-old.png")
//
//	// Start over from the untouched original
//	e.Reset()
//	e.Blur(2, 0)
//
// # Filters
//
// Every filter is a method returning the working buffer. Filters are also
// reachable by name through Apply and ApplyChannel, for hosts that drive
// them from UI controls or command lines; Filters lists the names.
//
// Out-of-range magnitudes never fail: a filter that has nothing to do (zero
// invert amount, an unknown channel name, fewer than two gray levels) leaves
// the buffer untouched. Where the parameter table documents a default, a
// zero magnitude is replaced by it.
//
// # Sample Storage
//
// Every computed sample is stored the same way: NaN becomes 0, values are
// clamped to [0, 255] and rounded half to even.
//
// # Randomness
//
// Corrode and Noise draw from a math/rand/v2 source owned by the engine.
// Use WithSeed or WithRand for reproducible output.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Samples are row-major R, G, B, A bytes
package ggfilter

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
