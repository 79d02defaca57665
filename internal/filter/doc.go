// Package filter implements the pixel filters applied by the engine.
//
// Every filter mutates a *pixel.Buffer in place. Computed values are stored
// with color.ClampU8, so samples stay in [0,255] between filters exactly as
// on a canvas pixel array.
//
// Filters report whether they touched the buffer. A false result is a
// documented no-op (unknown channel name, non-positive magnitude), never an
// error.
//
// Families:
//   - Point filters: color matrix (brightness, sepia, opacity), contrast,
//     invert, gamma, posterize, saturate and the grayscale family
//   - Neighborhood filters: separable Gaussian blur, sharp, embossment
//   - Block filters: mosaic variants, dotted, oil painting
//   - Stochastic filters: corrode, noise (driven by an injected Rand)
//   - Geometric falloff: dark corner (vignette)
package filter
