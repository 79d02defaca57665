package ggfilter

import (
	"github.com/gogpu/gg-filter/internal/filter"
	"github.com/gogpu/gg-filter/pixel"
)

// Values substituted when a filter receives a zero magnitude.
const (
	DefaultBlurRadius     = 3
	DefaultSharpAmount    = 1.0
	DefaultPosterizeSteps = 20
	DefaultMosaicRadius   = 3
	DefaultCorrodeRadius  = 3
	DefaultNoiseAmount    = 100
	DefaultOilBucket      = 16
)

// Brightness multiplies R, G and B by factor.
func (e *Engine) Brightness(factor float64) *pixel.Buffer {
	return e.done("brightness", filter.Brightness(e.working, factor), "factor", factor)
}

// Contrast pushes each channel away from mid-gray: c += (c-127.5)*factor.
func (e *Engine) Contrast(factor float64) *pixel.Buffer {
	return e.done("contrast", filter.Contrast(e.working, factor), "factor", factor)
}

// Invert blends each channel toward its complement. amount is clamped to
// [0, 1]; zero or less leaves the image unchanged.
func (e *Engine) Invert(amount float64) *pixel.Buffer {
	return e.done("invert", filter.Invert(e.working, amount), "amount", amount)
}

// Opacity scales alpha by amount clamped to [0, 1]. An amount of 1 or more
// leaves the image unchanged.
func (e *Engine) Opacity(amount float64) *pixel.Buffer {
	return e.done("opacity", filter.Opacity(e.working, amount), "amount", amount)
}

// Gamma raises each channel to the exponent ((setting+100)/200)*2.
// A setting of 0 is the identity.
func (e *Engine) Gamma(setting float64) *pixel.Buffer {
	return e.done("gamma", filter.Gamma(e.working, setting),
		"setting", setting,
		"exponent", filter.GammaExponent(setting))
}

// Grayscale moves each channel toward Rec.709 luminance by amount, clamped
// to 1. Zero or less leaves the image unchanged.
func (e *Engine) Grayscale(amount float64) *pixel.Buffer {
	return e.done("grayscale", filter.Grayscale(e.working, amount), "amount", amount)
}

// GrayAverage sets R, G and B to their mean.
func (e *Engine) GrayAverage() *pixel.Buffer {
	return e.done("grayaverage", filter.GrayAverage(e.working))
}

// GrayCommon sets R, G and B to floor(0.299R + 0.578G + 0.114B).
func (e *Engine) GrayCommon() *pixel.Buffer {
	return e.done("graycommon", filter.GrayCommon(e.working))
}

// GrayDesaturate sets R, G and B from the channel extremes.
//
// By default the result is min/2, which existing outputs were produced with.
// Engines created with WithCorrectedDesaturate use (max+min)/2.
func (e *Engine) GrayDesaturate() *pixel.Buffer {
	return e.done("graydesat", filter.GrayDesaturate(e.working, e.correctedDesaturate),
		"corrected", e.correctedDesaturate)
}

// GrayMax sets R, G and B to the largest of the three.
func (e *Engine) GrayMax() *pixel.Buffer {
	return e.done("graymax", filter.GrayMax(e.working))
}

// GrayMin sets R, G and B to the smallest of the three.
func (e *Engine) GrayMin() *pixel.Buffer {
	return e.done("graymin", filter.GrayMin(e.working))
}

// GraySingle copies the named channel ("red", "green" or "blue") into all
// three. Any other name leaves the image unchanged.
func (e *Engine) GraySingle(channel string) *pixel.Buffer {
	return e.channelFilter("graysingle", channel, filter.GraySingle)
}

// SingleColor keeps the named channel and zeroes the other two. Any other
// name leaves the image unchanged.
func (e *Engine) SingleColor(channel string) *pixel.Buffer {
	return e.channelFilter("singlecolor", channel, filter.SingleColor)
}

func (e *Engine) channelFilter(name, channel string, fn func(*pixel.Buffer, filter.Channel) bool) *pixel.Buffer {
	ch, ok := filter.ParseChannel(channel)
	if !ok {
		return e.done(name, false, "channel", channel, "reason", "unknown channel")
	}
	return e.done(name, fn(e.working, ch), "channel", ch.String())
}

// GrayShadow quantizes the channel mean to levels evenly spaced grays.
// Fewer than two levels leaves the image unchanged.
func (e *Engine) GrayShadow(levels int) *pixel.Buffer {
	return e.done("grayshadow", filter.GrayShadow(e.working, levels), "levels", levels)
}

// Posterize reduces each channel to multiples of floor(255/steps).
// Zero steps means DefaultPosterizeSteps.
func (e *Engine) Posterize(steps int) *pixel.Buffer {
	if steps == 0 {
		steps = DefaultPosterizeSteps
	}
	return e.done("posterize", filter.Posterize(e.working, steps), "steps", steps)
}

// Sepia applies the classic sepia tone matrix.
func (e *Engine) Sepia() *pixel.Buffer {
	return e.done("sepia", filter.Sepia(e.working))
}

// Blur applies a separable Gaussian blur. Zero radius means
// DefaultBlurRadius; zero sigma is derived from the radius.
// A negative radius leaves the image unchanged.
func (e *Engine) Blur(radius int, sigma float64) *pixel.Buffer {
	if radius == 0 {
		radius = DefaultBlurRadius
	}
	return e.done("blur", filter.Blur(e.working, radius, sigma),
		"radius", radius,
		"sigma", sigma)
}

// Sharp adds amount times the difference between each pixel and the mean of
// its north, west and north-west neighbors. Zero means DefaultSharpAmount.
func (e *Engine) Sharp(amount float64) *pixel.Buffer {
	if amount == 0 {
		amount = DefaultSharpAmount
	}
	return e.done("sharp", filter.Sharp(e.working, amount), "amount", amount)
}

// Embossment replaces each interior pixel with NW - SE + 127.5.
func (e *Engine) Embossment() *pixel.Buffer {
	return e.done("embossment", filter.Embossment(e.working))
}

// DarkCorner darkens pixels far from the focal point (2w/3, h/2).
// strength in (0, 10] controls where darkening starts, finalLevel how dark
// the corners get. Zero or negative strength leaves the image unchanged.
func (e *Engine) DarkCorner(strength, finalLevel float64) *pixel.Buffer {
	return e.done("darkCorner", filter.DarkCorner(e.working, strength, finalLevel),
		"strength", strength,
		"finalLevel", finalLevel)
}

// Saturate scales HSL saturation by factor. A factor of 1 keeps the
// saturation, 0 removes it.
func (e *Engine) Saturate(factor float64) *pixel.Buffer {
	return e.done("saturate", filter.Saturate(e.working, factor), "factor", factor)
}

// Mosaic replaces every full (2r+1)-sided block with its mean color.
// Zero radius means DefaultMosaicRadius; a negative radius leaves the image
// unchanged.
func (e *Engine) Mosaic(radius int) *pixel.Buffer {
	return e.mosaic("mosaic", radius, filter.AllBlocks)
}

// MosaicP is Mosaic except for blocks whose origin lies strictly inside the
// mosaic region.
func (e *Engine) MosaicP(radius int) *pixel.Buffer {
	return e.mosaic("mosaicP", radius, filter.ExceptRegion(e.mosaicRegion))
}

// MosaicX is Mosaic restricted to blocks whose indices fall inside the
// mosaic region.
func (e *Engine) MosaicX(radius int) *pixel.Buffer {
	return e.mosaic("mosaicX", radius, filter.WithinRegion(e.mosaicRegion))
}

func (e *Engine) mosaic(name string, radius int, sel filter.BlockSelector) *pixel.Buffer {
	if radius == 0 {
		radius = DefaultMosaicRadius
	}
	return e.done(name, filter.Mosaic(e.working, radius, sel), "radius", radius)
}

// Corrode copies each channel from a random nearby pixel within radius.
// Zero radius means DefaultCorrodeRadius.
func (e *Engine) Corrode(radius int) *pixel.Buffer {
	if radius == 0 {
		radius = DefaultCorrodeRadius
	}
	return e.done("corrode", filter.Corrode(e.working, radius, e.rng), "radius", radius)
}

// Dotted overlays a grid of rings with outer radius outer around a hole of
// radius inner, painted in the constant value 225.
func (e *Engine) Dotted(outer, inner int) *pixel.Buffer {
	return e.done("dotted", filter.Dotted(e.working, outer, inner),
		"outer", outer,
		"inner", inner)
}

// Noise adds a uniform integer in [-amount, amount] to each channel.
// Zero means DefaultNoiseAmount.
func (e *Engine) Noise(amount int) *pixel.Buffer {
	if amount == 0 {
		amount = DefaultNoiseAmount
	}
	return e.done("noise", filter.Noise(e.working, amount, e.rng), "amount", amount)
}

// OilPainting quantizes the channel mean down to a multiple of bucket.
// Zero means DefaultOilBucket.
func (e *Engine) OilPainting(bucket int) *pixel.Buffer {
	if bucket == 0 {
		bucket = DefaultOilBucket
	}
	return e.done("oilPainting", filter.OilPainting(e.working, bucket), "bucket", bucket)
}
