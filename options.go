package ggfilter

import (
	"image"
	"log/slog"
	"math/rand/v2"
)

// DefaultMosaicRegion is the rectangle MosaicP skips and MosaicX covers.
var DefaultMosaicRegion = image.Rect(50, 50, 100, 100)

// Option configures an Engine during creation.
//
// Example:
//
//	// Reproducible noise and corrosion
//	e, err := ggfilter.New(buf, ggfilter.WithSeed(42))
//
//	// Correct (max+min)/2 desaturation instead of the legacy result
//	e, err := ggfilter.New(buf, ggfilter.WithCorrectedDesaturate())
type Option func(*options)

// options holds optional configuration for Engine creation.
type options struct {
	rng                 *rand.Rand
	mosaicRegion        image.Rectangle
	correctedDesaturate bool
	logger              *slog.Logger
}

// defaultOptions returns the default engine options.
func defaultOptions() options {
	return options{
		rng:          nil, // seeded from the runtime's entropy if nil
		mosaicRegion: DefaultMosaicRegion,
		logger:       nil, // falls back to Logger()
	}
}

// WithRand sets the random source used by Corrode and Noise.
// The engine takes ownership; do not share r with other goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed makes Corrode and Noise reproducible by seeding a PCG source.
//
// Production use should leave the default, non-deterministic source in place.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithMosaicRegion sets the rectangle used by MosaicP (skipped) and
// MosaicX (processed). Defaults to DefaultMosaicRegion.
func WithMosaicRegion(r image.Rectangle) Option {
	return func(o *options) {
		o.mosaicRegion = r.Canon()
	}
}

// WithCorrectedDesaturate makes GrayDesaturate compute (max+min)/2.
//
// Without it GrayDesaturate reproduces the legacy min/2 result that existing
// golden images were produced with.
func WithCorrectedDesaturate() Option {
	return func(o *options) {
		o.correctedDesaturate = true
	}
}

// WithLogger sets a logger for one engine, overriding the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
