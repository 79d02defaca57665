package ggfilter

import (
	"fmt"
	"image"
	"log/slog"
	"math/rand/v2"

	"github.com/gogpu/gg-filter/pixel"
)

// Engine applies filters to a working copy of a pixel buffer and can always
// return to the buffer it was created from.
//
// The engine exclusively owns two buffers of identical dimensions: the
// original, written once at construction, and the working buffer that every
// filter reads and mutates in place. Filter methods return the working
// buffer itself, not a copy; it stays owned by the engine and Reset restores
// it in place.
//
// An Engine is not safe for concurrent use. Use one engine per goroutine,
// each over its own buffer.
type Engine struct {
	original *pixel.Buffer
	working  *pixel.Buffer

	rng                 *rand.Rand
	mosaicRegion        image.Rectangle
	correctedDesaturate bool
	logger              *slog.Logger
}

// New creates an engine over a deep copy of buf. Later changes to buf do
// not affect the engine and vice versa.
//
// Returns ErrInvalidArgument if buf is nil or violates the buffer
// invariants.
func New(buf *pixel.Buffer, opts ...Option) (*Engine, error) {
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("ggfilter: new engine: %w", err)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // visual noise, not security
	}

	e := &Engine{
		original:            buf.Clone(),
		working:             buf.Clone(),
		rng:                 o.rng,
		mosaicRegion:        o.mosaicRegion,
		correctedDesaturate: o.correctedDesaturate,
		logger:              o.logger,
	}
	e.log().Info("ggfilter: engine created",
		"width", buf.Width(),
		"height", buf.Height())
	return e, nil
}

// NewFromData creates an engine from raw RGBA samples.
// len(data) must be exactly width*height*4.
func NewFromData(width, height int, data []uint8, opts ...Option) (*Engine, error) {
	buf, err := pixel.FromData(width, height, data)
	if err != nil {
		return nil, fmt.Errorf("ggfilter: new engine: %w", err)
	}
	return New(buf, opts...)
}

// NewFromImage creates an engine from any image.
func NewFromImage(img image.Image, opts ...Option) (*Engine, error) {
	buf, err := pixel.FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("ggfilter: new engine: %w", err)
	}
	return New(buf, opts...)
}

// Reset discards every filter applied so far by copying the original back
// into the working buffer. Returns the working buffer.
//
// The working buffer keeps its identity, so buffers returned by earlier
// filter calls show the restored image.
func (e *Engine) Reset() *pixel.Buffer {
	if err := e.working.CopyFrom(e.original); err != nil {
		e.working = e.original.Clone()
	}
	e.log().Debug("ggfilter: reset")
	return e.working
}

// Working returns the working buffer. It aliases engine state.
func (e *Engine) Working() *pixel.Buffer {
	return e.working
}

// Original returns a copy of the buffer the engine was created from.
func (e *Engine) Original() *pixel.Buffer {
	return e.original.Clone()
}

// Width returns the image width in pixels.
func (e *Engine) Width() int {
	return e.original.Width()
}

// Height returns the image height in pixels.
func (e *Engine) Height() int {
	return e.original.Height()
}

// log returns the engine logger, or the package logger if none was set.
func (e *Engine) log() *slog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return Logger()
}

// done logs the outcome of one filter call and returns the working buffer.
func (e *Engine) done(name string, applied bool, args ...any) *pixel.Buffer {
	l := e.log()
	if applied {
		l.Debug("ggfilter: applied", append([]any{"filter", name}, args...)...)
	} else {
		l.Debug("ggfilter: no-op", append([]any{"filter", name}, args...)...)
	}
	return e.working
}
