package ggfilter

import (
	"fmt"
	"slices"

	"github.com/gogpu/gg-filter/pixel"
)

// numericFilter describes a filter reachable through Apply.
// defaults holds the value of each positional argument when it is omitted.
type numericFilter struct {
	defaults []float64
	run      func(e *Engine, args []float64) *pixel.Buffer
}

// numericFilters maps filter names to their numeric entry points.
var numericFilters = map[string]numericFilter{
	"brightness": {[]float64{1}, func(e *Engine, a []float64) *pixel.Buffer { return e.Brightness(a[0]) }},
	"contrast":   {[]float64{1}, func(e *Engine, a []float64) *pixel.Buffer { return e.Contrast(a[0]) }},
	"invert":     {[]float64{1}, func(e *Engine, a []float64) *pixel.Buffer { return e.Invert(a[0]) }},
	"opacity":    {[]float64{1}, func(e *Engine, a []float64) *pixel.Buffer { return e.Opacity(a[0]) }},
	"gamma":      {[]float64{10}, func(e *Engine, a []float64) *pixel.Buffer { return e.Gamma(a[0]) }},
	"grayscale":  {[]float64{1}, func(e *Engine, a []float64) *pixel.Buffer { return e.Grayscale(a[0]) }},

	"grayaverage": {nil, func(e *Engine, _ []float64) *pixel.Buffer { return e.GrayAverage() }},
	"graycommon":  {nil, func(e *Engine, _ []float64) *pixel.Buffer { return e.GrayCommon() }},
	"graydesat":   {nil, func(e *Engine, _ []float64) *pixel.Buffer { return e.GrayDesaturate() }},
	"graymax":     {nil, func(e *Engine, _ []float64) *pixel.Buffer { return e.GrayMax() }},
	"graymin":     {nil, func(e *Engine, _ []float64) *pixel.Buffer { return e.GrayMin() }},
	"grayshadow":  {[]float64{4}, func(e *Engine, a []float64) *pixel.Buffer { return e.GrayShadow(int(a[0])) }},
	"posterize":   {[]float64{0}, func(e *Engine, a []float64) *pixel.Buffer { return e.Posterize(int(a[0])) }},
	"sepia":       {nil, func(e *Engine, _ []float64) *pixel.Buffer { return e.Sepia() }},

	"blur":       {[]float64{0, 0}, func(e *Engine, a []float64) *pixel.Buffer { return e.Blur(int(a[0]), a[1]) }},
	"sharp":      {[]float64{0}, func(e *Engine, a []float64) *pixel.Buffer { return e.Sharp(a[0]) }},
	"embossment": {nil, func(e *Engine, _ []float64) *pixel.Buffer { return e.Embossment() }},
	"darkCorner": {[]float64{3, 30}, func(e *Engine, a []float64) *pixel.Buffer { return e.DarkCorner(a[0], a[1]) }},
	"saturate":   {[]float64{1}, func(e *Engine, a []float64) *pixel.Buffer { return e.Saturate(a[0]) }},

	"mosaic":      {[]float64{0}, func(e *Engine, a []float64) *pixel.Buffer { return e.Mosaic(int(a[0])) }},
	"mosaicP":     {[]float64{0}, func(e *Engine, a []float64) *pixel.Buffer { return e.MosaicP(int(a[0])) }},
	"mosaicX":     {[]float64{0}, func(e *Engine, a []float64) *pixel.Buffer { return e.MosaicX(int(a[0])) }},
	"corrode":     {[]float64{0}, func(e *Engine, a []float64) *pixel.Buffer { return e.Corrode(int(a[0])) }},
	"dotted":      {[]float64{1, 1}, func(e *Engine, a []float64) *pixel.Buffer { return e.Dotted(int(a[0]), int(a[1])) }},
	"noise":       {[]float64{0}, func(e *Engine, a []float64) *pixel.Buffer { return e.Noise(int(a[0])) }},
	"oilPainting": {[]float64{0}, func(e *Engine, a []float64) *pixel.Buffer { return e.OilPainting(int(a[0])) }},
}

// channelFilters maps filter names that take a channel name.
var channelFilters = map[string]func(e *Engine, channel string) *pixel.Buffer{
	"graysingle":  (*Engine).GraySingle,
	"singlecolor": (*Engine).SingleColor,
}

// Apply runs the filter registered under name with positional numeric
// arguments. Omitted trailing arguments take the filter's default.
// Integer parameters are truncated toward zero.
//
// Returns ErrUnknownFilter if name is not a numeric filter (channel filters
// go through ApplyChannel) and ErrArgCount if too many arguments are given.
//
// Example:
//
//	buf, err := e.Apply("blur", 2)
//	buf, err = e.Apply("darkCorner", 5, 60)
func (e *Engine) Apply(name string, args ...float64) (*pixel.Buffer, error) {
	f, ok := numericFilters[name]
	if !ok {
		if _, isChannel := channelFilters[name]; isChannel {
			return nil, fmt.Errorf("%w: %q takes a channel name, use ApplyChannel", ErrUnknownFilter, name)
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
	if len(args) > len(f.defaults) {
		return nil, fmt.Errorf("%w: %q takes at most %d, got %d",
			ErrArgCount, name, len(f.defaults), len(args))
	}

	full := slices.Clone(f.defaults)
	copy(full, args)
	return f.run(e, full), nil
}

// ApplyChannel runs a filter that takes a channel name, such as
// "graysingle" or "singlecolor". An unrecognized channel is a no-op;
// an unrecognized filter returns ErrUnknownFilter.
func (e *Engine) ApplyChannel(name, channel string) (*pixel.Buffer, error) {
	f, ok := channelFilters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
	return f(e, channel), nil
}

// Filters returns the names accepted by Apply and ApplyChannel, sorted.
func Filters() []string {
	names := make([]string, 0, len(numericFilters)+len(channelFilters))
	for name := range numericFilters {
		names = append(names, name)
	}
	for name := range channelFilters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsChannelFilter reports whether name is dispatched through ApplyChannel.
func IsChannelFilter(name string) bool {
	_, ok := channelFilters[name]
	return ok
}
