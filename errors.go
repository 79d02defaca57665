package ggfilter

import (
	"errors"

	"github.com/gogpu/gg-filter/pixel"
)

// Engine errors.
var (
	// ErrInvalidArgument is returned when a buffer has non-positive
	// dimensions or a sample count other than width*height*4.
	ErrInvalidArgument = pixel.ErrInvalidArgument

	// ErrUnknownFilter is returned by Apply for a name Filters does not list.
	ErrUnknownFilter = errors.New("ggfilter: unknown filter")

	// ErrArgCount is returned by Apply when too many arguments are given.
	ErrArgCount = errors.New("ggfilter: too many filter arguments")
)
