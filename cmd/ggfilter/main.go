// Command ggfilter applies pixel filters to image files.
//
// Usage:
//
//	ggfilter apply [flags] <input> <output>
//	ggfilter list
//
// Examples:
//
//	ggfilter apply -f sepia -f darkCorner:3,30 photo.jpg old.png
//	ggfilter apply -f graysingle:red -f blur:2 photo.png red.png
//	ggfilter apply --seed 42 -f noise:60 photo.png noisy.rgba.zst
//	ggfilter apply --scale 0.5 -f mosaic:4 photo.png small.tiff
//
// Filters run in the order given. Each -f takes the form name[:arg,arg...];
// omitted arguments take the filter's default. Output format follows the
// output file extension (.png, .jpg, .bmp, .tif, .rgba.zst).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
