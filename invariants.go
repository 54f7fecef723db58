package main

import (
	"fmt"
)

// assert panics with an INVARIANT VIOLATION message when cond is false.
// Only used for programming errors; nothing here is expected at runtime.
func assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("INVARIANT VIOLATION: "+format, args...))
	}
}

// assertSameDims checks that two rasters describe the same canvas.
func assertSameDims(a, b Raster) {
	assert(a.Width == b.Width && a.Height == b.Height,
		"raster size mismatch: %dx%d vs %dx%d", a.Width, a.Height, b.Width, b.Height)
	assert(len(a.Pix) == len(b.Pix) && len(a.Pix) == a.Width*a.Height*3,
		"raster buffer length mismatch: %d vs %d (want %d)", len(a.Pix), len(b.Pix), a.Width*a.Height*3)
}
